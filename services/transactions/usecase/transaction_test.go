package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesdash/salesdash/internal/pkg/models"
	"github.com/salesdash/salesdash/services/transactions/mocks"
)

func setupUCTest(t *testing.T) (*TransactionUC, *mocks.MockTransactionRepo, *mocks.MockDatasetGW, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	mockGW := mocks.NewMockDatasetGW(ctrl)
	uc := NewTransactionUC(mockRepo, mockGW, nil)
	return uc, mockRepo, mockGW, ctrl
}

func TestQueryOperations_InvalidMonthFailsBeforeStore(t *testing.T) {
	// No EXPECT calls are registered: any store access would fail the test.
	uc, _, _, ctrl := setupUCTest(t)
	defer ctrl.Finish()

	ctx := context.Background()

	for _, month := range []string{"", "march", "Marchh", "13"} {
		_, err := uc.ListTransactions(ctx, month, "", 1, 0)
		assert.True(t, errors.Is(err, models.ErrInvalidMonth))

		_, err = uc.Statistics(ctx, month)
		assert.True(t, errors.Is(err, models.ErrInvalidMonth))

		_, err = uc.BarChart(ctx, month)
		assert.True(t, errors.Is(err, models.ErrInvalidMonth))

		_, err = uc.PieChart(ctx, month)
		assert.True(t, errors.Is(err, models.ErrInvalidMonth))

		_, err = uc.Combined(ctx, month)
		assert.True(t, errors.Is(err, models.ErrInvalidMonth))
	}
}

func TestListTransactions_Unpaginated(t *testing.T) {
	uc, mockRepo, _, ctrl := setupUCTest(t)
	defer ctrl.Finish()

	records := []models.Transaction{{ID: 1}, {ID: 2}, {ID: 3}}

	mockRepo.EXPECT().CountByMonth(gomock.Any(), models.March, "").Return(int64(3), nil)
	mockRepo.EXPECT().ListByMonth(gomock.Any(), models.March, "", -1, 0).Return(records, nil)

	list, err := uc.ListTransactions(context.Background(), "March", "", 1, 0)
	require.NoError(t, err)
	assert.Equal(t, records, list.Transactions)
	assert.Equal(t, int64(3), list.Total)
	assert.Equal(t, 1, list.Page)
	assert.Equal(t, 3, list.PerPage)
	assert.Equal(t, 1, list.TotalPages)
}

func TestListTransactions_PaginatedSecondPage(t *testing.T) {
	uc, mockRepo, _, ctrl := setupUCTest(t)
	defer ctrl.Finish()

	pageRecords := make([]models.Transaction, 10)
	for i := range pageRecords {
		pageRecords[i] = models.Transaction{ID: int64(11 + i)}
	}

	mockRepo.EXPECT().CountByMonth(gomock.Any(), models.March, "").Return(int64(25), nil)
	mockRepo.EXPECT().ListByMonth(gomock.Any(), models.March, "", 10, 10).Return(pageRecords, nil)

	list, err := uc.ListTransactions(context.Background(), "March", "", 2, 10)
	require.NoError(t, err)
	assert.Len(t, list.Transactions, 10)
	assert.Equal(t, int64(11), list.Transactions[0].ID)
	assert.Equal(t, int64(25), list.Total)
	assert.Equal(t, 2, list.Page)
	assert.Equal(t, 10, list.PerPage)
	assert.Equal(t, 3, list.TotalPages)
}

func TestListTransactions_SearchIsTrimmed(t *testing.T) {
	uc, mockRepo, _, ctrl := setupUCTest(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().CountByMonth(gomock.Any(), models.July, "tv").Return(int64(0), nil)
	mockRepo.EXPECT().ListByMonth(gomock.Any(), models.July, "tv", -1, 0).Return([]models.Transaction{}, nil)

	list, err := uc.ListTransactions(context.Background(), "July", "  tv  ", 1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), list.Total)
	assert.Equal(t, 1, list.TotalPages)
}

func TestListTransactions_NonPositivePageCoercedToFirst(t *testing.T) {
	uc, mockRepo, _, ctrl := setupUCTest(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().CountByMonth(gomock.Any(), models.March, "").Return(int64(5), nil)
	mockRepo.EXPECT().ListByMonth(gomock.Any(), models.March, "", 10, 0).Return([]models.Transaction{}, nil)

	list, err := uc.ListTransactions(context.Background(), "March", "", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Page)
	assert.Equal(t, 1, list.TotalPages)
}

func TestListTransactions_StoreFailurePropagates(t *testing.T) {
	uc, mockRepo, _, ctrl := setupUCTest(t)
	defer ctrl.Finish()

	storeErr := fmt.Errorf("%w: connection reset", models.ErrStore)
	mockRepo.EXPECT().CountByMonth(gomock.Any(), models.March, "").Return(int64(0), storeErr)

	_, err := uc.ListTransactions(context.Background(), "March", "", 1, 0)
	assert.True(t, errors.Is(err, models.ErrStore))
}

func TestStatistics(t *testing.T) {
	uc, mockRepo, _, ctrl := setupUCTest(t)
	defer ctrl.Finish()

	expected := &models.MonthlyStatistics{
		TotalSale:    decimal.NewFromInt(50),
		SoldItems:    1,
		NotSoldItems: 1,
	}
	mockRepo.EXPECT().MonthlyStatistics(gomock.Any(), models.March).Return(expected, nil)

	stats, err := uc.Statistics(context.Background(), "March")
	require.NoError(t, err)
	assert.Equal(t, expected, stats)
}

func TestBarChart_BucketsAndOrder(t *testing.T) {
	uc, mockRepo, _, ctrl := setupUCTest(t)
	defer ctrl.Finish()

	prices := []decimal.Decimal{
		decimal.RequireFromString("950"),
		decimal.RequireFromString("150"),
		decimal.RequireFromString("50"),
		decimal.RequireFromString("120.50"),
		decimal.RequireFromString("100.50"), // between buckets, dropped
	}
	mockRepo.EXPECT().PricesByMonth(gomock.Any(), models.March).Return(prices, nil)

	slices, err := uc.BarChart(context.Background(), "March")
	require.NoError(t, err)
	assert.Equal(t, []models.ChartSlice{
		{Label: "0-100", Count: 1},
		{Label: "101-200", Count: 2},
		{Label: "901-above", Count: 1},
	}, slices)
}

func TestBarChart_OneRecordPerBucket(t *testing.T) {
	uc, mockRepo, _, ctrl := setupUCTest(t)
	defer ctrl.Finish()

	prices := []decimal.Decimal{
		decimal.NewFromInt(50),
		decimal.NewFromInt(150),
	}
	mockRepo.EXPECT().PricesByMonth(gomock.Any(), models.March).Return(prices, nil)

	slices, err := uc.BarChart(context.Background(), "March")
	require.NoError(t, err)
	assert.Equal(t, []models.ChartSlice{
		{Label: "0-100", Count: 1},
		{Label: "101-200", Count: 1},
	}, slices)
}

func TestBarChart_EmptyMonth(t *testing.T) {
	uc, mockRepo, _, ctrl := setupUCTest(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().PricesByMonth(gomock.Any(), models.February).Return([]decimal.Decimal{}, nil)

	slices, err := uc.BarChart(context.Background(), "February")
	require.NoError(t, err)
	assert.Empty(t, slices)
}

func TestPieChart(t *testing.T) {
	uc, mockRepo, _, ctrl := setupUCTest(t)
	defer ctrl.Finish()

	expected := []models.ChartSlice{
		{Label: "clothing", Count: 3},
		{Label: "electronics", Count: 2},
	}
	mockRepo.EXPECT().CategoryCounts(gomock.Any(), models.March).Return(expected, nil)

	slices, err := uc.PieChart(context.Background(), "March")
	require.NoError(t, err)
	assert.Equal(t, expected, slices)
}

func TestCombined_ComposesInProcess(t *testing.T) {
	uc, mockRepo, _, ctrl := setupUCTest(t)
	defer ctrl.Finish()

	stats := &models.MonthlyStatistics{TotalSale: decimal.NewFromInt(50), SoldItems: 1, NotSoldItems: 1}
	prices := []decimal.Decimal{decimal.NewFromInt(50), decimal.NewFromInt(150)}
	categories := []models.ChartSlice{{Label: "A", Count: 1}, {Label: "B", Count: 1}}

	mockRepo.EXPECT().MonthlyStatistics(gomock.Any(), models.March).Return(stats, nil)
	mockRepo.EXPECT().PricesByMonth(gomock.Any(), models.March).Return(prices, nil)
	mockRepo.EXPECT().CategoryCounts(gomock.Any(), models.March).Return(categories, nil)

	combined, err := uc.Combined(context.Background(), "March")
	require.NoError(t, err)
	assert.Equal(t, stats, combined.Statistics)
	assert.Equal(t, []models.ChartSlice{
		{Label: "0-100", Count: 1},
		{Label: "101-200", Count: 1},
	}, combined.BarChart)
	assert.Equal(t, categories, combined.PieChart)
}

func TestCombined_StatisticsFailureShortCircuits(t *testing.T) {
	uc, mockRepo, _, ctrl := setupUCTest(t)
	defer ctrl.Finish()

	storeErr := fmt.Errorf("%w: timeout", models.ErrStore)
	mockRepo.EXPECT().MonthlyStatistics(gomock.Any(), models.March).Return(nil, storeErr)

	_, err := uc.Combined(context.Background(), "March")
	assert.True(t, errors.Is(err, models.ErrStore))
}
