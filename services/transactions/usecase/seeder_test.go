package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesdash/salesdash/internal/pkg/models"
)

func TestBootstrapIfEmpty_SkipsWhenSeeded(t *testing.T) {
	uc, mockRepo, _, ctrl := setupUCTest(t)
	defer ctrl.Finish()

	// No fetch and no insert when the store already holds records
	mockRepo.EXPECT().Count(gomock.Any()).Return(int64(60), nil)

	err := uc.BootstrapIfEmpty(context.Background())
	assert.NoError(t, err)
}

func TestBootstrapIfEmpty_SeedsWhenEmpty(t *testing.T) {
	uc, mockRepo, mockGW, ctrl := setupUCTest(t)
	defer ctrl.Finish()

	records := []models.Transaction{{ID: 1}, {ID: 2}}

	mockRepo.EXPECT().Count(gomock.Any()).Return(int64(0), nil)
	mockGW.EXPECT().FetchTransactions(gomock.Any()).Return(records, nil)
	mockRepo.EXPECT().BulkInsert(gomock.Any(), records).Return(nil)

	err := uc.BootstrapIfEmpty(context.Background())
	assert.NoError(t, err)
}

func TestBootstrapIfEmpty_FetchFailureIsReturned(t *testing.T) {
	uc, mockRepo, mockGW, ctrl := setupUCTest(t)
	defer ctrl.Finish()

	fetchErr := fmt.Errorf("%w: connection refused", models.ErrFetch)

	mockRepo.EXPECT().Count(gomock.Any()).Return(int64(0), nil)
	mockGW.EXPECT().FetchTransactions(gomock.Any()).Return(nil, fetchErr)

	err := uc.BootstrapIfEmpty(context.Background())
	assert.True(t, errors.Is(err, models.ErrFetch))
}

func TestBootstrapIfEmpty_CountFailureIsReturned(t *testing.T) {
	uc, mockRepo, _, ctrl := setupUCTest(t)
	defer ctrl.Finish()

	storeErr := fmt.Errorf("%w: connection reset", models.ErrStore)
	mockRepo.EXPECT().Count(gomock.Any()).Return(int64(0), storeErr)

	err := uc.BootstrapIfEmpty(context.Background())
	assert.True(t, errors.Is(err, models.ErrStore))
}

func TestReseed(t *testing.T) {
	uc, mockRepo, mockGW, ctrl := setupUCTest(t)
	defer ctrl.Finish()

	records := []models.Transaction{{ID: 1}, {ID: 2}, {ID: 3}}

	mockGW.EXPECT().FetchTransactions(gomock.Any()).Return(records, nil)
	mockRepo.EXPECT().TruncateAndReload(gomock.Any(), records).Return(int64(3), nil)

	count, err := uc.Reseed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestReseed_FetchFailure(t *testing.T) {
	uc, _, mockGW, ctrl := setupUCTest(t)
	defer ctrl.Finish()

	fetchErr := fmt.Errorf("%w: status 503", models.ErrFetch)
	mockGW.EXPECT().FetchTransactions(gomock.Any()).Return(nil, fetchErr)

	_, err := uc.Reseed(context.Background())
	assert.True(t, errors.Is(err, models.ErrFetch))
}

func TestReseed_StoreFailure(t *testing.T) {
	uc, mockRepo, mockGW, ctrl := setupUCTest(t)
	defer ctrl.Finish()

	records := []models.Transaction{{ID: 1}}
	storeErr := fmt.Errorf("%w: deadlock", models.ErrStore)

	mockGW.EXPECT().FetchTransactions(gomock.Any()).Return(records, nil)
	mockRepo.EXPECT().TruncateAndReload(gomock.Any(), records).Return(int64(0), storeErr)

	_, err := uc.Reseed(context.Background())
	assert.True(t, errors.Is(err, models.ErrStore))
}
