package usecase

import (
	"context"
	"strings"

	"github.com/salesdash/salesdash/internal/pkg/models"
	"github.com/salesdash/salesdash/services/transactions"
	"go.uber.org/zap"
)

// TransactionUC implements the transactions.TransactionUC interface. It is
// the only layer with real decision-making: it validates month names, maps
// requests onto store queries and shapes the results.
type TransactionUC struct {
	repo   transactions.TransactionRepo
	gw     transactions.DatasetGW
	logger *zap.Logger
}

// NewTransactionUC creates a new transaction use case
func NewTransactionUC(repo transactions.TransactionRepo, gw transactions.DatasetGW, logger *zap.Logger) *TransactionUC {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &TransactionUC{
		repo:   repo,
		gw:     gw,
		logger: logger,
	}
}

// ListTransactions returns the month's transactions, optionally filtered by
// a case-insensitive substring over title, description and the price text.
// Without perPage every match is returned as a single page; with perPage the
// result is a 1-indexed page and TotalPages is ceil(total/perPage), never
// below one.
func (uc *TransactionUC) ListTransactions(ctx context.Context, month, search string, page, perPage int) (*models.TransactionList, error) {
	m, err := models.ParseMonth(month)
	if err != nil {
		return nil, err
	}

	search = strings.TrimSpace(search)

	total, err := uc.repo.CountByMonth(ctx, m, search)
	if err != nil {
		return nil, err
	}

	if perPage <= 0 {
		// Unpaginated: everything in one page
		records, err := uc.repo.ListByMonth(ctx, m, search, -1, 0)
		if err != nil {
			return nil, err
		}

		return &models.TransactionList{
			Transactions: records,
			Total:        total,
			Page:         1,
			PerPage:      int(total),
			TotalPages:   1,
		}, nil
	}

	if page <= 0 {
		page = 1
	}

	offset := (page - 1) * perPage
	records, err := uc.repo.ListByMonth(ctx, m, search, perPage, offset)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	if totalPages < 1 {
		totalPages = 1
	}

	return &models.TransactionList{
		Transactions: records,
		Total:        total,
		Page:         page,
		PerPage:      perPage,
		TotalPages:   totalPages,
	}, nil
}

// Statistics returns the sold-price total and sold/unsold counts for the month
func (uc *TransactionUC) Statistics(ctx context.Context, month string) (*models.MonthlyStatistics, error) {
	m, err := models.ParseMonth(month)
	if err != nil {
		return nil, err
	}

	return uc.repo.MonthlyStatistics(ctx, m)
}

// BarChart partitions the month's prices into the ten fixed buckets with
// exact decimal comparison. Empty buckets are omitted and the result follows
// the natural numeric bucket order.
func (uc *TransactionUC) BarChart(ctx context.Context, month string) ([]models.ChartSlice, error) {
	m, err := models.ParseMonth(month)
	if err != nil {
		return nil, err
	}

	prices, err := uc.repo.PricesByMonth(ctx, m)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(models.PriceBuckets))
	for _, price := range prices {
		if bucket, ok := models.BucketFor(price); ok {
			counts[bucket.Label]++
		}
	}

	slices := make([]models.ChartSlice, 0, len(counts))
	for _, bucket := range models.PriceBuckets {
		if count := counts[bucket.Label]; count > 0 {
			slices = append(slices, models.ChartSlice{Label: bucket.Label, Count: count})
		}
	}

	return slices, nil
}

// PieChart groups the month's transactions by category
func (uc *TransactionUC) PieChart(ctx context.Context, month string) ([]models.ChartSlice, error) {
	m, err := models.ParseMonth(month)
	if err != nil {
		return nil, err
	}

	return uc.repo.CategoryCounts(ctx, m)
}

// Combined bundles statistics, bar chart and pie chart for the month in one
// envelope. This is direct in-process composition; the service never calls
// its own HTTP endpoints.
func (uc *TransactionUC) Combined(ctx context.Context, month string) (*models.CombinedStats, error) {
	stats, err := uc.Statistics(ctx, month)
	if err != nil {
		return nil, err
	}

	barChart, err := uc.BarChart(ctx, month)
	if err != nil {
		return nil, err
	}

	pieChart, err := uc.PieChart(ctx, month)
	if err != nil {
		return nil, err
	}

	return &models.CombinedStats{
		Statistics: stats,
		BarChart:   barChart,
		PieChart:   pieChart,
	}, nil
}

var _ transactions.TransactionUC = (*TransactionUC)(nil)
