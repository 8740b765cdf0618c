package transactions

import (
	"context"

	"github.com/salesdash/salesdash/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_transactions.go -package=mocks github.com/salesdash/salesdash/services/transactions TransactionRepo,DatasetGW,TransactionUC

// TransactionUC defines the interface for transaction use cases. Every query
// operation validates its month name before touching the store and fails with
// models.ErrInvalidMonth otherwise.
type TransactionUC interface {
	ListTransactions(ctx context.Context, month, search string, page, perPage int) (*models.TransactionList, error)
	Statistics(ctx context.Context, month string) (*models.MonthlyStatistics, error)
	BarChart(ctx context.Context, month string) ([]models.ChartSlice, error)
	PieChart(ctx context.Context, month string) ([]models.ChartSlice, error)
	Combined(ctx context.Context, month string) (*models.CombinedStats, error)

	BootstrapIfEmpty(ctx context.Context) error
	Reseed(ctx context.Context) (int64, error)
}
