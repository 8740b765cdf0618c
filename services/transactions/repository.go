package transactions

import (
	"context"

	"github.com/salesdash/salesdash/internal/pkg/models"
	"github.com/shopspring/decimal"
)

// TransactionRepo defines the interface for transaction store operations.
// Transactions are created only in bulk by the seeder; rows are never
// updated or deleted individually.
type TransactionRepo interface {
	EnsureSchema(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
	BulkInsert(ctx context.Context, records []models.Transaction) error
	TruncateAndReload(ctx context.Context, records []models.Transaction) (int64, error)

	ListByMonth(ctx context.Context, month models.Month, search string, limit, offset int) ([]models.Transaction, error)
	CountByMonth(ctx context.Context, month models.Month, search string) (int64, error)
	MonthlyStatistics(ctx context.Context, month models.Month) (*models.MonthlyStatistics, error)
	PricesByMonth(ctx context.Context, month models.Month) ([]decimal.Decimal, error)
	CategoryCounts(ctx context.Context, month models.Month) ([]models.ChartSlice, error)
}
