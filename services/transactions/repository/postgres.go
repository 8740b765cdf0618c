package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/salesdash/salesdash/internal/pkg/models"
	"github.com/salesdash/salesdash/services/transactions"
	"github.com/shopspring/decimal"
)

// uniqueViolation is the Postgres error code for a unique constraint hit.
const uniqueViolation = "23505"

const transactionColumns = `id, title, description, price, category, image, sold, date_of_sale`

const insertTransactionsQuery = `
	INSERT INTO transactions (
		id, title, description, price, category, image, sold, date_of_sale
	) VALUES (
		:id, :title, :description, :price, :category, :image, :sold, :date_of_sale
	)
`

// PostgresTransactionRepo implements the TransactionRepo interface
type PostgresTransactionRepo struct {
	db *sqlx.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *sqlx.DB) *PostgresTransactionRepo {
	return &PostgresTransactionRepo{
		db: db,
	}
}

// storeErr tags a database failure with the store error sentinel so callers
// can map it to a server-side failure.
func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", models.ErrStore, op, err)
}

// EnsureSchema idempotently creates the transactions table and its sale date
// index. Safe to call on every startup.
func (r *PostgresTransactionRepo) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS transactions (
			id           BIGINT PRIMARY KEY,
			title        TEXT NOT NULL DEFAULT '',
			description  TEXT NOT NULL DEFAULT '',
			price        NUMERIC(12,2) NOT NULL DEFAULT 0,
			category     TEXT NOT NULL DEFAULT '',
			image        TEXT NOT NULL DEFAULT '',
			sold         BOOLEAN NOT NULL DEFAULT FALSE,
			date_of_sale TIMESTAMPTZ NOT NULL
		)
	`)
	if err != nil {
		return storeErr("failed to create transactions table", err)
	}

	_, err = r.db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_transactions_date_of_sale
		ON transactions (date_of_sale)
	`)
	if err != nil {
		return storeErr("failed to create sale date index", err)
	}

	return nil
}

// Count returns the total number of stored transactions
func (r *PostgresTransactionRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM transactions`); err != nil {
		return 0, storeErr("failed to count transactions", err)
	}
	return count, nil
}

// BulkInsert inserts a batch of transactions with their upstream-assigned
// ids. An id collision is reported as ErrDuplicateKey, never swallowed.
func (r *PostgresTransactionRepo) BulkInsert(ctx context.Context, records []models.Transaction) error {
	if len(records) == 0 {
		return nil
	}

	_, err := r.db.NamedExecContext(ctx, insertTransactionsQuery, records)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: bulk insert: %w", models.ErrStore, models.ErrDuplicateKey)
		}
		return storeErr("failed to bulk insert transactions", err)
	}

	return nil
}

// TruncateAndReload atomically replaces the entire table contents with the
// given records inside one database transaction. A failed insert rolls the
// truncation back, so a broken reload never leaves the table empty.
func (r *PostgresTransactionRepo) TruncateAndReload(ctx context.Context, records []models.Transaction) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, storeErr("failed to begin reload transaction", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
		return 0, storeErr("failed to truncate transactions", err)
	}

	if len(records) > 0 {
		if _, err := tx.NamedExecContext(ctx, insertTransactionsQuery, records); err != nil {
			return 0, storeErr("failed to reload transactions", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, storeErr("failed to commit reload transaction", err)
	}

	return int64(len(records)), nil
}

// monthPredicate matches the calendar month component of the sale date,
// irrespective of year. Records from different years sharing a month
// collapse together; that is the contract, not an accident.
const monthPredicate = `EXTRACT(MONTH FROM date_of_sale) = $1`

const searchPredicate = `(title ILIKE $2 OR description ILIKE $2 OR price::text ILIKE $2)`

// ListByMonth returns transactions for the month, optionally filtered by a
// case-insensitive substring over title, description or the price text.
// A negative limit disables pagination.
func (r *PostgresTransactionRepo) ListByMonth(ctx context.Context, month models.Month, search string, limit, offset int) ([]models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE ` + monthPredicate
	args := []interface{}{month.Ordinal()}

	if search != "" {
		query += ` AND ` + searchPredicate
		args = append(args, "%"+search+"%")
	}

	query += ` ORDER BY id`
	if limit >= 0 {
		query += fmt.Sprintf(` LIMIT %d OFFSET %d`, limit, offset)
	}

	records := []models.Transaction{}
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, storeErr("failed to list transactions", err)
	}

	return records, nil
}

// CountByMonth counts transactions matching the month and optional search
func (r *PostgresTransactionRepo) CountByMonth(ctx context.Context, month models.Month, search string) (int64, error) {
	query := `SELECT COUNT(*) FROM transactions WHERE ` + monthPredicate
	args := []interface{}{month.Ordinal()}

	if search != "" {
		query += ` AND ` + searchPredicate
		args = append(args, "%"+search+"%")
	}

	var count int64
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, storeErr("failed to count transactions by month", err)
	}

	return count, nil
}

// MonthlyStatistics returns the sold-price sum and sold/unsold counts for the
// month. The sum is coerced to numeric zero when no sold rows exist.
func (r *PostgresTransactionRepo) MonthlyStatistics(ctx context.Context, month models.Month) (*models.MonthlyStatistics, error) {
	query := `
		SELECT
			COALESCE(SUM(price) FILTER (WHERE sold), 0) AS total_sale,
			COUNT(*) FILTER (WHERE sold)                AS sold_items,
			COUNT(*) FILTER (WHERE NOT sold)            AS not_sold_items
		FROM transactions
		WHERE ` + monthPredicate

	var stats models.MonthlyStatistics
	if err := r.db.GetContext(ctx, &stats, query, month.Ordinal()); err != nil {
		return nil, storeErr("failed to aggregate monthly statistics", err)
	}

	return &stats, nil
}

// PricesByMonth returns every price in the month, in insertion order. The
// query layer buckets these with exact decimal comparison.
func (r *PostgresTransactionRepo) PricesByMonth(ctx context.Context, month models.Month) ([]decimal.Decimal, error) {
	query := `SELECT price FROM transactions WHERE ` + monthPredicate + ` ORDER BY id`

	prices := []decimal.Decimal{}
	if err := r.db.SelectContext(ctx, &prices, query, month.Ordinal()); err != nil {
		return nil, storeErr("failed to list prices by month", err)
	}

	return prices, nil
}

// CategoryCounts groups the month's transactions by category
func (r *PostgresTransactionRepo) CategoryCounts(ctx context.Context, month models.Month) ([]models.ChartSlice, error) {
	query := `
		SELECT category AS label, COUNT(*) AS count
		FROM transactions
		WHERE ` + monthPredicate + `
		GROUP BY category
	`

	slices := []models.ChartSlice{}
	if err := r.db.SelectContext(ctx, &slices, query, month.Ordinal()); err != nil {
		return nil, storeErr("failed to group transactions by category", err)
	}

	return slices, nil
}

var _ transactions.TransactionRepo = (*PostgresTransactionRepo)(nil)
