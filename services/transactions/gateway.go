package transactions

import (
	"context"

	"github.com/salesdash/salesdash/internal/pkg/models"
)

// DatasetGW defines the interface for fetching the remote seed dataset.
type DatasetGW interface {
	FetchTransactions(ctx context.Context) ([]models.Transaction, error)
}
