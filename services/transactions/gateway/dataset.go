package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/salesdash/salesdash/internal/pkg/models"
	"github.com/salesdash/salesdash/services/transactions"
)

// DatasetClient fetches the remote product transaction dataset. The dataset
// is treated as a single opaque bulk import source; there is no incremental
// sync.
type DatasetClient struct {
	url        string
	httpClient *http.Client
}

// NewDatasetGW creates a new dataset gateway
func NewDatasetGW(config models.DatasetConfig) *DatasetClient {
	timeout := time.Duration(config.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &DatasetClient{
		url: config.URL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// fetchErr tags a dataset failure with the fetch error sentinel so the
// bootstrap path can treat it as non-fatal and the reseed path as a 500.
func fetchErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", models.ErrFetch, op, err)
}

// FetchTransactions downloads and decodes the full dataset
func (g *DatasetClient) FetchTransactions(ctx context.Context) ([]models.Transaction, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.url, nil)
	if err != nil {
		return nil, fetchErr("failed to build dataset request", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fetchErr("failed to fetch dataset", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fetchErr("unexpected dataset response", fmt.Errorf("status %d", resp.StatusCode))
	}

	var records []models.Transaction
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fetchErr("failed to decode dataset", err)
	}

	return records, nil
}

var _ transactions.DatasetGW = (*DatasetClient)(nil)
