package usecase

import (
	"context"

	"go.uber.org/zap"
)

// BootstrapIfEmpty seeds the store from the remote dataset when it holds no
// records. Callers treat a failure as non-fatal: the server still starts and
// an empty store simply serves empty results. Two processes racing this check
// at startup are not guarded against; the loser's duplicate-key insert fails
// and is equally non-fatal.
func (uc *TransactionUC) BootstrapIfEmpty(ctx context.Context) error {
	count, err := uc.repo.Count(ctx)
	if err != nil {
		return err
	}

	if count > 0 {
		uc.logger.Info("store already seeded, skipping bootstrap", zap.Int64("count", count))
		return nil
	}

	records, err := uc.gw.FetchTransactions(ctx)
	if err != nil {
		return err
	}

	if err := uc.repo.BulkInsert(ctx, records); err != nil {
		return err
	}

	uc.logger.Info("seeded store from remote dataset", zap.Int("records", len(records)))
	return nil
}

// Reseed fetches the dataset fresh and replaces the entire table contents,
// returning the new record count. It takes no lock against concurrent reads;
// this is an internal admin action.
func (uc *TransactionUC) Reseed(ctx context.Context) (int64, error) {
	records, err := uc.gw.FetchTransactions(ctx)
	if err != nil {
		return 0, err
	}

	count, err := uc.repo.TruncateAndReload(ctx, records)
	if err != nil {
		return 0, err
	}

	uc.logger.Info("reseeded store from remote dataset", zap.Int64("records", count))
	return count, nil
}
