package recon

import (
	"context"
	"sync"

	"fbarbosa/invest-recon/internal/logging"
	"fbarbosa/invest-recon/internal/models"
	"fbarbosa/invest-recon/internal/parsererror"
)

// TransactionCreator is the slice of the repository the committer needs.
// A nil transaction with a nil error signals that the repository rejected
// that one payload.
type TransactionCreator interface {
	CreateOrUpdateTransaction(ctx context.Context, req models.CreateTransactionRequest) (*models.Transaction, error)
}

// Committer submits candidate transactions to the repository, one request
// per payload, all in flight at once.
type Committer struct {
	creator TransactionCreator
	logger  logging.Logger
}

// NewCommitter creates a Committer backed by the given repository slice.
func NewCommitter(creator TransactionCreator, logger logging.Logger) *Committer {
	return &Committer{
		creator: creator,
		logger:  logger,
	}
}

// Commit issues one creation request per candidate and awaits them all.
// Success requires every request to return a transaction. On any failure a
// PartialCommitError is returned and the caller must not run its success
// side effects; requests that already succeeded remotely are not rolled
// back, so partially persisted state is possible until the next read.
func (c *Committer) Commit(ctx context.Context, candidates []models.CreateTransactionRequest) error {
	if len(candidates) == 0 {
		c.logger.Info("No reconciling transactions to commit")
		return nil
	}

	type result struct {
		created *models.Transaction
		err     error
	}
	results := make([]result, len(candidates))

	var wg sync.WaitGroup
	for i, candidate := range candidates {
		wg.Add(1)
		go func(i int, req models.CreateTransactionRequest) {
			defer wg.Done()
			created, err := c.creator.CreateOrUpdateTransaction(ctx, req)
			results[i] = result{created: created, err: err}
		}(i, candidate)
	}
	wg.Wait()

	var errs []error
	failed := 0
	for i, r := range results {
		if r.err != nil {
			errs = append(errs, r.err)
		}
		if r.err != nil || r.created == nil {
			failed++
			c.logger.WithError(r.err).Warn("Transaction creation failed",
				logging.Field{Key: logging.FieldAccountID, Value: candidates[i].AccountID})
		}
	}

	if failed > 0 {
		return &parsererror.PartialCommitError{
			Failed: failed,
			Total:  len(candidates),
			Errs:   errs,
		}
	}

	c.logger.Info("Committed reconciling transactions",
		logging.Field{Key: logging.FieldCount, Value: len(candidates)})
	return nil
}
