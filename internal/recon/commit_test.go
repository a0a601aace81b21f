package recon_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fbarbosa/invest-recon/internal/logging"
	"fbarbosa/invest-recon/internal/models"
	"fbarbosa/invest-recon/internal/parsererror"
	"fbarbosa/invest-recon/internal/recon"
)

// fakeCreator records every payload and answers per account id.
type fakeCreator struct {
	mu       sync.Mutex
	calls    []models.CreateTransactionRequest
	failFor  map[int64]error
	rejected map[int64]bool
}

func (f *fakeCreator) CreateOrUpdateTransaction(_ context.Context, req models.CreateTransactionRequest) (*models.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, req)
	if err, ok := f.failFor[req.AccountID]; ok {
		return nil, err
	}
	if f.rejected[req.AccountID] {
		return nil, nil
	}
	return &models.Transaction{ID: req.AccountID, AccountID: req.AccountID, Amount: req.Amount}, nil
}

func candidates(ids ...int64) []models.CreateTransactionRequest {
	reqs := make([]models.CreateTransactionRequest, 0, len(ids))
	for _, id := range ids {
		reqs = append(reqs, models.CreateTransactionRequest{
			AccountID:   id,
			Amount:      decimal.NewFromInt(100),
			Description: "-",
		})
	}
	return reqs
}

func TestCommitAllSucceed(t *testing.T) {
	creator := &fakeCreator{}
	committer := recon.NewCommitter(creator, &logging.MockLogger{})

	err := committer.Commit(context.Background(), candidates(1, 2, 3))

	require.NoError(t, err)
	assert.Len(t, creator.calls, 3)
}

func TestCommitNoCandidatesIsNoop(t *testing.T) {
	creator := &fakeCreator{}
	committer := recon.NewCommitter(creator, &logging.MockLogger{})

	require.NoError(t, committer.Commit(context.Background(), nil))
	assert.Empty(t, creator.calls)
}

func TestCommitOneFailureFailsTheBatch(t *testing.T) {
	cause := errors.New("boom")
	creator := &fakeCreator{failFor: map[int64]error{2: cause}}
	committer := recon.NewCommitter(creator, &logging.MockLogger{})

	err := committer.Commit(context.Background(), candidates(1, 2, 3))

	require.Error(t, err)

	var partial *parsererror.PartialCommitError
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, 1, partial.Failed)
	assert.Equal(t, 3, partial.Total)
	assert.ErrorIs(t, err, cause)

	// Every request was still issued; nothing is rolled back.
	assert.Len(t, creator.calls, 3)
}

func TestCommitRejectionCountsAsFailure(t *testing.T) {
	// A nil transaction with a nil error means the repository rejected the
	// payload.
	creator := &fakeCreator{rejected: map[int64]bool{3: true}}
	committer := recon.NewCommitter(creator, &logging.MockLogger{})

	err := committer.Commit(context.Background(), candidates(1, 3))

	var partial *parsererror.PartialCommitError
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, 1, partial.Failed)
	assert.Equal(t, 2, partial.Total)
}
