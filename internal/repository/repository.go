// Package repository defines the contract with the remote account and
// transaction API and provides its HTTP implementation. Transport details
// stay here; the engine depends only on the Repository interface.
package repository

import (
	"context"
	"time"

	"fbarbosa/invest-recon/internal/models"
)

// Repository is the collaborator contract consumed by the engine.
type Repository interface {
	// ListAccounts returns all known accounts.
	ListAccounts(ctx context.Context) ([]models.Account, error)

	// ListTransactions returns an account's transactions from the given
	// start date onward.
	ListTransactions(ctx context.Context, accountID int64, since time.Time) ([]models.Transaction, error)

	// CreateOrUpdateTransaction submits one candidate payload. A nil
	// transaction with a nil error means the repository rejected that one
	// payload.
	CreateOrUpdateTransaction(ctx context.Context, req models.CreateTransactionRequest) (*models.Transaction, error)

	// ParseUploadFile runs the preview-only parse of an uploaded file. It
	// must not mutate persisted data.
	ParseUploadFile(ctx context.Context, req models.UploadRequest) (*models.UploadResponse, error)

	// CommitUploadFile parses and persists an uploaded file.
	CommitUploadFile(ctx context.Context, req models.UploadRequest) (*models.UploadResponse, error)
}
