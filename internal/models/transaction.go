package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a persisted financial transaction as returned by
// the transaction API.
type Transaction struct {
	ID                          int64           `json:"id"`
	Amount                      decimal.Decimal `json:"amount"`
	TransactionDate             time.Time       `json:"transactionDate"`
	CreatedAt                   time.Time       `json:"createdAt"`
	Description                 string          `json:"description,omitempty"`
	BalanceAtBeforeTransaction  decimal.Decimal `json:"balanceAtBeforeTransaction"`
	CapitalizationEvent         bool            `json:"capitalizationEvent"`
	TransferenceBetweenAccounts bool            `json:"transferenceBetweenAccounts"`
	AccountID                   int64           `json:"accountId"`
	TransactionTypeID           *int64          `json:"transactionTypeId,omitempty"`
}

// CreateTransactionRequest is the candidate payload sent to the repository
// to create a transaction. Identity assignment and persistence belong to
// the repository; no local copy is retained after submission.
type CreateTransactionRequest struct {
	ID                          *int64          `json:"id,omitempty"`
	Amount                      decimal.Decimal `json:"amount"`
	TransactionDate             time.Time       `json:"transactionDate"`
	Description                 string          `json:"description,omitempty"`
	CapitalizationEvent         bool            `json:"capitalizationEvent"`
	TransferenceBetweenAccounts bool            `json:"transferenceBetweenAccounts"`
	AccountID                   int64           `json:"accountId"`
	TransactionTypeID           *int64          `json:"transactionTypeId,omitempty"`
}
