// Package models defines the data structures exchanged with the bank-account
// API and the intermediate types produced by the statement interpretation
// pipeline.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a bank account as returned by the account API.
// The engine only ever reads accounts; they are owned by the remote
// repository.
type Account struct {
	ID                  int64           `json:"id" yaml:"id"`
	AccountNumber       string          `json:"accountNumber" yaml:"accountNumber"`
	AccountHolder       string          `json:"accountHolder" yaml:"accountHolder"`
	Description         string          `json:"description" yaml:"description"`
	Balance             decimal.Decimal `json:"balance" yaml:"balance"`
	CreatedAt           time.Time       `json:"createdAt" yaml:"createdAt"`
	LastTransactionDate *time.Time      `json:"lastTransactionDate,omitempty" yaml:"lastTransactionDate,omitempty"`
	IsActive            bool            `json:"isActive" yaml:"isActive"`
}
