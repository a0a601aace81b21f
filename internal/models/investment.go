package models

import (
	"github.com/shopspring/decimal"
)

// InvestmentItem is a single (name, value) pair recognized in a pasted
// statement. Items are ephemeral: produced by the extractor, consumed by
// the matcher, never persisted.
type InvestmentItem struct {
	Name  string
	Value decimal.Decimal
}

// MatchedInvestmentAccount pairs an account with at most one statement item
// and carries the reconciliation figures derived from the pair. Instances
// are immutable after construction. Exactly one is produced per input
// account.
//
// InvestmentValue and InvestmentPercentage are set iff Investment is set;
// the percentage additionally requires a non-zero account balance
// (division by zero is avoided by omission, not by substituting zero).
type MatchedInvestmentAccount struct {
	Account              Account
	Investment           *InvestmentItem
	InvestmentValue      *decimal.Decimal
	InvestmentPercentage *decimal.Decimal
}

// NewMatchedInvestmentAccount builds the pairing for one account. Pass a
// nil item for an account with no statement match: the result then carries
// only the account.
func NewMatchedInvestmentAccount(account Account, item *InvestmentItem) MatchedInvestmentAccount {
	m := MatchedInvestmentAccount{Account: account}
	if item == nil {
		return m
	}

	inv := *item
	m.Investment = &inv

	value := inv.Value.Sub(account.Balance)
	m.InvestmentValue = &value

	if !account.Balance.IsZero() {
		pct := value.Div(account.Balance).Mul(decimal.NewFromInt(100))
		m.InvestmentPercentage = &pct
	}

	return m
}
