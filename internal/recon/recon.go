// Package recon turns a matched statement into reviewable reconciliation
// figures and, once confirmed, into candidate transactions for the
// repository.
package recon

import (
	"time"

	"github.com/shopspring/decimal"

	"fbarbosa/invest-recon/internal/models"
)

// Summary aggregates the reconciliation figures over a matched result set.
// Balances of unmatched accounts are excluded from MatchedBalance, and the
// average percentage divides only by the rows that actually carry one.
type Summary struct {
	MatchedBalance    decimal.Decimal
	StatementTotal    decimal.Decimal
	ReconcilingTotal  decimal.Decimal
	AveragePercentage decimal.Decimal
	PercentageCount   int
}

// Summarize computes the aggregate figures for a matched result set.
func Summarize(matched []models.MatchedInvestmentAccount) Summary {
	var s Summary

	var pctSum decimal.Decimal
	for _, m := range matched {
		if m.Investment == nil {
			continue
		}
		s.MatchedBalance = s.MatchedBalance.Add(m.Account.Balance)
		s.StatementTotal = s.StatementTotal.Add(m.Investment.Value)
		if m.InvestmentValue != nil {
			s.ReconcilingTotal = s.ReconcilingTotal.Add(*m.InvestmentValue)
		}
		if m.InvestmentPercentage != nil {
			pctSum = pctSum.Add(*m.InvestmentPercentage)
			s.PercentageCount++
		}
	}

	if s.PercentageCount > 0 {
		s.AveragePercentage = pctSum.Div(decimal.NewFromInt(int64(s.PercentageCount)))
	}

	return s
}

// BuildCandidates produces one transaction-creation payload per matched
// pair whose reconciling delta is non-zero. A delta of exactly zero means
// the account already agrees with the statement and yields no payload.
func BuildCandidates(matched []models.MatchedInvestmentAccount, date time.Time) []models.CreateTransactionRequest {
	var candidates []models.CreateTransactionRequest
	for _, m := range matched {
		if m.Investment == nil || m.InvestmentValue == nil || m.InvestmentValue.IsZero() {
			continue
		}
		candidates = append(candidates, models.CreateTransactionRequest{
			TransactionDate:             date,
			Description:                 "-",
			Amount:                      *m.InvestmentValue,
			CapitalizationEvent:         false,
			TransferenceBetweenAccounts: false,
			AccountID:                   m.Account.ID,
		})
	}
	return candidates
}
