// Package txfilter classifies a free-text query as a date, a number, or a
// substring pattern and applies it to a transaction collection.
//
// The precedence is fixed: date, then number, then substring. It is a
// heuristic, lossy classifier: a description that happens to look like a
// date or a number can never be reached through substring search for that
// query. Changing the order changes search results, so don't.
package txfilter

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"fbarbosa/invest-recon/internal/dateutils"
	"fbarbosa/invest-recon/internal/models"
	"fbarbosa/invest-recon/internal/textutils"
)

// Filter returns the transactions matching the query under the first
// applicable interpretation. An empty query matches everything.
func Filter(query string, transactions []models.Transaction) []models.Transaction {
	if strings.TrimSpace(query) == "" {
		return transactions
	}

	if date, ok := dateutils.ParseInputDate(query); ok {
		return filterByDate(date, transactions)
	}

	if amount, ok := parseQueryNumber(query); ok {
		return filterByAmount(amount, transactions)
	}

	return filterByDescription(query, transactions)
}

// parseQueryNumber normalizes a query typed in the statement locale:
// thousands dots removed, decimal comma replaced with a dot.
func parseQueryNumber(query string) (decimal.Decimal, bool) {
	normalized := strings.ReplaceAll(strings.TrimSpace(query), ".", "")
	normalized = strings.ReplaceAll(normalized, ",", ".")

	amount, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return amount, true
}

func filterByDate(date time.Time, transactions []models.Transaction) []models.Transaction {
	matched := make([]models.Transaction, 0)
	for _, tx := range transactions {
		if dateutils.SameDate(tx.TransactionDate, date) {
			matched = append(matched, tx)
		}
	}
	return matched
}

func filterByAmount(amount decimal.Decimal, transactions []models.Transaction) []models.Transaction {
	matched := make([]models.Transaction, 0)
	for _, tx := range transactions {
		if tx.Amount.Equal(amount) {
			matched = append(matched, tx)
		}
	}
	return matched
}

func filterByDescription(query string, transactions []models.Transaction) []models.Transaction {
	needle := strings.ToLower(strings.TrimSpace(query))

	matched := make([]models.Transaction, 0)
	for _, tx := range transactions {
		// Transactions without a description never match a text query.
		if tx.Description == "" {
			continue
		}
		if strings.Contains(textutils.Normalize(tx.Description), needle) {
			matched = append(matched, tx)
		}
	}
	return matched
}
