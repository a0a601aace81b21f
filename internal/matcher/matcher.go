// Package matcher fuzzily pairs extracted statement items with known
// accounts. An account's human description rarely equals the platform's
// naming of the same product, so lookups go through a similarity index
// rather than exact keys.
package matcher

import (
	"fbarbosa/invest-recon/internal/logging"
	"fbarbosa/invest-recon/internal/models"
)

// DefaultThreshold admits moderately drifted names: a candidate matches
// when its normalized distance is at or below this value.
const DefaultThreshold = 0.4

// Index is a fuzzy search index over statement items, keyed by item name.
type Index struct {
	items     []models.InvestmentItem
	scorer    Scorer
	threshold float64
}

// NewIndex builds an index over items with the given scorer. A non-positive
// threshold falls back to DefaultThreshold.
func NewIndex(items []models.InvestmentItem, scorer Scorer, threshold float64) *Index {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Index{
		items:     items,
		scorer:    scorer,
		threshold: threshold,
	}
}

// FindBestMatch returns the single best-scoring item for the query, or
// false when no item scores within the threshold. A miss is a legitimate
// outcome, not an error.
func (ix *Index) FindBestMatch(query string) (models.InvestmentItem, bool) {
	var (
		best      models.InvestmentItem
		bestScore float64
		found     bool
	)

	for _, item := range ix.items {
		score := ix.scorer.Score(query, item.Name)
		if score > ix.threshold {
			continue
		}
		if !found || score < bestScore {
			best = item
			bestScore = score
			found = true
		}
	}

	return best, found
}

// Matcher binds statement items to accounts.
type Matcher struct {
	scorer    Scorer
	threshold float64
	logger    logging.Logger
}

// New creates a Matcher with the given scorer and threshold.
func New(scorer Scorer, threshold float64, logger logging.Logger) *Matcher {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Matcher{
		scorer:    scorer,
		threshold: threshold,
		logger:    logger,
	}
}

// Match pairs each account with at most one statement item. The account
// list drives iteration: the result has exactly one entry per account, in
// input order, with the reconciliation figures already computed.
//
// An item may win more than one account when it scores best against
// several descriptions; no uniqueness reservation is enforced. That is
// accepted behavior (duplicate holdings across sub-accounts exist), not a
// bug to fix here.
func (m *Matcher) Match(items []models.InvestmentItem, accounts []models.Account) []models.MatchedInvestmentAccount {
	index := NewIndex(items, m.scorer, m.threshold)

	matched := make([]models.MatchedInvestmentAccount, 0, len(accounts))
	for _, account := range accounts {
		item, ok := index.FindBestMatch(account.Description)
		if ok {
			m.logger.Debug("Matched statement item to account",
				logging.Field{Key: logging.FieldAccount, Value: account.Description},
				logging.Field{Key: logging.FieldItem, Value: item.Name})
			matched = append(matched, models.NewMatchedInvestmentAccount(account, &item))
		} else {
			matched = append(matched, models.NewMatchedInvestmentAccount(account, nil))
		}
	}

	m.logger.Info("Matched statement items against accounts",
		logging.Field{Key: logging.FieldCount, Value: len(matched)})
	return matched
}
