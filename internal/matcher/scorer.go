package matcher

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Scorer computes a normalized distance between a query and a candidate:
// 0 is identical, 1 is entirely dissimilar. It is a capability interface so
// the similarity algorithm can be swapped without touching the matching
// logic.
type Scorer interface {
	Score(query, candidate string) float64
}

// LevenshteinScorer scores with case-insensitive edit distance normalized
// by the longer string. A contained substring counts as a perfect score so
// abbreviated account descriptions still find their full statement name.
type LevenshteinScorer struct{}

// Score implements Scorer.
func (LevenshteinScorer) Score(query, candidate string) float64 {
	q := strings.ToLower(strings.TrimSpace(query))
	c := strings.ToLower(strings.TrimSpace(candidate))

	if q == c {
		return 0
	}
	if q == "" || c == "" {
		return 1
	}
	if strings.Contains(c, q) || strings.Contains(q, c) {
		return 0
	}

	best := normalizedDistance(q, c)

	// Abbreviations often drift at the word level ("CDB DI Itaú" vs
	// "CDB-DI"), so also try each query word against each candidate word
	// and keep the best.
	for _, qw := range strings.Fields(q) {
		for _, cw := range strings.Fields(c) {
			if d := normalizedDistance(qw, cw); d < best {
				best = d
			}
		}
	}

	return best
}

func normalizedDistance(a, b string) float64 {
	longer := len([]rune(a))
	if l := len([]rune(b)); l > longer {
		longer = l
	}
	if longer == 0 {
		return 0
	}
	return float64(levenshtein.ComputeDistance(a, b)) / float64(longer)
}
