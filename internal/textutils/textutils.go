// Package textutils provides text normalization helpers shared by the
// filter interpreter.
package textutils

import (
	"regexp"
	"strings"
)

var innerWhitespace = regexp.MustCompile(`\s+`)

// Normalize lowercases, trims, and collapses runs of internal whitespace
// to single spaces, so substring comparisons ignore spacing drift.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return innerWhitespace.ReplaceAllString(s, " ")
}
