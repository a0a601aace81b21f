// Package dateutils provides the date operations shared by the filter
// interpreter and the reconciliation workflow.
package dateutils

import (
	"time"
)

// Layout constants used throughout the application.
const (
	DateLayoutISO   = "2006-01-02"
	DateLayoutInput = "02/01/2006"
)

// ParseInputDate parses a user-typed date under the fixed dd/MM/yyyy
// template. The boolean reports whether the text is a valid date; an
// invalid date is a classification miss, not an error.
func ParseInputDate(text string) (time.Time, bool) {
	t, err := time.Parse(DateLayoutInput, text)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ToISODate formats a time as an ISO date (YYYY-MM-DD), dropping the time
// component.
func ToISODate(t time.Time) string {
	return t.Format(DateLayoutISO)
}

// SameDate reports whether two times fall on the same calendar date,
// ignoring the time of day.
func SameDate(a, b time.Time) bool {
	return ToISODate(a) == ToISODate(b)
}

// StatementDate returns the statement reference date nearest to now: after
// the 25th, the last day of the current month; otherwise the last day of
// the previous month. Midnight, no time component.
func StatementDate(now time.Time) time.Time {
	year, month, day := now.Date()
	if day > 25 {
		// Last day of the current month.
		return time.Date(year, month+1, 1, 0, 0, 0, 0, now.Location()).AddDate(0, 0, -1)
	}
	// Last day of the previous month.
	return time.Date(year, month, 1, 0, 0, 0, 0, now.Location()).AddDate(0, 0, -1)
}
