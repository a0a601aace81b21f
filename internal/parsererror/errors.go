// Package parsererror defines the typed errors surfaced by the engine.
// Heuristic misses (no items extracted, no fuzzy candidate, zero balance)
// are deliberately not errors; only repository submissions can fail.
package parsererror

import "fmt"

// ParseError represents an error while interpreting a user-supplied value.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s='%s': %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SubmissionError represents a failed repository call. The workflow state
// is left unchanged by the caller so the user can resubmit.
type SubmissionError struct {
	Op  string
	Err error
}

func (e *SubmissionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s failed: unknown error", e.Op)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// PartialCommitError reports that some of a batch of parallel transaction
// creations failed. Requests that already succeeded remotely are not rolled
// back; the caller must treat the commit as failed and refresh on next read.
type PartialCommitError struct {
	Failed int
	Total  int
	Errs   []error
}

func (e *PartialCommitError) Error() string {
	return fmt.Sprintf("%d of %d transaction creations failed", e.Failed, e.Total)
}

// Unwrap exposes the individual call failures for errors.Is/As inspection.
func (e *PartialCommitError) Unwrap() []error {
	return e.Errs
}
