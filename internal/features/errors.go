package features

import "fmt"

// InsufficientDataError indicates a window too sparse to compute a feature
// or profile reliably. The caller recovers by collecting more data; the
// engine never papers over it with a guess.
type InsufficientDataError struct {
	Reason string
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data: %s", e.Reason)
}

// InvalidInputError indicates an out-of-range field, rejected before any
// computation runs.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}
