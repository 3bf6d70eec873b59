package search

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrExhausted is matched by *ExhaustedError.
var ErrExhausted = errors.New("search exhausted")

// Budget bounds the number of candidates a search may try.
type Budget struct {
	// MaxAttempts is the maximum number of calls to the step function.
	MaxAttempts int
}

// DefaultBudget returns the default budget for prime searches.
func DefaultBudget() Budget {
	return Budget{MaxAttempts: 100000}
}

// Allows reports whether attempt (1-based) is within the budget.
func (b Budget) Allows(attempt int) bool {
	return attempt <= b.MaxAttempts
}

// ExhaustedError is returned when a search spends its budget without
// accepting a candidate.
type ExhaustedError struct {
	Operation string
	Attempts  int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("%s: no result after %d attempts", e.Operation, e.Attempts)
}

// Is implements errors.Is for sentinel error matching.
func (e *ExhaustedError) Is(target error) bool {
	return target == ErrExhausted
}

// Step tries one candidate drawn from r. It reports ok when the candidate is
// accepted; a non-nil error aborts the search.
type Step[T any] func(r io.Reader, attempt int) (v T, ok bool, err error)

// Run calls step with r until it accepts a candidate, fails, ctx is done or
// the budget is spent.
func Run[T any](ctx context.Context, op string, budget Budget, r io.Reader, step Step[T]) (T, error) {
	var zero T
	for attempt := 1; budget.Allows(attempt); attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		v, ok, err := step(r, attempt)
		if err != nil {
			return zero, err
		}
		if ok {
			return v, nil
		}
	}
	return zero, &ExhaustedError{Operation: op, Attempts: budget.MaxAttempts}
}
