package search

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
)

// First runs one worker per stream and returns the first accepted candidate.
// Attempts are numbered across all workers and charged to one budget. The
// first success or error cancels the remaining workers. With a single stream
// First is equivalent to Run.
func First[T any](ctx context.Context, op string, budget Budget, streams []io.Reader, step Step[T]) (T, error) {
	var zero T
	if len(streams) == 0 {
		return zero, &ExhaustedError{Operation: op, Attempts: 0}
	}
	if len(streams) == 1 {
		return Run(ctx, op, budget, streams[0], step)
	}

	workCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	type result struct {
		v   T
		err error
	}

	var attempts atomic.Int64
	results := make(chan result, len(streams))
	var wg sync.WaitGroup

	for _, stream := range streams {
		wg.Add(1)
		go func(r io.Reader) {
			defer wg.Done()
			for workCtx.Err() == nil {
				attempt := int(attempts.Add(1))
				if !budget.Allows(attempt) {
					results <- result{err: &ExhaustedError{Operation: op, Attempts: budget.MaxAttempts}}
					return
				}
				v, ok, err := step(r, attempt)
				if err != nil {
					results <- result{err: err}
					return
				}
				if ok {
					results <- result{v: v}
					return
				}
			}
		}(stream)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var firstErr error
	for res := range results {
		if res.err == nil {
			return res.v, nil
		}
		if firstErr == nil {
			firstErr = res.err
			cancel()
		}
	}

	if firstErr != nil {
		return zero, firstErr
	}
	return zero, ctx.Err()
}
