package testutil

import (
	"context"
	"sync"

	dErrors "retireplan/pkg/domain-errors"
)

// ConcurrentResult tracks outcomes of concurrent test operations.
type ConcurrentResult struct {
	Successes int
	// Failures counts errors by domain code; errors without one count as internal.
	Failures map[dErrors.Code]int
	Errors   []error
}

// Total returns the total number of operations executed.
func (r *ConcurrentResult) Total() int {
	total := r.Successes
	for _, n := range r.Failures {
		total += n
	}
	return total
}

// RunConcurrent executes fn in parallel goroutines and collects results.
// All goroutines are released together to maximise overlap.
func RunConcurrent(goroutines int, fn func(idx int) error) *ConcurrentResult {
	var wg sync.WaitGroup
	var mu sync.Mutex
	start := make(chan struct{})
	res := &ConcurrentResult{Failures: make(map[dErrors.Code]int)}

	for i := range goroutines {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			<-start
			err := fn(idx)

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				res.Successes++
				return
			}
			res.Failures[dErrors.CodeOf(err)]++
			res.Errors = append(res.Errors, err)
		}(i)
	}

	close(start)
	wg.Wait()
	return res
}

// RunConcurrentCtx executes fn in parallel goroutines with context support.
func RunConcurrentCtx(ctx context.Context, goroutines int, fn func(ctx context.Context, idx int) error) *ConcurrentResult {
	return RunConcurrent(goroutines, func(idx int) error {
		return fn(ctx, idx)
	})
}
