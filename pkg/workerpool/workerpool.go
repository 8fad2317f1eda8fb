// Package workerpool provides bounded concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Result holds the outcome of processing a single item.
type Result[R any] struct {
	Value R
	Err   error
}

// Collect invokes process once for every item with at most limit invocations in flight.
// A failing item does not stop its siblings; every outcome is returned keyed by item.
// Items not started because ctx was canceled carry the context error.
func Collect[T comparable, R any](
	ctx context.Context,
	limit int,
	items []T,
	process func(context.Context, T) (R, error),
) map[T]Result[R] {
	if limit <= 0 {
		limit = 1
	}

	sem := semaphore.NewWeighted(int64(limit))
	results := make(map[T]Result[R], len(items))
	var mu sync.Mutex
	record := func(item T, res Result[R]) {
		mu.Lock()
		defer mu.Unlock()
		results[item] = res
	}

	var wg sync.WaitGroup
	for _, item := range items {
		if err := sem.Acquire(ctx, 1); err != nil {
			record(item, Result[R]{Err: err})
			continue
		}
		wg.Add(1)
		go func(item T) {
			defer wg.Done()
			defer sem.Release(1)
			value, err := process(ctx, item)
			record(item, Result[R]{Value: value, Err: err})
		}(item)
	}
	wg.Wait()

	return results
}
