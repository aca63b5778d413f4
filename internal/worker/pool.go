// Package worker provides the bounded fan-out used for batch lookups and for
// bulk CLI input.
package worker

import (
	"context"
	"log/slog"
	"sync"
)

// Pool runs jobs across a fixed number of goroutines.
type Pool struct {
	size   int
	logger *slog.Logger
}

// NewPool creates a Pool with the given worker count. A size below 1 is
// treated as 1.
func NewPool(size int, logger *slog.Logger) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{
		size:   size,
		logger: logger,
	}
}

// Map runs fn for every index in [0, n) across the pool's workers and returns
// once all calls have finished. Results are communicated through fn's side
// effects; writing to disjoint slice indices is safe without locking.
//
// Every index is visited exactly once, even when ctx is already cancelled:
// callers rely on one terminal outcome per job, so cancellation is fn's
// responsibility (a cancelled request fails fast and settles as an error),
// not the pool's.
func (p *Pool) Map(ctx context.Context, n int, fn func(ctx context.Context, i int)) {
	if n <= 0 {
		return
	}

	indices := make(chan int)
	var wg sync.WaitGroup

	workers := p.size
	if workers > n {
		workers = n
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				fn(ctx, i)
			}
		}()
	}

	for i := 0; i < n; i++ {
		indices <- i
	}
	close(indices)

	wg.Wait()
}
