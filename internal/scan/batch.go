package scan

import (
	"context"

	"github.com/tbckr/webprobe/internal/worker"
)

// Batch dispatches all requests concurrently and waits for every one to reach
// a terminal state before returning. There is no short-circuit: one request's
// failure never cancels or delays a sibling beyond the shared wait.
//
// The returned slice always has exactly len(reqs) entries, index-aligned with
// the input. A fulfilled request yields its decoded document; a failed one —
// transport error, timeout, non-2xx, or malformed body — yields an
// ErrorDocument. An empty input settles immediately to an empty slice.
//
// In-flight requests are capped by WithConcurrency when set; otherwise every
// request gets its own goroutine. Each request is bounded individually by the
// configured timeout; there is no batch-wide deadline.
func (c *Client) Batch(ctx context.Context, reqs []Request) []Document {
	docs := make([]Document, len(reqs))
	if len(reqs) == 0 {
		return docs
	}

	size := c.concurrency
	if size <= 0 {
		size = len(reqs)
	}

	pool := worker.NewPool(size, c.logger)
	pool.Map(ctx, len(reqs), func(ctx context.Context, i int) {
		docs[i] = c.lookupSettled(ctx, reqs[i].Operation, reqs[i].Target)
	})

	return docs
}
