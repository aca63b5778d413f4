package worker_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbckr/webprobe/internal/testutil"
	"github.com/tbckr/webprobe/internal/worker"
)

func TestMap_AllIndicesVisitedOnce(t *testing.T) {
	const n = 20
	counts := make([]int32, n)

	pool := worker.NewPool(5, testutil.NopLogger())
	pool.Map(context.Background(), n, func(_ context.Context, i int) {
		atomic.AddInt32(&counts[i], 1)
	})

	for i, c := range counts {
		assert.Equal(t, int32(1), c, "index %d", i)
	}
}

func TestMap_OrderPreservedViaIndexWrites(t *testing.T) {
	const n = 10
	out := make([]string, n)

	pool := worker.NewPool(3, testutil.NopLogger())
	pool.Map(context.Background(), n, func(_ context.Context, i int) {
		out[i] = fmt.Sprintf("job-%d", i)
	})

	for i, v := range out {
		assert.Equal(t, fmt.Sprintf("job-%d", i), v)
	}
}

func TestMap_ZeroJobs(t *testing.T) {
	pool := worker.NewPool(4, testutil.NopLogger())
	done := make(chan struct{})
	go func() {
		pool.Map(context.Background(), 0, func(_ context.Context, _ int) {
			t.Error("fn must not be called for n == 0")
		})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Map did not return for n == 0")
	}
}

func TestMap_SizeBelowOne(t *testing.T) {
	var calls int32
	pool := worker.NewPool(0, testutil.NopLogger())
	pool.Map(context.Background(), 3, func(_ context.Context, _ int) {
		atomic.AddInt32(&calls, 1)
	})
	assert.Equal(t, int32(3), calls)
}

func TestMap_ConcurrentDispatch(t *testing.T) {
	// All five jobs block on a shared gate; the gate only opens once all five
	// have started. Completion therefore proves concurrent dispatch.
	const n = 5
	var started sync.WaitGroup
	started.Add(n)
	gate := make(chan struct{})

	go func() {
		started.Wait()
		close(gate)
	}()

	pool := worker.NewPool(n, testutil.NopLogger())
	done := make(chan struct{})
	go func() {
		pool.Map(context.Background(), n, func(_ context.Context, _ int) {
			started.Done()
			<-gate
		})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("jobs were not dispatched concurrently")
	}
}

func TestMap_CancelledContextStillVisitsAll(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls int32
	pool := worker.NewPool(2, testutil.NopLogger())
	pool.Map(ctx, 4, func(_ context.Context, _ int) {
		atomic.AddInt32(&calls, 1)
	})
	assert.Equal(t, int32(4), calls)
}

func TestMap_MoreWorkersThanJobs(t *testing.T) {
	out := make([]int, 2)
	pool := worker.NewPool(10, testutil.NopLogger())
	pool.Map(context.Background(), 2, func(_ context.Context, i int) {
		out[i] = i + 1
	})
	assert.Equal(t, []int{1, 2}, out)
}

func TestReadTargets(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"simple lines", "a\nb\nc\n", []string{"a", "b", "c"}},
		{"blank lines dropped", "a\n\n\nb\n", []string{"a", "b"}},
		{"whitespace trimmed", "  a  \n\tb\t\n", []string{"a", "b"}},
		{"whitespace-only dropped", "   \n\t\n", nil},
		{"comment lines dropped", "# targets\nexample.com\n  # indented comment\nexample.org\n", []string{"example.com", "example.org"}},
		{"empty input", "", nil},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := worker.ReadTargets(strings.NewReader(tc.input))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
