package worker

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/marblechess-go/internal/chess"
	"github.com/lgbarn/marblechess-go/internal/engine"
	"github.com/lgbarn/marblechess-go/internal/search"
	"github.com/lgbarn/marblechess-go/internal/testutil"
)

// noopProcessFunc returns a basic process function that does nothing.
func noopProcessFunc() ProcessFunc {
	return func(_ int, item WorkItem) ProcessResult {
		return ProcessResult{Index: item.Index}
	}
}

// countingProcessFunc returns a process function that increments a counter.
func countingProcessFunc(counter *int32) ProcessFunc {
	return func(_ int, item WorkItem) ProcessResult {
		atomic.AddInt32(counter, 1)
		return ProcessResult{Index: item.Index, Text: item.Text}
	}
}

// collectResults drains the result channel and returns the count.
func collectResults(pool *Pool) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

func startItem(i int) WorkItem {
	return WorkItem{Index: i, State: engine.InitialState(), Text: "startpos"}
}

// TestPoolBasic tests basic worker pool functionality.
func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPool(4, 10, countingProcessFunc(&processed))
	pool.Start()

	const numItems = 10
	for i := 0; i < numItems; i++ {
		pool.Submit(startItem(i))
	}

	go pool.Close()

	resultCount := collectResults(pool)
	if resultCount != numItems {
		t.Errorf("results = %d; want %d", resultCount, numItems)
	}
	if got := atomic.LoadInt32(&processed); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

// TestPoolSingleWorker tests pool with single worker.
func TestPoolSingleWorker(t *testing.T) {
	pool := NewPool(1, 5, noopProcessFunc())
	pool.Start()

	const numItems = 5
	for i := 0; i < numItems; i++ {
		pool.Submit(startItem(i))
	}

	go pool.Close()

	if got := collectResults(pool); got != numItems {
		t.Errorf("results = %d; want %d", got, numItems)
	}
}

// TestPoolEarlyStop tests early termination with Stop().
func TestPoolEarlyStop(t *testing.T) {
	var processedCount int32

	slowProcessFunc := func(_ int, item WorkItem) ProcessResult {
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&processedCount, 1)
		return ProcessResult{Index: item.Index}
	}

	pool := NewPool(2, 100, slowProcessFunc)
	pool.Start()

	const numItems = 50
	for i := 0; i < numItems; i++ {
		pool.Submit(startItem(i))
	}

	time.Sleep(30 * time.Millisecond)
	pool.Stop()

	go pool.Close()
	collectResults(pool)

	// Should have processed fewer than total due to early stop
	if processed := atomic.LoadInt32(&processedCount); processed >= numItems {
		t.Logf("early stop may not have prevented all processing: %d processed", processed)
	}
}

// TestPoolIsStopped tests the IsStopped method.
func TestPoolIsStopped(t *testing.T) {
	pool := NewPool(2, 10, noopProcessFunc())
	pool.Start()

	if pool.IsStopped() {
		t.Error("pool should not be stopped initially")
	}

	pool.Stop()

	if !pool.IsStopped() {
		t.Error("pool should be stopped after Stop()")
	}

	pool.Close()
}

// TestPoolNumWorkers tests NumWorkers method.
func TestPoolNumWorkers(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"valid workers", 4, 4},
		{"minimum workers", 1, 1},
		{"zero defaults to 1", 0, 1},
		{"negative defaults to 1", -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(tt.input, 10, noopProcessFunc())
			if got := pool.NumWorkers(); got != tt.expected {
				t.Errorf("NumWorkers() = %d; want %d", got, tt.expected)
			}
		})
	}
}

// TestPoolWorkerIDs checks every worker id lies in range.
func TestPoolWorkerIDs(t *testing.T) {
	const workers = 3
	var bad int32
	pool := NewPool(workers, 4, func(id int, item WorkItem) ProcessResult {
		if id < 0 || id >= workers {
			atomic.AddInt32(&bad, 1)
		}
		return ProcessResult{Index: item.Index}
	})

	items := make([]WorkItem, 20)
	for i := range items {
		items[i] = startItem(i)
	}
	testutil.AssertNoError(t, pool.Stream(items, func(ProcessResult) error { return nil }))

	if bad != 0 {
		t.Errorf("%d calls had an out-of-range worker id", bad)
	}
}

// streamAll runs items through pool and returns every result.
func streamAll(t *testing.T, pool *Pool, items []WorkItem) []ProcessResult {
	t.Helper()
	var out []ProcessResult
	err := pool.Stream(items, func(r ProcessResult) error {
		out = append(out, r)
		return nil
	})
	testutil.AssertNoError(t, err)
	return out
}

// TestPoolStream_Ordered tests that Stream emits results in submission order.
func TestPoolStream_Ordered(t *testing.T) {
	variableDelayFunc := func(_ int, item WorkItem) ProcessResult {
		if item.Index%2 == 0 {
			time.Sleep(10 * time.Millisecond)
		}
		return ProcessResult{Index: item.Index}
	}

	pool := NewPool(4, 20, variableDelayFunc)

	const numItems = 10
	items := make([]WorkItem, numItems)
	for i := range items {
		items[i] = startItem(i)
	}

	results := streamAll(t, pool, items)
	if len(results) != numItems {
		t.Fatalf("received %d results; want %d", len(results), numItems)
	}
	for i, r := range results {
		if r.Index != i {
			t.Errorf("results[%d].Index = %d", i, r.Index)
		}
	}
}

// TestPoolStream_SparseIndexes keeps item order when indexes are not dense.
func TestPoolStream_SparseIndexes(t *testing.T) {
	items := []WorkItem{startItem(7), startItem(3), startItem(42)}
	results := streamAll(t, NewPool(3, 1, noopProcessFunc()), items)

	got := make([]int, len(results))
	for i, r := range results {
		got[i] = r.Index
	}
	testutil.AssertEqual(t, got, []int{7, 3, 42})
}

// TestPoolStream_EmitErrorStops tests that an emit error stops the pool.
func TestPoolStream_EmitErrorStops(t *testing.T) {
	var processed int32
	pool := NewPool(2, 4, countingProcessFunc(&processed))

	const numItems = 200
	items := make([]WorkItem, numItems)
	for i := range items {
		items[i] = startItem(i)
	}

	errFull := errors.New("output full")
	var emitted []int
	err := pool.Stream(items, func(r ProcessResult) error {
		emitted = append(emitted, r.Index)
		if r.Index == 1 {
			return errFull
		}
		return nil
	})

	if !errors.Is(err, errFull) {
		t.Fatalf("Stream() error = %v; want %v", err, errFull)
	}
	testutil.AssertEqual(t, emitted, []int{0, 1})
	testutil.AssertTrue(t, pool.IsStopped(), "pool should be stopped after an emit error")
	if got := atomic.LoadInt32(&processed); got >= numItems {
		t.Logf("stop did not skip any items: %d processed", got)
	}
}

// TestPoolStream_Empty tests that Stream with no items returns at once.
func TestPoolStream_Empty(t *testing.T) {
	calls := 0
	err := NewPool(2, 1, noopProcessFunc()).Stream(nil, func(ProcessResult) error {
		calls++
		return nil
	})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, calls, 0)
}

// TestPoolStream_Search runs real searches with one Searcher per worker.
func TestPoolStream_Search(t *testing.T) {
	const workers = 2
	searchers := make([]*search.Searcher, workers)
	for i := range searchers {
		searchers[i] = search.NewSearcher()
	}

	process := func(id int, item WorkItem) ProcessResult {
		s := searchers[id]
		res := s.Search(item.State, 2)
		return ProcessResult{Index: item.Index, State: item.State, Result: res, Stats: s.Stats()}
	}

	fens := []string{
		"4k3/8/8/3q4/4P3/8/8/4K3 w - - 0 1",
		"4k3/8/4p3/3Q4/8/8/8/4K3 b - - 0 1",
		"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
	}
	items := make([]WorkItem, len(fens))
	for i, fen := range fens {
		items[i] = WorkItem{Index: i, Text: fen, State: engine.MustStateFromFEN(fen)}
	}

	results := streamAll(t, NewPool(workers, 4, process), items)

	want := []string{"e4d5", "e6d5", ""}
	for i, r := range results {
		got := ""
		if r.Result.Found {
			got = r.Result.Move.Pair().String()
		}
		if got != want[i] {
			t.Errorf("%s: best move = %q, want %q", fens[i], got, want[i])
		}
		if r.Stats.Nodes == 0 {
			t.Errorf("%s: no nodes searched", fens[i])
		}
	}
	if results[2].State.Status != chess.Checkmate {
		t.Errorf("status = %v, want checkmate", results[2].State.Status)
	}
}

// TestPoolNoRace is designed to be run with -race flag.
func TestPoolNoRace(t *testing.T) {
	var counter int32
	pool := NewPool(8, 50, countingProcessFunc(&counter))
	pool.Start()

	const numItems = 100
	go func() {
		for i := 0; i < numItems; i++ {
			pool.Submit(startItem(i))
		}
		pool.Close()
	}()

	collectResults(pool)

	if got := atomic.LoadInt32(&counter); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

// TestNewPoolWithOptions tests the functional options constructor.
func TestNewPoolWithOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		pool := NewPoolWithOptions(noopProcessFunc())
		if pool.NumWorkers() != 1 {
			t.Errorf("default workers = %d; want 1", pool.NumWorkers())
		}
		if pool.bufferSize != 10 {
			t.Errorf("default bufferSize = %d; want 10", pool.bufferSize)
		}
	})

	t.Run("with multiple options", func(t *testing.T) {
		pool := NewPoolWithOptions(noopProcessFunc(), WithWorkers(8), WithBufferSize(100))
		if pool.NumWorkers() != 8 {
			t.Errorf("NumWorkers() = %d; want 8", pool.NumWorkers())
		}
		if pool.bufferSize != 100 {
			t.Errorf("bufferSize = %d; want 100", pool.bufferSize)
		}
	})

	t.Run("invalid values ignored", func(t *testing.T) {
		pool := NewPoolWithOptions(noopProcessFunc(), WithWorkers(0), WithBufferSize(-5))
		if pool.NumWorkers() != 1 {
			t.Errorf("NumWorkers() = %d; want 1 (default)", pool.NumWorkers())
		}
		if pool.bufferSize != 10 {
			t.Errorf("bufferSize = %d; want 10 (default)", pool.bufferSize)
		}
	})
}
