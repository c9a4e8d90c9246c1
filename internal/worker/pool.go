// Package worker provides a worker pool for searching independent
// positions in parallel. A single search never spans workers.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/marblechess-go/internal/chess"
	"github.com/lgbarn/marblechess-go/internal/search"
)

// WorkItem represents a position to be searched.
type WorkItem struct {
	Index int    // Original index for ordering results
	Line  int    // Source line number (0 if not from a file)
	Text  string // Source text of the position
	State chess.GameState
	Err   error // Set when the source text could not be turned into a position
}

// ProcessResult represents the outcome of searching one position.
type ProcessResult struct {
	Index  int
	Line   int
	Text   string
	State  chess.GameState
	Result search.Result
	Stats  search.Stats
	Cached bool // Result was reused from an identical earlier position
	Error  error
}

// ProcessFunc is the function signature for processing a work item.
// worker identifies the calling goroutine (0 to NumWorkers-1) so that
// per-worker state such as a search.Searcher can be reused without locking.
type ProcessFunc func(worker int, item WorkItem) ProcessResult

// Pool manages a pool of workers for parallel position searches.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a new worker pool with the specified number of workers and buffer size.
func NewPool(numWorkers, bufferSize int, processFunc ProcessFunc) *Pool {
	return NewPoolWithOptions(processFunc, WithWorkers(numWorkers), WithBufferSize(bufferSize))
}

// NewPoolWithOptions creates a new worker pool using functional options.
// Default: 1 worker, buffer size of 10.
func NewPoolWithOptions(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(id, item)
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Stream starts the pool, submits items and calls emit with each result
// in the order of items. Results arriving early are held until their
// predecessors have been emitted. The first error from emit stops the
// pool: queued items are drained unprocessed, emit is not called again
// and the error is returned.
func (p *Pool) Stream(items []WorkItem, emit func(ProcessResult) error) error {
	p.Start()
	go func() {
		for _, item := range items {
			if p.IsStopped() {
				break
			}
			p.Submit(item)
		}
		p.Close()
	}()

	var emitErr error
	pending := make(map[int]ProcessResult)
	next := 0
	for r := range p.Results() {
		if emitErr != nil {
			continue
		}
		pending[r.Index] = r
		for next < len(items) {
			ready, ok := pending[items[next].Index]
			if !ok {
				break
			}
			delete(pending, items[next].Index)
			next++
			if err := emit(ready); err != nil {
				emitErr = err
				p.Stop()
				break
			}
		}
	}
	return emitErr
}
