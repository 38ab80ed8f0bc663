// Package worker provides a worker pool for counting perft subtrees in
// parallel.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/DominicSimpson/bigbaddommind-vs-kasparov/internal/chess"
)

// WorkItem is one root move whose subtree should be counted.
// Board must already have Move applied and is owned by the worker.
type WorkItem struct {
	Board *chess.Board
	Move  chess.Move
	Depth int // Remaining depth below Move
	Index int // Position of Move in the root move list
}

// ProcessResult is the node count for one WorkItem.
type ProcessResult struct {
	Index int
	Move  chess.Move
	Nodes uint64
	Error error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a ProcessFunc on a fixed number of goroutines.
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

// NewPool creates a worker pool. Default: 1 worker, buffer size of 64.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  64,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit queues a work item, blocking while the buffer is full.
// It returns ctx.Err() if ctx is done first.
func (p *Pool) Submit(ctx context.Context, item WorkItem) error {
	select {
	case p.workChan <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop makes workers skip queued items. Items already being processed
// still produce a result.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish,
// then closes the result channel. Results must be drained concurrently.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}
