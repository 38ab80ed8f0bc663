// Package perft counts move-tree leaf nodes to verify move generation.
//
// Counts are taken by playing every legal move with MakeMove and reverting it
// with UndoMove, so the executor is exercised along with the generator.
package perft

import (
	"context"
	"fmt"
	"sort"

	"github.com/DominicSimpson/bigbaddommind-vs-kasparov/internal/chess"
	"github.com/DominicSimpson/bigbaddommind-vs-kasparov/internal/engine"
	"github.com/DominicSimpson/bigbaddommind-vs-kasparov/internal/hashing"
	"github.com/DominicSimpson/bigbaddommind-vs-kasparov/internal/worker"
)

// Result is the leaf count below one root move.
type Result struct {
	Move  string // Coordinate form, e.g. "e2e4"
	Nodes uint64
}

// Cache stores leaf counts by position key and depth. A
// hashing.ThreadSafePerftTable satisfies it for parallel use.
type Cache interface {
	Lookup(hash uint64, depth int) (uint64, bool)
	Store(hash uint64, depth int, nodes uint64)
}

// Count returns the number of leaf nodes depth plies below the current
// position. Depth 0 counts the position itself. The board is restored
// before Count returns.
func Count(board *chess.Board, depth int) (uint64, error) {
	return CountCached(board, depth, nil)
}

// CountCached is Count with subtree counts memoised in cache. A nil cache
// disables memoisation.
func CountCached(board *chess.Board, depth int, cache Cache) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}

	moves := engine.LegalMoves(board)
	if depth == 1 {
		return uint64(len(moves)), nil
	}

	var hash uint64
	if cache != nil {
		hash = hashing.ZobristHash(board)
		if nodes, ok := cache.Lookup(hash, depth); ok {
			return nodes, nil
		}
	}

	var nodes uint64
	for _, m := range moves {
		if err := board.MakeMove(m); err != nil {
			return 0, fmt.Errorf("perft at depth %d: %w", depth, err)
		}
		n, err := CountCached(board, depth-1, cache)
		board.UndoMove()
		if err != nil {
			return 0, err
		}
		nodes += n
	}

	if cache != nil {
		cache.Store(hash, depth, nodes)
	}
	return nodes, nil
}

// Divide returns the leaf count below each legal root move, sorted by move.
func Divide(board *chess.Board, depth int) ([]Result, error) {
	return DivideCached(board, depth, nil)
}

// DivideCached is Divide with subtree counts memoised in cache.
func DivideCached(board *chess.Board, depth int, cache Cache) ([]Result, error) {
	if depth <= 0 {
		return nil, nil
	}

	moves := engine.LegalMoves(board)
	results := make([]Result, 0, len(moves))
	for _, m := range moves {
		if err := board.MakeMove(m); err != nil {
			return nil, fmt.Errorf("divide %s: %w", m, err)
		}
		n, err := CountCached(board, depth-1, cache)
		board.UndoMove()
		if err != nil {
			return nil, err
		}
		results = append(results, Result{Move: m.String(), Nodes: n})
	}
	sortResults(results)
	return results, nil
}

// ParallelDivide is Divide with root moves counted on a worker pool. Each
// root move is played on its own clone of board, so board itself is never
// modified. Cancelling ctx stops queued subtrees from starting.
func ParallelDivide(ctx context.Context, board *chess.Board, depth, workers int) ([]Result, error) {
	return ParallelDivideCached(ctx, board, depth, workers, nil)
}

// ParallelDivideCached is ParallelDivide with subtree counts memoised in
// cache, which must be safe for concurrent use.
func ParallelDivideCached(ctx context.Context, board *chess.Board, depth, workers int, cache Cache) ([]Result, error) {
	if depth <= 0 {
		return nil, nil
	}

	moves := engine.LegalMoves(board)
	pool := worker.NewPool(countItem(cache), worker.WithWorkers(workers), worker.WithBufferSize(len(moves)+1))
	pool.Start()

	stopWatch := make(chan struct{})
	defer close(stopWatch)
	go func() {
		select {
		case <-ctx.Done():
			pool.Stop()
		case <-stopWatch:
		}
	}()

	submitErr := make(chan error, 1)
	go func() {
		defer pool.Close()
		for i, m := range moves {
			clone := board.Clone()
			if err := clone.MakeMove(m); err != nil {
				submitErr <- fmt.Errorf("divide %s: %w", m, err)
				pool.Stop()
				return
			}
			item := worker.WorkItem{Board: clone, Move: m, Depth: depth - 1, Index: i}
			if err := pool.Submit(ctx, item); err != nil {
				submitErr <- err
				return
			}
		}
		submitErr <- nil
	}()

	results := make([]Result, len(moves))
	var firstErr error
	received := 0
	for r := range pool.Results() {
		if r.Error != nil && firstErr == nil {
			firstErr = r.Error
			pool.Stop()
		}
		results[r.Index] = Result{Move: r.Move.String(), Nodes: r.Nodes}
		received++
	}

	if err := <-submitErr; err != nil && firstErr == nil {
		firstErr = err
	}
	if firstErr == nil && ctx.Err() != nil {
		firstErr = ctx.Err()
	}
	if firstErr != nil {
		return nil, fmt.Errorf("parallel divide: %w", firstErr)
	}
	if received != len(moves) {
		return nil, fmt.Errorf("parallel divide: %d of %d subtrees counted", received, len(moves))
	}

	sortResults(results)
	return results, nil
}

// Total sums the node counts of results.
func Total(results []Result) uint64 {
	var total uint64
	for _, r := range results {
		total += r.Nodes
	}
	return total
}

func countItem(cache Cache) worker.ProcessFunc {
	return func(item worker.WorkItem) worker.ProcessResult {
		n, err := CountCached(item.Board, item.Depth, cache)
		return worker.ProcessResult{Index: item.Index, Move: item.Move, Nodes: n, Error: err}
	}
}

func sortResults(results []Result) {
	sort.Slice(results, func(i, j int) bool { return results[i].Move < results[j].Move })
}
