package main

import (
	"context"
	"fmt"
	"time"

	"github.com/DominicSimpson/bigbaddommind-vs-kasparov/internal/chess"
	"github.com/DominicSimpson/bigbaddommind-vs-kasparov/internal/config"
	"github.com/DominicSimpson/bigbaddommind-vs-kasparov/internal/hashing"
	"github.com/DominicSimpson/bigbaddommind-vs-kasparov/internal/perft"
)

// run performs the configured perft on board and writes the results to
// cfg.OutputFile. Diagnostics go to cfg.LogFile.
func run(ctx context.Context, cfg *config.Config, board *chess.Board) error {
	if cfg.Perft.Divide {
		return runDivide(ctx, cfg, board)
	}
	return runCount(ctx, cfg, board)
}

// newTable returns the transposition table for this run, or nil when none
// is configured.
func newTable(cfg *config.Config) *hashing.ThreadSafePerftTable {
	if cfg.Perft.HashEntries <= 0 {
		return nil
	}
	return hashing.NewThreadSafePerftTable(cfg.Perft.HashEntries)
}

// divideOnce counts below each root move, in parallel when more than one
// worker is configured. A non-nil table is cleared first, so repeated runs
// do not answer from each other's entries.
func divideOnce(ctx context.Context, cfg *config.Config, board *chess.Board, table *hashing.ThreadSafePerftTable) ([]perft.Result, error) {
	var cache perft.Cache
	if table != nil {
		table.Reset()
		cache = table
	}

	var results []perft.Result
	var err error
	if cfg.Perft.Workers > 1 {
		results, err = perft.ParallelDivideCached(ctx, board, cfg.Perft.Depth, cfg.Perft.Workers, cache)
	} else {
		results, err = perft.DivideCached(board, cfg.Perft.Depth, cache)
	}

	if err == nil && table != nil && cfg.Verbosity > 1 {
		fmt.Fprintf(cfg.LogFile, "hash: %d entries, %d hits\n", table.Len(), table.Hits())
	}
	return results, err
}

func runDivide(ctx context.Context, cfg *config.Config, board *chess.Board) error {
	start := time.Now()
	results, err := divideOnce(ctx, cfg, board, newTable(cfg))
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	for _, r := range results {
		fmt.Fprintf(cfg.OutputFile, "%s: %d\n", r.Move, r.Nodes)
	}
	total := perft.Total(results)
	fmt.Fprintf(cfg.OutputFile, "Total: %d\n", total)

	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "%d root move(s), %d node(s) at depth %d in %s.\n",
			len(results), total, cfg.Perft.Depth, elapsed)
	}
	return nil
}

func runCount(ctx context.Context, cfg *config.Config, board *chess.Board) error {
	var totalNodes uint64
	table := newTable(cfg)
	start := time.Now()
	for i := 0; i < cfg.Perft.Repeat; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		runStart := time.Now()
		results, err := divideOnce(ctx, cfg, board, table)
		if err != nil {
			return err
		}
		nodes := perft.Total(results)
		totalNodes += nodes

		if cfg.Verbosity > 1 {
			fmt.Fprintf(cfg.LogFile, "run %d: %d node(s) in %s\n", i+1, nodes, time.Since(runStart))
		}
	}
	elapsed := time.Since(start)

	// Single line: Depth Nodes Time NPS
	fmt.Fprintf(cfg.OutputFile, "%d\t%d\t%s\t%.0f\n", cfg.Perft.Depth, totalNodes, elapsed, nodesPerSecond(totalNodes, elapsed))

	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "%d run(s) with %d worker(s).\n", cfg.Perft.Repeat, cfg.Perft.Workers)
	}
	return nil
}

func nodesPerSecond(nodes uint64, elapsed time.Duration) float64 {
	secs := elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(nodes) / secs
}
