package config

import (
	"runtime"

	"github.com/DominicSimpson/bigbaddommind-vs-kasparov/internal/errors"
)

// MaxDepth bounds the perft depth accepted from the command line.
const MaxDepth = 10

// PerftConfig holds settings for a perft run.
type PerftConfig struct {
	// Depth is the number of plies to count below the root
	Depth int

	// Workers is the number of goroutines counting root subtrees
	Workers int

	// Divide prints the node count below each root move
	Divide bool

	// Repeat runs the count several times for steadier timings
	Repeat int

	// HashEntries sizes the transposition table (0 = no table)
	HashEntries int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Depth:   4,
		Workers: runtime.NumCPU(),
		Repeat:  1,
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p == nil {
		return errors.Wrap(errors.ErrInvalidConfig, "missing perft settings")
	}
	if p.Depth < 1 || p.Depth > MaxDepth {
		return errors.Wrapf(errors.ErrInvalidConfig, "depth %d outside 1..%d", p.Depth, MaxDepth)
	}
	if p.Workers < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "workers (%d) must be at least 1", p.Workers)
	}
	if p.HashEntries < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "hash entries (%d) must not be negative", p.HashEntries)
	}
	if p.Repeat < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "repeat (%d) must be at least 1", p.Repeat)
	}
	return nil
}
