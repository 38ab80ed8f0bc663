// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/DominicSimpson/bigbaddommind-vs-kasparov/internal/config"
)

var (
	// Perft options
	depth    = flag.Int("depth", 4, "Perft depth (1-10)")
	divide   = flag.Bool("divide", false, "Print per-move node counts at root")
	repeat   = flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	workers  = flag.Int("workers", 0, "Number of worker goroutines (0 = auto-detect based on CPU cores)")
	hashSize = flag.Int("hash", 0, "Transposition table entries (0 = no table)")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbosity = flag.Int("V", 1, "Verbosity: 0=results only, 1=summary, 2=per-run timings")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (same as -V 0)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyPerftFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
}

// applyPerftFlags applies depth, divide, repeat, hash and worker settings.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *depth
	cfg.Perft.Divide = *divide
	cfg.Perft.Repeat = *repeat
	cfg.Perft.HashEntries = *hashSize

	cfg.Perft.Workers = *workers
	if *workers == 0 {
		cfg.Perft.Workers = runtime.NumCPU()
	}
}
