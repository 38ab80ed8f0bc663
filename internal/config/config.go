// Package config provides configuration for the perft tool.
package config

import (
	"io"
	"os"

	"github.com/DominicSimpson/bigbaddommind-vs-kasparov/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Perft *PerftConfig

	Verbosity int // 0=results only, 1=summary, 2=per-iteration timings

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Perft:      NewPerftConfig(),
		Verbosity:  1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer results are printed to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLogFile sets the writer diagnostics are written to.
func (c *Config) SetLogFile(w io.Writer) {
	c.LogFile = w
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity %d is negative", c.Verbosity)
	}
	if c.OutputFile == nil || c.LogFile == nil {
		return errors.Wrap(errors.ErrInvalidConfig, "output streams must be set")
	}
	return c.Perft.Validate()
}
