package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build validates and returns the built Config.
func (b *ConfigBuilder) Build() (*Config, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b.cfg, nil
}

// WithDepth sets the perft depth.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	return b
}

// WithWorkers sets the number of counting goroutines.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithDivide enables per-move output.
func (b *ConfigBuilder) WithDivide(enabled bool) *ConfigBuilder {
	b.cfg.Perft.Divide = enabled
	return b
}

// WithRepeat sets how many times the count is run.
func (b *ConfigBuilder) WithRepeat(n int) *ConfigBuilder {
	b.cfg.Perft.Repeat = n
	return b
}

// WithHashEntries sizes the transposition table; 0 disables it.
func (b *ConfigBuilder) WithHashEntries(n int) *ConfigBuilder {
	b.cfg.Perft.HashEntries = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the diagnostics writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
