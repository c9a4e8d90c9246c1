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

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithMode sets the run mode.
func (b *ConfigBuilder) WithMode(mode Mode) *ConfigBuilder {
	b.cfg.Mode = mode
	return b
}

// WithDepth sets the search depth.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Search.Depth = depth
	return b
}

// WithMoveOrdering enables or disables captures-first ordering.
func (b *ConfigBuilder) WithMoveOrdering(enabled bool) *ConfigBuilder {
	b.cfg.Search.MoveOrdering = enabled
	return b
}

// WithWorkers sets the analyse worker count.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	if enabled {
		b.cfg.Output.Format = JSON
	} else if b.cfg.Output.Format == JSON {
		b.cfg.Output.Format = Text
	}
	return b
}

// WithBoard enables board diagrams in text output.
func (b *ConfigBuilder) WithBoard(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = enabled
	return b
}

// WithStats includes search statistics in results.
func (b *ConfigBuilder) WithStats(enabled bool) *ConfigBuilder {
	b.cfg.Output.IncludeStats = enabled
	return b
}

// WithCache enables the analysis cache with an optional size cap.
func (b *ConfigBuilder) WithCache(enabled bool, maxEntries int) *ConfigBuilder {
	b.cfg.Cache.Enabled = enabled
	b.cfg.Cache.MaxEntries = maxEntries
	return b
}

// WithStartFEN sets the starting position for selfplay and play.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithMaxPly bounds selfplay games.
func (b *ConfigBuilder) WithMaxPly(n int) *ConfigBuilder {
	b.cfg.MaxPly = n
	return b
}

// WithHumanColour sets the side the user plays.
func (b *ConfigBuilder) WithHumanColour(colour string) *ConfigBuilder {
	b.cfg.HumanColour = colour
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
