// Package config provides configuration for marble-chess.
package config

import (
	"io"
	"os"
)

// Mode selects what the command-line harness does with its input.
type Mode int

const (
	Analyse  Mode = iota // Search each input position and report the best move
	SelfPlay             // Engine plays both sides
	Play                 // Interactive game against the engine
)

var modeNames = map[Mode]string{
	Analyse:  "analyse",
	SelfPlay: "selfplay",
	Play:     "play",
}

// String returns the flag spelling of the mode.
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "unknown"
}

// ParseMode parses a mode name as accepted by the -mode flag.
// "analyze" is accepted as a synonym for "analyse".
func ParseMode(name string) (Mode, bool) {
	if name == "analyze" {
		return Analyse, true
	}
	for m, n := range modeNames {
		if n == name {
			return m, true
		}
	}
	return Analyse, false
}

// Config holds all program configuration.
type Config struct {
	Mode      Mode
	Verbosity int // 0=silent, 1=progress, 2=per-position debug

	// Worker count for analyse mode (0 means one per CPU)
	Workers int

	// StartFEN replaces the standard starting position in selfplay and play.
	StartFEN string

	// MaxPly bounds selfplay games (0 = play until the game ends)
	MaxPly int

	// Human is the side the user plays in play mode ("white" or "black").
	HumanColour string

	// Grouped settings
	Search *SearchConfig
	Output *OutputConfig
	Cache  *CacheConfig

	// File handling
	InputFiles     []string
	OutputFilename string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Mode:        Analyse,
		Workers:     1,
		MaxPly:      DefaultMaxPly,
		HumanColour: "white",
		Search:      NewSearchConfig(),
		Output:      NewOutputConfig(),
		Cache:       NewCacheConfig(),
		OutputFile:  os.Stdout,
		LogFile:     os.Stderr,
	}
}

// DefaultMaxPly bounds selfplay when no -maxply is given.
const DefaultMaxPly = 200

// SetOutput sets the output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the log stream.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}
