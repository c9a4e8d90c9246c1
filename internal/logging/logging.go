// Package logging builds the structured loggers used across marblechess.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// LevelFor maps a -v verbosity count to a log level: 0 is silent,
// 1 logs progress and 2 or more adds per-search detail.
func LevelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.Disabled
	case verbosity == 1:
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}

// New returns a JSON-lines logger writing to w.
func New(w io.Writer, verbosity int) zerolog.Logger {
	if w == nil {
		return zerolog.Nop()
	}
	return zerolog.New(w).Level(LevelFor(verbosity)).With().Timestamp().Logger()
}

// NewConsole returns a human-readable logger for interactive use.
func NewConsole(w io.Writer, verbosity int) zerolog.Logger {
	if w == nil {
		return zerolog.Nop()
	}
	console := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.Kitchen}
	return zerolog.New(console).Level(LevelFor(verbosity)).With().Timestamp().Logger()
}
