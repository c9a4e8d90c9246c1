// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/marblechess-go/internal/config"
	"github.com/lgbarn/marblechess-go/internal/errors"
)

var (
	// Run mode
	mode = flag.String("mode", "analyse", "Run mode: analyse, selfplay or play")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	pgnOutput    = flag.Bool("pgn", false, "Output selfplay games in PGN format")
	showBoard    = flag.Bool("board", false, "Print the board after each position or game")
	showStats    = flag.Bool("stats", false, "Include node counts and timings in results")

	// Search options
	depth      = flag.Int("depth", config.DefaultDepth, "Search depth in plies")
	noOrdering = flag.Bool("noorder", false, "Search moves in generation order instead of captures first")

	// Analysis cache
	noCache   = flag.Bool("nocache", false, "Search repeated positions again instead of reusing results")
	cacheSize = flag.Int("cache-capacity", 0, "Maximum analysis cache entries (0 = unlimited)")

	// Game options
	startFEN = flag.String("fen", "", "Starting position for selfplay and play")
	maxPly   = flag.Int("maxply", config.DefaultMaxPly, "Maximum plies in a selfplay game (0 = no limit)")
	colour   = flag.String("colour", "white", "Side played by the human in play mode")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	verbosity = flag.Int("v", 0, "Log verbosity: 0=silent, 1=progress, 2=debug")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	m, ok := config.ParseMode(*mode)
	if !ok {
		return fmt.Errorf("%w: unknown mode %q", errors.ErrInvalidConfig, *mode)
	}
	cfg.Mode = m
	cfg.Verbosity = *verbosity
	cfg.Workers = *workers

	applySearchFlags(cfg)
	applyCacheFlags(cfg)
	applyGameFlags(cfg)
	return applyOutputFlags(cfg)
}

// applySearchFlags configures the search.
func applySearchFlags(cfg *config.Config) {
	cfg.Search.Depth = *depth
	cfg.Search.MoveOrdering = !*noOrdering
}

// applyCacheFlags configures the analysis cache.
func applyCacheFlags(cfg *config.Config) {
	cfg.Cache.Enabled = !*noCache
	cfg.Cache.MaxEntries = *cacheSize
}

// applyGameFlags configures selfplay and play.
func applyGameFlags(cfg *config.Config) {
	cfg.StartFEN = *startFEN
	cfg.MaxPly = *maxPly
	cfg.HumanColour = *colour
}

// applyOutputFlags configures the output format.
func applyOutputFlags(cfg *config.Config) error {
	if *jsonOutput && *pgnOutput {
		return fmt.Errorf("%w: -J and -pgn are mutually exclusive", errors.ErrInvalidConfig)
	}
	switch {
	case *jsonOutput:
		cfg.Output.Format = config.JSON
	case *pgnOutput:
		cfg.Output.Format = config.PGN
	default:
		cfg.Output.Format = config.Text
	}
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.IncludeStats = *showStats
	return nil
}
