// marble-chess analyses chess positions, plays engine-versus-engine games
// and plays interactively against the engine.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/lgbarn/marblechess-go/internal/config"
	"github.com/lgbarn/marblechess-go/internal/logging"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("marble-chess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg.InputFiles = flag.Args()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set up logging and output files
	closeLog := setupLogFile(cfg)
	defer closeLog()
	closeOutput := setupOutputFile(cfg)
	defer closeOutput()

	logger := logging.New(cfg.LogFile, cfg.Verbosity)

	if err := run(cfg, logger, os.Stdin); err != nil {
		logger.Error().Err(err).Msg("run failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeOutput()
		closeLog()
		os.Exit(1)
	}
}

// run dispatches on cfg.Mode. stdin feeds play mode, and analyse mode
// when no input files are given.
func run(cfg *config.Config, logger zerolog.Logger, stdin io.Reader) error {
	switch cfg.Mode {
	case config.SelfPlay:
		return runSelfPlay(cfg, logger)
	case config.Play:
		return runPlay(cfg, logger, stdin, cfg.OutputFile)
	default:
		return runAnalyse(newProcessingContext(cfg, logger), stdin)
	}
}

// setupLogFile configures the log file based on command-line flags.
// The returned function closes it.
func setupLogFile(cfg *config.Config) func() {
	if *logFile == "" {
		return func() {}
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.SetLog(file)
	return func() { file.Close() } //nolint:errcheck,gosec // G104: cleanup on exit
}

// setupOutputFile configures the output file based on command-line flags.
// The returned function closes it.
func setupOutputFile(cfg *config.Config) func() {
	if *outputFile == "" {
		return func() {}
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
	return func() { file.Close() } //nolint:errcheck,gosec // G104: cleanup on exit
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: marble-chess [options] [position-files...]\n\n")
	fmt.Fprintf(os.Stderr, "A minimax chess engine with alpha-beta pruning.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nModes (-mode):\n")
	fmt.Fprintf(os.Stderr, "  analyse   Search each input position and print the best move (default)\n")
	fmt.Fprintf(os.Stderr, "  selfplay  Engine plays both sides from -fen or the start position\n")
	fmt.Fprintf(os.Stderr, "  play      Play against the engine, moves read from stdin\n")
	fmt.Fprintf(os.Stderr, "\nPosition lines (analyse mode):\n")
	fmt.Fprintf(os.Stderr, "  startpos [moves e2e4 e7e5 ...]\n")
	fmt.Fprintf(os.Stderr, "  fen <FEN> [moves ...]\n")
	fmt.Fprintf(os.Stderr, "  Blank lines and lines starting with # are ignored.\n")
}
