// processor.go - Position parsing and parallel analysis
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lgbarn/marblechess-go/internal/chess"
	"github.com/lgbarn/marblechess-go/internal/config"
	"github.com/lgbarn/marblechess-go/internal/engine"
	"github.com/lgbarn/marblechess-go/internal/errors"
	"github.com/lgbarn/marblechess-go/internal/hashing"
	"github.com/lgbarn/marblechess-go/internal/output"
	"github.com/lgbarn/marblechess-go/internal/search"
	"github.com/lgbarn/marblechess-go/internal/worker"
)

// fenFields is the number of space-separated fields in a full FEN.
const fenFields = 6

// ProcessingContext holds the shared state of one analyse run.
type ProcessingContext struct {
	cfg       *config.Config
	logger    zerolog.Logger
	cache     *hashing.ThreadSafeCache // nil when disabled
	searchers []*search.Searcher       // one per worker
}

// newProcessingContext sizes the worker pool and creates one Searcher per worker.
func newProcessingContext(cfg *config.Config, logger zerolog.Logger) *ProcessingContext {
	numWorkers := cfg.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	ctx := &ProcessingContext{
		cfg:       cfg,
		logger:    logger,
		searchers: make([]*search.Searcher, numWorkers),
	}
	for i := range ctx.searchers {
		ctx.searchers[i] = search.NewSearcher(
			search.WithLogger(logger.With().Int("worker", i).Logger()),
			search.WithMoveOrdering(cfg.Search.MoveOrdering),
		)
	}
	if cfg.Cache.Enabled {
		ctx.cache = hashing.NewThreadSafeCache(cfg.Cache.MaxEntries)
	}
	return ctx
}

// parsePositionLine parses "startpos [moves ...]" or "fen <FEN> [moves ...]".
// A leading "position" keyword is accepted.
func parsePositionLine(text string) (chess.GameState, error) {
	fields := strings.Fields(text)
	if len(fields) > 0 && fields[0] == "position" {
		fields = fields[1:]
	}
	if len(fields) == 0 {
		return chess.GameState{}, &errors.ParseError{Err: errors.ErrParseFailure, Expected: "startpos or fen", Got: "end of line"}
	}

	var state chess.GameState
	var rest []string
	switch fields[0] {
	case "startpos":
		state = engine.InitialState()
		rest = fields[1:]
	case "fen":
		n := len(fields) - 1
		for i, f := range fields[1:] {
			if f == "moves" {
				n = i
				break
			}
		}
		if n == 0 {
			return chess.GameState{}, &errors.ParseError{Err: errors.ErrParseFailure, Expected: "FEN", Got: "nothing"}
		}
		if n > fenFields {
			return chess.GameState{}, &errors.ParseError{Err: errors.ErrInvalidFEN, Expected: "moves", Got: fields[1+fenFields]}
		}
		var err error
		state, err = engine.StateFromFEN(strings.Join(fields[1:1+n], " "))
		if err != nil {
			return chess.GameState{}, err
		}
		rest = fields[1+n:]
	default:
		return chess.GameState{}, &errors.ParseError{Err: errors.ErrParseFailure, Expected: "startpos or fen", Got: fields[0]}
	}

	if len(rest) == 0 {
		return state, nil
	}
	if rest[0] != "moves" {
		return chess.GameState{}, &errors.ParseError{Err: errors.ErrParseFailure, Expected: "moves", Got: rest[0]}
	}
	return playMoveList(state, rest[1:])
}

// playMoveList plays coordinate moves from state, stopping at the first
// malformed or illegal one.
func playMoveList(state chess.GameState, moves []string) (chess.GameState, error) {
	for _, text := range moves {
		ply := state.Ply() + 1
		mt, err := chess.ParseMoveText(text)
		if err != nil {
			return chess.GameState{}, &errors.GameError{Err: errors.ErrInvalidMoveText, Ply: ply, Move: text, FEN: engine.StateToFEN(state)}
		}
		if state.IsOver() {
			return chess.GameState{}, &errors.GameError{Err: errors.ErrGameOver, Ply: ply, Move: text, FEN: engine.StateToFEN(state)}
		}
		var next chess.GameState
		var ok bool
		if mt.Promotion == chess.None {
			next, ok = engine.TryMove(state, mt.From, mt.To)
		} else {
			next, ok = engine.TryMove(state, mt.From, mt.To, mt.Promotion)
		}
		if !ok {
			return chess.GameState{}, &errors.GameError{Err: errors.ErrIllegalMove, Ply: ply, Move: text, FEN: engine.StateToFEN(state)}
		}
		state = next
	}
	return state, nil
}

// readPositions turns every non-blank, non-comment line of r into a work
// item. Lines that fail to parse carry their error in the item.
func readPositions(r io.Reader, name string, firstIndex int) ([]worker.WorkItem, error) {
	var items []worker.WorkItem
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		item := worker.WorkItem{Index: firstIndex + len(items), Line: lineNum, Text: text}
		state, err := parsePositionLine(text)
		if err != nil {
			item.Err = annotateError(err, name, lineNum)
		} else {
			item.State = state
		}
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		return items, fmt.Errorf("reading %s: %w", name, err)
	}
	return items, nil
}

// annotateError attaches the file and line to a parse or game error.
func annotateError(err error, name string, line int) error {
	switch e := err.(type) {
	case *errors.ParseError:
		e.File, e.Line = name, line
		return e
	case *errors.GameError:
		e.File, e.Line = name, line
		return e
	}
	return &errors.ParseError{Err: err, File: name, Line: line}
}

// processPosition searches one position on the calling worker's Searcher,
// consulting the cache first.
func processPosition(ctx *ProcessingContext, workerID int, item worker.WorkItem) worker.ProcessResult {
	result := worker.ProcessResult{
		Index: item.Index,
		Line:  item.Line,
		Text:  item.Text,
		State: item.State,
		Error: item.Err,
	}
	if item.Err != nil {
		return result
	}

	depth := ctx.cfg.Search.Depth
	if ctx.cache != nil {
		if e, ok := ctx.cache.Lookup(&item.State.Board, depth); ok {
			result.Result = e.Result
			result.Stats = e.Stats
			result.Cached = true
			return result
		}
	}

	s := ctx.searchers[workerID]
	result.Result = s.Search(item.State, depth)
	result.Stats = s.Stats()
	if ctx.cache != nil {
		ctx.cache.Store(&item.State.Board, depth, result.Result, result.Stats)
	}
	return result
}

// runAnalyse reads positions from the configured files, or stdin when none
// are given, searches them on the worker pool and writes the results in
// input order.
func runAnalyse(ctx *ProcessingContext, stdin io.Reader) error {
	cfg := ctx.cfg

	var items []worker.WorkItem
	if len(cfg.InputFiles) == 0 {
		read, err := readPositions(stdin, "stdin", 0)
		if err != nil {
			return err
		}
		items = read
	}
	for _, filename := range cfg.InputFiles {
		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			return fmt.Errorf("opening %s: %w", filename, err)
		}
		read, err := readPositions(file, filename, len(items))
		file.Close() //nolint:errcheck,gosec // G104: read-only file
		if err != nil {
			return err
		}
		items = append(items, read...)
	}

	bufferSize := len(items)
	if bufferSize > 100 {
		bufferSize = 100
	}
	pool := worker.NewPool(len(ctx.searchers), bufferSize, func(id int, item worker.WorkItem) worker.ProcessResult {
		return processPosition(ctx, id, item)
	})

	w, err := output.NewWriter(cfg.OutputFile, cfg)
	if err != nil {
		return err
	}
	written, failed, cached := 0, 0, 0
	err = pool.Stream(items, func(r worker.ProcessResult) error {
		if r.Error != nil {
			failed++
			ctx.logger.Info().Err(r.Error).Int("line", r.Line).Msg("skipping position")
		}
		if r.Cached {
			cached++
		}
		err := w.WriteAnalysis(&output.Analysis{
			Index:  r.Index,
			Line:   r.Line,
			Input:  r.Text,
			State:  r.State,
			Depth:  cfg.Search.Depth,
			Result: r.Result,
			Stats:  r.Stats,
			Cached: r.Cached,
			Err:    r.Error,
		})
		if err == nil {
			written++
		}
		return err
	})
	if err != nil {
		ctx.logger.Error().Err(err).Int("written", written).Int("positions", len(items)).Msg("analysis aborted")
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	event := ctx.logger.Info().
		Int("positions", written).
		Int("failed", failed).
		Int("cached", cached).
		Int("workers", pool.NumWorkers())
	if ctx.cache != nil {
		event = event.Int("cache_hits", ctx.cache.Hits()).
			Int("cache_misses", ctx.cache.Misses()).
			Int("cache_entries", ctx.cache.Len()).
			Bool("cache_full", ctx.cache.IsFull())
	}
	event.Msg("analysis finished")
	return nil
}
