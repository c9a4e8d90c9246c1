package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/lgbarn/marblechess-go/internal/chess"
	"github.com/lgbarn/marblechess-go/internal/config"
	"github.com/lgbarn/marblechess-go/internal/engine"
	"github.com/lgbarn/marblechess-go/internal/processing"
)

// LineWriter handles formatted output with line length control.
type LineWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewLineWriter creates a new line writer.
func NewLineWriter(w io.Writer, maxLineLength int) *LineWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &LineWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *LineWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *LineWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// TextWriter writes one human-readable record per analysis or game.
type TextWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.OutputConfig) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WriteAnalysis writes "<n>: bestmove <move> score <score>" plus optional
// statistics and board.
func (tw *TextWriter) WriteAnalysis(a *Analysis) error {
	label := strconv.Itoa(a.Index + 1)
	if a.Line > 0 {
		label = fmt.Sprintf("%d (line %d)", a.Index+1, a.Line)
	}
	if a.Err != nil {
		_, err := fmt.Fprintf(tw.w, "%s: error: %v\n", label, a.Err)
		return err
	}

	best := "(none)"
	if a.Result.Found {
		best = a.Result.Move.String()
	}
	text := fmt.Sprintf("%s: bestmove %s score %.2f depth %d", label, best, a.Result.Score, a.Depth)
	if a.State.IsOver() {
		text += " " + a.State.Status.String()
	}
	if tw.cfg.IncludeStats {
		text += fmt.Sprintf(" nodes %d cutoffs %d time %s", a.Stats.Nodes, a.Stats.Cutoffs, a.Stats.Elapsed)
	}
	if a.Cached {
		text += " (cached)"
	}
	if _, err := fmt.Fprintln(tw.w, text); err != nil {
		return err
	}
	if tw.cfg.ShowBoard {
		_, err := fmt.Fprintln(tw.w, a.State.Board.String())
		return err
	}
	return nil
}

// WriteGame writes a header line, the numbered coordinate moves and the
// final position.
func (tw *TextWriter) WriteGame(g *Game) error {
	fmt.Fprintf(tw.w, "game %s: %d plies, %s %s\n", g.ID, len(g.Moves()), g.Final.Status, g.Final.Winner.Result())

	lw := NewLineWriter(tw.w, 80)
	writeMoveList(lw, g.Start, g.Moves())
	lw.NewLine()

	if _, err := fmt.Fprintf(tw.w, "final: %s\n", engine.StateToFEN(g.Final)); err != nil {
		return err
	}
	if tw.cfg.IncludeStats {
		sum := processing.AnalyzeGame(g.Start, g.Final)
		fmt.Fprintf(tw.w, "summary: captures %d checks %d promotions %d castles %d repetition %t\n",
			sum.Captures, sum.Checks, sum.Promotions, sum.Castles, sum.HasRepetition)
	}
	if tw.cfg.ShowBoard {
		if _, err := fmt.Fprintln(tw.w, g.Final.Board.String()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(tw.w)
	return err
}

// writeMoveList writes moves as "1. e2e4 e7e5 2. g1f3", starting with
// "1..." when black moves first.
func writeMoveList(lw *LineWriter, start chess.GameState, moves []chess.Move) {
	number := start.Ply()/2 + 1
	white := start.Turn() == chess.White
	for i, m := range moves {
		if white {
			lw.Write(fmt.Sprintf("%d.", number))
		} else if i == 0 {
			lw.Write(fmt.Sprintf("%d...", number))
		}
		lw.Write(m.String())
		if !white {
			number++
		}
		white = !white
	}
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}
