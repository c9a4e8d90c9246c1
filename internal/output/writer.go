// Package output writes analysis results and finished games as text,
// JSON or PGN.
package output

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/lgbarn/marblechess-go/internal/chess"
	"github.com/lgbarn/marblechess-go/internal/config"
	"github.com/lgbarn/marblechess-go/internal/errors"
	"github.com/lgbarn/marblechess-go/internal/search"
)

// Analysis is the outcome of searching one input position.
type Analysis struct {
	Index  int    // 0-based position in the input
	Line   int    // Source line (0 if unknown)
	Input  string // Source text of the position
	State  chess.GameState
	Depth  int
	Result search.Result
	Stats  search.Stats
	Cached bool
	Err    error
}

// Game is a finished (or abandoned) game.
type Game struct {
	ID    uuid.UUID
	Date  time.Time
	White string
	Black string
	Start chess.GameState
	Final chess.GameState
}

// NewGame creates a Game with a fresh ID dated now.
func NewGame(start, final chess.GameState) *Game {
	return &Game{
		ID:    uuid.New(),
		Date:  time.Now(),
		White: "marble-chess",
		Black: "marble-chess",
		Start: start,
		Final: final,
	}
}

// Moves returns the moves played after Start.
func (g *Game) Moves() []chess.Move {
	return g.Final.History[g.Start.Ply():]
}

// Writer is the interface for writing results to output.
// Different implementations handle different formats (text, JSON, PGN).
type Writer interface {
	// WriteAnalysis writes a single analysed position.
	WriteAnalysis(a *Analysis) error

	// WriteGame writes a single game.
	WriteGame(g *Game) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer for cfg.Output.Format writing to w.
func NewWriter(w io.Writer, cfg *config.Config) (Writer, error) {
	switch cfg.Output.Format {
	case config.Text:
		return NewTextWriter(w, cfg.Output), nil
	case config.JSON:
		return NewJSONWriter(w, cfg.Output), nil
	case config.PGN:
		return NewPGNWriter(w, cfg.Output), nil
	}
	return nil, fmt.Errorf("%w: unknown output format %d", errors.ErrInvalidConfig, cfg.Output.Format)
}
