// Package session runs a game between a human and the computer: it
// enforces turns, asks the search for replies and keeps undo/redo history.
package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lgbarn/marblechess-go/internal/chess"
	"github.com/lgbarn/marblechess-go/internal/engine"
	"github.com/lgbarn/marblechess-go/internal/errors"
	"github.com/lgbarn/marblechess-go/internal/search"
)

// DefaultDepth is the computer's search depth in plies.
const DefaultDepth = 3

// Session is one game against the computer. It is not safe for
// concurrent use.
type Session struct {
	ID        uuid.UUID
	Human     chess.Colour
	Depth     int
	CreatedAt time.Time

	start    chess.GameState
	state    chess.GameState
	redo     []chess.GameState
	searcher *search.Searcher
	logger   zerolog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithHuman sets the colour played by the human.
func WithHuman(colour chess.Colour) Option {
	return func(s *Session) {
		s.Human = colour
	}
}

// WithDepth sets the computer's search depth. Values below 1 are ignored.
func WithDepth(depth int) Option {
	return func(s *Session) {
		if depth >= 1 {
			s.Depth = depth
		}
	}
}

// WithStart starts the game, and every reset, from state instead of the
// standard position.
func WithStart(state chess.GameState) Option {
	return func(s *Session) {
		s.start = state
	}
}

// WithLogger sets the logger for accepted moves and computer replies.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// New creates a session with the human playing White at DefaultDepth.
func New(opts ...Option) *Session {
	s := &Session{
		ID:        uuid.New(),
		Human:     chess.White,
		Depth:     DefaultDepth,
		CreatedAt: time.Now(),
		start:     engine.InitialState(),
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.searcher = search.NewSearcher(search.WithLogger(s.logger))
	s.state = s.start
	return s
}

// State returns the current position.
func (s *Session) State() chess.GameState {
	return s.state
}

// FEN returns the current position in FEN.
func (s *Session) FEN() string {
	return engine.StateToFEN(s.state)
}

// ValidMoves returns the legal destinations from sq in the current position.
func (s *Session) ValidMoves(sq chess.Square) []chess.Square {
	return engine.ValidMoves(s.state, sq)
}

// IsHumanTurn reports whether the human is to move in a game still in play.
func (s *Session) IsHumanTurn() bool {
	return !s.state.IsOver() && s.state.Turn() == s.Human
}

// CanRedo reports whether Redo has anything to restore.
func (s *Session) CanRedo() bool {
	return len(s.redo) > 0
}

// Play makes a human move. promo selects the promotion piece and
// defaults to a queen.
func (s *Session) Play(from, to chess.Square, promo ...chess.PieceType) error {
	if s.state.IsOver() {
		return errors.ErrGameOver
	}
	if s.state.Turn() != s.Human {
		return errors.ErrNotYourTurn
	}
	next, ok := engine.TryMove(s.state, from, to, promo...)
	if !ok {
		return fmt.Errorf("%s: %w", chess.MovePair{From: from, To: to}, errors.ErrIllegalMove)
	}
	s.advance(next)
	s.logger.Debug().Str("game", s.ID.String()).Str("move", lastMoveText(next)).
		Str("status", next.Status.String()).Msg("human move")
	return nil
}

// PlayUCI parses a coordinate move such as "e2e4" or "e7e8n" and plays it.
func (s *Session) PlayUCI(text string) error {
	mt, err := chess.ParseMoveText(text)
	if err != nil {
		return &errors.GameError{Err: errors.ErrInvalidMoveText, Ply: s.state.Ply() + 1, Move: text, FEN: engine.StateToFEN(s.state)}
	}
	if mt.Promotion == chess.None {
		return s.Play(mt.From, mt.To)
	}
	return s.Play(mt.From, mt.To, mt.Promotion)
}

// ComputerMove searches for and plays the computer's reply.
func (s *Session) ComputerMove() (chess.Move, error) {
	if s.state.IsOver() {
		return chess.Move{}, errors.ErrGameOver
	}
	if s.state.Turn() == s.Human {
		return chess.Move{}, errors.ErrNotYourTurn
	}
	move, ok := s.searcher.FindBestMove(s.state, s.Depth)
	if !ok {
		return chess.Move{}, errors.ErrNoLegalMove
	}
	promo := chess.Queen
	if move.Promotion {
		promo = move.PromotionType
	}
	next := engine.MakeMove(s.state, move.From, move.To, promo)
	s.advance(next)

	stats := s.searcher.Stats()
	s.logger.Debug().Str("game", s.ID.String()).Str("move", move.String()).
		Uint64("nodes", stats.Nodes).Dur("elapsed", stats.Elapsed).
		Str("status", next.Status.String()).Msg("computer move")

	played, _ := next.LastMove()
	return played, nil
}

func (s *Session) advance(next chess.GameState) {
	s.state = next
	s.redo = s.redo[:0]
}

// Undo takes back the last ply, and one more if that leaves the computer
// to move, so the human is back on move after their own last move. It
// returns the number of plies taken back.
func (s *Session) Undo() int {
	if s.state.Ply() == 0 {
		return 0
	}
	before := s.state
	next := engine.UndoMove(s.state)
	undone := 1
	if next.Turn() != s.Human && next.Ply() > 0 {
		next = engine.UndoMove(next)
		undone++
	}
	s.redo = append(s.redo, before)
	s.state = next
	s.logger.Debug().Str("game", s.ID.String()).Int("plies", undone).Msg("undo")
	return undone
}

// Redo restores the position before the most recent Undo.
func (s *Session) Redo() error {
	if len(s.redo) == 0 {
		return errors.ErrNothingToRedo
	}
	last := len(s.redo) - 1
	s.state = s.redo[last]
	s.redo = s.redo[:last]
	return nil
}

// Reset starts a new game from the session's starting position.
func (s *Session) Reset() {
	s.state = s.start
	s.redo = nil
	s.logger.Debug().Str("game", s.ID.String()).Msg("new game")
}

// SetHuman changes sides. Changing colour starts a new game.
func (s *Session) SetHuman(colour chess.Colour) {
	s.Human = colour
	s.Reset()
}

func lastMoveText(state chess.GameState) string {
	if m, ok := state.LastMove(); ok {
		return m.String()
	}
	return ""
}
