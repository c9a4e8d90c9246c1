package search

import (
	"math"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/marblechess-go/internal/chess"
	"github.com/lgbarn/marblechess-go/internal/engine"
)

// Result is the outcome of a minimax search. Found is false when the
// position was evaluated without trying any move: depth 0, a finished
// game, or no legal moves.
type Result struct {
	Score float64
	Move  chess.Move
	Found bool
}

// Stats counts the work done by the most recent search.
type Stats struct {
	Nodes   uint64
	Cutoffs uint64
	Elapsed time.Duration
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithLogger sets the logger used for per-search statistics.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Searcher) {
		s.logger = logger
	}
}

// WithMoveOrdering enables or disables captures-first move ordering.
// Ordering changes only how much is pruned, never the score.
func WithMoveOrdering(enabled bool) Option {
	return func(s *Searcher) {
		s.ordering = enabled
	}
}

// Searcher runs searches on a private copy of the position, making and
// unmaking moves in place. It keeps one move buffer per remaining depth so
// repeated searches do not allocate move lists. A Searcher is not safe for
// concurrent use; give each goroutine its own.
type Searcher struct {
	logger   zerolog.Logger
	ordering bool
	buffers  [][]chess.MovePair
	board    chess.Board
	stats    Stats
}

// NewSearcher creates a Searcher with move ordering on and logging off.
func NewSearcher(opts ...Option) *Searcher {
	s := &Searcher{
		logger:   zerolog.Nop(),
		ordering: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Stats returns the statistics of the most recent search.
func (s *Searcher) Stats() Stats {
	return s.stats
}

// FindBestMove searches depth plies ahead for the side to move. It
// returns false when the game is over or the side to move has no move.
func (s *Searcher) FindBestMove(state chess.GameState, depth int) (chess.Move, bool) {
	res := s.Search(state, depth)
	return res.Move, res.Found
}

// Search runs a full-window minimax for the side to move and returns the
// score along with the chosen move.
func (s *Searcher) Search(state chess.GameState, depth int) Result {
	return s.Minimax(state, depth, math.Inf(-1), math.Inf(1), state.Turn() == chess.White)
}

// Minimax scores state by alpha-beta minimax to the given depth. The
// maximizing side prefers higher Evaluate scores. Among moves with equal
// scores the first one tried is kept.
func (s *Searcher) Minimax(state chess.GameState, depth int, alpha, beta float64, maximizing bool) Result {
	s.stats = Stats{}
	start := time.Now()

	var res Result
	if depth <= 0 || state.Status != chess.Playing {
		s.stats.Nodes = 1
		res = Result{Score: Evaluate(state)}
	} else {
		s.board = state.Board
		s.growBuffers(depth)
		res = s.minimax(depth, alpha, beta, maximizing)
	}

	s.stats.Elapsed = time.Since(start)
	s.logger.Debug().
		Int("depth", depth).
		Uint64("nodes", s.stats.Nodes).
		Uint64("cutoffs", s.stats.Cutoffs).
		Float64("score", res.Score).
		Str("move", moveText(res)).
		Dur("elapsed", s.stats.Elapsed).
		Msg("search finished")
	return res
}

func (s *Searcher) growBuffers(depth int) {
	for len(s.buffers) < depth {
		s.buffers = append(s.buffers, make([]chess.MovePair, 0, 64))
	}
}

// minimax searches s.board, restoring it before returning.
func (s *Searcher) minimax(depth int, alpha, beta float64, maximizing bool) Result {
	s.stats.Nodes++
	if depth == 0 {
		return Result{Score: evaluateBoard(&s.board)}
	}

	// buffers[depth-1] belongs to this ply; deeper plies use lower indices.
	moves := engine.LegalMoves(&s.board, s.buffers[depth-1][:0])
	s.buffers[depth-1] = moves
	if len(moves) == 0 {
		return Result{Score: evaluateBoard(&s.board)}
	}
	if s.ordering {
		orderMoves(&s.board, moves)
	}

	best := Result{Score: math.Inf(1)}
	if maximizing {
		best.Score = math.Inf(-1)
	}

	for _, mp := range moves {
		move := engine.Apply(&s.board, mp.From, mp.To, chess.Queen)
		child := s.minimax(depth-1, alpha, beta, !maximizing)
		engine.Unapply(&s.board, move)

		if maximizing {
			if child.Score > best.Score {
				best = Result{Score: child.Score, Move: move, Found: true}
			}
			alpha = math.Max(alpha, child.Score)
		} else {
			if child.Score < best.Score {
				best = Result{Score: child.Score, Move: move, Found: true}
			}
			beta = math.Min(beta, child.Score)
		}
		if beta <= alpha {
			s.stats.Cutoffs++
			break
		}
	}
	return best
}

// orderMoves puts captures first, most valuable victim first. The sort is
// stable so equal moves keep board scan order. An en passant capture lands
// on an empty square and sorts with the quiet moves.
func orderMoves(board *chess.Board, moves []chess.MovePair) {
	slices.SortStableFunc(moves, func(a, b chess.MovePair) int {
		return victimValue(board, b) - victimValue(board, a)
	})
}

func victimValue(board *chess.Board, mp chess.MovePair) int {
	return MaterialValue(board.Get(mp.To).Type)
}

func moveText(res Result) string {
	if !res.Found {
		return "none"
	}
	return res.Move.String()
}

// FindBestMove searches with a fresh Searcher.
func FindBestMove(state chess.GameState, depth int) (chess.Move, bool) {
	return NewSearcher().FindBestMove(state, depth)
}

// Minimax searches with a fresh Searcher.
func Minimax(state chess.GameState, depth int, alpha, beta float64, maximizing bool) Result {
	return NewSearcher().Minimax(state, depth, alpha, beta, maximizing)
}
