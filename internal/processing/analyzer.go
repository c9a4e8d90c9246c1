// Package processing replays finished games and reports what happened in
// them, and tracks positions for draw adjudication during play.
package processing

import (
	"github.com/lgbarn/marblechess-go/internal/chess"
	"github.com/lgbarn/marblechess-go/internal/engine"
	"github.com/lgbarn/marblechess-go/internal/hashing"
)

// GameAnalysis holds analysis results from replaying a game.
type GameAnalysis struct {
	FinalBoard        chess.Board
	Plies             int
	Captures          int
	Checks            int
	Promotions        int
	Castles           int
	HasUnderpromotion bool
	HasRepetition     bool
	Positions         []uint64 // Zobrist hashes, starting position first

	// Evaluated at the final position only
	HasInsufficientMaterial bool
}

// RepetitionDetected returns true if some position occurred three times.
func (ga *GameAnalysis) RepetitionDetected() bool {
	return ga.HasRepetition
}

// UnderpromotionFound returns true if any pawn promoted to non-queen.
func (ga *GameAnalysis) UnderpromotionFound() bool {
	return ga.HasUnderpromotion
}

// AnalyzeGame replays the moves final made after start and counts
// captures, checks, promotions and castling, and detects threefold
// repetition. final must descend from start.
func AnalyzeGame(start, final chess.GameState) *GameAnalysis {
	analysis := &GameAnalysis{}
	tracker := NewRepetitionTracker(start)
	analysis.Positions = append(analysis.Positions, hashing.HashState(start))

	state := start
	for _, move := range final.History[start.Ply():] {
		promo := chess.Queen
		if move.Promotion {
			promo = move.PromotionType
		}
		state = engine.MakeMove(state, move.From, move.To, promo)
		analysis.Plies++

		if move.IsCapture() {
			analysis.Captures++
		}
		if move.Castling != chess.NoCastle {
			analysis.Castles++
		}
		if move.Promotion {
			analysis.Promotions++
			if move.PromotionType != chess.Queen {
				analysis.HasUnderpromotion = true
			}
		}
		if engine.IsInCheck(state, state.Turn()) {
			analysis.Checks++
		}

		analysis.Positions = append(analysis.Positions, hashing.HashState(state))
		if tracker.Add(state) >= 3 {
			analysis.HasRepetition = true
		}
	}

	analysis.FinalBoard = state.Board
	analysis.HasInsufficientMaterial = HasInsufficientMaterial(&state.Board)
	return analysis
}

// RepetitionTracker counts how often each position has occurred.
type RepetitionTracker struct {
	counts map[uint64]int
}

// NewRepetitionTracker creates a tracker that has seen start once.
func NewRepetitionTracker(start chess.GameState) *RepetitionTracker {
	return &RepetitionTracker{counts: map[uint64]int{hashing.HashState(start): 1}}
}

// Add records state and returns how many times it has now occurred.
func (r *RepetitionTracker) Add(state chess.GameState) int {
	h := hashing.HashState(state)
	r.counts[h]++
	return r.counts[h]
}

// HasInsufficientMaterial reports whether neither side can deliver mate:
// bare kings, a single minor piece, or only bishops all on one colour of square.
func HasInsufficientMaterial(board *chess.Board) bool {
	minors := 0
	bishopSquares := [2]int{}
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			switch board.Squares[row][col].Type {
			case chess.Pawn, chess.Rook, chess.Queen:
				return false
			case chess.Knight:
				minors++
			case chess.Bishop:
				bishopSquares[(row+col)%2]++
			}
		}
	}
	bishops := bishopSquares[0] + bishopSquares[1]
	if minors+bishops <= 1 {
		return true
	}
	return minors == 0 && (bishopSquares[0] == 0 || bishopSquares[1] == 0)
}
