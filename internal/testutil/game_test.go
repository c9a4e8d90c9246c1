package testutil

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/lgbarn/marblechess-go/internal/chess"
	"github.com/lgbarn/marblechess-go/internal/errors"
)

func TestPlayMoves(t *testing.T) {
	tests := []struct {
		name     string
		moves    []string
		wantErr  error
		wantPly  int
		wantText string
		wantAt   int
	}{
		{
			name:    "valid opening",
			moves:   []string{"e2e4", "e7e5", "g1f3"},
			wantPly: 3,
		},
		{
			name:    "hyphenated moves",
			moves:   []string{"e2-e4", "c7-c5"},
			wantPly: 2,
		},
		{
			name:    "no moves",
			wantPly: 0,
		},
		{
			name:     "illegal move",
			moves:    []string{"e2e4", "e7e4"},
			wantErr:  errors.ErrIllegalMove,
			wantPly:  1,
			wantText: "e7e4",
			wantAt:   2,
		},
		{
			name:     "bad text",
			moves:    []string{"e2e4", "e7", "e7e5"},
			wantErr:  errors.ErrInvalidMoveText,
			wantPly:  1,
			wantText: "e7",
			wantAt:   2,
		},
		{
			name:     "wrong side",
			moves:    []string{"e7e5"},
			wantErr:  errors.ErrIllegalMove,
			wantPly:  0,
			wantText: "e7e5",
			wantAt:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, err := PlayMoves(MustState(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"), tt.moves...)
			AssertEqual(t, state.Ply(), tt.wantPly)
			if tt.wantErr == nil {
				AssertNoError(t, err)
				return
			}
			AssertTrue(t, stderrors.Is(err, tt.wantErr), "error %v should wrap %v", err, tt.wantErr)
			var gameErr *errors.GameError
			if !stderrors.As(err, &gameErr) {
				t.Fatalf("error %v is not a GameError", err)
			}
			AssertEqual(t, gameErr.Move, tt.wantText)
			AssertEqual(t, gameErr.Ply, tt.wantAt)
		})
	}
}

func TestPlayMoves_Promotion(t *testing.T) {
	start := MustState(t, "8/P6k/8/8/8/8/8/K7 w - - 0 1")

	queen, err := PlayMoves(start, "a7a8")
	AssertNoError(t, err)
	AssertEqual(t, queen.PieceAt(chess.MustSquare("a8")), chess.W(chess.Queen), "promotion defaults to a queen")

	knight, err := PlayMoves(start, "a7a8n")
	AssertNoError(t, err)
	AssertEqual(t, knight.PieceAt(chess.MustSquare("a8")), chess.W(chess.Knight))
}

func TestMustPlayFromStart(t *testing.T) {
	state := MustPlayFromStart(t, "f2f3", "e7e5", "g2g4", "d8h4")
	AssertEqual(t, state.Status, chess.Checkmate)
	AssertEqual(t, state.Winner, chess.BlackWins)
}

func TestMustState(t *testing.T) {
	state := MustState(t, "4k3/8/8/8/8/8/8/4K3 b - - 0 1")
	AssertEqual(t, state.Turn(), chess.Black)
}

func TestSquares(t *testing.T) {
	got := Squares("a8", "h1", "e4")
	want := []chess.Square{chess.Sq(0, 0), chess.Sq(7, 7), chess.Sq(4, 4)}
	AssertEqual(t, got, want)
}

func TestDescribeState(t *testing.T) {
	state := MustPlayFromStart(t, "e2e4")
	desc := DescribeState(state)
	AssertTrue(t, strings.HasPrefix(desc, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3"), desc)
	AssertContains(t, desc, "playing")
	AssertContains(t, desc, "ply 1")
}
