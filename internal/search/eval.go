// Package search chooses moves for the computer player: a static
// material-plus-position evaluation and a fixed-depth alpha-beta minimax.
package search

import "github.com/lgbarn/marblechess-go/internal/chess"

// materialValues is indexed by chess.PieceType.
var materialValues = [chess.NumPieceTypes]int{
	chess.None:   0,
	chess.Pawn:   10,
	chess.Knight: 30,
	chess.Bishop: 30,
	chess.Rook:   50,
	chess.Queen:  90,
	chess.King:   900,
}

// MaterialValue returns the material worth of a piece type. Empty squares
// are worth 0.
func MaterialValue(t chess.PieceType) int {
	if t < 0 || t >= chess.NumPieceTypes {
		return 0
	}
	return materialValues[t]
}

// pieceSquareTable holds positional bonuses as seen from White: row 0 is
// the eighth rank. Black pieces read the table upside down.
type pieceSquareTable [chess.BoardSize][chess.BoardSize]float64

var pawnTable = pieceSquareTable{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{5, 5, 5, 5, 5, 5, 5, 5},
	{1, 1, 2, 3, 3, 2, 1, 1},
	{0.5, 0.5, 1, 2.5, 2.5, 1, 0.5, 0.5},
	{0, 0, 0, 2, 2, 0, 0, 0},
	{0.5, -0.5, -1, 0, 0, -1, -0.5, 0.5},
	{0.5, 1, 1, -2, -2, 1, 1, 0.5},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var knightTable = pieceSquareTable{
	{-5, -4, -3, -3, -3, -3, -4, -5},
	{-4, -2, 0, 0, 0, 0, -2, -4},
	{-3, 0, 1, 1.5, 1.5, 1, 0, -3},
	{-3, 0.5, 1.5, 2, 2, 1.5, 0.5, -3},
	{-3, 0, 1.5, 2, 2, 1.5, 0, -3},
	{-3, 0.5, 1, 1.5, 1.5, 1, 0.5, -3},
	{-4, -2, 0, 0.5, 0.5, 0, -2, -4},
	{-5, -4, -3, -3, -3, -3, -4, -5},
}

var bishopTable = pieceSquareTable{
	{-2, -1, -1, -1, -1, -1, -1, -2},
	{-1, 0, 0, 0, 0, 0, 0, -1},
	{-1, 0, 0.5, 1, 1, 0.5, 0, -1},
	{-1, 0.5, 0.5, 1, 1, 0.5, 0.5, -1},
	{-1, 0, 1, 1, 1, 1, 0, -1},
	{-1, 1, 1, 1, 1, 1, 1, -1},
	{-1, 0.5, 0, 0, 0, 0, 0.5, -1},
	{-2, -1, -1, -1, -1, -1, -1, -2},
}

var rookTable = pieceSquareTable{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{0.5, 1, 1, 1, 1, 1, 1, 0.5},
	{-0.5, 0, 0, 0, 0, 0, 0, -0.5},
	{-0.5, 0, 0, 0, 0, 0, 0, -0.5},
	{-0.5, 0, 0, 0, 0, 0, 0, -0.5},
	{-0.5, 0, 0, 0, 0, 0, 0, -0.5},
	{-0.5, 0, 0, 0, 0, 0, 0, -0.5},
	{0, 0, 0, 0.5, 0.5, 0, 0, 0},
}

var queenTable = pieceSquareTable{
	{-2, -1, -1, -0.5, -0.5, -1, -1, -2},
	{-1, 0, 0, 0, 0, 0, 0, -1},
	{-1, 0, 0.5, 0.5, 0.5, 0.5, 0, -1},
	{-0.5, 0, 0.5, 0.5, 0.5, 0.5, 0, -0.5},
	{0, 0, 0.5, 0.5, 0.5, 0.5, 0, -0.5},
	{-1, 0.5, 0.5, 0.5, 0.5, 0.5, 0, -1},
	{-1, 0, 0.5, 0, 0, 0, 0, -1},
	{-2, -1, -1, -0.5, -0.5, -1, -1, -2},
}

var kingTable = pieceSquareTable{
	{-3, -4, -4, -5, -5, -4, -4, -3},
	{-3, -4, -4, -5, -5, -4, -4, -3},
	{-3, -4, -4, -5, -5, -4, -4, -3},
	{-3, -4, -4, -5, -5, -4, -4, -3},
	{-2, -3, -3, -4, -4, -3, -3, -2},
	{-1, -2, -2, -2, -2, -2, -2, -1},
	{2, 2, 0, 0, 0, 0, 2, 2},
	{2, 3, 1, 0, 0, 1, 3, 2},
}

var pieceSquareTables = [chess.NumPieceTypes]*pieceSquareTable{
	chess.Pawn:   &pawnTable,
	chess.Knight: &knightTable,
	chess.Bishop: &bishopTable,
	chess.Rook:   &rookTable,
	chess.Queen:  &queenTable,
	chess.King:   &kingTable,
}

// PieceValue returns the signed worth of a piece standing on sq: material
// plus positional bonus, positive for White and negative for Black.
func PieceValue(p chess.Piece, sq chess.Square) float64 {
	if p.IsEmpty() || !sq.OnBoard() {
		return 0
	}
	row := sq.Row
	if p.Colour == chess.Black {
		row = chess.BoardSize - 1 - row
	}
	value := float64(materialValues[p.Type]) + pieceSquareTables[p.Type][row][sq.Col]
	if p.Colour == chess.Black {
		return -value
	}
	return value
}

// Evaluate scores a position from White's point of view. The score does
// not depend on the side to move or on the game status.
func Evaluate(state chess.GameState) float64 {
	return evaluateBoard(&state.Board)
}

func evaluateBoard(board *chess.Board) float64 {
	total := 0.0
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			total += PieceValue(board.Squares[row][col], chess.Sq(row, col))
		}
	}
	return total
}
