package engine

import "github.com/lgbarn/marblechess-go/internal/chess"

// Ray directions as {row delta, col delta}.
var (
	diagonalDirs = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	queenDirs    = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}, {-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// slidingDirs returns the ray directions of a bishop, rook or queen.
func slidingDirs(pieceType chess.PieceType) [][2]int {
	switch pieceType {
	case chess.Bishop:
		return diagonalDirs
	case chess.Rook:
		return straightDirs
	case chess.Queen:
		return queenDirs
	}
	return nil
}

// appendSlidingTargets walks each ray from `from` until it leaves the board
// or meets a piece. An enemy piece ends the ray as a capture; a friendly
// piece ends it before its square.
func appendSlidingTargets(dst []chess.Square, board *chess.Board, from chess.Square, colour chess.Colour, dirs [][2]int) []chess.Square {
	for _, dir := range dirs {
		sq := from.Offset(dir[0], dir[1])
		for sq.OnBoard() {
			target := board.Get(sq)
			if target.IsEmpty() {
				dst = append(dst, sq)
			} else {
				if target.Colour != colour {
					dst = append(dst, sq)
				}
				break // Blocked
			}
			sq = sq.Offset(dir[0], dir[1])
		}
	}
	return dst
}

// isPathClear checks that every square strictly between from and to is
// empty. The squares must share a row, column or diagonal.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	rowDir := sign(to.Row - from.Row)
	colDir := sign(to.Col - from.Col)

	sq := from.Offset(rowDir, colDir)
	for sq != to {
		if !sq.OnBoard() || !board.Get(sq).IsEmpty() {
			return false
		}
		sq = sq.Offset(rowDir, colDir)
	}
	return true
}
