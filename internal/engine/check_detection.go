package engine

import "github.com/lgbarn/marblechess-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked.
// A board without that king is never in check.
func IsInCheck(state chess.GameState, colour chess.Colour) bool {
	return isInCheck(&state.Board, colour)
}

// isInCheck is IsInCheck on a board.
func isInCheck(board *chess.Board, colour chess.Colour) bool {
	kingSq, ok := board.FindKing(colour)
	if !ok {
		return false // No king found
	}
	return isSquareAttacked(board, kingSq, colour.Opposite())
}

// isSquareAttacked returns true if the square is attacked by the given colour.
// Every attacking piece is scanned: pawns by their diagonal capture squares,
// all other pieces by their raw candidate targets.
func isSquareAttacked(board *chess.Board, target chess.Square, byColour chess.Colour) bool {
	var buf [maxTargets]chess.Square
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsEmpty() || piece.Colour != byColour {
				continue
			}
			from := chess.Sq(row, col)

			// Special case for pawns
			if piece.Type == chess.Pawn {
				if pawnAttacks(from, byColour, target) {
					return true
				}
				continue
			}

			for _, sq := range appendRawTargets(buf[:0], board, from, piece) {
				if sq == target {
					return true
				}
			}
		}
	}
	return false
}
