package engine

import "github.com/lgbarn/marblechess-go/internal/chess"

// appendPawnTargets adds pawn pushes, the double push from the starting
// row, diagonal captures and the en passant capture.
func appendPawnTargets(dst []chess.Square, board *chess.Board, from chess.Square, colour chess.Colour) []chess.Square {
	dir := colour.PawnDirection()

	// Forward move
	one := from.Offset(dir, 0)
	if board.IsEmpty(one) {
		dst = append(dst, one)
		// Double push from starting row
		if from.Row == colour.PawnRow() {
			two := from.Offset(2*dir, 0)
			if board.IsEmpty(two) {
				dst = append(dst, two)
			}
		}
	}

	// Captures
	for dc := -1; dc <= 1; dc += 2 {
		sq := from.Offset(dir, dc)
		if !sq.OnBoard() {
			continue
		}
		target := board.Get(sq)
		if !target.IsEmpty() && target.Colour != colour {
			dst = append(dst, sq)
		} else if board.IsEnPassantTarget(sq) {
			dst = append(dst, sq)
		}
	}
	return dst
}

// pawnAttacks reports whether a pawn of the given colour standing on
// `from` attacks `target`. Pawns capture diagonally forward only, which
// is a different set of squares from where they move.
func pawnAttacks(from chess.Square, colour chess.Colour, target chess.Square) bool {
	return target.Row == from.Row+colour.PawnDirection() && abs(target.Col-from.Col) == 1
}

// isPromotionRow reports whether a pawn arriving on the row promotes.
func isPromotionRow(row int) bool {
	return row == 0 || row == chess.BoardSize-1
}
