package engine

import "github.com/lgbarn/marblechess-go/internal/chess"

// Columns of the king and rooks in the standard starting position.
const (
	kingHomeCol      = 4
	kingsideRookCol  = 7
	queensideRookCol = 0
)

// appendCastlingTargets adds the king's two-file castling destinations.
// Castling is offered only if the king stands unattacked on its home
// square, the right is intact, the rook is on its corner, every square
// between them is empty and the square the king passes over is not
// attacked. The landing square is left to the general self-check filter.
func appendCastlingTargets(dst []chess.Square, board *chess.Board, from chess.Square, colour chess.Colour) []chess.Square {
	home := chess.Sq(colour.HomeRow(), kingHomeCol)
	if from != home {
		return dst
	}
	rights := board.Castling.For(colour)
	if !rights.Kingside && !rights.Queenside {
		return dst
	}
	opponent := colour.Opposite()
	if isSquareAttacked(board, from, opponent) {
		return dst
	}

	if rights.Kingside && canCastleTowards(board, from, colour, kingsideRookCol) {
		dst = append(dst, from.Offset(0, 2))
	}
	if rights.Queenside && canCastleTowards(board, from, colour, queensideRookCol) {
		dst = append(dst, from.Offset(0, -2))
	}
	return dst
}

// canCastleTowards checks the rook, the empty path and the transit square
// for one castling side.
func canCastleTowards(board *chess.Board, king chess.Square, colour chess.Colour, rookCol int) bool {
	rookSq := chess.Sq(king.Row, rookCol)
	if !board.Get(rookSq).Is(colour, chess.Rook) {
		return false
	}
	if !isPathClear(board, king, rookSq) {
		return false
	}
	transit := king.Offset(0, sign(rookCol-king.Col))
	return !isSquareAttacked(board, transit, colour.Opposite())
}

// castleSide classifies a king move: two files right is kingside, two
// files left is queenside.
func castleSide(from, to chess.Square) chess.CastleSide {
	switch to.Col - from.Col {
	case 2:
		return chess.Kingside
	case -2:
		return chess.Queenside
	}
	return chess.NoCastle
}

// castleRookSquares returns where the rook starts and ends for a castle
// on the given row.
func castleRookSquares(side chess.CastleSide, row int) (from, to chess.Square) {
	if side == chess.Kingside {
		return chess.Sq(row, kingsideRookCol), chess.Sq(row, 5)
	}
	return chess.Sq(row, queensideRookCol), chess.Sq(row, 3)
}

// updateCastlingRightsForRook removes castling rights when a rook leaves
// or is captured on its home corner.
func updateCastlingRightsForRook(board *chess.Board, colour chess.Colour, sq chess.Square) {
	if sq.Row != colour.HomeRow() {
		return
	}
	switch sq.Col {
	case queensideRookCol:
		board.Castling.Revoke(colour, chess.Queenside)
	case kingsideRookCol:
		board.Castling.Revoke(colour, chess.Kingside)
	}
}
