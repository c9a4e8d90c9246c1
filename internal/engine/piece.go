package engine

import "github.com/lgbarn/marblechess-go/internal/chess"

// Offsets of the non-sliding pieces as {row delta, col delta}.
var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// maxTargets bounds the candidate destinations of a single piece
// (a centralised queen reaches 27 squares).
const maxTargets = 32

// appendStepTargets adds every on-board offset square not occupied by a
// piece of the mover's colour.
func appendStepTargets(dst []chess.Square, board *chess.Board, from chess.Square, colour chess.Colour, offsets [][2]int) []chess.Square {
	for _, off := range offsets {
		sq := from.Offset(off[0], off[1])
		if !sq.OnBoard() {
			continue
		}
		target := board.Get(sq)
		if target.IsEmpty() || target.Colour != colour {
			dst = append(dst, sq)
		}
	}
	return dst
}

// appendCandidates adds the pseudo-legal destinations of the piece on
// `from`: moves that obey the piece's movement rules but may still leave
// the mover's own king in check.
func appendCandidates(dst []chess.Square, board *chess.Board, from chess.Square) []chess.Square {
	piece := board.Get(from)
	switch piece.Type {
	case chess.Pawn:
		return appendPawnTargets(dst, board, from, piece.Colour)
	case chess.Knight:
		return appendStepTargets(dst, board, from, piece.Colour, knightOffsets)
	case chess.Bishop, chess.Rook, chess.Queen:
		return appendSlidingTargets(dst, board, from, piece.Colour, slidingDirs(piece.Type))
	case chess.King:
		dst = appendStepTargets(dst, board, from, piece.Colour, kingOffsets)
		return appendCastlingTargets(dst, board, from, piece.Colour)
	}
	return dst
}

// appendRawTargets adds the squares a non-pawn piece bears on, without
// castling and without any check filtering. Knight and king offsets are
// included whatever occupies the square; sliding rays stop at the first
// piece. Used for attack detection only.
func appendRawTargets(dst []chess.Square, board *chess.Board, from chess.Square, piece chess.Piece) []chess.Square {
	switch piece.Type {
	case chess.Knight:
		return appendOffsets(dst, from, knightOffsets)
	case chess.King:
		return appendOffsets(dst, from, kingOffsets)
	case chess.Bishop, chess.Rook, chess.Queen:
		return appendSlidingTargets(dst, board, from, piece.Colour, slidingDirs(piece.Type))
	}
	return dst
}

// appendOffsets adds every on-board offset square.
func appendOffsets(dst []chess.Square, from chess.Square, offsets [][2]int) []chess.Square {
	for _, off := range offsets {
		if sq := from.Offset(off[0], off[1]); sq.OnBoard() {
			dst = append(dst, sq)
		}
	}
	return dst
}
