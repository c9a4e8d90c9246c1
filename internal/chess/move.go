package chess

// Move represents a single applied move with enough data to invert it.
type Move struct {
	// Source and destination squares.
	From Square
	To   Square

	// The piece being moved, as it stood on From.
	Piece Piece

	// The piece captured (NoPiece if no capture). For en passant this is
	// the enemy pawn, which did not stand on To.
	Captured Piece

	// Castling is NoCastle unless the king moved two files.
	Castling CastleSide

	// Whether this move captured en passant.
	EnPassant bool

	// Whether a pawn reached the back rank, and what it became.
	Promotion     bool
	PromotionType PieceType

	// Castling rights and en passant target before the move.
	PrevCastling  CastlingRights
	PrevEnPassant bool
	PrevEPSquare  Square
}

// Pair returns the source-destination pair of the move.
func (m Move) Pair() MovePair {
	return MovePair{From: m.From, To: m.To}
}

// IsCapture reports whether the move removed an enemy piece.
func (m Move) IsCapture() bool {
	return !m.Captured.IsEmpty()
}

// String returns the move in coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion {
		s += string(m.PromotionType.Letter() + ('a' - 'A'))
	}
	return s
}
