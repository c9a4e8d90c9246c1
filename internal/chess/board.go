package chess

import "strings"

// Board represents a chess board with all state needed for move generation.
// Board is a value type: assigning or passing it by value yields an
// independent copy, so two game states never share squares.
type Board struct {
	// The board squares, indexed [row][col]. Row 0 is rank 8.
	Squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	// Remaining castling rights for both colours.
	Castling CastlingRights

	// Is EnPassant capture possible? If so then EPSquare holds the
	// square passed over by the pawn that just advanced two squares.
	EnPassant bool
	EPSquare  Square
}

// NewBoard creates a new empty board with White to move and no castling rights.
func NewBoard() *Board {
	return &Board{ToMove: White}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	*b = Board{}

	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[0][col] = B(backRank[col])
		b.Squares[1][col] = B(Pawn)
		b.Squares[6][col] = W(Pawn)
		b.Squares[7][col] = W(backRank[col])
	}

	b.ToMove = White
	b.Castling = FullCastlingRights()
	b.EnPassant = false
}

// Get returns the piece on a square. Off-board squares read as NoPiece.
func (b *Board) Get(sq Square) Piece {
	if !sq.OnBoard() {
		return NoPiece
	}
	return b.Squares[sq.Row][sq.Col]
}

// Set places a piece on a square. Off-board squares are ignored.
func (b *Board) Set(sq Square, p Piece) {
	if sq.OnBoard() {
		b.Squares[sq.Row][sq.Col] = p
	}
}

// IsEmpty reports whether the square is on the board and unoccupied.
func (b *Board) IsEmpty(sq Square) bool {
	return sq.OnBoard() && b.Squares[sq.Row][sq.Col].IsEmpty()
}

// IsEnPassantTarget reports whether sq is the current en passant target.
func (b *Board) IsEnPassantTarget(sq Square) bool {
	return b.EnPassant && b.EPSquare == sq
}

// FindKing returns the square of the given colour's king.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col].Is(colour, King) {
				return Square{Row: row, Col: col}, true
			}
		}
	}
	return Square{}, false
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := *b
	return &newBoard
}

// String renders the board as eight lines of FEN letters, rank 8 first.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		sb.WriteByte(byte('8' - row))
		sb.WriteByte(' ')
		for col := 0; col < BoardSize; col++ {
			sb.WriteByte(b.Squares[row][col].Letter())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  abcdefgh\n")
	return sb.String()
}
