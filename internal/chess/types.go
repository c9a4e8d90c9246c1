// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PawnDirection returns the row delta of a pawn advance: -1 for White, +1 for Black.
// Row 0 is Black's back rank.
func (c Colour) PawnDirection() int {
	if c == White {
		return -1
	}
	return 1
}

// HomeRow returns the back rank row index of the colour.
func (c Colour) HomeRow() int {
	if c == White {
		return 7
	}
	return 0
}

// PawnRow returns the row pawns of this colour start on.
func (c Colour) PawnRow() int {
	if c == White {
		return 6
	}
	return 1
}

// PieceType represents a chess piece type.
type PieceType int

const (
	None PieceType = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceTypes
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceTypeFromLetter converts a piece letter (either case) to a piece type.
// Unknown letters map to None.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return None
	}
}

// IsPromotionTarget reports whether a pawn may promote to this piece type.
func (p PieceType) IsPromotionTarget() bool {
	return p == Knight || p == Bishop || p == Rook || p == Queen
}

// Piece is a coloured piece. The zero value is NoPiece (an empty square).
type Piece struct {
	Type   PieceType
	Colour Colour
}

// NoPiece marks an empty square.
var NoPiece = Piece{}

// W creates a white piece.
func W(t PieceType) Piece {
	return Piece{Type: t, Colour: White}
}

// B creates a black piece.
func B(t PieceType) Piece {
	return Piece{Type: t, Colour: Black}
}

// IsEmpty reports whether the piece is NoPiece.
func (p Piece) IsEmpty() bool {
	return p.Type == None
}

// Is reports whether the piece is of the given colour and type.
func (p Piece) Is(colour Colour, t PieceType) bool {
	return p.Type == t && p.Colour == colour
}

// Letter returns the FEN letter of the piece: uppercase for White,
// lowercase for Black, '.' for an empty square.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	l := p.Type.Letter()
	if p.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns e.g. "White Knight", or "Empty".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Type.String()
}

// CastleSide identifies which side a castling move goes to.
type CastleSide int

const (
	NoCastle CastleSide = iota
	Kingside
	Queenside
)

// String returns the string representation of a castle side.
func (s CastleSide) String() string {
	switch s {
	case Kingside:
		return "kingside"
	case Queenside:
		return "queenside"
	}
	return ""
}

// SideRights holds the castling availability of one colour.
type SideRights struct {
	Kingside  bool
	Queenside bool
}

// CastlingRights holds castling availability for both colours.
// It is a plain value: assigning it copies it.
type CastlingRights struct {
	White SideRights
	Black SideRights
}

// FullCastlingRights returns rights with every castle still available.
func FullCastlingRights() CastlingRights {
	return CastlingRights{
		White: SideRights{Kingside: true, Queenside: true},
		Black: SideRights{Kingside: true, Queenside: true},
	}
}

// For returns the rights of one colour.
func (r CastlingRights) For(colour Colour) SideRights {
	if colour == White {
		return r.White
	}
	return r.Black
}

// Revoke clears a right. Rights are never re-granted.
func (r *CastlingRights) Revoke(colour Colour, side CastleSide) {
	sr := &r.White
	if colour == Black {
		sr = &r.Black
	}
	switch side {
	case Kingside:
		sr.Kingside = false
	case Queenside:
		sr.Queenside = false
	}
}

// RevokeAll clears both rights of a colour.
func (r *CastlingRights) RevokeAll(colour Colour) {
	r.Revoke(colour, Kingside)
	r.Revoke(colour, Queenside)
}

// Status is the lifecycle state of a game.
type Status int

const (
	Playing Status = iota
	Checkmate
	Stalemate
	Draw // reserved for fifty-move / insufficient material rules
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case Draw:
		return "draw"
	}
	return "unknown"
}

// IsTerminal reports whether no further moves may be played.
func (s Status) IsTerminal() bool {
	return s != Playing
}

// Winner is the result of a finished game.
type Winner int

const (
	NoWinner Winner = iota
	WhiteWins
	BlackWins
	DrawResult
)

// WinnerFor returns the Winner value for a colour.
func WinnerFor(colour Colour) Winner {
	if colour == White {
		return WhiteWins
	}
	return BlackWins
}

// String returns the string representation of a winner.
func (w Winner) String() string {
	switch w {
	case WhiteWins:
		return "white"
	case BlackWins:
		return "black"
	case DrawResult:
		return "draw"
	}
	return "none"
}

// Result returns the PGN result token for the winner.
func (w Winner) Result() string {
	switch w {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case DrawResult:
		return "1/2-1/2"
	}
	return "*"
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase = '1'
	ColBase  = 'a'
)
