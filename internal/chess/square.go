package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/marblechess-go/internal/errors"
)

// Square is a board coordinate. Row 0 is Black's back rank (rank 8) and
// Col 0 is the a-file.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// OnBoard reports whether the square lies within the 8x8 board.
func (s Square) OnBoard() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset returns the square shifted by the given row and column deltas.
func (s Square) Offset(dr, dc int) Square {
	return Square{Row: s.Row + dr, Col: s.Col + dc}
}

// Rank returns the rank character ('1'-'8') of the square.
func (s Square) Rank() byte {
	return byte(RankBase + BoardSize - 1 - s.Row)
}

// File returns the file character ('a'-'h') of the square.
func (s Square) File() byte {
	return byte(ColBase + s.Col)
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.OnBoard() {
		return "-"
	}
	return string([]byte{s.File(), s.Rank()})
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return Square{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidSquare)
	}
	f, r := text[0], text[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return Square{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidSquare)
	}
	return Square{Row: int('8' - r), Col: int(f - 'a')}, nil
}

// MustSquare parses a square and panics on failure. Intended for
// constants and tests.
func MustSquare(text string) Square {
	sq, err := ParseSquare(text)
	if err != nil {
		panic(err)
	}
	return sq
}

// MovePair represents a source-destination square pair for move generation.
type MovePair struct {
	From Square
	To   Square
}

// String returns the coordinate notation of the pair, e.g. "e2e4".
func (m MovePair) String() string {
	return m.From.String() + m.To.String()
}

// MoveText is a parsed coordinate move such as "e7e8q".
type MoveText struct {
	MovePair
	Promotion PieceType // None when not given
}

// ParseMoveText parses long algebraic coordinate notation: four characters
// for the squares with an optional promotion letter (q, r, b or n).
// Hyphens ("e2-e4") are accepted.
func ParseMoveText(text string) (MoveText, error) {
	s := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(text), "-", ""))
	if len(s) != 4 && len(s) != 5 {
		return MoveText{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidMoveText)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return MoveText{}, fmt.Errorf("bad move %q: %w", text, err)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return MoveText{}, fmt.Errorf("bad move %q: %w", text, err)
	}
	mt := MoveText{MovePair: MovePair{From: from, To: to}}
	if len(s) == 5 {
		mt.Promotion = PieceTypeFromLetter(s[4])
		if !mt.Promotion.IsPromotionTarget() {
			return MoveText{}, fmt.Errorf("bad promotion piece in %q: %w", text, errors.ErrInvalidMoveText)
		}
	}
	return mt, nil
}
