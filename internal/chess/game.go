package chess

// GameState is an immutable snapshot of a game. Every transition produces a
// new GameState; older snapshots stay valid. Callers must treat History as
// read-only: it always has cap == len, so a derived state appending to it
// gets a fresh backing array rather than writing into this one.
type GameState struct {
	// Board holds the squares, side to move, castling rights and en passant target.
	Board Board

	// History lists the moves played from the starting position, oldest first.
	History []Move

	// Status is Playing until the game ends; any other value is terminal.
	Status Status

	// Winner is NoWinner while Playing.
	Winner Winner
}

// Turn returns the colour to move.
func (g GameState) Turn() Colour {
	return g.Board.ToMove
}

// CastlingRights returns the current castling rights.
func (g GameState) CastlingRights() CastlingRights {
	return g.Board.Castling
}

// EnPassantTarget returns the en passant target square, if any.
func (g GameState) EnPassantTarget() (Square, bool) {
	return g.Board.EPSquare, g.Board.EnPassant
}

// PieceAt returns the piece on a square.
func (g GameState) PieceAt(sq Square) Piece {
	return g.Board.Get(sq)
}

// Ply returns the number of half-moves played.
func (g GameState) Ply() int {
	return len(g.History)
}

// LastMove returns the most recent move, if any.
func (g GameState) LastMove() (Move, bool) {
	if len(g.History) == 0 {
		return Move{}, false
	}
	return g.History[len(g.History)-1], true
}

// IsOver reports whether the game has reached a terminal status.
func (g GameState) IsOver() bool {
	return g.Status.IsTerminal()
}

// WithMove returns a copy of the history slice with m appended. The result
// has cap == len.
func WithMove(history []Move, m Move) []Move {
	out := make([]Move, len(history)+1)
	copy(out, history)
	out[len(history)] = m
	return out
}
