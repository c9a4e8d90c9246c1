package engine

import (
	"github.com/lgbarn/marblechess-go/internal/chess"
)

// Apply plays from→to on the board in place and returns the move record
// needed to take it back with Unapply. Legality is not checked. A pawn
// reaching the back rank always promotes; promo defaults to a queen when
// it is not a valid promotion piece.
func Apply(board *chess.Board, from, to chess.Square, promo chess.PieceType) chess.Move {
	piece := board.Get(from)
	colour := piece.Colour

	move := chess.Move{
		From:          from,
		To:            to,
		Piece:         piece,
		Captured:      board.Get(to),
		PrevCastling:  board.Castling,
		PrevEnPassant: board.EnPassant,
		PrevEPSquare:  board.EPSquare,
	}

	// Move the piece
	board.Set(to, piece)
	board.Set(from, chess.NoPiece)

	doublePush := false
	switch piece.Type {
	case chess.Pawn:
		applyPawnExtras(board, &move, promo)
		doublePush = abs(to.Row-from.Row) == 2

	case chess.King:
		if side := castleSide(from, to); side != chess.NoCastle {
			rookFrom, rookTo := castleRookSquares(side, from.Row)
			board.Set(rookTo, board.Get(rookFrom))
			board.Set(rookFrom, chess.NoPiece)
			move.Castling = side
		}
		board.Castling.RevokeAll(colour)

	case chess.Rook:
		updateCastlingRightsForRook(board, colour, from)
	}

	// Update castling rights if a rook was captured on its corner
	if move.Captured.Type == chess.Rook {
		updateCastlingRightsForRook(board, move.Captured.Colour, to)
	}

	// Set en passant square if double pawn push
	board.EnPassant = doublePush
	board.EPSquare = chess.Square{}
	if doublePush {
		board.EPSquare = chess.Sq((from.Row+to.Row)/2, from.Col)
	}

	board.ToMove = colour.Opposite()
	return move
}

// applyPawnExtras handles promotion and en passant capture for a pawn that
// has already been moved. The en passant target checked is the one from
// before the move.
func applyPawnExtras(board *chess.Board, move *chess.Move, promo chess.PieceType) {
	colour := move.Piece.Colour

	// Handle promotion
	if isPromotionRow(move.To.Row) {
		if !promo.IsPromotionTarget() {
			promo = chess.Queen // Default to queen
		}
		board.Set(move.To, chess.Piece{Type: promo, Colour: colour})
		move.Promotion = true
		move.PromotionType = promo
	}

	// Handle en passant capture
	if move.PrevEnPassant && move.To == move.PrevEPSquare && move.From.Col != move.To.Col && move.Captured.IsEmpty() {
		// The captured pawn stands beside the mover, on the row it came from.
		board.Set(chess.Sq(move.From.Row, move.To.Col), chess.NoPiece)
		move.Captured = chess.Piece{Type: chess.Pawn, Colour: colour.Opposite()}
		move.EnPassant = true
	}
}

// Unapply takes back a move produced by Apply on the same board,
// restoring squares, side to move, castling rights and en passant target.
func Unapply(board *chess.Board, move chess.Move) {
	board.ToMove = move.Piece.Colour
	board.Castling = move.PrevCastling
	board.EnPassant = move.PrevEnPassant
	board.EPSquare = move.PrevEPSquare

	// The original piece goes back, undoing any promotion.
	board.Set(move.From, move.Piece)

	if move.EnPassant {
		board.Set(move.To, chess.NoPiece)
		board.Set(chess.Sq(move.From.Row, move.To.Col), move.Captured)
	} else {
		board.Set(move.To, move.Captured)
	}

	if move.Castling != chess.NoCastle {
		rookFrom, rookTo := castleRookSquares(move.Castling, move.From.Row)
		board.Set(rookFrom, board.Get(rookTo))
		board.Set(rookTo, chess.NoPiece)
	}
}

// MakeMove applies from→to to the state and returns the resulting state.
// The move is not re-validated: callers obtain it from ValidMoves (or use
// TryMove). The returned state's Status and Winner reflect whether the
// opponent is now checkmated or stalemated. promo selects the promotion
// piece and defaults to a queen.
//
// The input state is returned unchanged if it is already over, if either
// square is off the board, or if from does not hold a piece of the side
// to move.
func MakeMove(state chess.GameState, from, to chess.Square, promo ...chess.PieceType) chess.GameState {
	if state.Status.IsTerminal() || !from.OnBoard() || !to.OnBoard() {
		return state
	}
	piece := state.Board.Get(from)
	if piece.IsEmpty() || piece.Colour != state.Board.ToMove {
		return state
	}

	promotion := chess.Queen
	if len(promo) > 0 {
		promotion = promo[0]
	}

	next := chess.GameState{Board: state.Board}
	move := Apply(&next.Board, from, to, promotion)
	next.History = chess.WithMove(state.History, move)
	next.Status, next.Winner = statusAfterMove(&next.Board, piece.Colour)
	return next
}

// TryMove plays from→to only if it is among ValidMoves(state, from). It
// returns the unchanged state and false for any other pair.
func TryMove(state chess.GameState, from, to chess.Square, promo ...chess.PieceType) (chess.GameState, bool) {
	for _, sq := range ValidMoves(state, from) {
		if sq == to {
			return MakeMove(state, from, to, promo...), true
		}
	}
	return state, false
}

// UndoMove returns the state one ply earlier, or state itself when no
// moves have been played. The last move record is inverted in place on a
// copy of the board; the earlier state was necessarily still in play.
func UndoMove(state chess.GameState) chess.GameState {
	n := len(state.History)
	if n == 0 {
		return state
	}
	prev := chess.GameState{
		Board:  state.Board,
		Status: chess.Playing,
		Winner: chess.NoWinner,
	}
	if n > 1 {
		prev.History = state.History[: n-1 : n-1]
	}
	Unapply(&prev.Board, state.History[n-1])
	return prev
}

// Replay plays history from the initial position.
func Replay(history []chess.Move) chess.GameState {
	return ReplayFrom(InitialState(), history)
}

// ReplayFrom plays history from start, keeping each move's promotion choice.
func ReplayFrom(start chess.GameState, history []chess.Move) chess.GameState {
	state := start
	for _, m := range history {
		promo := chess.Queen
		if m.Promotion {
			promo = m.PromotionType
		}
		state = MakeMove(state, m.From, m.To, promo)
	}
	return state
}
