package engine

import "github.com/lgbarn/marblechess-go/internal/chess"

// ValidMoves returns the legal destinations of the piece on `from`, in
// generation order. The result is empty if the square is off the board or
// empty, holds a piece of the side not to move, or the game is over.
func ValidMoves(state chess.GameState, from chess.Square) []chess.Square {
	if state.Status.IsTerminal() || !from.OnBoard() {
		return nil
	}
	board := state.Board
	piece := board.Get(from)
	if piece.IsEmpty() || piece.Colour != board.ToMove {
		return nil
	}

	var buf [maxTargets]chess.Square
	var moves []chess.Square
	for _, to := range appendCandidates(buf[:0], &board, from) {
		if isLegal(&board, from, to) {
			moves = append(moves, to)
		}
	}
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
// The board is modified while searching and restored before returning.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	var buf [maxTargets]chess.Square
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsEmpty() || piece.Colour != colour {
				continue
			}
			from := chess.Sq(row, col)
			for _, to := range appendCandidates(buf[:0], board, from) {
				if isLegal(board, from, to) {
					return true
				}
			}
		}
	}
	return false
}

// LegalMoves appends every legal move of the side to move to dst, scanning
// the board from a8 to h1. Promotions appear once. The board is modified
// while generating and restored before returning.
func LegalMoves(board *chess.Board, dst []chess.MovePair) []chess.MovePair {
	colour := board.ToMove
	var buf [maxTargets]chess.Square
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsEmpty() || piece.Colour != colour {
				continue
			}
			from := chess.Sq(row, col)
			for _, to := range appendCandidates(buf[:0], board, from) {
				if isLegal(board, from, to) {
					dst = append(dst, chess.MovePair{From: from, To: to})
				}
			}
		}
	}
	return dst
}

// AllValidMoves returns every legal move of the side to move in state.
func AllValidMoves(state chess.GameState) []chess.MovePair {
	if state.Status.IsTerminal() {
		return nil
	}
	board := state.Board
	return LegalMoves(&board, nil)
}

// isLegal plays the move on the board and checks that the mover's king is
// not left attacked. The promotion piece cannot affect the answer.
func isLegal(board *chess.Board, from, to chess.Square) bool {
	mover := board.Get(from).Colour
	move := Apply(board, from, to, chess.Queen)
	ok := !isInCheck(board, mover)
	Unapply(board, move)
	return ok
}
