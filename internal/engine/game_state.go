package engine

import "github.com/lgbarn/marblechess-go/internal/chess"

// InitialState returns the standard starting position: White to move, full
// castling rights, no en passant target, still playing.
func InitialState() chess.GameState {
	state := chess.GameState{Status: chess.Playing, Winner: chess.NoWinner}
	state.Board.SetupInitialPosition()
	return state
}

// statusAfterMove decides the status once `mover` has moved and the
// opponent is to play on board.
func statusAfterMove(board *chess.Board, mover chess.Colour) (chess.Status, chess.Winner) {
	opponent := mover.Opposite()
	if HasLegalMoves(board, opponent) {
		return chess.Playing, chess.NoWinner
	}
	if isInCheck(board, opponent) {
		return chess.Checkmate, chess.WinnerFor(mover)
	}
	return chess.Stalemate, chess.DrawResult
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(state chess.GameState) bool {
	colour := state.Turn()
	return isInCheck(&state.Board, colour) && !HasLegalMoves(&state.Board, colour)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(state chess.GameState) bool {
	colour := state.Turn()
	return !isInCheck(&state.Board, colour) && !HasLegalMoves(&state.Board, colour)
}
