package engine

import "github.com/lgbarn/marblechess-go/internal/chess"

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Each from/to pair counts once, so a promotion contributes a single
// (queen) node. A terminal state has no children.
func Perft(state chess.GameState, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	if state.Status.IsTerminal() {
		return 0
	}
	board := state.Board
	buffers := make([][]chess.MovePair, depth)
	return perft(&board, depth, buffers)
}

// Divide returns the perft count below each root move, keyed by
// coordinate notation. Useful when bisecting a move generator bug.
func Divide(state chess.GameState, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth <= 0 || state.Status.IsTerminal() {
		return result
	}
	board := state.Board
	buffers := make([][]chess.MovePair, depth)
	for _, mp := range LegalMoves(&board, nil) {
		move := Apply(&board, mp.From, mp.To, chess.Queen)
		if depth == 1 {
			result[mp.String()] = 1
		} else {
			result[mp.String()] = perft(&board, depth-1, buffers)
		}
		Unapply(&board, move)
	}
	return result
}

// perft reuses one move buffer per remaining depth.
func perft(board *chess.Board, depth int, buffers [][]chess.MovePair) uint64 {
	moves := LegalMoves(board, buffers[depth-1][:0])
	buffers[depth-1] = moves
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for i := 0; i < len(moves); i++ {
		mp := moves[i]
		move := Apply(board, mp.From, mp.To, chess.Queen)
		nodes += perft(board, depth-1, buffers)
		Unapply(board, move)
	}
	return nodes
}
