// Package testutil provides shared test utilities for the marblechess-go project.
// These utilities reduce code duplication across test files and provide
// consistent test setup helpers.
package testutil

import (
	"fmt"
	"testing"

	"github.com/lgbarn/marblechess-go/internal/chess"
	"github.com/lgbarn/marblechess-go/internal/engine"
	"github.com/lgbarn/marblechess-go/internal/errors"
)

// PlayMoves plays coordinate moves ("e2e4", "e7e8n") from state, checking
// each against the legal moves. It stops at the first illegal or
// malformed move.
func PlayMoves(state chess.GameState, moves ...string) (chess.GameState, error) {
	for i, text := range moves {
		mt, err := chess.ParseMoveText(text)
		if err != nil {
			return state, &errors.GameError{Err: errors.ErrInvalidMoveText, Ply: i + 1, Move: text, FEN: engine.StateToFEN(state)}
		}
		promo := mt.Promotion
		if promo == chess.None {
			promo = chess.Queen
		}
		next, ok := engine.TryMove(state, mt.From, mt.To, promo)
		if !ok {
			return state, &errors.GameError{Err: errors.ErrIllegalMove, Ply: i + 1, Move: text, FEN: engine.StateToFEN(state)}
		}
		state = next
	}
	return state, nil
}

// MustPlay plays moves from state and calls t.Fatal on the first illegal move.
func MustPlay(t testing.TB, state chess.GameState, moves ...string) chess.GameState {
	t.Helper()
	next, err := PlayMoves(state, moves...)
	if err != nil {
		t.Fatalf("playing %v: %v\n%s", moves, err, state.Board.String())
	}
	return next
}

// MustPlayFromStart plays moves from the initial position.
func MustPlayFromStart(t testing.TB, moves ...string) chess.GameState {
	t.Helper()
	return MustPlay(t, engine.InitialState(), moves...)
}

// MustState parses a FEN string and calls t.Fatal if it is invalid.
func MustState(t testing.TB, fen string) chess.GameState {
	t.Helper()
	state, err := engine.StateFromFEN(fen)
	if err != nil {
		t.Fatalf("StateFromFEN(%q): %v", fen, err)
	}
	return state
}

// Squares converts algebraic names to squares, panicking on bad input.
func Squares(names ...string) []chess.Square {
	out := make([]chess.Square, len(names))
	for i, name := range names {
		out[i] = chess.MustSquare(name)
	}
	return out
}

// DescribeState returns a one-line summary used in failure messages.
func DescribeState(state chess.GameState) string {
	return fmt.Sprintf("%s (%v, winner %v, ply %d)", engine.StateToFEN(state), state.Status, state.Winner, state.Ply())
}
