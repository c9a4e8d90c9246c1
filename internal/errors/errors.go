// Package errors provides sentinel errors and error types for marblechess.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidMoveText indicates move text that is not coordinate notation.
	ErrInvalidMoveText = errors.New("invalid move text")

	// ErrInvalidSquare indicates a square name outside a1-h8.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrGameOver indicates a move was requested after checkmate or stalemate.
	ErrGameOver = errors.New("game is over")

	// ErrNotYourTurn indicates the human tried to move for the computer side
	// or asked the computer to move on the human's turn.
	ErrNotYourTurn = errors.New("not your turn")

	// ErrNoLegalMove indicates the search found nothing to play.
	ErrNoLegalMove = errors.New("no legal move")

	// ErrNothingToRedo indicates an empty redo stack.
	ErrNothingToRedo = errors.New("nothing to redo")

	// ErrParseFailure indicates a malformed input line.
	ErrParseFailure = errors.New("parse failure")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// GameError reports a move that could not be played. It carries the move
// text, the ply it would have been and the position it was tried from,
// plus the input location when the move came from a file.
type GameError struct {
	Err  error  // The underlying error
	Ply  int    // 1-based ply the move would have made (0 if unknown)
	Move string // Coordinate text of the move
	FEN  string // Position the move was tried from (if known)
	File string // Source file name (if known)
	Line int    // Line number in source file (if known)
}

// Error renders as `file:line: move "e2e5" at ply 1 from "<fen>": illegal move`,
// leaving out whatever is unknown.
func (e *GameError) Error() string {
	var sb strings.Builder
	if e.File != "" {
		sb.WriteString(e.File)
		if e.Line > 0 {
			fmt.Fprintf(&sb, ":%d", e.Line)
		}
		sb.WriteString(": ")
	}
	if e.Move != "" {
		fmt.Fprintf(&sb, "move %q", e.Move)
	} else {
		sb.WriteString("move")
	}
	if e.Ply > 0 {
		fmt.Fprintf(&sb, " at ply %d", e.Ply)
	}
	if e.FEN != "" {
		fmt.Fprintf(&sb, " from %q", e.FEN)
	}
	if e.Err != nil {
		fmt.Fprintf(&sb, ": %v", e.Err)
	}
	return sb.String()
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the GameError wrapper.
func (e *GameError) Unwrap() error {
	return e.Err
}

// ParseError reports malformed input: a position line or one field of a
// FEN string.
type ParseError struct {
	Err      error  // The underlying error
	File     string // Source file name
	Line     int    // Line number (1-based)
	Field    string // FEN field that failed, such as "castling" (if any)
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns the location, the field and the expected/got pair joined
// by ": ", followed by the underlying error.
func (e *ParseError) Error() string {
	var parts []string

	if e.File != "" {
		loc := e.File
		if e.Line > 0 {
			loc += fmt.Sprintf(":%d", e.Line)
		}
		parts = append(parts, loc)
	}

	if e.Field != "" {
		parts = append(parts, e.Field+" field")
	}

	switch {
	case e.Expected != "" && e.Got != "":
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	case e.Expected != "":
		parts = append(parts, "expected "+e.Expected)
	case e.Got != "":
		parts = append(parts, "unexpected "+e.Got)
	}

	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	if len(parts) == 0 {
		return "parse error"
	}
	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrapf prefixes err with formatted context, keeping it visible to
// errors.Is() and errors.As(). A nil err stays nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
