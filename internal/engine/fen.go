// Package engine provides chess move generation, legality and state transitions.
package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/marblechess-go/internal/chess"
	"github.com/lgbarn/marblechess-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewBoardFromFEN creates a board from a FEN string. The side-to-move,
// castling and en passant fields are optional; missing fields default to
// White to move with no castling and no en passant target.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fieldError("piece placement", "8 ranks", "empty string")
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts); err != nil {
		return nil, err
	}
	if err := parseClocks(parts); err != nil {
		return nil, err
	}

	return board, nil
}

// StateFromFEN creates a game state from a FEN string. Each side must have
// exactly one king. The status is computed for the side to move, so a FEN
// of a mated position yields a terminal state.
func StateFromFEN(fen string) (chess.GameState, error) {
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		return chess.GameState{}, err
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := countPieces(board, chess.Piece{Type: chess.King, Colour: colour}); n != 1 {
			return chess.GameState{}, fmt.Errorf("%v has %d kings: %w", colour, n, errors.ErrInvalidFEN)
		}
	}
	if isInCheck(board, board.ToMove.Opposite()) {
		return chess.GameState{}, fmt.Errorf("side not to move is in check: %w", errors.ErrInvalidFEN)
	}

	state := chess.GameState{Board: *board}
	state.Status, state.Winner = statusAfterMove(&state.Board, board.ToMove.Opposite())
	return state, nil
}

// MustStateFromFEN is StateFromFEN for known-good constants; it panics on error.
func MustStateFromFEN(fen string) chess.GameState {
	state, err := StateFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return state
}

func countPieces(board *chess.Board, p chess.Piece) int {
	n := 0
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if board.Squares[row][col] == p {
				n++
			}
		}
	}
	return n
}

// fieldError reports a malformed field of a FEN string.
func fieldError(field, expected, got string) error {
	return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: field, Expected: expected, Got: got}
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fieldError("piece placement", "8 ranks", strconv.Itoa(len(ranks)))
	}

	for row, rank := range ranks {
		col := 0
		for _, c := range rank {
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			default:
				pieceType := chess.PieceTypeFromLetter(byte(c))
				if pieceType == chess.None {
					return fieldError("piece placement", "piece letter or digit", string(c))
				}
				if col >= chess.BoardSize {
					return fieldError("piece placement", "8 files", fmt.Sprintf("more than 8 on rank %d", chess.BoardSize-row))
				}

				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				if pieceType == chess.Pawn && isPromotionRow(row) {
					return fieldError("piece placement", "no pawn on a back rank", fmt.Sprintf("%c on rank %d", c, chess.BoardSize-row))
				}
				board.Squares[row][col] = chess.Piece{Type: pieceType, Colour: colour}
				col++
			}
		}
		if col != chess.BoardSize {
			return fieldError("piece placement", "8 files", fmt.Sprintf("%d on rank %d", col, chess.BoardSize-row))
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return fieldError("side to move", "w or b", parts[1])
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(board *chess.Board, parts []string) error {
	board.Castling = chess.CastlingRights{}

	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			board.Castling.White.Kingside = true
		case 'Q':
			board.Castling.White.Queenside = true
		case 'k':
			board.Castling.Black.Kingside = true
		case 'q':
			board.Castling.Black.Queenside = true
		default:
			return fieldError("castling", "KQkq or -", parts[2])
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, parts []string) error {
	board.EnPassant = false
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(parts[3])
	if err != nil {
		return fieldError("en passant", "a square or -", parts[3])
	}
	// The target lies behind a pawn that just advanced two squares.
	wantRow := 2
	if board.ToMove == chess.Black {
		wantRow = 5
	}
	if sq.Row != wantRow {
		return fieldError("en passant", fmt.Sprintf("a square on rank %d", chess.BoardSize-wantRow), parts[3])
	}
	// The pushed pawn stands one row past the target, and both the target
	// and the pawn's starting square are empty.
	forward := 1
	if board.ToMove == chess.Black {
		forward = -1
	}
	pawn := chess.Piece{Type: chess.Pawn, Colour: board.ToMove.Opposite()}
	if board.Get(chess.Sq(sq.Row+forward, sq.Col)) != pawn ||
		!board.Get(sq).IsEmpty() || !board.Get(chess.Sq(sq.Row-forward, sq.Col)).IsEmpty() {
		return fieldError("en passant", "the square behind a pawn pushed two squares", parts[3])
	}
	board.EnPassant = true
	board.EPSquare = sq
	return nil
}

var clockFields = [2]string{"halfmove clock", "fullmove number"}

// parseClocks validates the halfmove clock and fullmove number fields.
// The engine keeps no move clocks, so the values are not stored.
func parseClocks(parts []string) error {
	for i := 4; i < len(parts) && i < 6; i++ {
		n, err := strconv.Atoi(parts[i])
		if err != nil || n < 0 {
			return fieldError(clockFields[i-4], "a non-negative number", parts[i])
		}
	}
	if len(parts) > 6 {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Expected: "at most 6 fields", Got: strings.Join(parts[6:], " ")}
	}
	return nil
}

// BoardToFEN converts a board to a FEN string. The board carries no move
// counters, so the clock fields are written as "0 1".
func BoardToFEN(board *chess.Board) string {
	return boardToFEN(board, 0, 1)
}

// StateToFEN converts a state to a FEN string, deriving the fullmove
// number from the number of plies played.
func StateToFEN(state chess.GameState) string {
	return boardToFEN(&state.Board, 0, 1+state.Ply()/2)
}

func boardToFEN(board *chess.Board, halfmove, fullmove int) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", halfmove, fullmove)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	hasCastling := false
	if board.Castling.White.Kingside {
		sb.WriteByte('K')
		hasCastling = true
	}
	if board.Castling.White.Queenside {
		sb.WriteByte('Q')
		hasCastling = true
	}
	if board.Castling.Black.Kingside {
		sb.WriteByte('k')
		hasCastling = true
	}
	if board.Castling.Black.Queenside {
		sb.WriteByte('q')
		hasCastling = true
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	if board.EnPassant {
		sb.WriteString(board.EPSquare.String())
	} else {
		sb.WriteByte('-')
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board, _ := NewBoardFromFEN(InitialFEN)
	return board
}
