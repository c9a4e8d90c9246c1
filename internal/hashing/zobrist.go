// Package hashing provides Zobrist position hashing and a cache of search
// results keyed by position.
package hashing

import (
	"github.com/lgbarn/marblechess-go/internal/chess"
)

// Zobrist keys, generated from a fixed seed so hashes are stable between runs.
var (
	zobristPiece      [2][chess.NumPieceTypes][chess.BoardSize * chess.BoardSize]uint64
	zobristEnPassant  [chess.BoardSize]uint64 // One per file
	zobristCastling   [4]uint64               // White K, White Q, Black K, Black Q
	zobristSideToMove uint64                  // XOR when black to move
)

func init() {
	rng := prng{state: 0x6D61726226C65}

	for c := range zobristPiece {
		for pt := chess.Pawn; pt <= chess.King; pt++ {
			for sq := range zobristPiece[c][pt] {
				zobristPiece[c][pt][sq] = rng.next()
			}
		}
	}
	for file := range zobristEnPassant {
		zobristEnPassant[file] = rng.next()
	}
	for i := range zobristCastling {
		zobristCastling[i] = rng.next()
	}
	zobristSideToMove = rng.next()
}

// prng is an xorshift64* generator.
type prng struct {
	state uint64
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

// Hash returns the Zobrist hash of a board: pieces, side to move, castling
// rights and the en passant file.
func Hash(board *chess.Board) uint64 {
	var h uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := board.Squares[row][col]
			if p.IsEmpty() {
				continue
			}
			h ^= zobristPiece[p.Colour][p.Type][row*chess.BoardSize+col]
		}
	}
	if board.ToMove == chess.Black {
		h ^= zobristSideToMove
	}
	h ^= castlingKey(board.Castling)
	if board.EnPassant {
		h ^= zobristEnPassant[board.EPSquare.Col]
	}
	return h
}

// HashState returns the Zobrist hash of a game state's board.
func HashState(state chess.GameState) uint64 {
	return Hash(&state.Board)
}

func castlingKey(r chess.CastlingRights) uint64 {
	var h uint64
	if r.White.Kingside {
		h ^= zobristCastling[0]
	}
	if r.White.Queenside {
		h ^= zobristCastling[1]
	}
	if r.Black.Kingside {
		h ^= zobristCastling[2]
	}
	if r.Black.Queenside {
		h ^= zobristCastling[3]
	}
	return h
}
