// Package rules adapts github.com/notnil/chess to the narrow oracle the
// board controller consumes: side to move, piece ownership, move legality,
// pure move application and the derived check and status facts. No chess
// logic lives here beyond translating the library's vocabulary; in
// particular this package never generates or validates moves itself.
package rules

import (
	"fmt"
	"strings"

	"github.com/notnil/chess"
)

// Side identifies one of the two players.
type Side int

const (
	White Side = iota
	Black
)

// Name returns "White" or "Black".
func (s Side) Name() string {
	if s == Black {
		return "Black"
	}
	return "White"
}

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == White {
		return Black
	}
	return White
}

// Status is the position-level game status.
type Status int

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
)

func (st Status) String() string {
	switch st {
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	default:
		return "Ongoing"
	}
}

// Board is an immutable snapshot of the full game state. Apply returns a new
// Board and leaves the receiver untouched; callers replace their reference
// with the result instead of mutating in place.
//
// The check fact is established by the move that produced the position
// (notnil/chess attaches it as a move tag during generation). Boards built
// directly from FEN therefore start with InCheck reporting false even if the
// record encodes a check; the viewer only ever builds the starting position
// and applies moves, so the fact is never stale there.
type Board struct {
	pos     *chess.Position
	inCheck bool
}

// DefaultBoard returns the standard starting position.
func DefaultBoard() *Board {
	return &Board{pos: chess.NewGame().Position()}
}

// FromFEN builds a board from a FEN record.
func FromFEN(fen string) (*Board, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("rules: parse FEN: %w", err)
	}
	return &Board{pos: chess.NewGame(opt).Position()}, nil
}

// square converts a tile index (a1=0 .. h8=63, rank-major) to the library
// square, which uses the same numbering. Out-of-range indices are a caller
// defect, not user input.
func square(p int) chess.Square {
	if p < 0 || p > 63 {
		panic(fmt.Sprintf("rules: square index %d out of range [0,63]", p))
	}
	return chess.Square(p)
}

// SideToMove returns whose turn it is.
func (b *Board) SideToMove() Side {
	if b.pos.Turn() == chess.Black {
		return Black
	}
	return White
}

// IsOwnPiece reports whether the square holds a piece of the side to move.
func (b *Board) IsOwnPiece(p int) bool {
	piece := b.pos.Board().Piece(square(p))
	return piece != chess.NoPiece && piece.Color() == b.pos.Turn()
}

// legalMove finds the legal move from one square to another. When several
// moves match (promotions) the queen promotion is preferred.
func (b *Board) legalMove(from, to int) *chess.Move {
	s1, s2 := square(from), square(to)
	var match *chess.Move
	for _, m := range b.pos.ValidMoves() {
		if m.S1() != s1 || m.S2() != s2 {
			continue
		}
		if m.Promo() == chess.NoPieceType || m.Promo() == chess.Queen {
			return m
		}
		if match == nil {
			match = m
		}
	}
	return match
}

// IsLegalMove reports whether moving from one square to another is legal in
// this position. No promotion piece is taken; a promoting move is matched as
// the queen promotion.
func (b *Board) IsLegalMove(from, to int) bool {
	return b.legalMove(from, to) != nil
}

// Apply plays the move and returns the resulting board. Callers must check
// IsLegalMove first; applying an illegal move panics.
func (b *Board) Apply(from, to int) *Board {
	m := b.legalMove(from, to)
	if m == nil {
		panic(fmt.Sprintf("rules: illegal move %v%v", square(from), square(to)))
	}
	return &Board{
		pos:     b.pos.Update(m),
		inCheck: m.HasTag(chess.Check),
	}
}

// InCheck reports whether the side to move is in check.
func (b *Board) InCheck() bool {
	return b.inCheck
}

// KingSquare returns the tile index of the given side's king.
func (b *Board) KingSquare(s Side) int {
	king := chess.WhiteKing
	if s == Black {
		king = chess.BlackKing
	}
	bd := b.pos.Board()
	for sq := chess.A1; sq <= chess.H8; sq++ {
		if bd.Piece(sq) == king {
			return int(sq)
		}
	}
	panic("rules: king missing from board")
}

// Status returns the position-level game status. Draws that need game
// history (repetition, fifty-move rule) are out of reach of a bare position
// and report Ongoing.
func (b *Board) Status() Status {
	switch b.pos.Status() {
	case chess.Checkmate:
		return Checkmate
	case chess.Stalemate:
		return Stalemate
	default:
		return Ongoing
	}
}

// FEN returns the position's FEN record.
func (b *Board) FEN() string {
	return b.pos.String()
}

// Placement expands the FEN placement field into 64 sprite keys in the
// engine's rank-major top-to-bottom order (a8 first, h1 last). Empty squares
// yield "". A malformed record means the engine misbehaved, so this fails
// loudly rather than render a wrong board.
func (b *Board) Placement() [64]string {
	var slots [64]string
	fen := b.pos.String()
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		panic("rules: empty FEN record")
	}
	i := 0
	for _, r := range fields[0] {
		switch {
		case r == '/':
		case r >= '1' && r <= '8':
			i += int(r - '0')
		case strings.ContainsRune("pnbrqkPNBRQK", r):
			if i >= 64 {
				panic(fmt.Sprintf("rules: placement overflow in %q", fen))
			}
			slots[i] = string(r)
			i++
		default:
			panic(fmt.Sprintf("rules: unexpected %q in placement %q", r, fen))
		}
	}
	if i != 64 {
		panic(fmt.Sprintf("rules: placement describes %d squares in %q", i, fen))
	}
	return slots
}
