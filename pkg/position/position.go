// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package position implements the bitboard position representation, the
// legality analyzer, the legal move generator and the reversible
// make/unmake used to drive search. The four pieces are kept together
// deliberately: the legal move generator leans directly on the legality
// cache the analyzer computes, and make/unmake must keep that cache
// consistent across an undo stack bounded by search depth.
package position

import (
	"github.com/phillipduarte/enoki-chess/pkg/bitboard"
	"github.com/phillipduarte/enoki-chess/pkg/castling"
	"github.com/phillipduarte/enoki-chess/pkg/piece"
	"github.com/phillipduarte/enoki-chess/pkg/square"
)

// Legality is the derived-per-position cache the move generator reads:
// the opponent's attack set (king removed), the pin set and per-piece pin
// rays, the checker set, and the check-block mask. It is recomputed after
// every parse and make, and restored verbatim (not recomputed) on unmake.
type Legality struct {
	// PinMask is the set of friendly pieces absolutely pinned against
	// their king.
	PinMask bitboard.Board

	// PinRay holds, for each pinned square, the ray segment (king
	// through the pinned piece to and including the pinning attacker)
	// the pinned piece may legally move within. Undefined for squares
	// not in PinMask.
	PinRay [square.N]bitboard.Board

	// CheckerMask is the set of enemy pieces giving check (0, 1 or 2 bits).
	CheckerMask bitboard.Board

	// CheckBlockMask is, when exactly one checker, the squares that
	// block the check or capture the checker; undefined when zero or
	// two checkers are set.
	CheckBlockMask bitboard.Board

	// OpponentAttacks is the set of squares the opponent attacks with
	// the friendly king removed from the occupancy, so that a slider's
	// ray continues through the square the king is leaving.
	OpponentAttacks bitboard.Board
}

// Checkers returns the number of pieces currently giving check, 0, 1 or 2.
func (l Legality) Checkers() int {
	return l.CheckerMask.Count()
}

// Position holds the full state of a chess position: the twelve piece
// bitboards, whose-move/rights/en-passant/clock scalars, and the derived
// legality cache. Friendly/enemy/occupancy bitboards are not stored — they
// are cheap aggregates of the twelve piece bitboards, computed on demand.
type Position struct {
	pieceBB [piece.N]bitboard.Board
	squares [square.N]piece.Kind // mailbox cache, kept in lockstep with pieceBB
	kings   [2]square.Square     // cached king squares, kept in lockstep with pieceBB

	SideToMove      piece.Color
	CastlingRights  castling.Rights
	EnPassantTarget square.Square
	HalfmoveClock   int
	FullmoveNumber  int

	Legality Legality

	history []StateDelta
}

// New returns an empty position (no pieces, white to move, no castling
// rights, no en-passant target, move counters at their FEN defaults).
// Callers normally want Parse or StartingPosition instead.
func New() *Position {
	p := &Position{
		EnPassantTarget: square.None,
		FullmoveNumber:  1,
	}
	for s := range p.squares {
		p.squares[s] = piece.None
	}
	p.kings[piece.White] = square.None
	p.kings[piece.Black] = square.None
	return p
}

// PieceAt returns the piece occupying a square, or piece.None if empty.
func (p *Position) PieceAt(s square.Square) piece.Kind {
	return p.squares[s]
}

// PieceBB returns the raw bitboard for one of the twelve piece kinds.
func (p *Position) PieceBB(k piece.Kind) bitboard.Board {
	return p.pieceBB[k]
}

// KingSquare returns the king square of the given color.
func (p *Position) KingSquare(c piece.Color) square.Square {
	return p.kings[c]
}

// Occupied returns the union of all twelve piece bitboards.
func (p *Position) Occupied() bitboard.Board {
	var occ bitboard.Board
	for _, bb := range p.pieceBB {
		occ |= bb
	}
	return occ
}

// Empty returns the complement of Occupied.
func (p *Position) Empty() bitboard.Board {
	return ^p.Occupied()
}

// ColorBB returns the union of the six piece bitboards belonging to c.
func (p *Position) ColorBB(c piece.Color) bitboard.Board {
	var bb bitboard.Board
	for t := piece.Pawn; t <= piece.King; t++ {
		bb |= p.pieceBB[piece.New(t, c)]
	}
	return bb
}

// Friendly returns the side-to-move's occupancy.
func (p *Position) Friendly() bitboard.Board {
	return p.ColorBB(p.SideToMove)
}

// Enemy returns the non-side-to-move's occupancy.
func (p *Position) Enemy() bitboard.Board {
	return p.ColorBB(p.SideToMove.Other())
}

// place puts piece k on square s. s must currently be empty; use remove
// first if it is not.
func (p *Position) place(s square.Square, k piece.Kind) {
	p.pieceBB[k].Set(s)
	p.squares[s] = k
	if k.Type() == piece.King {
		p.kings[k.Color()] = s
	}
}

// remove clears whatever piece occupies square s. It is a no-op if s is
// already empty.
func (p *Position) remove(s square.Square) {
	k := p.squares[s]
	if k == piece.None {
		return
	}
	p.pieceBB[k].Unset(s)
	p.squares[s] = piece.None
}

// KingCount returns the number of kings of color c on the board. Used by
// the FEN parser to reject positions without exactly one king per side.
func (p *Position) KingCount(c piece.Color) int {
	return p.pieceBB[piece.New(piece.King, c)].Count()
}

// IsInCheck reports whether the side to move's king is attacked, reading
// directly from the legality cache.
func (p *Position) IsInCheck() bool {
	return p.Legality.Checkers() > 0
}

// String renders the position as an 8x8 grid of piece letters followed
// by its FEN.
func (p *Position) String() string {
	var out string
	for rank := square.Rank8; ; rank-- {
		for file := square.FileA; file <= square.FileH; file++ {
			out += p.PieceAt(square.New(file, rank)).String() + " "
		}
		out += "\n"
		if rank == square.Rank1 {
			break
		}
	}
	out += "Fen: " + p.FEN() + "\n"
	return out
}
