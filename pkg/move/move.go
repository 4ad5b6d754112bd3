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

// Package move declares the Move type: a from/to pair plus the flags and
// promotion metadata needed to make and unmake it, and the UCI long
// algebraic notation used to exchange moves with a GUI host.
package move

import (
	"github.com/phillipduarte/enoki-chess/pkg/piece"
	"github.com/phillipduarte/enoki-chess/pkg/square"
)

// Move represents a single chess move. Two moves are equal iff From, To
// and Promotion agree; Flags are derived from board context when the
// move is generated and do not participate in equality, so a
// generator-produced move and a GUI-supplied move string for "the same"
// move may disagree on, say, IsCapture if the caller built the flags by
// hand, but never disagree on identity.
type Move struct {
	From, To  square.Square
	Promotion piece.Kind // valid iff IsPromotion is set; piece.None otherwise

	Flags Flags
}

// Flags records contextual information about a move that the generator
// derives from the board but that is not needed to distinguish one move
// from another.
type Flags uint8

const (
	IsCapture Flags = 1 << iota
	IsEnPassant
	IsCastling
	IsPromotion
)

// Null is the "no move" value, used as a zero value and as a sentinel in
// search code.
var Null = Move{From: square.None, To: square.None, Promotion: piece.None}

// New builds a Move with the given from/to/promotion and flags.
func New(from, to square.Square, promotion piece.Kind, flags Flags) Move {
	return Move{From: from, To: to, Promotion: promotion, Flags: flags}
}

// Equal reports whether two moves have the same identity: same from, to
// and promotion piece. Flags are ignored.
func (m Move) Equal(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promotion == o.Promotion
}

func (m Move) Is(f Flags) bool {
	return m.Flags&f != 0
}

// String renders the move in UCI long algebraic notation: "<from><to>"
// plus a lowercase promotion letter, e.g. "e2e4", "e7e8q". The null move
// renders as "0000".
func (m Move) String() string {
	if m.From == square.None && m.To == square.None {
		return "0000"
	}

	s := m.From.String() + m.To.String()
	if m.Is(IsPromotion) {
		s += promotionLetter(m.Promotion)
	}
	return s
}

func promotionLetter(k piece.Kind) string {
	switch k.Type() {
	case piece.Queen:
		return "q"
	case piece.Rook:
		return "r"
	case piece.Bishop:
		return "b"
	case piece.Knight:
		return "n"
	default:
		return ""
	}
}

// PromotionKinds lists the four piece types a pawn may promote to, in the
// order the generator emits them.
var PromotionKinds = [4]piece.Type{piece.Queen, piece.Rook, piece.Bishop, piece.Knight}

// PromotionKindFromLetter parses a UCI promotion letter ('q','r','b','n')
// into a piece.Type.
func PromotionKindFromLetter(c byte) (piece.Type, bool) {
	switch c {
	case 'q':
		return piece.Queen, true
	case 'r':
		return piece.Rook, true
	case 'b':
		return piece.Bishop, true
	case 'n':
		return piece.Knight, true
	default:
		return 0, false
	}
}
