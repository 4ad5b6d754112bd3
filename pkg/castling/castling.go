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

// Package castling models the four-bit castling-rights mask and the
// lookup tables needed to move the rook when a king castles.
package castling

import (
	"strings"

	"github.com/phillipduarte/enoki-chess/pkg/piece"
	"github.com/phillipduarte/enoki-chess/pkg/square"
)

// Rights is a four-bit mask of remaining castling rights.
type Rights uint8

const (
	WhiteKingside Rights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	None Rights = 0
	All  Rights = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// NewFromString parses the FEN castling-availability field, e.g. "KQkq",
// "Kq", or "-". Unknown characters are ignored rather than rejected here;
// validation of the field as a whole happens in the FEN parser, which
// checks the character set before calling this.
func NewFromString(s string) Rights {
	if s == "-" {
		return None
	}

	var r Rights
	for _, c := range s {
		switch c {
		case 'K':
			r |= WhiteKingside
		case 'Q':
			r |= WhiteQueenside
		case 'k':
			r |= BlackKingside
		case 'q':
			r |= BlackQueenside
		}
	}
	return r
}

func (r Rights) String() string {
	var b strings.Builder
	if r&WhiteKingside != 0 {
		b.WriteByte('K')
	}
	if r&WhiteQueenside != 0 {
		b.WriteByte('Q')
	}
	if r&BlackKingside != 0 {
		b.WriteByte('k')
	}
	if r&BlackQueenside != 0 {
		b.WriteByte('q')
	}
	if b.Len() == 0 {
		return "-"
	}
	return b.String()
}

// RookMove describes the rook relocation a castling king move implies.
type RookMove struct {
	From, To square.Square
	Rook     piece.Kind
}

// RooksByKingTarget is indexed by the king's destination square during
// castling and gives the matching rook move. Other squares hold the zero
// RookMove and are never consulted, since castling is only legal when the
// king's target is one of these four squares.
var RooksByKingTarget = map[square.Square]RookMove{
	square.G1: {From: square.H1, To: square.F1, Rook: piece.WhiteRook},
	square.C1: {From: square.A1, To: square.D1, Rook: piece.WhiteRook},
	square.G8: {From: square.H8, To: square.F8, Rook: piece.BlackRook},
	square.C8: {From: square.A8, To: square.D8, Rook: piece.BlackRook},
}

// lostOnLeaving maps a square to the castling rights permanently lost
// when a piece leaves (or is captured on) that square: the king's home
// square revokes both rights for its side, a rook's home square revokes
// only its own side's right on that wing.
var lostOnLeaving = map[square.Square]Rights{
	square.E1: WhiteKingside | WhiteQueenside,
	square.H1: WhiteKingside,
	square.A1: WhiteQueenside,
	square.E8: BlackKingside | BlackQueenside,
	square.H8: BlackKingside,
	square.A8: BlackQueenside,
}

// Lost returns the rights that are revoked because a piece left (moved
// away from) or was captured on the given square.
func Lost(s square.Square) Rights {
	return lostOnLeaving[s]
}
