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

// Package piece represents chess pieces the way the rest of the engine
// wants to address them: twelve concrete, colored kinds plus a sentinel
// "no piece" value, never a separate color+type pair. White kinds are
// 0..5, black kinds are 6..11, and None sits outside that range
// entirely.
package piece

import "fmt"

// Kind identifies one of the twelve colored pieces, or None.
type Kind int8

const (
	WhitePawn Kind = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing

	None Kind = 12
)

// N is the number of real (non-None) piece kinds.
const N = 12

// Color identifies a side.
type Color int8

const (
	White Color = iota
	Black
)

// Other returns the opposing color.
func (c Color) Other() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// ColorFrom parses the UCI/FEN "w"/"b" active-color field.
func ColorFrom(s string) (Color, error) {
	switch s {
	case "w":
		return White, nil
	case "b":
		return Black, nil
	default:
		return 0, fmt.Errorf("piece: %q is not a valid color", s)
	}
}

// Type identifies a piece's role irrespective of color.
type Type int8

const (
	Pawn Type = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// New builds the Kind for the given type and color.
func New(t Type, c Color) Kind {
	return Kind(c)*6 + Kind(t)
}

// Color returns the color of a real (non-None) piece kind.
func (k Kind) Color() Color {
	if k < BlackPawn {
		return White
	}
	return Black
}

// Type returns the piece type of a real (non-None) piece kind.
func (k Kind) Type() Type {
	return Type(int(k) % 6)
}

// String renders the kind as its FEN letter, uppercase for white,
// lowercase for black; "-" for None.
func (k Kind) String() string {
	if k == None {
		return "-"
	}
	const letters = "PNBRQKpnbrqk"
	return string(letters[k])
}

// NewFromString parses a single FEN piece letter.
func NewFromString(c byte) (Kind, error) {
	switch c {
	case 'P':
		return WhitePawn, nil
	case 'N':
		return WhiteKnight, nil
	case 'B':
		return WhiteBishop, nil
	case 'R':
		return WhiteRook, nil
	case 'Q':
		return WhiteQueen, nil
	case 'K':
		return WhiteKing, nil
	case 'p':
		return BlackPawn, nil
	case 'n':
		return BlackKnight, nil
	case 'b':
		return BlackBishop, nil
	case 'r':
		return BlackRook, nil
	case 'q':
		return BlackQueen, nil
	case 'k':
		return BlackKing, nil
	default:
		return None, fmt.Errorf("piece: %q is not a valid piece letter", c)
	}
}
