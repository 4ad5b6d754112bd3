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

// Package square declares the board coordinate system used throughout
// the engine: squares, files and ranks, and conversions to and from
// algebraic notation.
//
// Squares are numbered 0..63 with square = rank*8 + file, rank 0 being
// white's first rank and file 0 being the a-file. This means bit 0 of a
// bitboard corresponds to a1 and bit 63 to h8.
package square

import "fmt"

// Square identifies one of the 64 board squares.
type Square int8

// None represents the absence of a square, used for "no en-passant
// target" and similar optional-square fields.
const None Square = -1

// N is the number of squares on the board.
const N = 64

const (
	A1, B1, C1, D1, E1, F1, G1, H1 Square = 0, 1, 2, 3, 4, 5, 6, 7
	A2, B2, C2, D2, E2, F2, G2, H2 Square = 8, 9, 10, 11, 12, 13, 14, 15
	A3, B3, C3, D3, E3, F3, G3, H3 Square = 16, 17, 18, 19, 20, 21, 22, 23
	A4, B4, C4, D4, E4, F4, G4, H4 Square = 24, 25, 26, 27, 28, 29, 30, 31
	A5, B5, C5, D5, E5, F5, G5, H5 Square = 32, 33, 34, 35, 36, 37, 38, 39
	A6, B6, C6, D6, E6, F6, G6, H6 Square = 40, 41, 42, 43, 44, 45, 46, 47
	A7, B7, C7, D7, E7, F7, G7, H7 Square = 48, 49, 50, 51, 52, 53, 54, 55
	A8, B8, C8, D8, E8, F8, G8, H8 Square = 56, 57, 58, 59, 60, 61, 62, 63
)

// New builds a Square from a file and a rank.
func New(file File, rank Rank) Square {
	return Square(int(rank)<<3 | int(file))
}

// NewFromString parses a square in algebraic notation ("e4"), or "-" for
// None.
func NewFromString(id string) (Square, error) {
	if id == "-" {
		return None, nil
	}
	if len(id) != 2 {
		return None, fmt.Errorf("square: %q is not two characters", id)
	}

	file, err := FileFrom(id[0])
	if err != nil {
		return None, err
	}
	rank, err := RankFrom(id[1])
	if err != nil {
		return None, err
	}

	return New(file, rank), nil
}

// File returns the file of the square.
func (s Square) File() File {
	return File(s & 7)
}

// Rank returns the rank of the square.
func (s Square) Rank() Rank {
	return Rank(s >> 3)
}

// String renders the square in algebraic notation, or "-" for None.
func (s Square) String() string {
	if s == None {
		return "-"
	}
	return s.File().String() + s.Rank().String()
}
