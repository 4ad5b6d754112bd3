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

// Package bitboard implements the 64-bit bitboard representation used by
// the rest of the engine, along with the precomputed attack tables (knight
// and king steps, eight-direction ray tables) and the classical
// occupancy/first-blocker sliding-attack oracle built on top of them.
//
// Bit 0 corresponds to a1 and bit 63 to h8: North is a left shift by 8,
// East a left shift by 1 (masked against the h-file to stop wraparound).
package bitboard

import (
	"math/bits"
	"strings"

	"github.com/phillipduarte/enoki-chess/pkg/square"
)

// Board is a 64-bit bitboard; bit i set means square i is occupied by
// whatever the board represents.
type Board uint64

// Empty and Universe are the zero and all-set bitboards.
const (
	Empty    Board = 0
	Universe Board = ^Board(0)
)

// File masks.
const (
	FileA Board = 0x0101010101010101
	FileB Board = FileA << 1
	FileC Board = FileA << 2
	FileD Board = FileA << 3
	FileE Board = FileA << 4
	FileF Board = FileA << 5
	FileG Board = FileA << 6
	FileH Board = FileA << 7
)

// Rank masks.
const (
	Rank1 Board = 0xFF
	Rank2 Board = Rank1 << (8 * 1)
	Rank3 Board = Rank1 << (8 * 2)
	Rank4 Board = Rank1 << (8 * 3)
	Rank5 Board = Rank1 << (8 * 4)
	Rank6 Board = Rank1 << (8 * 5)
	Rank7 Board = Rank1 << (8 * 6)
	Rank8 Board = Rank1 << (8 * 7)
)

// Squares holds a single-bit mask per square, indexed by square.Square.
var Squares [square.N]Board

func init() {
	for s := square.Square(0); s < square.N; s++ {
		Squares[s] = 1 << uint(s)
	}
}

// FromSquare returns the single-bit mask for a square.
func FromSquare(s square.Square) Board {
	if s == square.None {
		return Empty
	}
	// computed directly rather than read from Squares: the attack tables
	// in attacks.go are built by an init() that runs before this file's.
	return Board(1) << uint(s)
}

// IsSet reports whether the given square is set.
func (b Board) IsSet(s square.Square) bool {
	return b&FromSquare(s) != Empty
}

// Set sets the given square. Setting square.None is a no-op.
func (b *Board) Set(s square.Square) {
	*b |= FromSquare(s)
}

// Unset clears the given square. Clearing square.None is a no-op.
func (b *Board) Unset(s square.Square) {
	*b &^= FromSquare(s)
}

// Count returns the number of set bits.
func (b Board) Count() int {
	return bits.OnesCount64(uint64(b))
}

// FirstOne returns the lowest-indexed set square, or square.None if empty.
func (b Board) FirstOne() square.Square {
	if b == Empty {
		return square.None
	}
	return square.Square(bits.TrailingZeros64(uint64(b)))
}

// LastOne returns the highest-indexed set square, or square.None if empty.
func (b Board) LastOne() square.Square {
	if b == Empty {
		return square.None
	}
	return square.Square(63 - bits.LeadingZeros64(uint64(b)))
}

// Pop returns and clears the lowest-indexed set square.
func (b *Board) Pop() square.Square {
	s := b.FirstOne()
	*b &= *b - 1
	return s
}

// North, South, East and West shift an entire bitboard by one square in
// the named compass direction, masking off the file/rank that would
// otherwise wrap around the board edge.
func (b Board) North() Board { return b << 8 }
func (b Board) South() Board { return b >> 8 }
func (b Board) East() Board  { return (b &^ FileH) << 1 }
func (b Board) West() Board  { return (b &^ FileA) >> 1 }

func (b Board) NorthEast() Board { return (b &^ FileH) << 9 }
func (b Board) NorthWest() Board { return (b &^ FileA) << 7 }
func (b Board) SouthEast() Board { return (b &^ FileH) >> 7 }
func (b Board) SouthWest() Board { return (b &^ FileA) >> 9 }

// String renders the board as an 8x8 grid of 1s and 0s, rank 8 first.
func (b Board) String() string {
	var sb strings.Builder
	for rank := square.Rank8; ; rank-- {
		for file := square.FileA; file <= square.FileH; file++ {
			if b.IsSet(square.New(file, rank)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
			if file != square.FileH {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
		if rank == square.Rank1 {
			break
		}
	}
	return sb.String()
}
