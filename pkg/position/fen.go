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

package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/phillipduarte/enoki-chess/pkg/castling"
	"github.com/phillipduarte/enoki-chess/pkg/piece"
	"github.com/phillipduarte/enoki-chess/pkg/square"
)

// StartFEN is the standard starting position in Forsyth-Edwards Notation.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// StartingPosition returns a freshly parsed standard starting position.
// The starting FEN is known-good, so a parse failure here is a bug in the
// engine itself and panics rather than propagating an error.
func StartingPosition() *Position {
	p, err := Parse(StartFEN)
	if err != nil {
		panic(fmt.Sprintf("position: starting FEN failed to parse: %v", err))
	}
	return p
}

const validPlacementChars = "12345678/pnbrqkPNBRQK"

// Parse builds a Position from a six-field FEN string. It fails with
// ErrBadFEN when the field count is wrong, the piece-placement field
// contains a character outside {1-8,/,pnbrqkPNBRQK}, the active-color
// field is not "w" or "b", the en-passant field is neither "-" nor a
// valid square, or the move counters are not non-negative integers. It
// fails with ErrMalformedPosition when the resulting position does not
// have exactly one king per side.
//
// On success, the derived legality cache is computed for the position's
// side to move before returning.
func Parse(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fmt.Errorf("%w: expected 6 fields, got %d", ErrBadFEN, len(fields))
	}

	placement, activeColor, castlingField, epField, halfmoveField, fullmoveField :=
		fields[0], fields[1], fields[2], fields[3], fields[4], fields[5]

	if strings.ContainsFunc(placement, func(r rune) bool {
		return !strings.ContainsRune(validPlacementChars, r)
	}) {
		return nil, fmt.Errorf("%w: invalid character in piece placement %q", ErrBadFEN, placement)
	}

	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("%w: expected 8 ranks, got %d", ErrBadFEN, len(ranks))
	}

	p := New()

	for i, rankStr := range ranks {
		rank := square.Rank8 - square.Rank(i)
		file := square.FileA

		for _, c := range rankStr {
			if file > square.FileH {
				return nil, fmt.Errorf("%w: rank %q overflows the board", ErrBadFEN, rankStr)
			}

			if c >= '1' && c <= '8' {
				file += square.File(c - '0')
				continue
			}

			k, err := piece.NewFromString(byte(c))
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrBadFEN, err)
			}

			p.place(square.New(file, rank), k)
			file++
		}

		if file != square.FileH+1 {
			return nil, fmt.Errorf("%w: rank %q does not cover 8 files", ErrBadFEN, rankStr)
		}
	}

	color, err := piece.ColorFrom(activeColor)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFEN, err)
	}
	p.SideToMove = color

	if castlingField != "-" {
		for _, c := range castlingField {
			if !strings.ContainsRune("KQkq", c) {
				return nil, fmt.Errorf("%w: invalid castling field %q", ErrBadFEN, castlingField)
			}
		}
	}
	p.CastlingRights = castling.NewFromString(castlingField)

	epSquare, err := square.NewFromString(epField)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFEN, err)
	}
	p.EnPassantTarget = epSquare

	halfmove, err := parseNonNegativeInt(halfmoveField)
	if err != nil {
		return nil, fmt.Errorf("%w: halfmove clock %v", ErrBadFEN, err)
	}
	p.HalfmoveClock = halfmove

	fullmove, err := parseNonNegativeInt(fullmoveField)
	if err != nil {
		return nil, fmt.Errorf("%w: fullmove number %v", ErrBadFEN, err)
	}
	if fullmove == 0 {
		return nil, fmt.Errorf("%w: fullmove number must be positive", ErrBadFEN)
	}
	p.FullmoveNumber = fullmove

	if p.KingCount(piece.White) != 1 || p.KingCount(piece.Black) != 1 {
		return nil, ErrMalformedPosition
	}

	p.recomputeLegality()

	return p, nil
}

func parseNonNegativeInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid non-negative integer %q", s)
	}
	return n, nil
}

// FEN serializes the position back to a six-field FEN string. Parse and
// FEN round-trip for any position Parse accepts.
func (p *Position) FEN() string {
	var sb strings.Builder

	for rank := square.Rank8; ; rank-- {
		empty := 0
		for file := square.FileA; file <= square.FileH; file++ {
			k := p.PieceAt(square.New(file, rank))
			if k == piece.None {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(k.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank != square.Rank1 {
			sb.WriteByte('/')
		}
		if rank == square.Rank1 {
			break
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(p.SideToMove.String())
	sb.WriteByte(' ')
	sb.WriteString(p.CastlingRights.String())
	sb.WriteByte(' ')
	sb.WriteString(p.EnPassantTarget.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.FullmoveNumber))

	return sb.String()
}
