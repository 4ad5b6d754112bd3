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

// Package eval implements the leaf-only static evaluation function:
// material, piece-square bonuses and a small mobility term, all summed
// from white's perspective in centipawns. It is deliberately decoupled
// from move generation — replacing this package must never require
// touching pkg/position's generator.
package eval

import (
	"math"

	"github.com/phillipduarte/enoki-chess/pkg/move"
	"github.com/phillipduarte/enoki-chess/pkg/piece"
	"github.com/phillipduarte/enoki-chess/pkg/position"
	"github.com/phillipduarte/enoki-chess/pkg/square"
)

// Score is a signed centipawn evaluation, positive favoring white.
type Score int32

// Inf is used as the checkmate score; it is kept well clear of
// math.MaxInt32 so that it and its negation fit a Score with room to
// spare. The search applies no mate-distance adjustment to it.
const Inf Score = math.MaxInt32 / 2

// mobilityWeight is the centipawn bonus per legal move available to the
// side to move. Kept small: it takes more than 50 legal moves for the
// bonus to outweigh a single pawn.
const mobilityWeight Score = 2

// Evaluate scores a leaf position from white's perspective. moves is the
// legal move list the caller (search) has already generated for the
// position's side to move; an empty list means the position is terminal.
func Evaluate(p *position.Position, moves []move.Move) Score {
	if len(moves) == 0 {
		if p.IsInCheck() {
			if p.SideToMove == piece.White {
				return -Inf
			}
			return Inf
		}
		return 0
	}

	var score Score

	for k := piece.WhitePawn; k < piece.None; k++ {
		bb := p.PieceBB(k)
		t := k.Type()
		for bb != 0 {
			s := bb.Pop()
			bonus := pieceSquareBonus(k, s)
			if k.Color() == piece.White {
				score += Score(material[t]) + bonus
			} else {
				score -= Score(material[t]) + bonus
			}
		}
	}

	mobility := mobilityWeight * Score(len(moves))
	if p.SideToMove == piece.White {
		score += mobility
	} else {
		score -= mobility
	}

	return score
}

// pieceSquareBonus returns a piece's table bonus from its own color's
// perspective (positive is good for that color, since White's and
// Black's tables are mirror images): callers apply the color's overall
// sign themselves when folding it into a white-perspective total.
func pieceSquareBonus(k piece.Kind, s square.Square) Score {
	t := k.Type()
	if k.Color() == piece.Black {
		s = mirrorVertical(s)
	}
	return Score(pieceSquareTable[t][s])
}
