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
	"github.com/phillipduarte/enoki-chess/pkg/bitboard"
	"github.com/phillipduarte/enoki-chess/pkg/piece"
	"github.com/phillipduarte/enoki-chess/pkg/square"
)

// recomputeLegality rebuilds the legality cache for the current side to
// move from scratch. Called after Parse and after MakeMove; UnmakeMove
// restores a previously-cached value instead of calling this, since the
// cache from before the move was already saved in the undo stack.
func (p *Position) recomputeLegality() {
	us, them := p.SideToMove, p.SideToMove.Other()
	kingSq := p.kings[us]

	p.Legality.OpponentAttacks = p.attacksBy(them, kingSq)
	p.computeCheckers(us, them, kingSq)
	p.computePins(us, them, kingSq)
}

// attacksBy returns every square `them` attacks, with the friendly king
// (at friendlyKingSq) removed from the occupancy used for sliding pieces.
// Removing the king lets a slider's ray continue through the square the
// king is leaving, which is essential for correctly marking king-walk
// destinations as attacked.
func (p *Position) attacksBy(them piece.Color, friendlyKingSq square.Square) bitboard.Board {
	occ := p.Occupied() &^ bitboard.FromSquare(friendlyKingSq)

	var attacks bitboard.Board

	pawns := p.pieceBB[piece.New(piece.Pawn, them)]
	if them == piece.White {
		attacks |= pawns.NorthWest() | pawns.NorthEast()
	} else {
		attacks |= pawns.SouthWest() | pawns.SouthEast()
	}

	for knights := p.pieceBB[piece.New(piece.Knight, them)]; knights != bitboard.Empty; {
		attacks |= bitboard.Knight[knights.Pop()]
	}

	for bishops := p.pieceBB[piece.New(piece.Bishop, them)]; bishops != bitboard.Empty; {
		attacks |= bitboard.Bishop(bishops.Pop(), occ)
	}

	for rooks := p.pieceBB[piece.New(piece.Rook, them)]; rooks != bitboard.Empty; {
		attacks |= bitboard.Rook(rooks.Pop(), occ)
	}

	for queens := p.pieceBB[piece.New(piece.Queen, them)]; queens != bitboard.Empty; {
		attacks |= bitboard.Queen(queens.Pop(), occ)
	}

	attacks |= bitboard.King[p.kings[them]]

	return attacks
}

// computeCheckers finds the enemy pieces giving check to the side-to-move
// king, by symmetry: casting attacks from the king square as if it were
// each piece kind and intersecting with the matching enemy bitboard.
func (p *Position) computeCheckers(us, them piece.Color, kingSq square.Square) {
	occ := p.Occupied()

	var checkers bitboard.Board

	pawnAttackSquares := bitboard.Pawn[us][kingSq]
	checkers |= pawnAttackSquares & p.pieceBB[piece.New(piece.Pawn, them)]

	checkers |= bitboard.Knight[kingSq] & p.pieceBB[piece.New(piece.Knight, them)]

	diagonal := bitboard.Bishop(kingSq, occ)
	checkers |= diagonal & (p.pieceBB[piece.New(piece.Bishop, them)] | p.pieceBB[piece.New(piece.Queen, them)])

	orthogonal := bitboard.Rook(kingSq, occ)
	checkers |= orthogonal & (p.pieceBB[piece.New(piece.Rook, them)] | p.pieceBB[piece.New(piece.Queen, them)])

	p.Legality.CheckerMask = checkers

	switch checkers.Count() {
	case 1:
		checkerSq := checkers.FirstOne()
		p.Legality.CheckBlockMask = bitboard.Between[kingSq][checkerSq] | bitboard.FromSquare(checkerSq)
	default:
		// zero or two checkers: the mask is never consulted.
		p.Legality.CheckBlockMask = bitboard.Empty
	}
}

// orthogonalDirs and diagonalDirs split the eight ray directions into the
// two pin families: a rook/queen can only pin along a rank or file, a
// bishop/queen only along a diagonal.
var orthogonalDirs = [4]bitboard.Direction{bitboard.North, bitboard.South, bitboard.East, bitboard.West}
var diagonalDirs = [4]bitboard.Direction{bitboard.NorthEast, bitboard.NorthWest, bitboard.SouthEast, bitboard.SouthWest}

// computePins finds, for each of the eight directions from the king, a
// friendly piece immediately followed (with no intervening piece) by an
// enemy slider of the matching flavor, and records it as pinned.
func (p *Position) computePins(us, them piece.Color, kingSq square.Square) {
	p.Legality.PinMask = bitboard.Empty

	occ := p.Occupied()
	friendly := p.ColorBB(us)

	orthogonalSliders := p.pieceBB[piece.New(piece.Rook, them)] | p.pieceBB[piece.New(piece.Queen, them)]
	diagonalSliders := p.pieceBB[piece.New(piece.Bishop, them)] | p.pieceBB[piece.New(piece.Queen, them)]

	p.scanPinDirections(orthogonalDirs[:], kingSq, occ, friendly, orthogonalSliders)
	p.scanPinDirections(diagonalDirs[:], kingSq, occ, friendly, diagonalSliders)
}

func (p *Position) scanPinDirections(dirs []bitboard.Direction, kingSq square.Square, occ, friendly, matchingSliders bitboard.Board) {
	for _, d := range dirs {
		ray := bitboard.Ray[kingSq][d]
		blockers := ray & occ
		if blockers == bitboard.Empty {
			continue
		}

		first := nearestAlong(blockers, d)
		if !friendly.IsSet(first) {
			// the nearest piece on this ray is an enemy piece (possibly
			// itself a checker, handled separately) or doesn't exist;
			// either way there is no pin along this ray.
			continue
		}

		beyond := bitboard.Ray[first][d] & occ
		if beyond == bitboard.Empty {
			continue
		}

		second := nearestAlong(beyond, d)
		if !matchingSliders.IsSet(second) {
			continue
		}

		p.Legality.PinMask.Set(first)
		p.Legality.PinRay[first] = bitboard.Between[kingSq][second] | bitboard.FromSquare(second)
	}
}

// nearestAlong returns the square within blockers nearest to the ray's
// origin: the lowest-indexed bit for a positive direction, the
// highest-indexed bit for a negative one.
func nearestAlong(blockers bitboard.Board, d bitboard.Direction) square.Square {
	if d.Positive() {
		return blockers.FirstOne()
	}
	return blockers.LastOne()
}
