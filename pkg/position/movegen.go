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
	"github.com/phillipduarte/enoki-chess/pkg/castling"
	"github.com/phillipduarte/enoki-chess/pkg/move"
	"github.com/phillipduarte/enoki-chess/pkg/piece"
	"github.com/phillipduarte/enoki-chess/pkg/square"
)

// GenerateMoves produces every strictly legal move for the side to move,
// in a single pass over the legality cache: no pseudo-legal move is ever
// appended and then discarded. Move order is unspecified and callers must
// not depend on it for correctness.
func (p *Position) GenerateMoves() []move.Move {
	moves := make([]move.Move, 0, 32)

	us := p.SideToMove
	kingSq := p.kings[us]

	p.appendKingMoves(&moves, us, kingSq)

	if p.Legality.Checkers() >= 2 {
		// double check: only the king can move.
		return moves
	}

	targetMask := ^p.ColorBB(us)
	if p.Legality.Checkers() == 1 {
		targetMask &= p.Legality.CheckBlockMask
	}

	p.appendKnightMoves(&moves, us, targetMask)
	p.appendSlidingMoves(&moves, us, piece.Bishop, targetMask)
	p.appendSlidingMoves(&moves, us, piece.Rook, targetMask)
	p.appendSlidingMoves(&moves, us, piece.Queen, targetMask)
	p.appendPawnMoves(&moves, us, targetMask)

	return moves
}

func (p *Position) appendKingMoves(moves *[]move.Move, us piece.Color, kingSq square.Square) {
	dest := bitboard.King[kingSq] &^ p.ColorBB(us) &^ p.Legality.OpponentAttacks
	p.serialize(moves, kingSq, dest)

	if p.Legality.Checkers() == 0 {
		p.appendCastlingMoves(moves, us, kingSq)
	}
}

// appendCastlingMoves checks, for each side the mover still has the right
// to, that the squares between king and rook are empty and that none of
// the king's transit squares are attacked.
func (p *Position) appendCastlingMoves(moves *[]move.Move, us piece.Color, kingSq square.Square) {
	occ := p.Occupied()
	attacked := p.Legality.OpponentAttacks

	type side struct {
		right       castling.Rights
		target      square.Square
		emptyMask   bitboard.Board
		transitMask bitboard.Board
	}

	var sides [2]side
	if us == piece.White {
		sides = [2]side{
			{castling.WhiteKingside, square.G1, sq(square.F1, square.G1), sq(square.E1, square.F1, square.G1)},
			{castling.WhiteQueenside, square.C1, sq(square.B1, square.C1, square.D1), sq(square.E1, square.D1, square.C1)},
		}
	} else {
		sides = [2]side{
			{castling.BlackKingside, square.G8, sq(square.F8, square.G8), sq(square.E8, square.F8, square.G8)},
			{castling.BlackQueenside, square.C8, sq(square.B8, square.C8, square.D8), sq(square.E8, square.D8, square.C8)},
		}
	}

	for _, s := range sides {
		if p.CastlingRights&s.right == 0 {
			continue
		}
		if occ&s.emptyMask != bitboard.Empty {
			continue
		}
		if attacked&s.transitMask != bitboard.Empty {
			continue
		}
		*moves = append(*moves, move.New(kingSq, s.target, piece.None, move.IsCastling))
	}
}

func sq(squares ...square.Square) bitboard.Board {
	var b bitboard.Board
	for _, s := range squares {
		b.Set(s)
	}
	return b
}

func (p *Position) appendKnightMoves(moves *[]move.Move, us piece.Color, targetMask bitboard.Board) {
	// a pinned knight can never move without abandoning the pin ray, since
	// no knight move stays on a straight line through the king.
	knights := p.pieceBB[piece.New(piece.Knight, us)] &^ p.Legality.PinMask
	for knights != bitboard.Empty {
		from := knights.Pop()
		p.serialize(moves, from, bitboard.Knight[from]&targetMask)
	}
}

// appendSlidingMoves handles bishops, rooks and queens identically: the
// oracle already returns only the attacked squares, and ANDing a pinned
// piece's attacks with its pin ray is enough to restrict it correctly —
// a bishop pinned orthogonally has no diagonal attack on an orthogonal
// ray, so the intersection is empty without any special-casing.
func (p *Position) appendSlidingMoves(moves *[]move.Move, us piece.Color, t piece.Type, targetMask bitboard.Board) {
	occ := p.Occupied()
	pieces := p.pieceBB[piece.New(t, us)]

	for pieces != bitboard.Empty {
		from := pieces.Pop()

		var attacks bitboard.Board
		switch t {
		case piece.Bishop:
			attacks = bitboard.Bishop(from, occ)
		case piece.Rook:
			attacks = bitboard.Rook(from, occ)
		case piece.Queen:
			attacks = bitboard.Queen(from, occ)
		}

		dest := attacks & targetMask
		if p.Legality.PinMask.IsSet(from) {
			dest &= p.Legality.PinRay[from]
		}
		p.serialize(moves, from, dest)
	}
}

func (p *Position) appendPawnMoves(moves *[]move.Move, us piece.Color, targetMask bitboard.Board) {
	them := us.Other()
	empty := p.Empty()
	enemy := p.ColorBB(them)

	pawns := p.pieceBB[piece.New(piece.Pawn, us)]

	var push, attackLeft, attackRight func(bitboard.Board) bitboard.Board
	var promotionRank, doublePushRank bitboard.Board
	var pushDistance, captureLeftDistance, captureRightDistance square.Square

	if us == piece.White {
		push = bitboard.Board.North
		attackLeft, attackRight = bitboard.Board.NorthWest, bitboard.Board.NorthEast
		promotionRank, doublePushRank = bitboard.Rank8, bitboard.Rank3
		pushDistance, captureLeftDistance, captureRightDistance = 8, 7, 9
	} else {
		push = bitboard.Board.South
		attackLeft, attackRight = bitboard.Board.SouthWest, bitboard.Board.SouthEast
		promotionRank, doublePushRank = bitboard.Rank1, bitboard.Rank6
		pushDistance, captureLeftDistance, captureRightDistance = -8, -9, -7
	}

	single := push(pawns) & empty
	double := push(single&doublePushRank) & empty & targetMask

	for b := single & targetMask; b != bitboard.Empty; {
		to := b.Pop()
		p.emitPawnMove(moves, to-pushDistance, to, promotionRank, 0, us)
	}

	for b := double; b != bitboard.Empty; {
		to := b.Pop()
		from := to - 2*pushDistance
		if p.pinAllows(from, to) {
			*moves = append(*moves, move.New(from, to, piece.None, 0))
		}
	}

	for b := attackLeft(pawns) & enemy & targetMask; b != bitboard.Empty; {
		to := b.Pop()
		p.emitPawnMove(moves, to-captureLeftDistance, to, promotionRank, move.IsCapture, us)
	}

	for b := attackRight(pawns) & enemy & targetMask; b != bitboard.Empty; {
		to := b.Pop()
		p.emitPawnMove(moves, to-captureRightDistance, to, promotionRank, move.IsCapture, us)
	}

	p.appendEnPassant(moves, pawns, us, them)
}

// emitPawnMove checks the pin constraint and, on the promotion rank, emits
// all four promotion kinds instead of a single move.
func (p *Position) emitPawnMove(moves *[]move.Move, from, to square.Square, promotionRank bitboard.Board, flags move.Flags, us piece.Color) {
	if !p.pinAllows(from, to) {
		return
	}

	if promotionRank&bitboard.FromSquare(to) == bitboard.Empty {
		*moves = append(*moves, move.New(from, to, piece.None, flags))
		return
	}

	for _, t := range move.PromotionKinds {
		*moves = append(*moves, move.New(from, to, piece.New(t, us), flags|move.IsPromotion))
	}
}

// appendEnPassant handles the single remaining pawn move kind. Beyond
// the usual pin and check constraints it covers the lines only the
// capture itself can open. Capturing en passant removes both pawns from
// the king's rank at once, so an enemy rook or queen on that rank may be
// uncovered even though neither pawn is pinned on its own; the test
// reruns the rook oracle on occupancy with both pawns removed, restricted
// to the king's rank (a file through the captured pawn stays shielded by
// the capturing pawn, which lands on that file). Removing the captured
// pawn may also open a diagonal through its square to an enemy bishop or
// queen; the bishop oracle is rerun on the occupancy after the capture.
func (p *Position) appendEnPassant(moves *[]move.Move, pawns bitboard.Board, us, them piece.Color) {
	if p.EnPassantTarget == square.None {
		return
	}

	capturedSq := enPassantCaptureSquare(us, p.EnPassantTarget)

	if p.Legality.Checkers() == 1 {
		blockMask := p.Legality.CheckBlockMask
		if !blockMask.IsSet(p.EnPassantTarget) && !blockMask.IsSet(capturedSq) {
			return
		}
	}

	candidates := bitboard.Pawn[them][p.EnPassantTarget] & pawns

	kingSq := p.kings[us]
	kingRank := bitboard.Rank1 << (8 * uint(kingSq.Rank()))
	occWithoutPawns := p.Occupied() &^ bitboard.FromSquare(capturedSq)
	enemyRooksQueens := p.pieceBB[piece.New(piece.Rook, them)] | p.pieceBB[piece.New(piece.Queen, them)]
	enemyBishopsQueens := p.pieceBB[piece.New(piece.Bishop, them)] | p.pieceBB[piece.New(piece.Queen, them)]

	for candidates != bitboard.Empty {
		from := candidates.Pop()

		if p.Legality.PinMask.IsSet(from) && !p.Legality.PinRay[from].IsSet(p.EnPassantTarget) {
			continue
		}

		occ := occWithoutPawns &^ bitboard.FromSquare(from)
		if bitboard.Rook(kingSq, occ)&enemyRooksQueens&kingRank != bitboard.Empty {
			continue
		}
		if bitboard.Bishop(kingSq, occ|bitboard.FromSquare(p.EnPassantTarget))&enemyBishopsQueens != bitboard.Empty {
			continue
		}

		*moves = append(*moves, move.New(from, p.EnPassantTarget, piece.None, move.IsCapture|move.IsEnPassant))
	}
}

// pinAllows reports whether a move from "from" to "to" is compatible with
// from's pin ray, or is unconstrained because from is not pinned.
func (p *Position) pinAllows(from, to square.Square) bool {
	if !p.Legality.PinMask.IsSet(from) {
		return true
	}
	return p.Legality.PinRay[from].IsSet(to)
}

// serialize appends one move per set bit in dest, from a common origin.
func (p *Position) serialize(moves *[]move.Move, from square.Square, dest bitboard.Board) {
	enemy := p.ColorBB(p.SideToMove.Other())
	for dest != bitboard.Empty {
		to := dest.Pop()
		var flags move.Flags
		if enemy.IsSet(to) {
			flags |= move.IsCapture
		}
		*moves = append(*moves, move.New(from, to, piece.None, flags))
	}
}
