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
	"github.com/phillipduarte/enoki-chess/pkg/castling"
	"github.com/phillipduarte/enoki-chess/pkg/move"
	"github.com/phillipduarte/enoki-chess/pkg/piece"
	"github.com/phillipduarte/enoki-chess/pkg/square"
)

// StateDelta is the minimal information needed to unmake a move: what was
// captured and where, the piece that stood on the from-square before the
// move (so promotions restore a pawn, not the promoted piece), and
// everything about the position that the move could have changed but
// that isn't otherwise recoverable from the move itself. It is pushed
// onto the Position's history stack at MakeMove and popped at UnmakeMove.
type StateDelta struct {
	Move move.Move

	FromPiece      piece.Kind // the piece that was on Move.From before moving
	CapturedPiece  piece.Kind // piece.None if the move was not a capture
	CapturedSquare square.Square

	WasCastling bool

	PriorCastlingRights  castling.Rights
	PriorEnPassantTarget square.Square
	PriorHalfmoveClock   int
	PriorLegality        Legality
}

// MakeMove applies a legal move to the position: it is the caller's
// responsibility to have obtained m from GenerateMoves (or to otherwise
// know it is legal) — MakeMove does not re-validate legality.
//
// Piece bitboards remain pairwise disjoint, exactly one king per side
// remains set, castling rights only ever shrink, and the en-passant
// target is set if and only if this move was a pawn double push.
func (p *Position) MakeMove(m move.Move) {
	mover := p.SideToMove
	fromPiece := p.PieceAt(m.From)

	delta := StateDelta{
		Move:                 m,
		FromPiece:            fromPiece,
		CapturedPiece:        piece.None,
		PriorCastlingRights:  p.CastlingRights,
		PriorEnPassantTarget: p.EnPassantTarget,
		PriorHalfmoveClock:   p.HalfmoveClock,
		PriorLegality:        p.Legality,
	}

	isDoublePush := fromPiece.Type() == piece.Pawn && absDiff(m.To, m.From) == 16
	isCastling := fromPiece.Type() == piece.King && absDiff(m.To, m.From) == 2
	isEnPassant := fromPiece.Type() == piece.Pawn && m.To == p.EnPassantTarget && p.PieceAt(m.To) == piece.None

	captureSq := m.To
	if isEnPassant {
		captureSq = enPassantCaptureSquare(mover, m.To)
	}

	isCapture := isEnPassant || p.PieceAt(m.To) != piece.None

	if isCapture {
		delta.CapturedPiece = p.PieceAt(captureSq)
		delta.CapturedSquare = captureSq
		p.remove(captureSq)
	}

	p.remove(m.From)

	destPiece := fromPiece
	if m.Promotion != piece.None {
		destPiece = m.Promotion
	}
	p.place(m.To, destPiece)

	if isCastling {
		delta.WasCastling = true
		rookMove := castling.RooksByKingTarget[m.To]
		p.remove(rookMove.From)
		p.place(rookMove.To, rookMove.Rook)
	}

	p.CastlingRights &^= castling.Lost(m.From) | castling.Lost(m.To)

	p.EnPassantTarget = square.None
	if isDoublePush {
		p.EnPassantTarget = enPassantCaptureSquare(mover, m.To)
	}

	if fromPiece.Type() == piece.Pawn || isCapture {
		p.HalfmoveClock = 0
	} else {
		p.HalfmoveClock++
	}

	p.SideToMove = mover.Other()
	if mover == piece.Black {
		p.FullmoveNumber++
	}

	p.history = append(p.history, delta)

	p.recomputeLegality()
}

// UnmakeMove reverses the most recently made move, restoring the
// position's bitboards and legality cache to exactly what they were
// before that MakeMove call.
func (p *Position) UnmakeMove() {
	n := len(p.history) - 1
	delta := p.history[n]
	p.history = p.history[:n]

	m := delta.Move

	if p.SideToMove == piece.White {
		// the move being undone was black's, since White is to move now.
		p.FullmoveNumber--
	}
	p.SideToMove = p.SideToMove.Other()

	p.remove(m.To)
	p.place(m.From, delta.FromPiece)

	if delta.WasCastling {
		rookMove := castling.RooksByKingTarget[m.To]
		p.remove(rookMove.To)
		p.place(rookMove.From, rookMove.Rook)
	}

	if delta.CapturedPiece != piece.None {
		p.place(delta.CapturedSquare, delta.CapturedPiece)
	}

	p.CastlingRights = delta.PriorCastlingRights
	p.EnPassantTarget = delta.PriorEnPassantTarget
	p.HalfmoveClock = delta.PriorHalfmoveClock
	p.Legality = delta.PriorLegality
}

// HistoryDepth returns the number of moves currently on the undo stack.
func (p *Position) HistoryDepth() int {
	return len(p.history)
}

// enPassantCaptureSquare returns the square one rank "behind" to, from
// the perspective of the side that just moved there: the square the
// double-pushed pawn passed over, and symmetrically the square an
// en-passant-capturing pawn of the opposite color actually removes.
func enPassantCaptureSquare(mover piece.Color, to square.Square) square.Square {
	if mover == piece.White {
		return to - 8
	}
	return to + 8
}

func absDiff(a, b square.Square) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}
