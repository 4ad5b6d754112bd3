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

package position_test

import (
	"testing"

	"github.com/phillipduarte/enoki-chess/pkg/move"
	"github.com/phillipduarte/enoki-chess/pkg/piece"
	"github.com/phillipduarte/enoki-chess/pkg/position"
	"github.com/phillipduarte/enoki-chess/pkg/square"
)

// findLegal returns the generator-legal move matching from/to/promotion,
// failing the test if none exists.
func findLegal(t *testing.T, p *position.Position, from, to square.Square, promotion piece.Kind) move.Move {
	t.Helper()
	want := move.New(from, to, promotion, 0)
	for _, m := range p.GenerateMoves() {
		if m.Equal(want) {
			return m
		}
	}
	t.Fatalf("%v%v (promotion %v) is not a legal move in\n%s", from, to, promotion, p)
	return move.Null
}

func TestMakeUnmakeRoundTrip(t *testing.T) {
	p, err := position.Parse(position.StartFEN)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	before := p.FEN()

	m := findLegal(t, p, square.E2, square.E4, piece.None)
	p.MakeMove(m)
	if got := p.FEN(); got == before {
		t.Errorf("expected FEN to change after MakeMove")
	}

	p.UnmakeMove()
	if got := p.FEN(); got != before {
		t.Errorf("UnmakeMove did not restore FEN\n got:  %s\n want: %s", got, before)
	}
}

func TestMakeUnmakeCastling(t *testing.T) {
	p, err := position.Parse("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	before := p.FEN()

	m := findLegal(t, p, square.E1, square.G1, piece.None)
	p.MakeMove(m)

	if p.PieceAt(square.G1) != piece.WhiteKing {
		t.Errorf("expected king on g1 after castling")
	}
	if p.PieceAt(square.F1) != piece.WhiteRook {
		t.Errorf("expected rook on f1 after castling")
	}
	if p.PieceAt(square.H1) != piece.None {
		t.Errorf("expected h1 empty after castling")
	}

	p.UnmakeMove()
	if got := p.FEN(); got != before {
		t.Errorf("UnmakeMove did not restore FEN after castling\n got:  %s\n want: %s", got, before)
	}
}

func TestMakeUnmakeEnPassant(t *testing.T) {
	p, err := position.Parse("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	before := p.FEN()

	m := findLegal(t, p, square.E5, square.D6, piece.None)
	if !m.Is(move.IsEnPassant) {
		t.Fatalf("expected the found move to be flagged en-passant")
	}

	p.MakeMove(m)
	if p.PieceAt(square.D5) != piece.None {
		t.Errorf("expected the captured pawn on d5 to be removed")
	}
	if p.PieceAt(square.D6) != piece.WhitePawn {
		t.Errorf("expected the capturing pawn on d6")
	}

	p.UnmakeMove()
	if got := p.FEN(); got != before {
		t.Errorf("UnmakeMove did not restore FEN after en passant\n got:  %s\n want: %s", got, before)
	}
}

func TestMakeUnmakePromotion(t *testing.T) {
	p, err := position.Parse("k7/4P3/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	before := p.FEN()

	m := findLegal(t, p, square.E7, square.E8, piece.WhiteQueen)
	p.MakeMove(m)
	if p.PieceAt(square.E8) != piece.WhiteQueen {
		t.Errorf("expected a white queen on e8 after promotion")
	}

	p.UnmakeMove()
	if p.PieceAt(square.E7) != piece.WhitePawn {
		t.Errorf("expected the pawn restored to e7 after unmake, got %v", p.PieceAt(square.E7))
	}
	if got := p.FEN(); got != before {
		t.Errorf("UnmakeMove did not restore FEN after promotion\n got:  %s\n want: %s", got, before)
	}
}

func TestHistoryDepthTracksMakeUnmake(t *testing.T) {
	p := position.StartingPosition()
	if p.HistoryDepth() != 0 {
		t.Fatalf("expected a fresh position to have zero history depth")
	}

	m := findLegal(t, p, square.E2, square.E4, piece.None)
	p.MakeMove(m)
	if p.HistoryDepth() != 1 {
		t.Errorf("expected history depth 1 after one MakeMove, got %d", p.HistoryDepth())
	}

	p.UnmakeMove()
	if p.HistoryDepth() != 0 {
		t.Errorf("expected history depth 0 after UnmakeMove, got %d", p.HistoryDepth())
	}
}
