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
	"github.com/phillipduarte/enoki-chess/pkg/position"
	"github.com/phillipduarte/enoki-chess/pkg/square"
)

func TestGenerateMovesStartingPositionCount(t *testing.T) {
	p := position.StartingPosition()
	if got := len(p.GenerateMoves()); got != 20 {
		t.Errorf("GenerateMoves() on the starting position returned %d moves, want 20", got)
	}
}

func TestGenerateMovesDoubleCheckOnlyKingMoves(t *testing.T) {
	// White king on e1 is check by a rook on e8 (through an open file) and
	// a knight on d3 simultaneously.
	p, err := position.Parse("k3r3/8/8/8/8/3n4/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if p.Legality.Checkers() != 2 {
		t.Fatalf("expected a double check, got %d checkers", p.Legality.Checkers())
	}

	for _, m := range p.GenerateMoves() {
		if m.From != square.E1 {
			t.Errorf("expected every move to originate from the king square, got %v", m)
		}
	}
}

func TestGenerateMovesSingleCheckMustBlockOrCapture(t *testing.T) {
	// White king on e1, black rook giving check along the e-file; white
	// has a knight on c3 that can block on e2 or e4 but not capture the
	// rook.
	p, err := position.Parse("k3r3/8/8/8/8/2N5/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	for _, m := range p.GenerateMoves() {
		if m.From == square.C3 && m.To != square.E2 && m.To != square.E4 {
			t.Errorf("expected the knight's only legal moves to block on e2 or e4, got move to %v", m.To)
		}
	}
}

func TestGenerateMovesPinnedPieceRestrictedToRay(t *testing.T) {
	// White king e1, white rook e2 pinned by black rook e8; the rook may
	// shuffle along the e-file but never step off it.
	p, err := position.Parse("k3r3/8/8/8/8/8/4R3/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	for _, m := range p.GenerateMoves() {
		if m.From == square.E2 && m.To.File() != square.FileE {
			t.Errorf("expected the pinned rook to stay on the e-file, got move to %v", m.To)
		}
	}
}

func TestGenerateMovesPromotionEmitsFourKinds(t *testing.T) {
	p, err := position.Parse("k7/4P3/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	count := 0
	for _, m := range p.GenerateMoves() {
		if m.From == square.E7 && m.To == square.E8 {
			count++
		}
	}
	if count != 4 {
		t.Errorf("expected 4 promotion moves from e7e8, got %d", count)
	}
}

func TestGenerateMovesEnPassantAvailable(t *testing.T) {
	p, err := position.Parse("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	found := false
	for _, m := range p.GenerateMoves() {
		if m.From == square.E5 && m.To == square.D6 {
			found = true
			if !m.Is(move.IsEnPassant) || !m.Is(move.IsCapture) {
				t.Errorf("expected the en-passant move to carry both IsEnPassant and IsCapture flags")
			}
		}
	}
	if !found {
		t.Errorf("expected an available en-passant capture e5d6")
	}
}

func TestGenerateMovesEnPassantTwoPieceRevealIsIllegal(t *testing.T) {
	// Capturing en passant removes both the black pawn on d5 and the white
	// pawn on e5 from the fifth rank at once, uncovering the black rook's
	// attack on the white king along that rank. Neither pawn is pinned on
	// its own, so only the two-piece-reveal test can catch this.
	p, err := position.Parse("8/8/8/K2pP2r/8/8/8/4k3 w - d6 0 1")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	for _, m := range p.GenerateMoves() {
		if m.From == square.E5 && m.To == square.D6 {
			t.Errorf("expected the en-passant capture to be illegal (rook check uncovered along the fifth rank)")
		}
	}
}

func TestGenerateMovesEnPassantRookOnFileStaysLegal(t *testing.T) {
	// A rook behind the captured pawn on its file is no reason to forbid
	// the capture: the capturing pawn lands on that very file, square d6,
	// and keeps the king shielded.
	p, err := position.Parse("k2r4/8/8/3pP3/8/8/8/3K4 w - d6 0 1")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	found := false
	for _, m := range p.GenerateMoves() {
		if m.From == square.E5 && m.To == square.D6 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected the en-passant capture e5d6 to be legal")
	}
}

func TestGenerateMovesNoCastlingThroughCheck(t *testing.T) {
	// White king e1, rooks a1/h1, black rook on f8 covers f1: kingside
	// castling must be excluded; queenside remains legal.
	p, err := position.Parse("4kr2/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	sawQueenside := false
	for _, m := range p.GenerateMoves() {
		if m.Is(move.IsCastling) {
			if m.To == square.G1 {
				t.Errorf("expected kingside castling to be excluded (f1 is attacked)")
			}
			if m.To == square.C1 {
				sawQueenside = true
			}
		}
	}
	if !sawQueenside {
		t.Errorf("expected queenside castling to remain legal")
	}
}

func TestGenerateMovesStalemate(t *testing.T) {
	// Textbook stalemate: black king a8 has no legal move and is not in check.
	p, err := position.Parse("k7/2Q5/1K6/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if p.IsInCheck() {
		t.Fatalf("expected black not to be in check")
	}
	if got := len(p.GenerateMoves()); got != 0 {
		t.Errorf("expected zero legal moves in stalemate, got %d", got)
	}
}

func TestGenerateMovesCheckmate(t *testing.T) {
	// Fool's mate final position: white to move is checkmated.
	p, err := position.Parse("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if !p.IsInCheck() {
		t.Fatalf("expected white to be in check")
	}
	if got := len(p.GenerateMoves()); got != 0 {
		t.Errorf("expected zero legal moves in checkmate, got %d", got)
	}
}
