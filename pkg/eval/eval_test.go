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

package eval_test

import (
	"testing"

	"github.com/phillipduarte/enoki-chess/pkg/eval"
	"github.com/phillipduarte/enoki-chess/pkg/position"
)

func TestEvaluateStartingPositionIsJustMobility(t *testing.T) {
	// Material and PSQT are perfectly symmetric in the starting position,
	// so the only nonzero term is the side-to-move's own mobility bonus.
	p := position.StartingPosition()
	moves := p.GenerateMoves()
	want := eval.Score(2 * len(moves))
	if got := eval.Evaluate(p, moves); got != want {
		t.Errorf("Evaluate(startpos) = %d, want %d", got, want)
	}
}

func TestEvaluateMaterialAdvantage(t *testing.T) {
	// White is up a queen with everything else equal; the score should
	// favor white heavily regardless of mobility/PSQT noise.
	p, err := position.Parse("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := eval.Evaluate(p, p.GenerateMoves()); got <= 0 {
		t.Errorf("Evaluate() = %d, want a positive score favoring white", got)
	}
}

func TestEvaluateCheckmateIsSignedBySideToMove(t *testing.T) {
	// Fool's mate: white to move, checkmated. Score must be the most
	// negative possible from white's perspective.
	p, err := position.Parse("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	moves := p.GenerateMoves()
	if len(moves) != 0 {
		t.Fatalf("expected checkmate to have no legal moves, got %d", len(moves))
	}
	if got := eval.Evaluate(p, moves); got != -eval.Inf {
		t.Errorf("Evaluate(checkmate, white to move) = %d, want %d", got, -eval.Inf)
	}
}

func TestEvaluateStalemateIsZero(t *testing.T) {
	p, err := position.Parse("k7/2Q5/1K6/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	moves := p.GenerateMoves()
	if len(moves) != 0 {
		t.Fatalf("expected stalemate to have no legal moves, got %d", len(moves))
	}
	if got := eval.Evaluate(p, moves); got != 0 {
		t.Errorf("Evaluate(stalemate) = %d, want 0", got)
	}
}
