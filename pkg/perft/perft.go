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

// Package perft implements the standard move-generator correctness
// harness: a plain node-count walk of the legal move tree to a fixed
// depth, plus a per-root-move breakdown ("divide") used to localize a
// generator bug to a single root move.
package perft

import (
	"time"

	"github.com/phillipduarte/enoki-chess/pkg/move"
	"github.com/phillipduarte/enoki-chess/pkg/position"
)

// Count walks the legal move tree rooted at p to the given depth and
// returns the number of leaf nodes. Since GenerateMoves only ever emits
// strictly legal moves, Count never needs to re-check IsInCheck after
// MakeMove.
func Count(p *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var nodes uint64
	for _, m := range p.GenerateMoves() {
		p.MakeMove(m)
		nodes += Count(p, depth-1)
		p.UnmakeMove()
	}
	return nodes
}

// DivideEntry is one root move's contribution to a Divide breakdown.
type DivideEntry struct {
	Move  move.Move
	Nodes uint64
}

// Divide returns, for every legal root move, the node count of the
// subtree beneath it at depth-1, alongside the grand total. A depth of
// 0 returns no entries and a total of 1 (the empty-move leaf itself).
func Divide(p *position.Position, depth int) ([]DivideEntry, uint64) {
	if depth == 0 {
		return nil, 1
	}

	moves := p.GenerateMoves()
	entries := make([]DivideEntry, 0, len(moves))

	var total uint64
	for _, m := range moves {
		p.MakeMove(m)
		nodes := Count(p, depth-1)
		p.UnmakeMove()

		entries = append(entries, DivideEntry{Move: m, Nodes: nodes})
		total += nodes
	}
	return entries, total
}

// Result bundles a perft run's node count, its divide breakdown and how
// long the walk took.
type Result struct {
	Nodes   uint64
	Divide  []DivideEntry
	Elapsed time.Duration
}

// NodesPerSecond returns the walk's throughput, or 0 when the elapsed
// time is too small to measure.
func (r Result) NodesPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Nodes) / r.Elapsed.Seconds()
}

// Run times a Divide walk at the given depth. progress, when non-nil,
// is invoked once per root move as its subtree count completes, letting
// a front-end render a progress indicator over a long-running walk.
func Run(p *position.Position, depth int, progress func(DivideEntry)) Result {
	start := time.Now()

	if depth <= 0 {
		return Result{Nodes: 1, Elapsed: time.Since(start)}
	}

	moves := p.GenerateMoves()
	entries := make([]DivideEntry, 0, len(moves))

	var total uint64
	for _, m := range moves {
		p.MakeMove(m)
		nodes := Count(p, depth-1)
		p.UnmakeMove()

		entry := DivideEntry{Move: m, Nodes: nodes}
		entries = append(entries, entry)
		total += nodes
		if progress != nil {
			progress(entry)
		}
	}

	return Result{Nodes: total, Divide: entries, Elapsed: time.Since(start)}
}
