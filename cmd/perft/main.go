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

// Command perft is the move-generator correctness harness: it runs
// pkg/perft against a FEN (or the starting position) to a given depth,
// printing a per-root-move divide breakdown and the node total, with a
// progress bar over the root moves for long-running depths.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/phillipduarte/enoki-chess/pkg/perft"
	"github.com/phillipduarte/enoki-chess/pkg/position"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	fen := flag.String("fen", "", "FEN to run perft against (default: starting position)")
	depth := flag.Int("depth", 5, "perft depth")
	flag.Parse()

	if *depth < 1 {
		return fmt.Errorf("perft: depth must be at least 1, got %d", *depth)
	}

	var p *position.Position
	if *fen == "" {
		p = position.StartingPosition()
	} else {
		parsed, err := position.Parse(*fen)
		if err != nil {
			return fmt.Errorf("perft: %w", err)
		}
		p = parsed
	}

	bar := progressbar.NewOptions(
		len(p.GenerateMoves()),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionSetItsString("move"),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
	)

	result := perft.Run(p, *depth, func(perft.DivideEntry) {
		_ = bar.Add(1)
	})
	fmt.Println()

	for _, e := range result.Divide {
		fmt.Printf("%s: %d\n", e.Move.String(), e.Nodes)
	}
	fmt.Printf("\nNodes searched: %d in %s (%.0f nodes/sec)\n",
		result.Nodes, result.Elapsed.Round(time.Millisecond), result.NodesPerSecond())
	return nil
}
