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

package search

import "github.com/phillipduarte/enoki-chess/pkg/eval"

// maxi and mini are the two halves of the fixed-depth alpha-beta
// recursion. Every call generates moves first so that a checkmate or
// stalemate encountered before the fixed depth is exhausted is scored
// correctly by eval.Evaluate's terminal-detection rule, rather than
// falling through to a plain material/PSQT evaluation of an illegal,
// moveless position; only once the move list is non-empty does an
// exhausted depth fall back to the literal leaf evaluation. The base
// case tests depth <= 0, not == 0, so a non-positive root depth (a GUI
// sending "go depth 0", a config with a zero default) degrades to a
// leaf evaluation instead of recursing without a floor.
func (c *Context) maxi(depth int, alpha, beta eval.Score) eval.Score {
	c.Nodes++

	moves := c.Position.GenerateMoves()
	if len(moves) == 0 || depth <= 0 {
		return eval.Evaluate(c.Position, moves)
	}

	for _, m := range moves {
		c.Position.MakeMove(m)
		v := c.mini(depth-1, alpha, beta)
		c.Position.UnmakeMove()

		if v > alpha {
			alpha = v
		}
		if alpha >= beta {
			break // beta cutoff
		}
	}
	return alpha
}

func (c *Context) mini(depth int, alpha, beta eval.Score) eval.Score {
	c.Nodes++

	moves := c.Position.GenerateMoves()
	if len(moves) == 0 || depth <= 0 {
		return eval.Evaluate(c.Position, moves)
	}

	for _, m := range moves {
		c.Position.MakeMove(m)
		v := c.maxi(depth-1, alpha, beta)
		c.Position.UnmakeMove()

		if v < beta {
			beta = v
		}
		if alpha >= beta {
			break // alpha cutoff
		}
	}
	return beta
}
