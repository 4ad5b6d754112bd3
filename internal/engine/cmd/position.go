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

package cmd

import (
	"strings"

	"github.com/phillipduarte/enoki-chess/internal/engine/context"
	"github.com/phillipduarte/enoki-chess/internal/logging"
	"github.com/phillipduarte/enoki-chess/pkg/move"
	"github.com/phillipduarte/enoki-chess/pkg/piece"
	"github.com/phillipduarte/enoki-chess/pkg/position"
	"github.com/phillipduarte/enoki-chess/pkg/search"
	"github.com/phillipduarte/enoki-chess/pkg/square"
	"github.com/phillipduarte/enoki-chess/pkg/uci/cmd"
)

// NewPosition implements "position [fen <fenstring> | startpos] [moves
// <move>...]": set up a base position and replay any moves given in UCI
// long algebraic notation on top of it.
//
// A malformed FEN leaves the engine on its previous position; a move
// token that fails to parse or is not legal is skipped and the
// remaining moves still apply. Both are reported on stderr only — the
// GUI sees no reply either way.
func NewPosition(e *context.Engine) cmd.Command {
	return cmd.Command{
		Name: "position",
		Run: func(_ cmd.Interaction, args []string) error {
			if len(args) == 0 {
				logging.Log.Warning("position: missing arguments")
				return nil
			}

			var p *position.Position
			var rest []string

			switch args[0] {
			case "startpos":
				p = position.StartingPosition()
				rest = args[1:]

			case "fen":
				args = args[1:]
				end := len(args)
				for i, a := range args {
					if a == "moves" {
						end = i
						break
					}
				}

				parsed, err := position.Parse(strings.Join(args[:end], " "))
				if err != nil {
					logging.Log.Warningf("position: %v", err)
					return nil
				}
				p = parsed
				rest = args[end:]

			default:
				logging.Log.Warningf("position: expected startpos or fen, got %q", args[0])
				return nil
			}

			if len(rest) > 0 {
				if rest[0] != "moves" {
					logging.Log.Warningf("position: expected moves, got %q", rest[0])
					return nil
				}
				for _, s := range rest[1:] {
					m, ok := findMove(p, s)
					if !ok {
						logging.Log.Warningf("position: skipping illegal move %q", s)
						continue
					}
					p.MakeMove(m)
				}
			}

			e.Position = p
			e.Search = search.NewContext(p)
			return nil
		},
	}
}

// findMove parses a UCI long algebraic move string and matches it
// against p's legal move list by identity (from/to/promotion), so that
// the returned Move carries generator-derived flags rather than
// hand-built ones.
func findMove(p *position.Position, s string) (move.Move, bool) {
	if len(s) < 4 {
		return move.Null, false
	}

	from, err := square.NewFromString(s[0:2])
	if err != nil {
		return move.Null, false
	}
	to, err := square.NewFromString(s[2:4])
	if err != nil {
		return move.Null, false
	}

	promotion := piece.None
	if len(s) >= 5 {
		t, ok := move.PromotionKindFromLetter(s[4])
		if !ok {
			return move.Null, false
		}
		promotion = piece.New(t, p.SideToMove)
	}

	candidate := move.New(from, to, promotion, 0)
	for _, m := range p.GenerateMoves() {
		if m.Equal(candidate) {
			return m, true
		}
	}
	return move.Null, false
}
