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
	"strconv"

	"github.com/phillipduarte/enoki-chess/internal/engine/context"
	"github.com/phillipduarte/enoki-chess/pkg/uci/cmd"
)

// NewGo implements "go [depth N]": search the current position to a
// fixed depth and report the chosen move. "movetime", "wtime"/"btime"
// and the other clock forms are accepted but carry no time control —
// the search has no clock to manage, so anything other than an explicit
// depth falls back to the engine's configured default.
func NewGo(e *context.Engine) cmd.Command {
	return cmd.Command{
		Name: "go",
		Run: func(i cmd.Interaction, args []string) error {
			depth := e.Config.DefaultDepth

			for idx, a := range args {
				if a == "depth" && idx+1 < len(args) {
					if n, err := strconv.Atoi(args[idx+1]); err == nil {
						depth = n
					}
				}
			}

			result := e.Search.Search(depth)
			i.Replyf("bestmove %s", result.BestMove.String())
			return nil
		},
	}
}
