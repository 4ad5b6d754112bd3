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
	"github.com/phillipduarte/enoki-chess/internal/engine/context"
	"github.com/phillipduarte/enoki-chess/pkg/position"
	"github.com/phillipduarte/enoki-chess/pkg/search"
	"github.com/phillipduarte/enoki-chess/pkg/uci/cmd"
)

// NewUCINewGame resets the engine's position to a fresh start-of-game
// state. There is no hash table to clear, since the search carries none.
func NewUCINewGame(e *context.Engine) cmd.Command {
	return cmd.Command{
		Name: "ucinewgame",
		Run: func(cmd.Interaction, []string) error {
			e.Position = position.StartingPosition()
			e.Search = search.NewContext(e.Position)
			return nil
		},
	}
}
