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

// Package cmd implements the engine's own UCI commands (uci,
// ucinewgame, position, go, stop) against the shared engine context.
// isready and quit are generic enough that pkg/uci registers them itself.
package cmd

import (
	"github.com/phillipduarte/enoki-chess/internal/config"
	"github.com/phillipduarte/enoki-chess/pkg/uci/cmd"
)

// NewUCI answers the "uci" handshake: identify the engine and declare
// uci support. No options are advertised, since the engine has none a
// GUI can usefully toggle (fixed depth, no hash table, no threads).
func NewUCI(cfg config.EngineConfig) cmd.Command {
	return cmd.Command{
		Name: "uci",
		Run: func(i cmd.Interaction, _ []string) error {
			i.Replyf("id name %s", cfg.Name)
			i.Replyf("id author %s", cfg.Author)
			i.Reply("uciok")
			return nil
		},
	}
}
