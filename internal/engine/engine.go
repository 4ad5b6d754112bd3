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

// Package engine wires the position/search/eval/perft packages into a
// uci.Client: one Engine instance per process, holding the position
// currently under analysis and the search context operating on it.
package engine

import (
	"github.com/phillipduarte/enoki-chess/internal/config"
	"github.com/phillipduarte/enoki-chess/internal/engine/context"
	enginecmd "github.com/phillipduarte/enoki-chess/internal/engine/cmd"
	"github.com/phillipduarte/enoki-chess/pkg/position"
	"github.com/phillipduarte/enoki-chess/pkg/search"
	"github.com/phillipduarte/enoki-chess/pkg/uci"
)

// NewClient builds a uci.Client with every command enoki-chess supports
// registered against a fresh engine context at the standard starting
// position.
func NewClient(cfg config.EngineConfig) uci.Client {
	client := uci.NewClient()

	e := &context.Engine{
		Config:   cfg,
		Position: position.StartingPosition(),
	}
	e.Search = search.NewContext(e.Position)

	client.AddCommand(enginecmd.NewUCI(cfg))
	client.AddCommand(enginecmd.NewUCINewGame(e))
	client.AddCommand(enginecmd.NewPosition(e))
	client.AddCommand(enginecmd.NewGo(e))
	client.AddCommand(enginecmd.NewStop(e))

	return client
}
