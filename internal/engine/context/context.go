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

// Package context holds the Engine type shared between internal/engine
// (which builds the UCI client) and internal/engine/cmd (which
// implements the individual commands against it). It is split out from
// both to avoid an import cycle between the two.
package context

import (
	"github.com/phillipduarte/enoki-chess/internal/config"
	"github.com/phillipduarte/enoki-chess/pkg/position"
	"github.com/phillipduarte/enoki-chess/pkg/search"
)

// Engine is the mutable state a UCI session operates on.
type Engine struct {
	Config config.EngineConfig

	Position *position.Position
	Search   *search.Context
}
