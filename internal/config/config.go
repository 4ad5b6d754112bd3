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

// Package config loads the engine's identity and default search depth
// from an optional TOML file, falling back to built-in defaults when no
// file is given or the file doesn't exist — the engine must always be
// able to start with zero configuration.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// EngineConfig holds the values the "uci" command reports via "id name"/
// "id author", and the depth "go" searches to when the GUI doesn't
// specify one explicitly.
type EngineConfig struct {
	Name         string `toml:"name"`
	Author       string `toml:"author"`
	DefaultDepth int    `toml:"default_depth"`
}

// Default is used whenever no config file is supplied.
var Default = EngineConfig{
	Name:         "Enoki",
	Author:       "the enoki-chess project",
	DefaultDepth: 4,
}

// Load reads an EngineConfig from a TOML file at path, starting from
// Default so a partial file only overrides the fields it sets. An empty
// path, or a path that does not exist, returns Default unchanged.
func Load(path string) (EngineConfig, error) {
	cfg := Default
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return EngineConfig{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
