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

// Command enoki is the UCI engine binary: it loads an optional config
// file, wires up internal/engine, and runs the read-eval-print loop
// against stdin/stdout until "quit" or EOF.
package main

import (
	"flag"
	"os"

	"github.com/phillipduarte/enoki-chess/internal/config"
	"github.com/phillipduarte/enoki-chess/internal/engine"
	"github.com/phillipduarte/enoki-chess/internal/logging"
)

func main() {
	if err := run(); err != nil {
		logging.Log.Critical(err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to a TOML engine config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	logging.Log.Infof("starting %s with default depth %d", cfg.Name, cfg.DefaultDepth)

	client := engine.NewClient(cfg)
	return client.Start()
}
