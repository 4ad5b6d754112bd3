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

// Package logging configures the engine's single stderr-only logger.
// Stdout is reserved entirely for UCI protocol replies; anything the
// engine needs to say about its own operation — a malformed config file,
// a position that failed to parse — goes to stderr so it can never be
// mistaken by a GUI for a protocol line.
package logging

import (
	"os"

	"github.com/op/go-logging"
)

// Log is the engine-wide logger.
var Log = logging.MustGetLogger("enoki")

func init() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	format := logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortfunc} ▶ %{level:.4s} %{message}`,
	)
	logging.SetBackend(logging.NewBackendFormatter(backend, format))
}
