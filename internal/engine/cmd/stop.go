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
	"github.com/phillipduarte/enoki-chess/pkg/uci/cmd"
)

// NewStop implements "stop". Since Search always runs synchronously to
// completion, this can never interrupt a search already under way; it
// exists so a GUI that always sends stop after go does not trip an
// unknown-command error.
func NewStop(e *context.Engine) cmd.Command {
	return cmd.Command{
		Name: "stop",
		Run: func(cmd.Interaction, []string) error {
			e.Search.Stop()
			return nil
		},
	}
}
