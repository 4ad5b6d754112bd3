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

// Package cmd declares the small Command/Schema/Interaction shapes the
// UCI REPL dispatches through. There is no per-command flag schema:
// every command parses its own plain string arguments, and the engine
// never runs a command concurrently with the REPL loop that dispatched
// it.
package cmd

import (
	"fmt"
	"io"
)

// NewSchema initializes a new, empty command schema writing replies to w.
func NewSchema(w io.Writer) Schema {
	return Schema{
		replyWriter: w,
		commands:    make(map[string]Command),
	}
}

// Schema holds the set of commands a Client understands.
type Schema struct {
	replyWriter io.Writer
	commands    map[string]Command
}

// Add registers a command, keyed by its Name.
func (s *Schema) Add(c Command) {
	s.commands[c.Name] = c
}

// Get looks up a command by name.
func (s *Schema) Get(name string) (Command, bool) {
	c, found := s.commands[name]
	return c, found
}

// Command is a single GUI-to-engine command.
type Command struct {
	// Name is the first token of the command line that selects this command.
	Name string

	// Run does the command's work. args holds every token after Name.
	Run func(i Interaction, args []string) error
}

// RunWith runs c against args, wrapping the reply writer from schema into
// an Interaction.
func (c Command) RunWith(args []string, schema Schema) error {
	return c.Run(Interaction{stdout: schema.replyWriter, Command: c}, args)
}

// Interaction carries the reply sink and the command being executed.
type Interaction struct {
	stdout io.Writer
	Command
}

// Reply writes a line to the GUI, like fmt.Println.
func (i *Interaction) Reply(a ...any) (int, error) {
	return fmt.Fprintln(i.stdout, a...)
}

// Replyf writes a newline-terminated line to the GUI, like fmt.Printf.
func (i *Interaction) Replyf(format string, a ...any) (int, error) {
	return fmt.Fprintf(i.stdout, format+"\n", a...)
}
