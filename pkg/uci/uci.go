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

// Package uci implements a minimal synchronous UCI-style command REPL:
// read a line from stdin, dispatch it to a registered Command, print
// whatever it replies, repeat. There is no parallel command execution
// and no pondering — "go" always runs to completion before the next
// line is read, matching the single-threaded, fixed-depth engine this
// front-end drives.
package uci

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/phillipduarte/enoki-chess/pkg/uci/cmd"
)

// errQuit unwinds Start's read loop when the quit command runs.
var errQuit = errors.New("uci: quit")

// ErrUnknownCommand reports a line whose first token matches no
// registered command. Start never replies to these on stdout: GUIs
// routinely send commands an engine does not implement, and answering
// them would corrupt the protocol stream.
var ErrUnknownCommand = errors.New("uci: unknown command")

// NewClient builds a Client reading from stdin and writing to stdout,
// preloaded with the isready and quit commands every engine needs.
func NewClient() Client {
	c := Client{
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}
	c.commands = cmd.NewSchema(c.stdout)

	c.AddCommand(cmd.Command{
		Name: "isready",
		Run: func(i cmd.Interaction, _ []string) error {
			i.Reply("readyok")
			return nil
		},
	})
	c.AddCommand(cmd.Command{
		Name: "quit",
		Run: func(cmd.Interaction, []string) error {
			return errQuit
		},
	})

	return c
}

// Client is a UCI-speaking command dispatcher.
type Client struct {
	stdin  io.Reader
	stdout io.Writer

	commands cmd.Schema
}

// AddCommand registers c, overriding any existing command of the same name.
func (c *Client) AddCommand(command cmd.Command) {
	c.commands.Add(command)
}

// Start runs the read-eval-print loop until quit is received or stdin
// closes.
func (c *Client) Start() error {
	reader := bufio.NewReader(c.stdin)

	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch err := c.Run(fields); {
		case err == nil:
		case errors.Is(err, errQuit):
			return nil
		default:
			// unknown commands and command failures are protocol
			// no-ops; the diagnostic goes to stderr, never the GUI.
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

// Run dispatches a single already-tokenized command line.
func (c *Client) Run(fields []string) error {
	name, args := fields[0], fields[1:]

	command, found := c.commands.Get(name)
	if !found {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	return command.RunWith(args, c.commands)
}
