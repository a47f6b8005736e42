/*
 * Copyright 2026 The QuarkGL Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package printcmd provides the print subcommand, which dumps extra action
// records as JSON.
package printcmd // import "quarkgl.io/tools/go/actions/tools/actiontool/printcmd"

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"os"

	"quarkgl.io/tools/go/actions/compilecommand"
	"quarkgl.io/tools/go/actions/extraaction"
	"quarkgl.io/tools/go/util/cmdutil"

	"github.com/google/subcommands"
)

type printCommand struct {
	cmdutil.Info

	withCommand bool
	out         io.Writer
}

// New creates a new subcommand for printing extra action records.
func New() subcommands.Command {
	return &printCommand{
		Info: cmdutil.NewInfo("print", "print extra action records as JSON",
			`print [--command] <extra_action_file>...`),
		out: os.Stdout,
	}
}

// SetFlags implements the subcommands interface.
func (c *printCommand) SetFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.withCommand, "command", false, "Also print the rendered compile command, if any")
}

type record struct {
	Path            string                       `json:"path"`
	ExtraActionInfo *extraaction.ExtraActionInfo `json:"extra_action_info"`
	Command         string                       `json:"command,omitempty"`
}

// Execute implements the subcommands interface and prints each record named
// on the command line as a JSON object on its own line.
func (c *printCommand) Execute(ctx context.Context, fs *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if fs.NArg() == 0 {
		return c.UsageError("No extra action files given")
	}
	enc := json.NewEncoder(c.out)
	for _, path := range fs.Args() {
		xa, err := extraaction.LoadAction(ctx, path)
		if err != nil {
			return c.Fail("Error loading action: %v", err)
		}
		rec := record{Path: path, ExtraActionInfo: xa}
		if info, err := xa.CppCompile(); c.withCommand && err == nil {
			rec.Command = compilecommand.Render(info).Command
		}
		if err := enc.Encode(rec); err != nil {
			return c.Fail("Error writing output: %v", err)
		}
	}
	return subcommands.ExitSuccess
}
