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

// Package checkcmd provides the check subcommand, which verifies that a
// compilation database can be consumed by tools that split commands into
// arguments.
package checkcmd // import "quarkgl.io/tools/go/actions/tools/actiontool/checkcmd"

import (
	"context"
	"flag"
	"fmt"

	"quarkgl.io/tools/go/actions/compdb"
	"quarkgl.io/tools/go/util/cmdutil"
	"quarkgl.io/tools/go/util/log"

	"github.com/google/subcommands"
)

type checkCommand struct {
	cmdutil.Info

	path string
}

// New creates a new subcommand for checking a compilation database.
func New() subcommands.Command {
	return &checkCommand{
		Info: cmdutil.NewInfo("check", "check that a compile_commands.json is usable",
			`check [--path compile_commands.json]`),
	}
}

// SetFlags implements the subcommands interface.
func (c *checkCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.path, "path", "./compile_commands.json", "Path to JSON compilations database")
}

// Problems returns a description of each unusable entry in cmds.
func Problems(cmds []compdb.Command) []string {
	var problems []string
	for i, cmd := range cmds {
		args, ok := cmd.Args()
		switch {
		case cmd.File == "":
			problems = append(problems, fmt.Sprintf("entry %d: missing file", i))
		case !ok:
			problems = append(problems, fmt.Sprintf("entry %d: unbalanced quotes in command for %s", i, cmd.File))
		case len(args) == 0:
			problems = append(problems, fmt.Sprintf("entry %d: empty command for %s", i, cmd.File))
		}
	}
	return problems
}

// Execute implements the subcommands interface and reports unusable entries.
func (c *checkCommand) Execute(ctx context.Context, fs *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	cmds, err := compdb.ReadCommands(ctx, c.path)
	if err != nil {
		return c.Fail("Error reading database: %v", err)
	}
	problems := Problems(cmds)
	for _, p := range problems {
		log.Errorf("%s", p)
	}
	if len(problems) != 0 {
		return c.Fail("%d of %d entries in %s are unusable", len(problems), len(cmds), c.path)
	}
	log.Infof("%s: %d entries OK", c.path, len(cmds))
	return subcommands.ExitSuccess
}
