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

// Binary actiontool inspects and fabricates the inputs and outputs of the
// compile command extra action.
//
// Examples:
//
//	# Dump an extra action record as JSON.
//	actiontool print path/to/action.xa
//
//	# Write a record for a test fixture.
//	actiontool write --tool=clang --option=-Wall --source=a.cc --output_file=a.o a.xa
//
//	# Check that every command in a database splits into arguments.
//	actiontool check --path=compile_commands.json
package main

import (
	"context"
	"flag"
	"os"

	"quarkgl.io/tools/go/actions/tools/actiontool/checkcmd"
	"quarkgl.io/tools/go/actions/tools/actiontool/printcmd"
	"quarkgl.io/tools/go/actions/tools/actiontool/writecmd"

	"github.com/google/subcommands"
)

func init() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(checkcmd.New(), "")
	subcommands.Register(printcmd.New(), "")
	subcommands.Register(writecmd.New(), "")
}

func main() {
	flag.Parse()
	ctx := context.Background()

	os.Exit(int(subcommands.Execute(ctx)))
}
