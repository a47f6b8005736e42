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

// Package writecmd provides the write subcommand, which wire-encodes an extra
// action record with a C/C++ compile extension.
package writecmd // import "quarkgl.io/tools/go/actions/tools/actiontool/writecmd"

import (
	"context"
	"flag"

	"quarkgl.io/tools/go/actions/extraaction"
	"quarkgl.io/tools/go/platform/vfs"
	"quarkgl.io/tools/go/util/cmdutil"
	"quarkgl.io/tools/go/util/flagutil"

	"github.com/google/subcommands"
)

type writeCommand struct {
	cmdutil.Info

	owner    string
	mnemonic string
	info     extraaction.CppCompileInfo
	options  flagutil.StringList
}

// New creates a new subcommand for writing extra action records.
func New() subcommands.Command {
	return &writeCommand{
		Info: cmdutil.NewInfo("write", "write an extra action record for a C/C++ compile",
			`write --tool <compiler> [--option <flag>]... --source <file> --output_file <file> <output_path>`),
	}
}

// SetFlags implements the subcommands interface.
func (c *writeCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.owner, "owner", "", "Label of the target owning the action")
	fs.StringVar(&c.mnemonic, "mnemonic", "CppCompile", "Action mnemonic")
	fs.StringVar(&c.info.Tool, "tool", "", "Compiler path (required)")
	fs.Var(&c.options, "option", "Compiler option (repeatable, kept in order)")
	fs.StringVar(&c.info.SourceFile, "source", "", "Source file path (required)")
	fs.StringVar(&c.info.OutputFile, "output_file", "", "Object file path (required)")
}

// Execute implements the subcommands interface and writes the record.
func (c *writeCommand) Execute(ctx context.Context, fs *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if fs.NArg() != 1 {
		return c.UsageError("Expected exactly one output path, got %d", fs.NArg())
	}
	if c.info.Tool == "" || c.info.SourceFile == "" || c.info.OutputFile == "" {
		return c.UsageError("--tool, --source, and --output_file are required")
	}
	info := c.info
	info.CompilerOption = c.options
	rec := extraaction.Marshal(&extraaction.ExtraActionInfo{
		Owner:          c.owner,
		Mnemonic:       c.mnemonic,
		CppCompileInfo: &info,
	})
	if err := vfs.WriteFile(ctx, fs.Arg(0), rec); err != nil {
		return c.Fail("Error writing record: %v", err)
	}
	return subcommands.ExitSuccess
}
