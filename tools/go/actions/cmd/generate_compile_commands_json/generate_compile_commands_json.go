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

// Binary generate_compile_commands_json collects the "_compile_command" files
// written by the generate_compile_command extra action into a
// compile_commands.json file at the top of the source tree, for tools like
// clang-tidy to read.
//
// Run Bazel with
//
//	--experimental_action_listener=//tools/actions:generate_compile_commands_listener
//
// over the targets of interest, then run this binary.
package main

import (
	"context"
	"flag"

	"quarkgl.io/tools/go/actions/compdb"
	"quarkgl.io/tools/go/actions/config"
	"quarkgl.io/tools/go/platform/vfs"
	"quarkgl.io/tools/go/util/flagutil"
	"quarkgl.io/tools/go/util/log"
)

var (
	settingsFile  = flag.String("config", "", "Path to a YAML settings file (optional)")
	reportSkipped = flag.Bool("report_skipped", false, "Log the number of unreadable compile command files")

	flags config.Settings
)

func init() {
	flag.StringVar(&flags.Bazel, "bazel", "", "Bazel binary used to query the execution root (default \"bazel\")")
	flag.StringVar(&flags.SourceRoot, "source_root", "", "Workspace directory (default: two directories above this binary)")
	flag.StringVar(&flags.ActionOutputs, "action_outputs", "", "Directory holding the compile command files, relative to --source_root")
	flag.StringVar(&flags.Output, "output", "", "Path of the compilation database, relative to --source_root")
	flag.BoolVar(&log.Verbose, "v", false, "Log each skipped file")
	flag.Usage = flagutil.SimpleUsage("Writes compile_commands.json from the outputs of the generate_compile_command extra action.")
}

func main() {
	flag.Parse()
	if flag.NArg() != 0 {
		flagutil.UsageErrorf("unexpected arguments: %q", flag.Args())
	}
	ctx := context.Background()

	var settings config.Settings
	if *settingsFile != "" {
		s, err := config.Load(ctx, *settingsFile)
		if err != nil {
			log.Fatal(err)
		}
		settings = *s
	}
	settings.Merge(flags)
	settings, err := settings.Resolve()
	if err != nil {
		log.Fatal(err)
	}

	if _, err := vfs.Stat(ctx, settings.ActionOutputs); err != nil {
		log.Fatalf("No compile command files: %v (was the build run with --experimental_action_listener?)", err)
	}
	stats, err := compdb.Generate(ctx, settings.Query(), settings.ActionOutputs, settings.Output)
	if err != nil {
		log.Fatal(err)
	}
	if *reportSkipped {
		log.Infof("Read %d compile command files, skipped %d", stats.Files, stats.Skipped)
	}
}
