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

// Binary generate_compile_command implements a Bazel extra action that
// records the compiler invocation of a C/C++ compile action in a
// "_compile_command" file, for generate_compile_commands_json to collect.
//
// Usage:
//
//	generate_compile_command <extra_action_file> <output_path>
package main

import (
	"context"
	"flag"

	"quarkgl.io/tools/go/actions/compilecommand"
	"quarkgl.io/tools/go/util/flagutil"
	"quarkgl.io/tools/go/util/log"
)

func init() {
	flag.Usage = flagutil.SimpleUsage(
		"Writes the C/C++ compiler command of a Bazel extra action as a compile command file.",
		"<extra_action_file>", "<output_path>")
	flag.BoolVar(&log.Verbose, "v", false, "Log the extracted command")
}

func main() {
	flag.Parse()
	if flag.NArg() != 2 {
		flagutil.UsageErrorf("expected 2 arguments, got %d", flag.NArg())
	}

	f, err := compilecommand.ExtractFile(context.Background(), flag.Arg(0), flag.Arg(1))
	if err != nil {
		log.Fatal(err)
	}
	log.Verbosef("Wrote %q for %s", f.Command, f.Source)
}
