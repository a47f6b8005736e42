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

// Package flagutil is a collection of helper functions for binaries using the
// flag package.
package flagutil // import "quarkgl.io/tools/go/util/flagutil"

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"quarkgl.io/tools/go/util/build"
)

// SimpleUsage returns a basic flag.Usage function that prints the given
// description and list of arguments in the following format:
//
//	Usage: binary <arg0> <arg1> ... <argN>
//	<description>
//
//	<build.VersionLine()>
//
//	Flags:
//	<flag.PrintDefaults()>
func SimpleUsage(description string, args ...string) func() {
	return func() {
		prefix := fmt.Sprintf("Usage: %s ", filepath.Base(os.Args[0]))
		alignArgs(len(prefix), args)
		fmt.Fprintf(os.Stderr, `%s%s
%s

%s

Flags:
`, prefix, strings.Join(args, " "), description, build.VersionLine())
		flag.PrintDefaults()
	}
}

func alignArgs(col int, args []string) {
	s := strings.Repeat(" ", col)
	for i, arg := range args {
		args[i] = strings.Replace(arg, "\n", "\n"+s, -1)
	}
}

// UsageError prints msg to stderr, calls flag.Usage, and exits the program
// with status 2.
func UsageError(msg string) {
	fmt.Fprintln(os.Stderr, "ERROR: "+msg)
	flag.Usage()
	os.Exit(2)
}

// UsageErrorf prints str formatted with the given vals to stderr, calls
// flag.Usage, and exits the program unsuccessfully.
func UsageErrorf(str string, vals ...any) {
	UsageError(fmt.Sprintf(str, vals...))
}

// StringList implements a flag.Value that accepts a sequence of values by
// repeating the flag. Unlike a CSV list, values are kept verbatim, since
// compiler options may themselves contain commas (e.g. -Wl,-rpath).
type StringList []string

// Set implements part of the flag.Getter interface and appends s to the list.
func (f *StringList) Set(s string) error {
	*f = append(*f, s)
	return nil
}

// String implements part of the flag.Getter interface.
func (f *StringList) String() string {
	if f == nil {
		return ""
	}
	return strings.Join(*f, " ")
}

// Get implements flag.Getter and returns a slice of string values.
func (f *StringList) Get() any {
	if f == nil {
		return []string(nil)
	}
	return []string(*f)
}
