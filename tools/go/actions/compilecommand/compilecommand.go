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

// Package compilecommand turns the C/C++ compile extension of a Bazel extra
// action record into a single compiler command line, and defines the
// "_compile_command" file that carries it to the compilation database
// assembler.
//
// A command file holds exactly two fields separated by one NUL byte:
//
//	<command line>\x00<source path>
//
// with nothing after the source path.
package compilecommand // import "quarkgl.io/tools/go/actions/compilecommand"

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"quarkgl.io/tools/go/actions/extraaction"
	"quarkgl.io/tools/go/platform/vfs"

	"bitbucket.org/creachadair/stringset"
)

// UnrecognizedFlags are emitted by Bazel for gcc but are not recognized by the
// clang toolchain. They are dropped from rendered commands.
var UnrecognizedFlags = stringset.New(
	"-fno-canonical-system-headers",
	"-Wno-free-nonheap-object",
	"-Wunused-but-set-parameter",
)

// ErrMalformed is returned by Parse for data that does not contain exactly one
// NUL separator.
var ErrMalformed = errors.New("malformed compile command file")

// A File is the content of a single compile command file.
type File struct {
	Command string // full compiler command line
	Source  string // path of the compiled source file
}

// Encode returns the on-disk representation of f.
func (f File) Encode() []byte {
	buf := make([]byte, 0, len(f.Command)+1+len(f.Source))
	buf = append(buf, f.Command...)
	buf = append(buf, 0)
	return append(buf, f.Source...)
}

// Parse decodes the contents of a compile command file. It returns
// ErrMalformed unless data splits into exactly two NUL-separated fields.
func Parse(data []byte) (File, error) {
	parts := bytes.Split(data, []byte{0})
	if len(parts) != 2 {
		return File{}, ErrMalformed
	}
	return File{Command: string(parts[0]), Source: string(parts[1])}, nil
}

// FilterOptions returns opts without any member of UnrecognizedFlags,
// preserving the order of the remaining options.
func FilterOptions(opts []string) []string {
	kept := make([]string, 0, len(opts))
	for _, opt := range opts {
		if !UnrecognizedFlags.Contains(opt) {
			kept = append(kept, opt)
		}
	}
	return kept
}

// Render renders the compiler invocation described by info. Nothing is quoted,
// so paths and options containing spaces do not survive a round trip through
// a shell.
func Render(info *extraaction.CppCompileInfo) File {
	cmd := fmt.Sprintf("%s %s -c %s -o %s",
		info.Tool, strings.Join(FilterOptions(info.CompilerOption), " "),
		info.SourceFile, info.OutputFile)
	return File{Command: cmd, Source: info.SourceFile}
}

// Extract decodes a wire-format extra action record and renders its C/C++
// compile command. It fails if the record is malformed or has no C/C++
// compile extension.
func Extract(record []byte) (File, error) {
	xa, err := extraaction.Unmarshal(record)
	if err != nil {
		return File{}, fmt.Errorf("parsing extra action info: %v", err)
	}
	info, err := xa.CppCompile()
	if err != nil {
		return File{}, err
	}
	return Render(info), nil
}

// WriteFile writes f to path, replacing any existing content.
func WriteFile(ctx context.Context, path string, f File) error {
	if err := vfs.WriteFile(ctx, path, f.Encode()); err != nil {
		return fmt.Errorf("writing compile command: %v", err)
	}
	return nil
}

// ExtractFile reads the extra action record at input and writes its compile
// command file to output.
func ExtractFile(ctx context.Context, input, output string) (File, error) {
	record, err := vfs.ReadFile(ctx, input)
	if err != nil {
		return File{}, fmt.Errorf("reading extra action info: %v", err)
	}
	f, err := Extract(record)
	if err != nil {
		return File{}, fmt.Errorf("extracting %q: %w", input, err)
	}
	return f, WriteFile(ctx, output, f)
}
