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

package printcmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"quarkgl.io/tools/go/actions/extraaction"

	"github.com/google/go-cmp/cmp"
	"github.com/google/subcommands"
)

func run(t *testing.T, args ...string) (string, subcommands.ExitStatus) {
	t.Helper()
	c := New().(*printCommand)
	var buf bytes.Buffer
	c.out = &buf
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse(%q): %v", args, err)
	}
	status := c.Execute(context.Background(), fs)
	return buf.String(), status
}

func TestPrint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.xa")
	xa := &extraaction.ExtraActionInfo{
		Owner:    "//quarkgl:core",
		Mnemonic: "CppCompile",
		CppCompileInfo: &extraaction.CppCompileInfo{
			Tool:           "gcc",
			CompilerOption: []string{"-Wno-free-nonheap-object", "-O2"},
			SourceFile:     "core.cc",
			OutputFile:     "core.o",
		},
	}
	if err := os.WriteFile(path, extraaction.Marshal(xa), 0644); err != nil {
		t.Fatal(err)
	}

	out, status := run(t, "--command", path)
	if status != subcommands.ExitSuccess {
		t.Fatalf("print: exit status %v", status)
	}
	var got record
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("print output %q: %v", out, err)
	}
	want := record{Path: path, ExtraActionInfo: xa, Command: "gcc -O2 -c core.cc -o core.o"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("print: (-want +got)\n%s", diff)
	}
}

func TestPrintErrors(t *testing.T) {
	if _, status := run(t); status != subcommands.ExitUsageError {
		t.Errorf("print with no files: got %v, want %v", status, subcommands.ExitUsageError)
	}
	if _, status := run(t, filepath.Join(t.TempDir(), "missing.xa")); status != subcommands.ExitFailure {
		t.Errorf("print of missing file: got %v, want %v", status, subcommands.ExitFailure)
	}
}
