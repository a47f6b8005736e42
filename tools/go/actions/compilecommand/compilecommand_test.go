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

package compilecommand

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"quarkgl.io/tools/go/actions/extraaction"

	"github.com/google/go-cmp/cmp"
)

func TestFilterOptions(t *testing.T) {
	tests := []struct {
		in, want []string
	}{
		{nil, []string{}},
		{[]string{"-Wall"}, []string{"-Wall"}},
		{
			[]string{"-fno-canonical-system-headers", "-O2", "-Wno-free-nonheap-object", "-g", "-Wunused-but-set-parameter"},
			[]string{"-O2", "-g"},
		},
		{
			// Only exact matches are dropped.
			[]string{"-Wunused-but-set-parameter=1", "-fno-canonical-system-headers", "-Wno-free-nonheap-object-x"},
			[]string{"-Wunused-but-set-parameter=1", "-Wno-free-nonheap-object-x"},
		},
		{
			[]string{"-c", "-Wno-free-nonheap-object", "-c"},
			[]string{"-c", "-c"},
		},
	}
	for _, test := range tests {
		if diff := cmp.Diff(test.want, FilterOptions(test.in)); diff != "" {
			t.Errorf("FilterOptions(%q): (-want +got)\n%s", test.in, diff)
		}
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		info *extraaction.CppCompileInfo
		want File
	}{{
		info: &extraaction.CppCompileInfo{
			Tool:           "/usr/bin/clang++",
			CompilerOption: []string{"-std=c++17", "-fno-canonical-system-headers", "-Wall"},
			SourceFile:     "a.cc",
			OutputFile:     "a.o",
		},
		want: File{"/usr/bin/clang++ -std=c++17 -Wall -c a.cc -o a.o", "a.cc"},
	}, {
		info: &extraaction.CppCompileInfo{Tool: "gcc", SourceFile: "b.c", OutputFile: "b.o"},
		want: File{"gcc  -c b.c -o b.o", "b.c"},
	}, {
		info: &extraaction.CppCompileInfo{
			Tool:           "gcc",
			CompilerOption: []string{`-DNAME="quark gl"`, "-I", "my dir"},
			SourceFile:     "c.c",
			OutputFile:     "c.o",
		},
		want: File{`gcc -DNAME="quark gl" -I my dir -c c.c -o c.o`, "c.c"},
	}}
	for _, test := range tests {
		if diff := cmp.Diff(test.want, Render(test.info)); diff != "" {
			t.Errorf("Render(%+v): (-want +got)\n%s", test.info, diff)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		data string
		want File
		err  error
	}{
		{"gcc -c a.c -o a.o\x00a.c", File{"gcc -c a.c -o a.o", "a.c"}, nil},
		{"\x00", File{}, nil},
		{"cmd\x00", File{Command: "cmd"}, nil},
		{"", File{}, ErrMalformed},
		{"no separator", File{}, ErrMalformed},
		{"a\x00b\x00c", File{}, ErrMalformed},
		{"a\x00b\x00", File{}, ErrMalformed},
	}
	for _, test := range tests {
		got, err := Parse([]byte(test.data))
		if !errors.Is(err, test.err) {
			t.Errorf("Parse(%q): got error %v, want %v", test.data, err, test.err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Parse(%q): (-want +got)\n%s", test.data, diff)
		}
	}
}

func TestEncodeParseRoundTrip(t *testing.T) {
	for _, f := range []File{
		{"clang -c x.cc -o x.o", "x.cc"},
		{"", ""},
		{"tool with\nnewline", "path/with spaces.cc"},
	} {
		got, err := Parse(f.Encode())
		if err != nil {
			t.Errorf("Parse(Encode(%+v)): %v", f, err)
			continue
		}
		if got != f {
			t.Errorf("Parse(Encode(%+v)) = %+v", f, got)
		}
	}
}

func TestExtract(t *testing.T) {
	record := extraaction.Marshal(&extraaction.ExtraActionInfo{
		Mnemonic: "CppCompile",
		CppCompileInfo: &extraaction.CppCompileInfo{
			Tool:           "/usr/bin/clang++",
			CompilerOption: []string{"-std=c++17", "-fno-canonical-system-headers", "-Wall"},
			SourceFile:     "a.cc",
			OutputFile:     "a.o",
		},
	})
	got, err := Extract(record)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	want := File{"/usr/bin/clang++ -std=c++17 -Wall -c a.cc -o a.o", "a.cc"}
	if got != want {
		t.Errorf("Extract: got %+v, want %+v", got, want)
	}

	noCpp := extraaction.Marshal(&extraaction.ExtraActionInfo{Mnemonic: "Javac"})
	if _, err := Extract(noCpp); !errors.Is(err, extraaction.ErrNoCppCompileInfo) {
		t.Errorf("Extract without C++ info: got %v, want %v", err, extraaction.ErrNoCppCompileInfo)
	}
	if _, err := Extract([]byte{0xff}); err == nil {
		t.Error("Extract of garbage: got nil error")
	}
}

func TestExtractFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	input := filepath.Join(dir, "a.xa")
	output := filepath.Join(dir, "a_compile_command")

	record := extraaction.Marshal(&extraaction.ExtraActionInfo{
		CppCompileInfo: &extraaction.CppCompileInfo{
			Tool:           "/usr/bin/clang++",
			CompilerOption: []string{"-std=c++17", "-fno-canonical-system-headers", "-Wall"},
			SourceFile:     "a.cc",
			OutputFile:     "a.o",
		},
	})
	if err := os.WriteFile(input, record, 0644); err != nil {
		t.Fatal(err)
	}
	// Stale content longer than the new command must not survive.
	if err := os.WriteFile(output, make([]byte, 512), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ExtractFile(ctx, input, output); err != nil {
		t.Fatalf("ExtractFile: %v", err)
	}
	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	const want = "/usr/bin/clang++ -std=c++17 -Wall -c a.cc -o a.o\x00a.cc"
	if string(got) != want {
		t.Errorf("output: got %q, want %q", got, want)
	}
}

func TestExtractFileErrors(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	input := filepath.Join(dir, "a.xa")
	if err := os.WriteFile(input, extraaction.Marshal(&extraaction.ExtraActionInfo{Owner: "//x"}), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ExtractFile(ctx, filepath.Join(dir, "missing.xa"), filepath.Join(dir, "out")); err == nil {
		t.Error("ExtractFile with missing input: got nil error")
	}
	if _, err := ExtractFile(ctx, input, filepath.Join(dir, "out")); !errors.Is(err, extraaction.ErrNoCppCompileInfo) {
		t.Errorf("ExtractFile without C++ info: got %v, want %v", err, extraaction.ErrNoCppCompileInfo)
	}
	if _, err := os.Stat(filepath.Join(dir, "out")); !os.IsNotExist(err) {
		t.Errorf("output written despite extraction failure: %v", err)
	}
}
