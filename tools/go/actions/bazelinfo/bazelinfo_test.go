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

package bazelinfo

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// fakeBazel writes a shell script standing in for the bazel binary.
func fakeBazel(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	path := filepath.Join(t.TempDir(), "bazel")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755); err != nil {
		t.Fatalf("Failed to write fake bazel: %v", err)
	}
	return path
}

func TestExecutionRoot(t *testing.T) {
	tool := fakeBazel(t, `
if [ "$1 $2" != "info execution_root" ]; then
  echo "unexpected arguments: $*" >&2
  exit 2
fi
echo "$(pwd -P)/execroot/quarkgl"
`)
	dir := t.TempDir()
	// The query runs in the workspace, so the fake reports a path under it.
	want, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatal(err)
	}

	got, err := Command{Tool: tool, Dir: want}.ExecutionRoot(context.Background())
	if err != nil {
		t.Fatalf("ExecutionRoot: %v", err)
	}
	if got != want+"/execroot/quarkgl" {
		t.Errorf("ExecutionRoot() = %q, want %q", got, want+"/execroot/quarkgl")
	}
}

func TestExecutionRootFailure(t *testing.T) {
	tool := fakeBazel(t, `
echo "ERROR: not a workspace" >&2
exit 2
`)
	_, err := Command{Tool: tool, Dir: t.TempDir()}.ExecutionRoot(context.Background())
	if err == nil {
		t.Fatal("ExecutionRoot: got nil error")
	}
	if !strings.Contains(err.Error(), "not a workspace") {
		t.Errorf("ExecutionRoot error %q does not include stderr", err)
	}
}

func TestMissingTool(t *testing.T) {
	c := Command{Tool: filepath.Join(t.TempDir(), "no-such-bazel")}
	if _, err := c.ExecutionRoot(context.Background()); err == nil {
		t.Error("ExecutionRoot with missing tool: got nil error")
	}
}
