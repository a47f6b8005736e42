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

// Package bazelinfo queries a Bazel workspace for the paths it uses when
// running actions.
package bazelinfo // import "quarkgl.io/tools/go/actions/bazelinfo"

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// DefaultTool is the Bazel binary used when Command.Tool is empty.
const DefaultTool = "bazel"

// Command runs "<Tool> info" in a workspace.
type Command struct {
	Tool string // Bazel binary; DefaultTool if empty
	Dir  string // workspace directory the query runs in
}

// ExecutionRoot returns the execution root of the workspace, the directory
// Bazel runs compiler invocations from.
func (c Command) ExecutionRoot(ctx context.Context) (string, error) {
	return c.Info(ctx, "execution_root")
}

// Info runs "<Tool> info <key>" and returns its standard output with trailing
// whitespace removed.
func (c Command) Info(ctx context.Context, key string) (string, error) {
	tool := c.Tool
	if tool == "" {
		tool = DefaultTool
	}
	cmd := exec.CommandContext(ctx, tool, "info", key)
	cmd.Dir = c.Dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", errors.Wrapf(err, "%s info %s (%s)", tool, key, msg)
		}
		return "", errors.Wrapf(err, "%s info %s", tool, key)
	}
	return strings.TrimRightFunc(string(out), unicode.IsSpace), nil
}
