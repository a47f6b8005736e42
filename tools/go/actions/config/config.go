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

// Package config holds the settings of the compilation database generator:
// which Bazel binary to query, where the workspace is, where the extra action
// writes its compile command files, and where the database goes.
//
// Settings come from built-in defaults, an optional YAML file, and flags, in
// increasing order of precedence.
package config // import "quarkgl.io/tools/go/actions/config"

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"quarkgl.io/tools/go/actions/bazelinfo"
	"quarkgl.io/tools/go/platform/vfs"

	"sigs.k8s.io/yaml"
)

const (
	// DefaultActionOutputs is where Bazel leaves the outputs of the
	// generate_compile_commands_action extra action, relative to the
	// workspace. It passes through the bazel-bin convenience symlink, so the
	// ".." is resolved against the symlink target.
	DefaultActionOutputs = "bazel-bin/../extra_actions/tools/actions/generate_compile_commands_action"

	// DefaultOutput is the database file name, relative to the workspace.
	DefaultOutput = "compile_commands.json"

	// workspaceEnv is set by "bazel run" to the workspace directory.
	workspaceEnv = "BUILD_WORKSPACE_DIRECTORY"
)

// Settings control a compilation database generation run.
type Settings struct {
	Bazel         string `json:"bazel,omitempty"`
	SourceRoot    string `json:"source_root,omitempty"`
	ActionOutputs string `json:"action_outputs,omitempty"`
	Output        string `json:"output,omitempty"`
}

// Load reads settings from the YAML file at path. Unknown keys are an error.
func Load(ctx context.Context, path string) (*Settings, error) {
	data, err := vfs.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("reading settings: %v", err)
	}
	var s Settings
	if err := yaml.UnmarshalStrict(data, &s); err != nil {
		return nil, fmt.Errorf("parsing settings %q: %v", path, err)
	}
	return &s, nil
}

// Merge overwrites each field of s with the corresponding field of o, if that
// field is non-empty.
func (s *Settings) Merge(o Settings) {
	set := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	set(&s.Bazel, o.Bazel)
	set(&s.SourceRoot, o.SourceRoot)
	set(&s.ActionOutputs, o.ActionOutputs)
	set(&s.Output, o.Output)
}

// Resolve returns a copy of s with defaults filled in and ActionOutputs and
// Output made relative to SourceRoot.
func (s Settings) Resolve() (Settings, error) {
	if s.Bazel == "" {
		s.Bazel = bazelinfo.DefaultTool
	}
	if s.SourceRoot == "" {
		root, err := DefaultSourceRoot()
		if err != nil {
			return s, err
		}
		s.SourceRoot = root
	}
	if s.ActionOutputs == "" {
		s.ActionOutputs = DefaultActionOutputs
	}
	if s.Output == "" {
		s.Output = DefaultOutput
	}
	s.ActionOutputs = under(s.SourceRoot, s.ActionOutputs)
	s.Output = under(s.SourceRoot, s.Output)
	return s, nil
}

// Query returns the execution root query for the workspace of s.
func (s Settings) Query() bazelinfo.Command {
	return bazelinfo.Command{Tool: s.Bazel, Dir: s.SourceRoot}
}

// DefaultSourceRoot returns the workspace directory: the value of
// $BUILD_WORKSPACE_DIRECTORY when run by "bazel run", otherwise two
// directories above the running binary (which lives in tools/actions).
func DefaultSourceRoot() (string, error) {
	if dir := os.Getenv(workspaceEnv); dir != "" {
		return dir, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating source root: %v", err)
	}
	if exe == "" {
		return "", errors.New("locating source root: unknown executable path")
	}
	return under(filepath.Dir(exe), filepath.Join("..", "..")), nil
}

// under joins rel onto root without cleaning the result, so that ".."
// components after a symlink are resolved by the file system against the
// link target.
func under(root, rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return root + string(filepath.Separator) + rel
}
