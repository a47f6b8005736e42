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

package compdb

import (
	"context"
	"encoding/json"
	"fmt"

	"quarkgl.io/tools/go/platform/vfs"

	"bitbucket.org/creachadair/shell"
)

// A Command holds the decoded fields of a compilation database entry. Either
// Command or Arguments is set, as described by the LLVM JSON compilation
// database format.
type Command struct {
	Directory string   `json:"directory"`
	Command   string   `json:"command,omitempty"`
	Arguments []string `json:"arguments,omitempty"`
	File      string   `json:"file"`
	Output    string   `json:"output,omitempty"`
}

// String returns the command line of c.
func (c *Command) String() string {
	if len(c.Arguments) > 0 {
		return shell.Join(c.Arguments)
	}
	return c.Command
}

// Args returns the argument vector of c, splitting Command with shell rules if
// Arguments is empty. It reports false if Command has unbalanced quotes.
func (c *Command) Args() ([]string, bool) {
	if len(c.Arguments) > 0 {
		return c.Arguments, true
	}
	return shell.Split(c.Command)
}

// ReadCommands decodes the compilation database at path.
func ReadCommands(ctx context.Context, path string) ([]Command, error) {
	data, err := vfs.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	var commands []Command
	if err := json.Unmarshal(data, &commands); err != nil {
		return nil, fmt.Errorf("decoding %q: %v", path, err)
	}
	return commands, nil
}
