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

// Package compdb assembles a compile_commands.json compilation database from
// the "_compile_command" files written by the compile command extra action.
//
// The database is rendered with a fixed template rather than a JSON encoder:
// only double quotes in commands are escaped, and entries are emitted in
// directory traversal order.
package compdb // import "quarkgl.io/tools/go/actions/compdb"

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"quarkgl.io/tools/go/actions/compilecommand"
	"quarkgl.io/tools/go/platform/vfs"
	"quarkgl.io/tools/go/util/log"

	"github.com/karrick/godirwalk"
)

// Suffix identifies compile command files during a scan.
const Suffix = "_compile_command"

// An Entry is a single compiler invocation in a compilation database.
type Entry struct {
	Directory string // working directory of the command
	Command   string // full compiler command line
	File      string // source file compiled by Command
}

const entryTemplate = `{
  "directory": "%s",
  "command": "%s",
  "file": "%s"
}`

// Render returns the JSON object for e. Double quotes in the command are
// escaped; no other escaping is applied to any field.
func (e Entry) Render() string {
	return fmt.Sprintf(entryTemplate, e.Directory, strings.ReplaceAll(e.Command, `"`, `\"`), e.File)
}

// Stats reports what a scan found.
type Stats struct {
	Files   int // compile command files read
	Skipped int // files ignored because they could not be parsed
}

// Scan walks root depth-first in the order the file system lists directory
// entries and calls visit with the path of each non-directory whose name ends
// in Suffix. Symbolic links to directories are followed.
//
// Links in root are resolved before walking, so a ".." that follows a link
// (as in bazel-bin/../extra_actions) steps out of the link target rather than
// the directory holding the link. Visited paths are under the resolved root.
func Scan(root string, visit func(path string) error) error {
	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		return err
	}
	return godirwalk.Walk(resolved, &godirwalk.Options{
		Unsorted:            true,
		FollowSymbolicLinks: true,
		Callback: func(path string, de *godirwalk.Dirent) error {
			isDir, err := de.IsDirOrSymlinkToDir()
			if err != nil {
				return err
			}
			if isDir || !strings.HasSuffix(de.Name(), Suffix) {
				return nil
			}
			return visit(path)
		},
	})
}

// ReadEntries reads every compile command file under root and returns one
// entry per well-formed file, all sharing directory. Malformed files are
// left out and counted in Stats.Skipped; they are typically stale or still
// being written by an in-progress build.
func ReadEntries(ctx context.Context, root, directory string) ([]Entry, Stats, error) {
	var (
		entries []Entry
		stats   Stats
	)
	err := Scan(root, func(path string) error {
		data, err := vfs.ReadFile(ctx, path)
		if err != nil {
			return fmt.Errorf("reading compile command: %v", err)
		}
		stats.Files++
		f, err := compilecommand.Parse(data)
		if err != nil {
			stats.Skipped++
			log.Verbosef("Skipping %s: %v", path, err)
			return nil
		}
		entries = append(entries, Entry{Directory: directory, Command: f.Command, File: f.Source})
		return nil
	})
	if err != nil {
		return nil, stats, fmt.Errorf("scanning %q: %v", root, err)
	}
	return entries, stats, nil
}

// Encode renders entries as a JSON array, separating consecutive entries with
// ", ". An empty set of entries encodes as "[]".
func Encode(entries []Entry) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range entries {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.Render())
	}
	sb.WriteByte(']')
	return sb.String()
}

// Assemble reads the compile command files under root and returns the
// encoded compilation database.
func Assemble(ctx context.Context, root, directory string) (string, Stats, error) {
	entries, stats, err := ReadEntries(ctx, root, directory)
	if err != nil {
		return "", stats, err
	}
	return Encode(entries), stats, nil
}

// WriteDatabase replaces the contents of path with db in a single write.
func WriteDatabase(ctx context.Context, path, db string) error {
	if err := vfs.WriteFile(ctx, path, []byte(db)); err != nil {
		return fmt.Errorf("writing compilation database: %v", err)
	}
	return nil
}

// An ExecRooter reports the directory the build system runs compiler
// invocations from.
type ExecRooter interface {
	ExecutionRoot(ctx context.Context) (string, error)
}

// Generate queries er for the command directory once, assembles the
// compilation database from the compile command files under root, and writes
// it to output.
func Generate(ctx context.Context, er ExecRooter, root, output string) (Stats, error) {
	dir, err := er.ExecutionRoot(ctx)
	if err != nil {
		return Stats{}, err
	}
	db, stats, err := Assemble(ctx, root, dir)
	if err != nil {
		return stats, err
	}
	return stats, WriteDatabase(ctx, output, db)
}
