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

// Package vfs defines the file system interface used by the compile command
// tools, so that record inputs and database outputs can be redirected in tests
// or read from stdin.
package vfs // import "quarkgl.io/tools/go/platform/vfs"

import (
	"context"
	"io"
	"os"
)

// Interface is a virtual file system interface for reading and writing files.
type Interface interface {
	Reader
	Writer
}

// Reader is a virtual file system interface for reading files.
type Reader interface {
	// Stat returns file status information for path, as os.Stat.
	Stat(ctx context.Context, path string) (os.FileInfo, error)

	// Open opens an existing file for reading, as os.Open.
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// Writer is a virtual file system interface for writing files.
type Writer interface {
	// Create creates or truncates a file for writing, as os.Create.
	Create(ctx context.Context, path string) (io.WriteCloser, error)
}

// Default is the global default VFS. This is usually the LocalFS and should
// only be changed in tests.
var Default Interface = LocalFS{}

// ReadFile is the equivalent of os.ReadFile using the Default VFS.
func ReadFile(ctx context.Context, filename string) ([]byte, error) {
	f, err := Open(ctx, filename)
	if err != nil {
		return nil, err
	}
	defer f.Close() // ignore errors
	return io.ReadAll(f)
}

// WriteFile replaces the contents of filename with data in a single write,
// using the Default VFS.
func WriteFile(ctx context.Context, filename string, data []byte) error {
	f, err := Create(ctx, filename)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Stat returns file status information for path, using the Default VFS.
func Stat(ctx context.Context, path string) (os.FileInfo, error) { return Default.Stat(ctx, path) }

// Open opens an existing file for reading, using the Default VFS.
func Open(ctx context.Context, path string) (io.ReadCloser, error) { return Default.Open(ctx, path) }

// Create creates a new file for writing, using the Default VFS.
func Create(ctx context.Context, path string) (io.WriteCloser, error) {
	return Default.Create(ctx, path)
}

// LocalFS implements the VFS interface using the standard Go library.
type LocalFS struct{}

// Stat implements part of the VFS interface.
func (LocalFS) Stat(_ context.Context, path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// Open implements part of the VFS interface. The path "-" reads stdin.
func (LocalFS) Open(_ context.Context, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// Create implements part of the VFS interface.
func (LocalFS) Create(_ context.Context, path string) (io.WriteCloser, error) {
	return os.Create(path)
}
