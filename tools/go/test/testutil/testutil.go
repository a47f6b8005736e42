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

// Package testutil contains common utilities to test the compile command
// tools.
package testutil // import "quarkgl.io/tools/go/test/testutil"

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"sigs.k8s.io/yaml"
)

// DeepEqual determines if expected is deeply equal to got, returning a
// detailed error if not.
func DeepEqual[T any](expected, got T, opts ...cmp.Option) error {
	if diff := cmp.Diff(expected, got, opts...); diff != "" {
		return fmt.Errorf("(-expected; +found)\n%s", diff)
	}
	return nil
}

// YAMLEqual compares two bytes assuming they are yaml, by converting to json
// and doing an ordering-agnostic comparison.
func YAMLEqual(expected, got []byte) error {
	e, err := yaml.YAMLToJSON(expected)
	if err != nil {
		return fmt.Errorf("yaml->json failure for expected: %v", err)
	}
	g, err := yaml.YAMLToJSON(got)
	if err != nil {
		return fmt.Errorf("yaml->json failure for got: %v", err)
	}
	return JSONEqual(e, g)
}

// JSONEqual compares two bytes assuming they are json, using encoding/json
// and DeepEqual.
func JSONEqual(expected, got []byte) error {
	var e, g any
	if err := json.Unmarshal(expected, &e); err != nil {
		return fmt.Errorf("decoding expected json: %v", err)
	}
	if err := json.Unmarshal(got, &g); err != nil {
		return fmt.Errorf("decoding got json: %v", err)
	}
	return DeepEqual(e, g)
}

// Fatalf is equivalent to t.Fatalf(msg, err, args...) if err != nil.
func Fatalf(t testing.TB, msg string, err error, args ...any) {
	if err != nil {
		t.Helper()
		t.Fatalf(msg, append([]any{err}, args...)...)
	}
}

// WriteFiles creates each file in files, keyed by a slash-separated path
// relative to root, creating parent directories as needed.
func WriteFiles(t testing.TB, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create directory for %q: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %q: %v", name, err)
		}
	}
}
