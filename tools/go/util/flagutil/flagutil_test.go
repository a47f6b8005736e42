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

package flagutil

import (
	"flag"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStringList(t *testing.T) {
	var opts StringList
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(&opts, "option", "")
	if err := fs.Parse([]string{"--option=-Wl,-rpath,$ORIGIN", "--option", "-O2", "--option=-O2"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []string{"-Wl,-rpath,$ORIGIN", "-O2", "-O2"}
	if diff := cmp.Diff(want, opts.Get()); diff != "" {
		t.Errorf("StringList: (-want +got)\n%s", diff)
	}
	if got, want := opts.String(), "-Wl,-rpath,$ORIGIN -O2 -O2"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
