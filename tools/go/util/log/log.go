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

// Package log provides semantic log functions for the compile command tools.
package log // import "quarkgl.io/tools/go/util/log"

import (
	"log"
	"os"
	"path/filepath"
)

// Verbose enables Verbosef output.
var Verbose bool

func init() {
	log.SetFlags(0)
	log.SetPrefix(filepath.Base(os.Args[0]) + ": ")
}

// Infof logs to the informational log.
func Infof(msg string, args ...any) { log.Printf(msg, args...) }

// Verbosef logs to the informational log if Verbose is set.
func Verbosef(msg string, args ...any) {
	if Verbose {
		log.Printf(msg, args...)
	}
}

// Errorf logs to the error log.
func Errorf(msg string, args ...any) { log.Printf("ERROR: "+msg, args...) }

// Fatalf logs to the error log and exits with status 1.
func Fatalf(msg string, args ...any) { log.Fatalf(msg, args...) }

// Fatal logs to the error log and exits with status 1.
func Fatal(args ...any) { log.Fatal(args...) }
