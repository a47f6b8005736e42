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

// Package extraaction decodes and encodes the Bazel ExtraActionInfo records
// passed to extra actions, limited to the fields used to reconstruct C/C++
// compiler invocations.
//
// Records are read straight off the protobuf wire format. Only the
// CppCompileInfo extension (and a few identifying fields of the enclosing
// record) are retained; everything else is skipped.
package extraaction // import "quarkgl.io/tools/go/actions/extraaction"

import (
	"context"
	"errors"
	"fmt"

	"quarkgl.io/tools/go/platform/vfs"

	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers from bazel's src/main/protobuf/extra_actions_base.proto.
const (
	ownerField          protowire.Number = 1
	idField             protowire.Number = 2
	mnemonicField       protowire.Number = 5
	cppCompileInfoField protowire.Number = 1001 // extends ExtraActionInfo

	toolField           protowire.Number = 1
	compilerOptionField protowire.Number = 2
	sourceFileField     protowire.Number = 3
	outputFileField     protowire.Number = 4
)

// ErrNoCppCompileInfo is returned when a record does not carry the C/C++
// compile extension.
var ErrNoCppCompileInfo = errors.New("extra action does not have CppCompileInfo")

// ExtraActionInfo is the subset of a Bazel ExtraActionInfo record understood
// by this package.
type ExtraActionInfo struct {
	Owner    string `json:"owner,omitempty"`
	ID       string `json:"id,omitempty"`
	Mnemonic string `json:"mnemonic,omitempty"`

	// CppCompileInfo is nil if the record has no C/C++ compile extension.
	CppCompileInfo *CppCompileInfo `json:"cpp_compile_info,omitempty"`
}

// CppCompileInfo describes a single C/C++ compiler invocation.
type CppCompileInfo struct {
	Tool           string   `json:"tool,omitempty"`
	CompilerOption []string `json:"compiler_option,omitempty"`
	SourceFile     string   `json:"source_file,omitempty"`
	OutputFile     string   `json:"output_file,omitempty"`
}

// CppCompile returns the C/C++ compile extension of xa, or
// ErrNoCppCompileInfo.
func (xa *ExtraActionInfo) CppCompile() (*CppCompileInfo, error) {
	if xa == nil || xa.CppCompileInfo == nil {
		return nil, ErrNoCppCompileInfo
	}
	return xa.CppCompileInfo, nil
}

// Unmarshal decodes a wire-format ExtraActionInfo. Repeated occurrences of a
// message field are merged: singular strings take the last value and
// repeated strings are appended.
func Unmarshal(data []byte) (*ExtraActionInfo, error) {
	var xa ExtraActionInfo
	err := consumeFields(data, func(num protowire.Number, v []byte) error {
		switch num {
		case ownerField:
			xa.Owner = string(v)
		case idField:
			xa.ID = string(v)
		case mnemonicField:
			xa.Mnemonic = string(v)
		case cppCompileInfoField:
			if xa.CppCompileInfo == nil {
				xa.CppCompileInfo = new(CppCompileInfo)
			}
			if err := xa.CppCompileInfo.merge(v); err != nil {
				return fmt.Errorf("cpp_compile_info: %v", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &xa, nil
}

func (ci *CppCompileInfo) merge(data []byte) error {
	return consumeFields(data, func(num protowire.Number, v []byte) error {
		switch num {
		case toolField:
			ci.Tool = string(v)
		case compilerOptionField:
			ci.CompilerOption = append(ci.CompilerOption, string(v))
		case sourceFileField:
			ci.SourceFile = string(v)
		case outputFileField:
			ci.OutputFile = string(v)
		}
		return nil
	})
}

// consumeFields calls f with the number and payload of each length-delimited
// field in b. Fields of any other wire type are skipped.
func consumeFields(b []byte, f func(protowire.Number, []byte) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		if typ != protowire.BytesType {
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return fmt.Errorf("field %d: %v", num, protowire.ParseError(n))
			}
			b = b[n:]
			continue
		}
		v, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return fmt.Errorf("field %d: %v", num, protowire.ParseError(n))
		}
		if err := f(num, v); err != nil {
			return err
		}
		b = b[n:]
	}
	return nil
}

// Marshal returns the wire encoding of xa. Empty strings are omitted.
func Marshal(xa *ExtraActionInfo) []byte {
	var b []byte
	b = appendString(b, ownerField, xa.Owner)
	b = appendString(b, idField, xa.ID)
	b = appendString(b, mnemonicField, xa.Mnemonic)
	if ci := xa.CppCompileInfo; ci != nil {
		var m []byte
		m = appendString(m, toolField, ci.Tool)
		for _, opt := range ci.CompilerOption {
			m = protowire.AppendTag(m, compilerOptionField, protowire.BytesType)
			m = protowire.AppendString(m, opt)
		}
		m = appendString(m, sourceFileField, ci.SourceFile)
		m = appendString(m, outputFileField, ci.OutputFile)

		b = protowire.AppendTag(b, cppCompileInfoField, protowire.BytesType)
		b = protowire.AppendBytes(b, m)
	}
	return b
}

func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

// LoadAction loads and parses a wire-format ExtraActionInfo message from the
// specified path.
func LoadAction(ctx context.Context, path string) (*ExtraActionInfo, error) {
	data, err := vfs.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("reading extra action info: %v", err)
	}
	info, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("parsing extra action info %q: %v", path, err)
	}
	return info, nil
}
