// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ir holds the checked System: the serializable form a successful
// Check call produces, safe to hand to github.com/vmihailenco/msgpack/v5
// or encoding/json and to read back later without re-running the checker.
package ir

import (
	"fmt"

	"github.com/Yuta1004/SysDC-sub000/ast"
)

// Type is the wire form of a resolved ast.Type: Kind is always one of the
// checked literal strings, never "Unsolved"/"UnsolvedNoHint", and Refs is
// only present for Data.
type Type struct {
	Kind string    `json:"kind" msgpack:"kind"`
	Refs *ast.Name `json:"refs,omitempty" msgpack:"refs,omitempty"`
}

// newType converts a resolved ast.Type to its wire form. It panics if t is
// still Unsolved/UnsolvedNoHint: by the time a System is checked, nothing
// should be able to hand newType anything but a settled type, and a caller
// that manages to do so anyway has a bug worth failing loudly on.
func newType(t ast.Type) Type {
	if t.Kind.IsUnsolved() {
		panic(fmt.Sprintf("ir: cannot serialize an unresolved type (%s)", t.String()))
	}
	w := Type{Kind: t.Kind.String()}
	if t.Kind == ast.Data {
		refs := t.Refs
		w.Refs = &refs
	}
	return w
}

// toAST reverses newType, reconstructing the resolved ast.Type a wire Type
// described. The kind string table is intentionally open: a Kind this
// build doesn't recognize is treated as Data rather than rejected, so a
// document written by a later revision that introduced new type aliases
// still round-trips through an older build. A Data value (recognized or
// fallback) missing its Refs is a malformed document, not a panic: this
// path reads data that may have come from outside the program.
func (w Type) toAST() (ast.Type, error) {
	k, ok := ast.KindFromString(w.Kind)
	if !ok {
		k = ast.Data
	}
	if k == ast.Data {
		if w.Refs == nil {
			return ast.Type{}, fmt.Errorf("ir: Data type missing refs")
		}
		return ast.DataType(*w.Refs), nil
	}
	return ast.Type{Kind: k}, nil
}
