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

package ast

import "fmt"

// Kind identifies the shape of a Type. The Unsolved and UnsolvedNoHint
// kinds are placeholders that only ever appear on the unresolved tree
// produced by the parser; the checker eliminates every one of them before
// a System is considered checked.
type Kind uint8

const (
	Void Kind = iota
	Int32
	UInt32
	Float32
	Boolean
	Char
	Data
	Unsolved
	UnsolvedNoHint
)

// primitiveNames maps the reserved type literals to their primitive Kind.
var primitiveNames = map[string]Kind{
	"void": Void,
	"i32":  Int32,
	"u32":  UInt32,
	"f32":  Float32,
	"bool": Boolean,
	"char": Char,
}

// kindStrings maps a resolved, serializable Kind to its wire string. Data
// additionally carries Refs, which is why it is the fallback for any kind
// string a future revision of the format doesn't recognize.
var kindStrings = map[Kind]string{
	Void:    "void",
	Int32:   "i32",
	UInt32:  "u32",
	Float32: "f32",
	Boolean: "bool",
	Char:    "char",
	Data:    "Data",
}

func (k Kind) String() string {
	if s, ok := kindStrings[k]; ok {
		return s
	}
	switch k {
	case Unsolved:
		return "Unsolved"
	case UnsolvedNoHint:
		return "UnsolvedNoHint"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// KindFromString reverses String() for the set of kinds a checked Type may
// ever carry (the six primitives plus Data); it never produces Unsolved
// or UnsolvedNoHint, since those are parser-only placeholders that a wire
// value should never be found holding.
func KindFromString(s string) (Kind, bool) {
	for k, name := range kindStrings {
		if name == s {
			return k, true
		}
	}
	return 0, false
}

// IsPrimitive reports whether k is one of the six scalar built-in kinds.
func (k Kind) IsPrimitive() bool {
	switch k {
	case Void, Int32, UInt32, Float32, Boolean, Char:
		return true
	default:
		return false
	}
}

// IsUnsolved reports whether k is a parse-time placeholder that must not
// survive checking.
func (k Kind) IsUnsolved() bool {
	return k == Unsolved || k == UnsolvedNoHint
}

// Type is the syntactic or resolved type of a declaration: a value, data
// member, function argument, or return. Hint carries the original type
// literal for an Unsolved kind; Refs points at the defining Data/Module/
// Function once the type has been resolved.
type Type struct {
	Kind Kind
	Hint string
	Refs Name
}

// FromLiteral maps a type literal as written in source to its Type. The
// six reserved primitive spellings resolve immediately; anything else is
// an unresolved hint to be settled by the checker's Defines Manager.
func FromLiteral(s string) Type {
	if k, ok := primitiveNames[s]; ok {
		return Type{Kind: k}
	}
	return Type{Kind: Unsolved, Hint: s}
}

// NoHint is the type of an argument or use whose type was not written out
// syntactically; it is resolved purely from context.
func NoHint() Type {
	return Type{Kind: UnsolvedNoHint}
}

// DataType returns the resolved type referring to the Data declaration
// named by ref.
func DataType(ref Name) Type {
	return Type{Kind: Data, Refs: ref}
}

// Equal reports whether two resolved types denote the same type: same kind,
// and for Data, the same Refs.
func (t Type) Equal(o Type) bool {
	if t.Kind != o.Kind {
		return false
	}
	if t.Kind == Data {
		return t.Refs == o.Refs
	}
	return true
}

func (t Type) String() string {
	switch t.Kind {
	case Data:
		return t.Refs.Full()
	case Unsolved:
		return "Unsolved(" + t.Hint + ")"
	case UnsolvedNoHint:
		return "UnsolvedNoHint"
	default:
		return t.Kind.String()
	}
}
