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

// Package errs defines the error surface shared by every stage of the
// front-end: a flat ErrorKind enumeration, each carrying the source
// Location of the token that triggered it.
package errs

import "fmt"

// Location pinpoints a lexeme inside a source file. Any subset of its
// fields may be populated: Filename is empty for synthetic/internal
// locations, and Row/Col are zero when only the file is known.
type Location struct {
	Filename string
	Row      int
	Col      int
}

// HasPosition reports whether Row/Col were set by the tokenizer.
func (l Location) HasPosition() bool { return l.Row > 0 || l.Col > 0 }

// String formats the location the way the spec's four cases require:
// "filename:row:col", "row:col", "filename", or "?" when nothing is known.
func (l Location) String() string {
	switch {
	case l.Filename != "" && l.HasPosition():
		return fmt.Sprintf("%s:%d:%d", l.Filename, l.Row, l.Col)
	case l.HasPosition():
		return fmt.Sprintf("%d:%d", l.Row, l.Col)
	case l.Filename != "":
		return l.Filename
	default:
		return "?"
	}
}
