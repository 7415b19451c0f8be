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

// Package token implements the SysDC tokenizer: a byte stream is turned
// into a lazy sequence of lexical tokens, each carrying the (filename,
// row, col) of its first character.
package token

import (
	"unicode/utf8"

	"github.com/Yuta1004/SysDC-sub000/errs"
)

// reader is a rune-at-a-time cursor over one source file, tracking the
// (row, col) of the next unread rune. It holds exactly one rune of
// lookahead (peek) on top of the cursor itself.
type reader struct {
	filename string
	runes    []rune
	cursor   int
	row, col int
}

func newReader(filename, data string) *reader {
	return &reader{filename: filename, runes: bytes(data), row: 1, col: 1}
}

func bytes(data string) []rune {
	return []rune(data)
}

// location returns the position of the next unread rune.
func (r *reader) location() errs.Location {
	return errs.Location{Filename: r.filename, Row: r.row, Col: r.col}
}

func (r *reader) isEOF() bool {
	return r.cursor >= len(r.runes)
}

// peek returns the next unread rune without consuming it. It returns
// utf8.RuneError once the input is exhausted.
func (r *reader) peek() rune {
	if r.isEOF() {
		return utf8.RuneError
	}
	return r.runes[r.cursor]
}

// advance consumes and returns the next rune, updating row/col. Newlines
// increment row and reset col to 1; every other rune increments col.
func (r *reader) advance() rune {
	c := r.runes[r.cursor]
	r.cursor++
	if c == '\n' {
		r.row++
		r.col = 1
	} else {
		r.col++
	}
	return c
}

func isDigit(c rune) bool { return c >= '0' && c <= '9' }

func isIdentStart(c rune) bool {
	return c == '_' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isIdentCont(c rune) bool {
	return isIdentStart(c) || isDigit(c)
}

func isSpace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\r'
}
