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

package token

import (
	"strings"

	"github.com/Yuta1004/SysDC-sub000/errs"
)

// symbols is the set of single rune symbols that each form their own
// token. "-" is handled separately since it only ever appears as the
// first half of "->".
var symbols = map[rune]Kind{
	':': Colon, '=': Equals, '.': Dot, ',': Comma, ';': Semi,
	'(': LParen, ')': RParen, '{': LBrace, '}': RBrace,
	'@': At, '+': Plus,
}

// Tokenizer turns one source file into a lazy sequence of Tokens. It
// holds at most one token of lookahead (hold), filled in by peek/expect
// and consumed by the next successful Expect/Request.
type Tokenizer struct {
	r    *reader
	hold *Token
	err  error
}

// New creates a Tokenizer over the given source, identified by filename
// for error locations.
func New(filename, source string) *Tokenizer {
	return &Tokenizer{r: newReader(filename, source)}
}

// PeekLocation returns the location of the next token without consuming
// it. If the input is exhausted it returns the location just past the
// last rune read so far.
func (t *Tokenizer) PeekLocation() errs.Location {
	tok, err := t.peek()
	if err != nil || tok == nil {
		return t.r.location()
	}
	return tok.Location
}

// ExistsNext reports whether another token remains in the stream.
func (t *Tokenizer) ExistsNext() bool {
	tok, err := t.peek()
	return err == nil && tok != nil
}

// Expect consumes and returns the next token iff it has the given kind;
// otherwise the token is left in place (the "put it back" half of the
// one-token lookahead contract) and ok is false.
func (t *Tokenizer) Expect(kind Kind) (*Token, bool) {
	tok, err := t.peek()
	if err != nil || tok == nil || tok.Kind != kind {
		return nil, false
	}
	t.hold = nil
	return tok, true
}

// Request consumes and returns the next token, failing with
// RequestedTokenNotFound if it does not have the given kind.
func (t *Tokenizer) Request(kind Kind) (*Token, error) {
	tok, err := t.peek()
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, errs.New(errs.RequestedTokenNotFound, t.r.location(), kind)
	}
	if tok.Kind != kind {
		return nil, errs.New(errs.RequestedTokenNotFound, tok.Location, kind)
	}
	t.hold = nil
	return tok, nil
}

// Next consumes and returns the next token unconditionally, regardless of
// its kind. It is used where the grammar needs to inspect an unexpected
// token to build a specific diagnostic (an unrecognized annotation word).
func (t *Tokenizer) Next() (*Token, error) {
	tok, err := t.peek()
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, errs.New(errs.UnexpectedEOF, t.r.location())
	}
	t.hold = nil
	return tok, nil
}

// peek fills and returns the held token without consuming it.
func (t *Tokenizer) peek() (*Token, error) {
	if t.err != nil {
		return nil, t.err
	}
	if t.hold != nil {
		return t.hold, nil
	}
	tok, err := t.next()
	if err != nil {
		t.err = err
		return nil, err
	}
	t.hold = tok
	return tok, nil
}

// next scans exactly one token off the underlying reader, skipping
// whitespace and %...% comments first. It returns (nil, nil) at EOF.
func (t *Tokenizer) next() (*Token, error) {
	r := t.r
	inComment := false
	for !r.isEOF() {
		c := r.peek()
		switch {
		case c == '%':
			r.advance()
			inComment = !inComment
		case inComment:
			r.advance()
		case c == '\n' || isSpace(c):
			r.advance()
		default:
			goto scan
		}
	}
scan:
	if inComment {
		return nil, errs.New(errs.UnexpectedEOF, r.location())
	}
	if r.isEOF() {
		return nil, nil
	}

	loc := r.location()
	c := r.peek()

	switch {
	case c == '-':
		r.advance()
		if r.isEOF() {
			return nil, errs.New(errs.UnexpectedEOF, loc)
		}
		if r.peek() != '>' {
			return nil, errs.New(errs.FoundUnregisteredSymbol, loc)
		}
		r.advance()
		return &Token{Kind: Arrow, Lexeme: "->", Location: loc}, nil

	case isSymbol(c):
		r.advance()
		return &Token{Kind: symbols[c], Lexeme: string(c), Location: loc}, nil

	case isIdentStart(c):
		var sb strings.Builder
		for !r.isEOF() && isIdentCont(r.peek()) {
			sb.WriteRune(r.advance())
		}
		lexeme := sb.String()
		kind := Identifier
		if k, ok := keywords[lexeme]; ok {
			kind = k
		}
		return &Token{Kind: kind, Lexeme: lexeme, Location: loc}, nil

	case isDigit(c):
		var sb strings.Builder
		for !r.isEOF() && isDigit(r.peek()) {
			sb.WriteRune(r.advance())
		}
		return &Token{Kind: Identifier, Lexeme: sb.String(), Location: loc}, nil

	default:
		r.advance()
		return nil, errs.New(errs.FoundUnregisteredSymbol, loc)
	}
}

func isSymbol(c rune) bool {
	_, ok := symbols[c]
	return ok
}
