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

// Package parser turns one tokenized source file into an *ast.Unit: a
// straight recursive-descent walk of the grammar, with a single token of
// lookahead and no backtracking.
package parser

import (
	"strings"

	"github.com/Yuta1004/SysDC-sub000/ast"
	"github.com/Yuta1004/SysDC-sub000/errs"
	"github.com/Yuta1004/SysDC-sub000/token"
)

// Parse tokenizes and parses one source file into its unresolved Unit.
func Parse(filename, source string) (*ast.Unit, error) {
	tz := token.New(filename, source)
	return parseUnit(tz)
}

// nameFromChain builds the hierarchical Name for a dotted identifier chain
// declared directly under root, e.g. ["test", "A"] under RootNamespace
// becomes Name{Namespace: ".0.test", Name: "A"}.
func nameFromChain(root string, chain []string) ast.Name {
	leaf := chain[len(chain)-1]
	rest := chain[:len(chain)-1]
	namespace := root
	if len(rest) > 0 {
		namespace = root + "." + strings.Join(rest, ".")
	}
	return ast.Name{Namespace: namespace, Name: leaf}
}

// refByName builds the Member for an unresolved reference that must be
// looked up by splitting its own textual chain (a call argument, a modify
// target, a use or return detail): Type starts out as UnsolvedNoHint and
// is replaced by the checker's resolve-from-name path.
func refByName(scopeNamespace, chain string) ast.Member {
	return ast.Member{Name: ast.Name{Namespace: scopeNamespace, Name: chain}, Type: ast.NoHint()}
}

// refByType builds the Member for an unresolved reference that must be
// looked up by treating its own textual chain as a type hint (an @affect
// or "let" call target): Type starts out as Unsolved(hint) and is replaced
// by the checker's resolve-from-type path.
func refByType(scopeNamespace, chain string) ast.Member {
	return ast.Member{Name: ast.Name{Namespace: scopeNamespace, Name: chain}, Type: ast.FromLiteral(chain)}
}

// parseIdChain parses "Identifier ('.' Identifier)*", returning its
// segments. notFound is the error kind returned when not even the first
// identifier is present.
func parseIdChain(tz *token.Tokenizer, notFound errs.Kind) ([]string, error) {
	first, err := tz.Request(token.Identifier)
	if err != nil {
		if e, ok := err.(*errs.Error); ok && e.Kind == errs.RequestedTokenNotFound {
			return nil, errs.New(notFound, e.Location)
		}
		return nil, err
	}
	segs := []string{first.Lexeme}
	for {
		if _, ok := tz.Expect(token.Dot); !ok {
			break
		}
		next, err := tz.Request(token.Identifier)
		if err != nil {
			return nil, err
		}
		segs = append(segs, next.Lexeme)
	}
	return segs, nil
}

// parseIdChainDotted parses an IdChain and rejoins its segments with ".",
// the flat textual form stored on reference Members (affect targets,
// call arguments, spawn uses/returns/lets) for later resolution.
func parseIdChainDotted(tz *token.Tokenizer, notFound errs.Kind) (string, error) {
	segs, err := parseIdChain(tz, notFound)
	if err != nil {
		return "", err
	}
	return strings.Join(segs, "."), nil
}

// parseIdentList parses "Identifier (',' Identifier)*".
func parseIdentList(tz *token.Tokenizer) ([]string, error) {
	first, err := tz.Request(token.Identifier)
	if err != nil {
		return nil, err
	}
	idents := []string{first.Lexeme}
	for {
		if _, ok := tz.Expect(token.Comma); !ok {
			break
		}
		next, err := tz.Request(token.Identifier)
		if err != nil {
			return nil, err
		}
		idents = append(idents, next.Lexeme)
	}
	return idents, nil
}

// parseIdTypeMap parses "Identifier ':' Identifier", returning a Member
// declared directly under scope.
func parseIdTypeMap(tz *token.Tokenizer, scope ast.Name) (ast.Member, error) {
	name, err := tz.Request(token.Identifier)
	if err != nil {
		return ast.Member{}, err
	}
	if _, err := tz.Request(token.Colon); err != nil {
		return ast.Member{}, err
	}
	typ, err := tz.Request(token.Identifier)
	if err != nil {
		return ast.Member{}, err
	}
	return ast.Member{Name: scope.Child(name.Lexeme), Type: ast.FromLiteral(typ.Lexeme)}, nil
}
