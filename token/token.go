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

import "github.com/Yuta1004/SysDC-sub000/errs"

// Kind identifies the lexical class of a Token: one of the reserved
// keywords, one of the fixed symbols, or Identifier for everything else.
type Kind uint8

const (
	Identifier Kind = iota

	// Reserved words.
	Unit
	From
	Import
	Data
	Module
	Func
	Proc
	Return
	Affect
	Modify
	Spawn
	Let
	Use

	// Symbols.
	Arrow  // ->
	Colon  // :
	Equals // =
	Dot    // .
	Comma  // ,
	Semi   // ;
	LParen // (
	RParen // )
	LBrace // {
	RBrace // }
	At     // @
	Plus   // +
)

var keywords = map[string]Kind{
	"unit":   Unit,
	"from":   From,
	"import": Import,
	"data":   Data,
	"module": Module,
	"func":   Func,
	"proc":   Proc,
	"return": Return,
	"affect": Affect,
	"modify": Modify,
	"spawn":  Spawn,
	"let":    Let,
	"use":    Use,
}

var kindNames = map[Kind]string{
	Identifier: "Identifier",
	Unit:       "unit", From: "from", Import: "import",
	Data: "data", Module: "module", Func: "func", Proc: "proc",
	Return: "return", Affect: "affect", Modify: "modify", Spawn: "spawn",
	Let: "let", Use: "use",
	Arrow: "->", Colon: ":", Equals: "=", Dot: ".", Comma: ",", Semi: ";",
	LParen: "(", RParen: ")", LBrace: "{", RBrace: "}", At: "@", Plus: "+",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "?"
}

// Token is one lexeme produced by the Tokenizer, carrying its original
// text and the location of its first character.
type Token struct {
	Kind     Kind
	Lexeme   string
	Location errs.Location
}
