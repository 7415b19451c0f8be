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

// Package sysdc holds the main interface to the SysDC front-end libraries:
// tokenizing and parsing source files into units, and checking a set of
// units into a serializable System.
package sysdc

import (
	"go.uber.org/zap"

	"github.com/Yuta1004/SysDC-sub000/ast"
	"github.com/Yuta1004/SysDC-sub000/checker"
	"github.com/Yuta1004/SysDC-sub000/ir"
	"github.com/Yuta1004/SysDC-sub000/parser"
)

// Parser accumulates the units parsed from one or more source files and
// turns them, on demand, into a checked System. It holds no state beyond
// that: parsing and checking are both synchronous, and nothing here is
// safe to call from more than one goroutine at a time.
type Parser struct {
	log   *zap.Logger
	units []*ast.Unit
}

// New returns an empty Parser that logs nothing.
func New() *Parser {
	return NewWithLogger(zap.NewNop())
}

// NewWithLogger returns an empty Parser that reports each Parse/Check call
// to log.
func NewWithLogger(log *zap.Logger) *Parser {
	return &Parser{log: log}
}

// Parse tokenizes and parses one source file, appending its Unit to the
// set Check will later validate together. filename is only used to locate
// errors; source is the file's full text.
func (p *Parser) Parse(filename, source string) error {
	p.log.Debug("parsing unit", zap.String("filename", filename))
	u, err := parser.Parse(filename, source)
	if err != nil {
		p.log.Debug("parse failed", zap.String("filename", filename), zap.Error(err))
		return err
	}
	p.units = append(p.units, u)
	return nil
}

// Check runs both checker passes over every unit parsed so far and
// returns the resulting System. A Parser may be Checked more than once;
// each call re-runs both passes over the same accumulated units, which an
// earlier successful call has already resolved in place (their Types
// settled and their Imports cleared).
func (p *Parser) Check() (*ir.System, error) {
	p.log.Debug("checking system", zap.Int("units", len(p.units)))
	checked, err := checker.Check(p.units)
	if err != nil {
		p.log.Debug("check failed", zap.Error(err))
		return nil, err
	}
	return ir.NewSystem(checked), nil
}
