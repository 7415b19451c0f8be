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

package ir

import (
	"encoding/json"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/Yuta1004/SysDC-sub000/ast"
)

// Unit is the wire form of a checked ast.Unit. Imports never appear here:
// checker.Check resolves and discards them before a System is built.
type Unit struct {
	Name    ast.Name `json:"name" msgpack:"name"`
	Data    []Data   `json:"data" msgpack:"data"`
	Modules []Module `json:"modules" msgpack:"modules"`
}

// System is the full checked program: every Unit handed to Check, with
// every Member's Type fully resolved. It is the boundary value the front
// end hands back to callers, and the only thing this package knows how to
// serialize.
type System struct {
	Units []Unit `json:"units" msgpack:"units"`
}

// NewSystem converts a slice of checked units (as returned by
// checker.Check) into their serializable form.
func NewSystem(units []*ast.Unit) *System {
	sys := &System{Units: make([]Unit, len(units))}
	for i, u := range units {
		sys.Units[i] = newUnit(u)
	}
	return sys
}

func newUnit(u *ast.Unit) Unit {
	w := Unit{Name: u.Name}
	w.Data = make([]Data, len(u.Data))
	for i, d := range u.Data {
		w.Data[i] = newData(d)
	}
	w.Modules = make([]Module, len(u.Modules))
	for i, mod := range u.Modules {
		w.Modules[i] = newModule(mod)
	}
	return w
}

// ToAST reconstructs the checked *ast.Unit slice this System wraps. It is
// the inverse of NewSystem, modulo Imports, which a checked Unit never had
// to begin with.
func (s *System) ToAST() ([]*ast.Unit, error) {
	units := make([]*ast.Unit, len(s.Units))
	for i, w := range s.Units {
		u, err := w.toAST()
		if err != nil {
			return nil, err
		}
		units[i] = u
	}
	return units, nil
}

func (w Unit) toAST() (*ast.Unit, error) {
	u := &ast.Unit{Name: w.Name}
	u.Data = make([]*ast.Data, len(w.Data))
	for i, d := range w.Data {
		conv, err := d.toAST()
		if err != nil {
			return nil, err
		}
		u.Data[i] = conv
	}
	u.Modules = make([]*ast.Module, len(w.Modules))
	for i, mod := range w.Modules {
		conv, err := mod.toAST()
		if err != nil {
			return nil, err
		}
		u.Modules[i] = conv
	}
	return u, nil
}

// Marshal encodes the system as MessagePack.
func (s *System) Marshal() ([]byte, error) {
	return msgpack.Marshal(s)
}

// Unmarshal decodes a System previously produced by Marshal.
func Unmarshal(data []byte) (*System, error) {
	var sys System
	if err := msgpack.Unmarshal(data, &sys); err != nil {
		return nil, err
	}
	return &sys, nil
}

// MarshalJSON encodes the system as JSON, for tooling that would rather
// not pull in a MessagePack decoder.
func (s *System) MarshalJSON() ([]byte, error) {
	return json.Marshal(*s)
}

// UnmarshalJSON decodes a System previously produced by MarshalJSON.
func UnmarshalJSON(data []byte) (*System, error) {
	var sys System
	if err := json.Unmarshal(data, &sys); err != nil {
		return nil, err
	}
	return &sys, nil
}
