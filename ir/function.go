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
	"github.com/Yuta1004/SysDC-sub000/ast"
)

// Data is the wire form of an ast.Data declaration.
type Data struct {
	Name    ast.Name `json:"name" msgpack:"name"`
	Members []Member `json:"members" msgpack:"members"`
}

func newData(d *ast.Data) Data {
	return Data{Name: d.Name, Members: newMembers(d.Members)}
}

func (d Data) toAST() (*ast.Data, error) {
	members, err := membersToAST(d.Members)
	if err != nil {
		return nil, err
	}
	return &ast.Data{Name: d.Name, Members: members}, nil
}

// Module is the wire form of an ast.Module declaration.
type Module struct {
	Name      ast.Name   `json:"name" msgpack:"name"`
	Functions []Function `json:"functions" msgpack:"functions"`
}

func newModule(mod *ast.Module) Module {
	fns := make([]Function, len(mod.Functions))
	for i, fn := range mod.Functions {
		fns[i] = newFunction(fn)
	}
	return Module{Name: mod.Name, Functions: fns}
}

func (w Module) toAST() (*ast.Module, error) {
	fns := make([]*ast.Function, len(w.Functions))
	for i, fn := range w.Functions {
		conv, err := fn.toAST()
		if err != nil {
			return nil, err
		}
		fns[i] = conv
	}
	return &ast.Module{Name: w.Name, Functions: fns}, nil
}

// Function is the wire form of an ast.Function. A nil Returns means the
// checked function is a proc, exactly as on the ast tree it came from.
type Function struct {
	Name        ast.Name     `json:"name" msgpack:"name"`
	Args        []Member     `json:"args" msgpack:"args"`
	Returns     *Member      `json:"returns,omitempty" msgpack:"returns,omitempty"`
	Annotations []Annotation `json:"annotations" msgpack:"annotations"`
}

func newFunction(fn *ast.Function) Function {
	w := Function{Name: fn.Name, Args: newMembers(fn.Args)}
	if fn.Returns != nil {
		ret := newMember(*fn.Returns)
		w.Returns = &ret
	}
	w.Annotations = make([]Annotation, len(fn.Annotations))
	for i, a := range fn.Annotations {
		w.Annotations[i] = newAnnotation(a)
	}
	return w
}

func (w Function) toAST() (*ast.Function, error) {
	args, err := membersToAST(w.Args)
	if err != nil {
		return nil, err
	}
	fn := &ast.Function{Name: w.Name, Args: args}
	if w.Returns != nil {
		ret, err := w.Returns.toAST()
		if err != nil {
			return nil, err
		}
		fn.Returns = &ret
	}
	fn.Annotations = make([]ast.Annotation, len(w.Annotations))
	for i, a := range w.Annotations {
		conv, err := a.toAST()
		if err != nil {
			return nil, err
		}
		fn.Annotations[i] = conv
	}
	return fn, nil
}
