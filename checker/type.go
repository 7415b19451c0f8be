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

package checker

import (
	"github.com/Yuta1004/SysDC-sub000/ast"
	"github.com/Yuta1004/SysDC-sub000/errs"
)

// funcIndex maps a Function's own full Name to its declaration, built once
// over every unit passed to Check so Pass B can look up a call's target
// arity and parameter types without going back through the Defines
// Manager's string-keyed table.
type funcIndex map[string]*ast.Function

func buildFuncIndex(units []*ast.Unit) funcIndex {
	idx := funcIndex{}
	for _, u := range units {
		for _, mod := range u.Modules {
			for _, fn := range mod.Functions {
				idx[fn.Name.Full()] = fn
			}
		}
	}
	return idx
}

// targetOf resolves a call reference's already-Pass-A-resolved Type (Kind:
// Data, Refs: the callee's own Name) to its Function declaration.
func (idx funcIndex) targetOf(t ast.Type) (*ast.Function, error) {
	if t.Kind != ast.Data {
		return nil, errs.New(errs.TypeUnmatch1, errs.Location{}, t.String())
	}
	fn, ok := idx[t.Refs.Full()]
	if !ok {
		return nil, errs.New(errs.NotDefined, errs.Location{}, t.Refs.Full())
	}
	return fn, nil
}

// matchCall validates that args, once resolved, line up one-to-one in
// count and type with target's declared parameters.
func matchCall(target *ast.Function, args []ast.Member) error {
	if len(args) != len(target.Args) {
		return errs.New(errs.ArgumentsLengthNotMatch, errs.Location{})
	}
	for i, a := range args {
		want := target.Args[i].Type
		if !a.Type.Equal(want) {
			return errs.New(errs.TypeUnmatch2, errs.Location{}, want.String(), a.Type.String())
		}
	}
	return nil
}
