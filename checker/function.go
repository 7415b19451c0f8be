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
	"github.com/Yuta1004/SysDC-sub000/defines"
	"github.com/Yuta1004/SysDC-sub000/errs"
)

// matchFunction is Pass B for one already-Pass-A-resolved function: it
// revalidates the declared return value against what the body actually
// produces, and checks every call's arity and parameter types against its
// target's declaration.
func matchFunction(fn *ast.Function, idx funcIndex, m *defines.Manager) error {
	if fn.Returns != nil && fn.Returns.Type.Kind != ast.Void {
		actual, err := m.ResolveFromName(fn.Returns.Name)
		if err != nil {
			return err
		}
		if !actual.Equal(fn.Returns.Type) {
			return errs.New(errs.TypeUnmatch2, errs.Location{}, fn.Returns.Type.String(), actual.String())
		}
	}
	for _, a := range fn.Annotations {
		if err := matchAnnotation(a, idx); err != nil {
			return err
		}
	}
	return nil
}

func matchAnnotation(a ast.Annotation, idx funcIndex) error {
	switch v := a.(type) {
	case ast.AnnotationAffect:
		target, err := idx.targetOf(v.Func.Type)
		if err != nil {
			return err
		}
		return matchCall(target, v.Args)
	case ast.AnnotationModify:
		return nil
	case ast.AnnotationSpawn:
		for _, d := range v.Details {
			if let, ok := d.(ast.SpawnLetTo); ok {
				target, err := idx.targetOf(let.Func.Type)
				if err != nil {
					return err
				}
				if err := matchCall(target, let.Args); err != nil {
					return err
				}
			}
		}
		return nil
	default:
		return nil
	}
}
