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

// Package checker runs the two resolution passes over a parsed *ast.Unit
// tree: Pass A rewrites every Unsolved/UnsolvedNoHint Type in place into a
// concrete one, Pass B then walks the now-fully-typed tree validating call
// arity/type match and declared-vs-actual return types.
package checker

import (
	"github.com/Yuta1004/SysDC-sub000/ast"
	"github.com/Yuta1004/SysDC-sub000/defines"
)

// resolveUnit is Pass A: every Member reachable from u has its Type
// rewritten from Unsolved/UnsolvedNoHint into a concrete one, using m as
// the sole source of truth for what a name or hint refers to.
func resolveUnit(u *ast.Unit, m *defines.Manager) error {
	for _, d := range u.Data {
		for i := range d.Members {
			if err := resolveMember(&d.Members[i], m); err != nil {
				return err
			}
		}
	}
	for _, mod := range u.Modules {
		for _, fn := range mod.Functions {
			if err := resolveFunction(fn, m); err != nil {
				return err
			}
		}
	}
	return nil
}

func resolveFunction(fn *ast.Function, m *defines.Manager) error {
	for i := range fn.Args {
		if err := resolveMember(&fn.Args[i], m); err != nil {
			return err
		}
	}
	if fn.Returns != nil {
		if err := resolveMember(fn.Returns, m); err != nil {
			return err
		}
	}
	for i := range fn.Annotations {
		resolved, err := resolveAnnotation(fn.Annotations[i], m)
		if err != nil {
			return err
		}
		fn.Annotations[i] = resolved
	}
	return nil
}

// resolveMember settles mem.Type in place. A Member built by the parser as
// a "by type" reference carries Unsolved(hint); one built as a "by name"
// reference carries UnsolvedNoHint and is resolved against mem.Name itself,
// which for every reference site already holds (search-scope, raw chain)
// rather than a declared identity.
func resolveMember(mem *ast.Member, m *defines.Manager) error {
	switch mem.Type.Kind {
	case ast.Unsolved:
		t, err := m.ResolveFromType(*mem)
		if err != nil {
			return err
		}
		mem.Type = t
	case ast.UnsolvedNoHint:
		t, err := m.ResolveFromName(mem.Name)
		if err != nil {
			return err
		}
		mem.Type = t
	}
	return nil
}

func resolveAnnotation(a ast.Annotation, m *defines.Manager) (ast.Annotation, error) {
	switch v := a.(type) {
	case ast.AnnotationAffect:
		if err := resolveMember(&v.Func, m); err != nil {
			return nil, err
		}
		for i := range v.Args {
			if err := resolveMember(&v.Args[i], m); err != nil {
				return nil, err
			}
		}
		return v, nil
	case ast.AnnotationModify:
		if err := resolveMember(&v.Target, m); err != nil {
			return nil, err
		}
		for i := range v.Uses {
			if err := resolveMember(&v.Uses[i], m); err != nil {
				return nil, err
			}
		}
		return v, nil
	case ast.AnnotationSpawn:
		if err := resolveMember(&v.Result, m); err != nil {
			return nil, err
		}
		for i := range v.Details {
			resolved, err := resolveSpawnDetail(v.Details[i], m)
			if err != nil {
				return nil, err
			}
			v.Details[i] = resolved
		}
		return v, nil
	default:
		return a, nil
	}
}

func resolveSpawnDetail(d ast.SpawnDetail, m *defines.Manager) (ast.SpawnDetail, error) {
	switch v := d.(type) {
	case ast.SpawnUse:
		for i := range v.Names {
			if err := resolveMember(&v.Names[i], m); err != nil {
				return nil, err
			}
		}
		return v, nil
	case ast.SpawnReturn:
		if err := resolveMember(&v.Var, m); err != nil {
			return nil, err
		}
		return v, nil
	case ast.SpawnLetTo:
		for i := range v.Args {
			if err := resolveMember(&v.Args[i], m); err != nil {
				return nil, err
			}
		}
		if err := resolveMember(&v.Func, m); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return d, nil
	}
}
