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

// Package defines implements the Defines Manager: the flat symbol index
// built once from an unresolved system and consulted by both checker
// passes to turn syntactic hints into concrete types.
package defines

import (
	"sort"

	"github.com/Yuta1004/SysDC-sub000/ast"
)

// EntryKind is the role an Entry plays in the index.
type EntryKind uint8

const (
	EData EntryKind = iota
	EDataMember
	EModule
	EFunction
	EArgument
	EVariable
	EUse
)

func (k EntryKind) String() string {
	switch k {
	case EData:
		return "Data"
	case EDataMember:
		return "DataMember"
	case EModule:
		return "Module"
	case EFunction:
		return "Function"
	case EArgument:
		return "Argument"
	case EVariable:
		return "Variable"
	case EUse:
		return "Use"
	default:
		return "?"
	}
}

// Entry is one row of the Defines Manager index: a (kind, refs) pair
// filed under the Name it was declared with.
//
//   - Data / Module: Refs is the declaration's own Name.
//   - DataMember / Function / Argument / Variable: Type is the
//     (possibly still unsolved) declared type; Refs is the Name used as the
//     scope to resolve that type's hint against: the declaring Data for a
//     DataMember, the function's own Name for a Function, the declaring
//     function for an Argument and for the Variable filed for an argument
//     or a @spawn result, and the let's own Name for a let-bound Variable.
//   - Use: Refs is the Name in the enclosing scope this alias refers to.
type Entry struct {
	Kind EntryKind
	Name ast.Name
	Refs ast.Name
	Type ast.Type
}

// table is a flat, sorted, namespace+name indexed set of Entry values,
// modeled after a classic symbol table: entries are appended in
// pre-order declaration order and sorted lazily before the first lookup.
type table struct {
	sorted  bool
	entries []Entry
}

func (t *table) add(e Entry) {
	t.entries = append(t.entries, e)
	t.sorted = false
}

func (t *table) sort() {
	if t.sorted {
		return
	}
	sort.SliceStable(t.entries, func(i, j int) bool {
		a, b := t.entries[i].Name, t.entries[j].Name
		if a.Namespace != b.Namespace {
			return a.Namespace < b.Namespace
		}
		return a.Name < b.Name
	})
	t.sorted = true
}

// lookup returns every entry filed directly under (namespace, name), in
// insertion order.
func (t *table) lookup(namespace, name string) []Entry {
	t.sort()
	lo := sort.Search(len(t.entries), func(i int) bool {
		e := t.entries[i].Name
		return e.Namespace > namespace || (e.Namespace == namespace && e.Name >= name)
	})
	var found []Entry
	for i := lo; i < len(t.entries); i++ {
		e := t.entries[i].Name
		if e.Namespace != namespace || e.Name != name {
			break
		}
		found = append(found, t.entries[i])
	}
	return found
}
