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

package defines

import (
	"strings"

	"github.com/Yuta1004/SysDC-sub000/ast"
	"github.com/Yuta1004/SysDC-sub000/errs"
)

// Manager is the Defines Manager: a single flat index built once, in
// pre-order, over every unit handed to a checking run, then consulted
// read-only by both checker passes.
type Manager struct {
	t       table
	imports []unitImports
}

// unitImports remembers one unit's declared imports under its own full
// namespace, so find can fall back to them once a purely lexical walk up
// the namespace chain has been exhausted.
type unitImports struct {
	namespace string
	names     []ast.Name
}

// NewManager builds a Manager over units, walking each one in pre-order
// and filing a row for every Data, DataMember, Module, Function, Argument
// and Variable declaration, plus a Use row for every name introduced by
// a @spawn's "use" clause. It returns the first collision it finds.
func NewManager(units []*ast.Unit) (*Manager, error) {
	m := &Manager{}
	for _, u := range units {
		m.imports = append(m.imports, unitImports{namespace: u.Name.Full(), names: u.Imports})
		for _, d := range u.Data {
			if err := m.insert(Entry{Kind: EData, Name: d.Name, Refs: d.Name}); err != nil {
				return nil, err
			}
			for _, mem := range d.Members {
				if err := m.insert(Entry{Kind: EDataMember, Name: mem.Name, Refs: d.Name, Type: mem.Type}); err != nil {
					return nil, err
				}
			}
		}
		for _, mod := range u.Modules {
			if err := m.insert(Entry{Kind: EModule, Name: mod.Name, Refs: mod.Name}); err != nil {
				return nil, err
			}
			for _, fn := range mod.Functions {
				fnType := ast.Type{}
				if fn.Returns != nil {
					fnType = fn.Returns.Type
				}
				if err := m.insert(Entry{Kind: EFunction, Name: fn.Name, Refs: fn.Name, Type: fnType}); err != nil {
					return nil, err
				}
				for _, arg := range fn.Args {
					if err := m.insert(Entry{Kind: EArgument, Name: arg.Name, Refs: fn.Name, Type: arg.Type}); err != nil {
						return nil, err
					}
					if err := m.insert(Entry{Kind: EVariable, Name: arg.Name, Refs: fn.Name, Type: arg.Type}); err != nil {
						return nil, err
					}
				}
				if err := m.insertAnnotations(fn); err != nil {
					return nil, err
				}
			}
		}
	}
	return m, nil
}

func (m *Manager) insertAnnotations(fn *ast.Function) error {
	for _, a := range fn.Annotations {
		spawn, ok := a.(ast.AnnotationSpawn)
		if !ok {
			continue
		}
		if err := m.insert(Entry{Kind: EVariable, Name: spawn.Result.Name, Refs: fn.Name, Type: spawn.Result.Type}); err != nil {
			return err
		}
		for _, d := range spawn.Details {
			switch det := d.(type) {
			case ast.SpawnUse:
				for _, use := range det.Names {
					outerNamespace := ast.Name{Namespace: use.Name.Namespace}.Parent(true).Full()
					outer := ast.Name{Namespace: outerNamespace, Name: use.Name.Name}
					if err := m.insert(Entry{Kind: EUse, Name: use.Name, Refs: outer}); err != nil {
						return err
					}
				}
			case ast.SpawnLetTo:
				if err := m.insert(Entry{Kind: EVariable, Name: det.Name, Refs: det.Name, Type: det.Func.Type}); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// insert files e and enforces the uniqueness invariant: within a function
// scope, including any @spawn underscore scopes nested inside it, every
// argument and let-bound name must be unique. Two entries under the same
// (namespace, name) are allowed when at least one of them is an Argument
// (arguments are deliberately filed twice, once as Argument and once as
// Variable, and neither occurrence should collide with the other) or a Use
// (a use clause is meant to alias an outer name, not conflict with it).
// Data/Module/Function/DataMember declarations are only ever filed at one
// fixed namespace each, so those are checked there directly with no walk.
func (m *Manager) insert(e Entry) error {
	if e.Kind == EUse {
		m.t.add(e)
		return nil
	}
	for _, ns := range scopeChain(e.Name.Namespace) {
		for _, existing := range m.t.lookup(ns, e.Name.Name) {
			if existing.Kind == EArgument || existing.Kind == EUse || e.Kind == EArgument {
				continue
			}
			return errs.New(errs.AlreadyDefined, errs.Location{}, e.Name.Full())
		}
	}
	m.t.add(e)
	return nil
}

// scopeChain returns namespace, followed by each ancestor namespace still
// inside a @spawn's underscore extension, plus the one enclosing namespace
// that first drops out of it (the declaring function itself). It stops
// there: uniqueness is only enforced within one function's scope, not
// against unrelated siblings in the same module.
func scopeChain(namespace string) []string {
	chain := []string{namespace}
	cur := namespace
	for strings.Contains(cur+".", "._.") {
		cur = parentNamespace(cur)
		chain = append(chain, cur)
	}
	return chain
}

// find walks N, parent(N, ignoreUnderscore=false), parent(parent(N, ...)),
// ... looking for id at each step, until a match is found or the namespace
// empties; failing that, it falls back to the declaring unit's own import
// list. When applyUnderscoreRule is set (ordinary lookups), a Variable
// match found outside of the "_" scope the search started in is rejected
// once the walk has crossed a "_" boundary, so a @spawn body's own
// identifiers never accidentally resolve to an outer variable of the same
// name instead of the Use entry meant to bring it into scope.
func (m *Manager) find(namespace, id string, applyUnderscoreRule bool) (*Entry, error) {
	startedInSpawn := strings.Contains(namespace+".", "._.")
	curNamespace := namespace
	for {
		matches := m.t.lookup(curNamespace, id)
		if len(matches) > 0 {
			e := pickLookupMatch(matches)
			rejected := applyUnderscoreRule && startedInSpawn &&
				e.Kind == EVariable && !strings.Contains(curNamespace+".", "._.")
			if !rejected {
				return &e, nil
			}
		}
		if curNamespace == "" {
			break
		}
		curNamespace = parentNamespace(curNamespace)
	}
	if e, ok := m.findImported(namespace, id); ok {
		return e, nil
	}
	return nil, errs.New(errs.NotFound, errs.Location{}, id)
}

// findImported retries id against the imports declared by the unit that
// owns namespace, once a purely lexical walk up the namespace chain has
// failed. Each import already names the exact (namespace, name) of the
// Data/Module it refers to, so this is a direct lookup, never a walk.
func (m *Manager) findImported(namespace, id string) (*Entry, bool) {
	for _, imp := range m.imports {
		if imp.namespace != namespace && !strings.HasPrefix(namespace, imp.namespace+".") {
			continue
		}
		for _, name := range imp.names {
			if name.Name != id {
				continue
			}
			if matches := m.t.lookup(name.Namespace, name.Name); len(matches) > 0 {
				e := matches[0]
				return &e, true
			}
		}
	}
	return nil, false
}

// parentNamespace strips the trailing dotted component off a raw namespace
// string, e.g. ".0.test.M.f" -> ".0.test.M". It is the string-level analog
// of Name.Parent(false), used here because find walks a bare namespace
// rather than a (namespace, leaf) pair.
func parentNamespace(ns string) string {
	i := strings.LastIndex(ns, ".")
	if i < 0 {
		return ""
	}
	return ns[:i]
}

// enclosingModuleNamespace takes the namespace a reference appears in (a
// function's own namespace, or one of its @spawn underscore extensions)
// and returns the full namespace of the module that declares it: any
// trailing "_" spawn levels are peeled transparently, then one more level
// strips the function itself.
func enclosingModuleNamespace(scopeNamespace string) string {
	base := scopeNamespace
	for strings.Contains(base+".", "._.") {
		base = parentNamespace(base)
	}
	return parentNamespace(base)
}

// pickLookupMatch prefers a non-Argument entry when a name was filed both
// as Argument and Variable: only the Variable occurrence is meaningful to
// resolution, the Argument occurrence exists purely to make the uniqueness
// check above a no-op between the two.
func pickLookupMatch(matches []Entry) Entry {
	for _, e := range matches {
		if e.Kind != EArgument {
			return e
		}
	}
	return matches[0]
}

// splitChain splits a dotted reference ("a.x.y") into its head identifier
// and the remaining tail segments.
func splitChain(chain string) (head string, tails []string) {
	parts := strings.Split(chain, ".")
	return parts[0], parts[1:]
}

// ResolveFromType resolves a Member whose Type is Unsolved(hint) into a
// concrete Type, following the hint as a dotted chain rooted at
// member.Name's own namespace: a bare Data name, a Module.Function call, or an
// unqualified call to a sibling function in the same module.
func (m *Manager) ResolveFromType(member ast.Member) (ast.Type, error) {
	t := member.Type
	if t.Kind.IsPrimitive() || t.Kind == ast.Data {
		return t, nil
	}
	if t.Kind != ast.Unsolved {
		return ast.Type{}, errs.New(errs.TypeUnmatch1, errs.Location{}, t.String())
	}
	head, tails := splitChain(t.Hint)
	found, err := m.find(member.Name.Namespace, head, true)
	if err != nil {
		return ast.Type{}, err
	}
	switch found.Kind {
	case EData:
		if len(tails) > 0 {
			return ast.Type{}, errs.New(errs.IllegalAccess, errs.Location{}, t.Hint)
		}
		return ast.DataType(found.Refs), nil
	case EModule:
		if len(tails) == 0 {
			return ast.Type{}, errs.New(errs.MissingFunctionName, errs.Location{})
		}
		fn, err := m.GetFuncInModule(found.Refs, tails[0])
		if err != nil {
			return ast.Type{}, err
		}
		return ast.DataType(fn.Refs), nil
	case EFunction:
		module := ast.Name{Name: enclosingModuleNamespace(member.Name.Namespace)}
		fn, err := m.GetFuncInModule(module, t.Hint)
		if err != nil {
			return ast.Type{}, err
		}
		return ast.DataType(fn.Refs), nil
	default:
		return ast.Type{}, errs.New(errs.TypeUnmatch1, errs.Location{}, t.Hint)
	}
}

// ResolveFromName resolves a Member whose Type is UnsolvedNoHint: name
// itself (n.Name, possibly a dotted chain) is looked up, Variable/Use
// indirection is followed, and a Data-typed result may be drilled into
// with GetMemberInData when tail segments remain.
func (m *Manager) ResolveFromName(n ast.Name) (ast.Type, error) {
	head, tails := splitChain(n.Name)
	found, err := m.find(n.Namespace, head, true)
	if err != nil {
		return ast.Type{}, err
	}
	switch found.Kind {
	case EVariable:
		resolved, err := m.resolveDeclaredType(*found)
		if err != nil {
			return ast.Type{}, err
		}
		if len(tails) == 0 {
			return resolved, nil
		}
		if resolved.Kind != ast.Data {
			return ast.Type{}, errs.New(errs.IllegalAccess, errs.Location{}, n.Name)
		}
		return m.GetMemberInData(resolved.Refs, tails)
	case EUse:
		rest := found.Refs.Name
		if len(tails) > 0 {
			rest = rest + "." + strings.Join(tails, ".")
		}
		return m.ResolveFromName(ast.Name{Namespace: found.Refs.Namespace, Name: rest})
	default:
		return ast.Type{}, errs.New(errs.NotDefined, errs.Location{}, n.Name)
	}
}

// resolveDeclaredType settles the (possibly still unsolved) type stored
// against a Variable entry, resolving it as a hinted or no-hint reference
// in the scope it was declared in.
func (m *Manager) resolveDeclaredType(e Entry) (ast.Type, error) {
	switch {
	case e.Type.Kind.IsPrimitive() || e.Type.Kind == ast.Data:
		return e.Type, nil
	case e.Type.Kind == ast.Unsolved:
		return m.ResolveFromType(ast.Member{Name: e.Refs, Type: e.Type})
	case e.Type.Kind == ast.UnsolvedNoHint:
		return m.ResolveFromName(ast.Name{Namespace: e.Refs.Namespace, Name: e.Refs.Name})
	default:
		return ast.Type{}, errs.New(errs.TypeUnmatch1, errs.Location{}, e.Type.String())
	}
}

// GetMemberInData walks tails, one dotted segment at a time, through data
// whose Name is ref, requiring every non-terminal hop to land on another
// Data.
func (m *Manager) GetMemberInData(ref ast.Name, tails []string) (ast.Type, error) {
	cur := ref
	var curType ast.Type
	for i, seg := range tails {
		matches := m.t.lookup(cur.Full(), seg)
		var member *Entry
		for _, e := range matches {
			if e.Kind == EDataMember {
				em := e
				member = &em
				break
			}
		}
		if member == nil {
			return ast.Type{}, errs.New(errs.MemberNotDefinedInData, errs.Location{}, seg, cur.Full())
		}
		resolved, err := m.resolveMemberType(*member)
		if err != nil {
			return ast.Type{}, err
		}
		curType = resolved
		if i < len(tails)-1 {
			if resolved.Kind != ast.Data {
				return ast.Type{}, errs.New(errs.IllegalAccess, errs.Location{}, seg)
			}
			cur = resolved.Refs
		}
	}
	return curType, nil
}

func (m *Manager) resolveMemberType(e Entry) (ast.Type, error) {
	if e.Type.Kind.IsPrimitive() || e.Type.Kind == ast.Data {
		return e.Type, nil
	}
	return m.ResolveFromType(ast.Member{Name: e.Refs, Type: e.Type})
}

// GetFuncInModule finds the Function entry named fn declared directly
// inside the module named module.
func (m *Manager) GetFuncInModule(module ast.Name, fn string) (*Entry, error) {
	for _, e := range m.t.lookup(module.Full(), fn) {
		if e.Kind == EFunction {
			found := e
			return &found, nil
		}
	}
	return nil, errs.New(errs.FuncNotDefinedInModule, errs.Location{}, fn, module.Full())
}

// CheckCanImport validates that name (already split into the Name of the
// unit it is imported from plus the identifier being imported) names a
// Data or Module declared in that unit.
func (m *Manager) CheckCanImport(name ast.Name) error {
	matches := m.t.lookup(name.Namespace, name.Name)
	for _, e := range matches {
		if e.Kind == EData || e.Kind == EModule {
			return nil
		}
	}
	return errs.New(errs.NotDefined, errs.Location{}, name.Full())
}
