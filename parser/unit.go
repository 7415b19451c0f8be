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

package parser

import (
	"github.com/Yuta1004/SysDC-sub000/ast"
	"github.com/Yuta1004/SysDC-sub000/errs"
	"github.com/Yuta1004/SysDC-sub000/token"
)

// Unit := 'unit' IdChain ';' (Import | Data | Module)*
func parseUnit(tz *token.Tokenizer) (*ast.Unit, error) {
	if _, err := tz.Request(token.Unit); err != nil {
		return nil, err
	}
	chain, err := parseIdChain(tz, errs.UnitNameNotSpecified)
	if err != nil {
		return nil, err
	}
	if _, err := tz.Request(token.Semi); err != nil {
		return nil, err
	}

	u := &ast.Unit{Name: nameFromChain(ast.RootNamespace, chain)}
	for tz.ExistsNext() {
		if _, ok := tz.Expect(token.From); ok {
			imports, err := parseImportRest(tz)
			if err != nil {
				return nil, err
			}
			u.Imports = append(u.Imports, imports...)
			continue
		}
		if _, ok := tz.Expect(token.Data); ok {
			d, err := parseData(tz, u.Name)
			if err != nil {
				return nil, err
			}
			u.Data = append(u.Data, d)
			continue
		}
		if _, ok := tz.Expect(token.Module); ok {
			mod, err := parseModule(tz, u.Name)
			if err != nil {
				return nil, err
			}
			u.Modules = append(u.Modules, mod)
			continue
		}
		return nil, errs.New(errs.DataOrModuleNotFound, tz.PeekLocation())
	}
	return u, nil
}

// Import := 'from' IdChain 'import' Identifier (',' Identifier)* ';'
// parseImportRest is called once the leading 'from' has already been
// consumed by parseUnit's dispatch loop.
func parseImportRest(tz *token.Tokenizer) ([]ast.Name, error) {
	chain, err := parseIdChain(tz, errs.FromNamespaceNotSpecified)
	if err != nil {
		return nil, err
	}
	if _, err := tz.Request(token.Import); err != nil {
		return nil, err
	}
	idents, err := parseIdentList(tz)
	if err != nil {
		return nil, err
	}
	if _, err := tz.Request(token.Semi); err != nil {
		return nil, err
	}
	from := nameFromChain(ast.RootNamespace, chain)
	imports := make([]ast.Name, len(idents))
	for i, id := range idents {
		imports[i] = ast.Name{Namespace: from.Full(), Name: id}
	}
	return imports, nil
}

// Data := 'data' Identifier '{' (IdTypeMap (',' IdTypeMap)* ','?)? '}'
func parseData(tz *token.Tokenizer, unitName ast.Name) (*ast.Data, error) {
	name, err := tz.Request(token.Identifier)
	if err != nil {
		return nil, err
	}
	if _, err := tz.Request(token.LBrace); err != nil {
		return nil, err
	}
	d := &ast.Data{Name: unitName.Child(name.Lexeme)}
	if _, ok := tz.Expect(token.RBrace); ok {
		return d, nil
	}
	for {
		member, err := parseIdTypeMap(tz, d.Name)
		if err != nil {
			return nil, err
		}
		d.Members = append(d.Members, member)
		if _, ok := tz.Expect(token.Comma); !ok {
			break
		}
		if _, ok := tz.Expect(token.RBrace); ok {
			return d, nil
		}
	}
	if _, err := tz.Request(token.RBrace); err != nil {
		return nil, err
	}
	return d, nil
}

// Module := 'module' Identifier '{' (Function)* '}'
func parseModule(tz *token.Tokenizer, unitName ast.Name) (*ast.Module, error) {
	name, err := tz.Request(token.Identifier)
	if err != nil {
		return nil, err
	}
	if _, err := tz.Request(token.LBrace); err != nil {
		return nil, err
	}
	mod := &ast.Module{Name: unitName.Child(name.Lexeme)}
	for {
		if _, ok := tz.Expect(token.RBrace); ok {
			break
		}
		fn, err := parseFunction(tz, mod.Name)
		if err != nil {
			return nil, err
		}
		mod.Functions = append(mod.Functions, fn)
	}
	return mod, nil
}
