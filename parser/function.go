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

// Function := ('func' | 'proc') Identifier '(' (IdTypeMap (',' IdTypeMap)*)? ')'
//             ('->' Identifier)? '{' Annotation* '}'
func parseFunction(tz *token.Tokenizer, moduleName ast.Name) (*ast.Function, error) {
	isFunc := false
	if _, ok := tz.Expect(token.Func); ok {
		isFunc = true
	} else if _, err := tz.Request(token.Proc); err != nil {
		return nil, err
	}

	name, err := tz.Request(token.Identifier)
	if err != nil {
		return nil, err
	}
	fn := &ast.Function{Name: moduleName.Child(name.Lexeme)}

	if _, err := tz.Request(token.LParen); err != nil {
		return nil, err
	}
	for {
		if _, ok := tz.Expect(token.RParen); ok {
			break
		}
		if len(fn.Args) > 0 {
			if _, err := tz.Request(token.Comma); err != nil {
				return nil, err
			}
		}
		arg, err := parseIdTypeMap(tz, fn.Name)
		if err != nil {
			return nil, err
		}
		fn.Args = append(fn.Args, arg)
	}

	var declaredReturn ast.Type
	if isFunc {
		if _, err := tz.Request(token.Arrow); err != nil {
			return nil, err
		}
		typ, err := tz.Request(token.Identifier)
		if err != nil {
			return nil, err
		}
		declaredReturn = ast.FromLiteral(typ.Lexeme)
	}

	if _, err := tz.Request(token.LBrace); err != nil {
		return nil, err
	}
	spawnDepth := 0
	for {
		if _, ok := tz.Expect(token.RBrace); ok {
			break
		}
		ann, err := parseAnnotation(tz, fn.Name, &spawnDepth)
		if err != nil {
			return nil, err
		}
		fn.Annotations = append(fn.Annotations, ann)
	}

	if err := foldReturn(fn, isFunc, declaredReturn); err != nil {
		return nil, err
	}
	return fn, nil
}

// foldReturn extracts the (at most one, for a func exactly one)
// AnnotationReturn out of fn.Annotations, turning it into fn.Returns, and
// validates proc/func return arity.
func foldReturn(fn *ast.Function, isFunc bool, declaredReturn ast.Type) error {
	var kept []ast.Annotation
	var found *ast.AnnotationReturn
	for _, a := range fn.Annotations {
		if ret, ok := a.(ast.AnnotationReturn); ok {
			if !isFunc {
				return errs.New(errs.ReturnExistsOnProcedure, errs.Location{})
			}
			if found != nil {
				return errs.New(errs.ReturnExistsMultiple, errs.Location{})
			}
			r := ret
			found = &r
			continue
		}
		kept = append(kept, a)
	}
	fn.Annotations = kept
	if isFunc {
		if found == nil {
			return errs.New(errs.ReturnNotExists, errs.Location{})
		}
		fn.Returns = &ast.Member{Name: found.Var, Type: declaredReturn}
	}
	return nil
}

// Annotation := '@' (AnnReturn | AnnSpawn | AnnModify | AnnAffect)
func parseAnnotation(tz *token.Tokenizer, fnName ast.Name, spawnDepth *int) (ast.Annotation, error) {
	if _, err := tz.Request(token.At); err != nil {
		return nil, err
	}
	if _, ok := tz.Expect(token.Return); ok {
		return parseAnnReturn(tz, fnName)
	}
	if _, ok := tz.Expect(token.Spawn); ok {
		return parseAnnSpawn(tz, fnName, spawnDepth)
	}
	if _, ok := tz.Expect(token.Modify); ok {
		return parseAnnModify(tz, fnName)
	}
	if _, ok := tz.Expect(token.Affect); ok {
		return parseAnnAffect(tz, fnName)
	}
	word, err := tz.Next()
	if err != nil {
		return nil, err
	}
	return nil, errs.New(errs.UnknownAnnotationFound, word.Location, word.Lexeme)
}

// AnnReturn := 'return' Identifier
func parseAnnReturn(tz *token.Tokenizer, fnName ast.Name) (ast.Annotation, error) {
	name, err := tz.Request(token.Identifier)
	if err != nil {
		return nil, err
	}
	return ast.AnnotationReturn{Var: ast.Name{Namespace: fnName.Full(), Name: name.Lexeme}}, nil
}

// AnnAffect := 'affect' IdChain '(' (IdChain (',' IdChain)*)? ')'
func parseAnnAffect(tz *token.Tokenizer, fnName ast.Name) (ast.Annotation, error) {
	target, err := parseIdChainDotted(tz, errs.FunctionNameNotFound)
	if err != nil {
		return nil, err
	}
	if _, err := tz.Request(token.LParen); err != nil {
		return nil, err
	}
	var args []ast.Member
	for {
		if _, ok := tz.Expect(token.RParen); ok {
			break
		}
		if len(args) > 0 {
			if _, err := tz.Request(token.Comma); err != nil {
				return nil, err
			}
		}
		argChain, err := parseIdChainDotted(tz, errs.FunctionNameNotFound)
		if err != nil {
			return nil, err
		}
		args = append(args, refByName(fnName.Full(), argChain))
	}
	return ast.AnnotationAffect{Func: refByType(fnName.Full(), target), Args: args}, nil
}

// AnnModify := 'modify' Identifier ('{' ('use' Identifier (',' Identifier)* ';')* '}')?
func parseAnnModify(tz *token.Tokenizer, fnName ast.Name) (ast.Annotation, error) {
	target, err := tz.Request(token.Identifier)
	if err != nil {
		return nil, err
	}
	mod := ast.AnnotationModify{Target: refByName(fnName.Full(), target.Lexeme)}
	if _, ok := tz.Expect(token.LBrace); ok {
		for {
			if _, ok := tz.Expect(token.RBrace); ok {
				break
			}
			if _, err := tz.Request(token.Use); err != nil {
				return nil, err
			}
			idents, err := parseIdentList(tz)
			if err != nil {
				return nil, err
			}
			if _, err := tz.Request(token.Semi); err != nil {
				return nil, err
			}
			for _, id := range idents {
				mod.Uses = append(mod.Uses, refByName(fnName.Full(), id))
			}
		}
	}
	return mod, nil
}

// AnnSpawn := 'spawn' IdTypeMap ('{' SpawnDetail* '}')?
func parseAnnSpawn(tz *token.Tokenizer, fnName ast.Name, spawnDepth *int) (ast.Annotation, error) {
	result, err := parseSpawnResult(tz, fnName)
	if err != nil {
		return nil, err
	}
	spawn := ast.AnnotationSpawn{Result: result}
	if _, ok := tz.Expect(token.LBrace); ok {
		*spawnDepth++
		bodyNamespace := fnName.Full() + repeatUnderscore(*spawnDepth)
		for {
			if _, ok := tz.Expect(token.RBrace); ok {
				break
			}
			detail, err := parseSpawnDetail(tz, bodyNamespace)
			if err != nil {
				return nil, err
			}
			spawn.Details = append(spawn.Details, detail)
		}
	}
	return spawn, nil
}

// parseSpawnResult parses the IdTypeMap naming a @spawn's result, filing it
// directly under the owning function's own namespace (not its "_" body
// extension: the result is visible to sibling annotations of the function,
// the same as an argument would be).
func parseSpawnResult(tz *token.Tokenizer, fnName ast.Name) (ast.Member, error) {
	name, err := tz.Request(token.Identifier)
	if err != nil {
		if e, ok := err.(*errs.Error); ok && e.Kind == errs.RequestedTokenNotFound {
			return ast.Member{}, errs.New(errs.ResultOfSpawnNotSpecified, e.Location)
		}
		return ast.Member{}, err
	}
	if _, err := tz.Request(token.Colon); err != nil {
		return ast.Member{}, err
	}
	typ, err := tz.Request(token.Identifier)
	if err != nil {
		return ast.Member{}, err
	}
	return ast.Member{Name: fnName.Child(name.Lexeme), Type: ast.FromLiteral(typ.Lexeme)}, nil
}

func repeatUnderscore(n int) string {
	s := ""
	for i := 0; i < n; i++ {
		s += "._"
	}
	return s
}

// SpawnDetail := ('use' Identifier (',' Identifier)* | 'return' IdChain | 'let' Identifier '=' IdChain '(' (IdChain (',' IdChain)*)? ')') ';'
func parseSpawnDetail(tz *token.Tokenizer, bodyNamespace string) (ast.SpawnDetail, error) {
	if _, ok := tz.Expect(token.Use); ok {
		idents, err := parseIdentList(tz)
		if err != nil {
			return nil, err
		}
		if _, err := tz.Request(token.Semi); err != nil {
			return nil, err
		}
		use := ast.SpawnUse{}
		for _, id := range idents {
			use.Names = append(use.Names, refByName(bodyNamespace, id))
		}
		return use, nil
	}
	if _, ok := tz.Expect(token.Return); ok {
		chain, err := parseIdChainDotted(tz, errs.FunctionNameNotFound)
		if err != nil {
			return nil, err
		}
		if _, err := tz.Request(token.Semi); err != nil {
			return nil, err
		}
		return ast.SpawnReturn{Var: refByName(bodyNamespace, chain)}, nil
	}
	if _, ok := tz.Expect(token.Let); ok {
		name, err := tz.Request(token.Identifier)
		if err != nil {
			return nil, err
		}
		if _, err := tz.Request(token.Equals); err != nil {
			return nil, err
		}
		fnChain, err := parseIdChainDotted(tz, errs.FunctionNameNotFound)
		if err != nil {
			return nil, err
		}
		if _, err := tz.Request(token.LParen); err != nil {
			return nil, err
		}
		var args []ast.Member
		for {
			if _, ok := tz.Expect(token.RParen); ok {
				break
			}
			if len(args) > 0 {
				if _, err := tz.Request(token.Comma); err != nil {
					return nil, err
				}
			}
			argChain, err := parseIdChainDotted(tz, errs.FunctionNameNotFound)
			if err != nil {
				return nil, err
			}
			args = append(args, refByName(bodyNamespace, argChain))
		}
		if _, err := tz.Request(token.Semi); err != nil {
			return nil, err
		}
		return ast.SpawnLetTo{
			Name: ast.Name{Namespace: bodyNamespace, Name: name.Lexeme},
			Func: refByType(bodyNamespace, fnChain),
			Args: args,
		}, nil
	}
	return nil, errs.New(errs.RequestedTokenNotFound, tz.PeekLocation(), token.Use)
}
