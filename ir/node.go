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
	"fmt"

	"github.com/Yuta1004/SysDC-sub000/ast"
)

// Member is the wire form of an ast.Member.
type Member struct {
	Name ast.Name `json:"name" msgpack:"name"`
	Type Type     `json:"type" msgpack:"type"`
}

func newMember(m ast.Member) Member {
	return Member{Name: m.Name, Type: newType(m.Type)}
}

func (m Member) toAST() (ast.Member, error) {
	t, err := m.Type.toAST()
	if err != nil {
		return ast.Member{}, err
	}
	return ast.Member{Name: m.Name, Type: t}, nil
}

func newMembers(ms []ast.Member) []Member {
	out := make([]Member, len(ms))
	for i, m := range ms {
		out[i] = newMember(m)
	}
	return out
}

func membersToAST(ms []Member) ([]ast.Member, error) {
	out := make([]ast.Member, len(ms))
	for i, m := range ms {
		conv, err := m.toAST()
		if err != nil {
			return nil, err
		}
		out[i] = conv
	}
	return out, nil
}

// Annotation is the wire form of an ast.Annotation: a tagged union encoded
// as a Kind discriminant plus exactly one populated payload field, since
// neither msgpack nor JSON carry Go's interface types natively.
type Annotation struct {
	Kind   string  `json:"kind" msgpack:"kind"`
	Affect *Affect `json:"affect,omitempty" msgpack:"affect,omitempty"`
	Modify *Modify `json:"modify,omitempty" msgpack:"modify,omitempty"`
	Spawn  *Spawn  `json:"spawn,omitempty" msgpack:"spawn,omitempty"`
}

// Affect is the wire form of ast.AnnotationAffect.
type Affect struct {
	Func Member   `json:"func" msgpack:"func"`
	Args []Member `json:"args" msgpack:"args"`
}

// Modify is the wire form of ast.AnnotationModify.
type Modify struct {
	Target Member   `json:"target" msgpack:"target"`
	Uses   []Member `json:"uses" msgpack:"uses"`
}

// Spawn is the wire form of ast.AnnotationSpawn.
type Spawn struct {
	Result  Member        `json:"result" msgpack:"result"`
	Details []SpawnDetail `json:"details" msgpack:"details"`
}

// SpawnDetail is the wire form of an ast.SpawnDetail: the same kind of
// tagged union as Annotation, one level down.
type SpawnDetail struct {
	Kind   string       `json:"kind" msgpack:"kind"`
	Use    *SpawnUse    `json:"use,omitempty" msgpack:"use,omitempty"`
	Return *SpawnReturn `json:"return,omitempty" msgpack:"return,omitempty"`
	Let    *SpawnLetTo  `json:"let,omitempty" msgpack:"let,omitempty"`
}

// SpawnUse is the wire form of ast.SpawnUse.
type SpawnUse struct {
	Names []Member `json:"names" msgpack:"names"`
}

// SpawnReturn is the wire form of ast.SpawnReturn.
type SpawnReturn struct {
	Var Member `json:"var" msgpack:"var"`
}

// SpawnLetTo is the wire form of ast.SpawnLetTo.
type SpawnLetTo struct {
	Name ast.Name `json:"name" msgpack:"name"`
	Func Member   `json:"func" msgpack:"func"`
	Args []Member `json:"args" msgpack:"args"`
}

func newAnnotation(a ast.Annotation) Annotation {
	switch v := a.(type) {
	case ast.AnnotationAffect:
		return Annotation{Kind: "affect", Affect: &Affect{Func: newMember(v.Func), Args: newMembers(v.Args)}}
	case ast.AnnotationModify:
		return Annotation{Kind: "modify", Modify: &Modify{Target: newMember(v.Target), Uses: newMembers(v.Uses)}}
	case ast.AnnotationSpawn:
		details := make([]SpawnDetail, len(v.Details))
		for i, d := range v.Details {
			details[i] = newSpawnDetail(d)
		}
		return Annotation{Kind: "spawn", Spawn: &Spawn{Result: newMember(v.Result), Details: details}}
	default:
		panic(fmt.Sprintf("ir: unknown annotation type %T", a))
	}
}

func (a Annotation) toAST() (ast.Annotation, error) {
	switch a.Kind {
	case "affect":
		if a.Affect == nil {
			return nil, fmt.Errorf("ir: affect annotation missing its payload")
		}
		fn, err := a.Affect.Func.toAST()
		if err != nil {
			return nil, err
		}
		args, err := membersToAST(a.Affect.Args)
		if err != nil {
			return nil, err
		}
		return ast.AnnotationAffect{Func: fn, Args: args}, nil
	case "modify":
		if a.Modify == nil {
			return nil, fmt.Errorf("ir: modify annotation missing its payload")
		}
		target, err := a.Modify.Target.toAST()
		if err != nil {
			return nil, err
		}
		uses, err := membersToAST(a.Modify.Uses)
		if err != nil {
			return nil, err
		}
		return ast.AnnotationModify{Target: target, Uses: uses}, nil
	case "spawn":
		if a.Spawn == nil {
			return nil, fmt.Errorf("ir: spawn annotation missing its payload")
		}
		result, err := a.Spawn.Result.toAST()
		if err != nil {
			return nil, err
		}
		details := make([]ast.SpawnDetail, len(a.Spawn.Details))
		for i, d := range a.Spawn.Details {
			conv, err := d.toAST()
			if err != nil {
				return nil, err
			}
			details[i] = conv
		}
		return ast.AnnotationSpawn{Result: result, Details: details}, nil
	default:
		return nil, fmt.Errorf("ir: unrecognized annotation kind %q", a.Kind)
	}
}

func newSpawnDetail(d ast.SpawnDetail) SpawnDetail {
	switch v := d.(type) {
	case ast.SpawnUse:
		return SpawnDetail{Kind: "use", Use: &SpawnUse{Names: newMembers(v.Names)}}
	case ast.SpawnReturn:
		return SpawnDetail{Kind: "return", Return: &SpawnReturn{Var: newMember(v.Var)}}
	case ast.SpawnLetTo:
		return SpawnDetail{Kind: "let", Let: &SpawnLetTo{Name: v.Name, Func: newMember(v.Func), Args: newMembers(v.Args)}}
	default:
		panic(fmt.Sprintf("ir: unknown spawn detail type %T", d))
	}
}

func (d SpawnDetail) toAST() (ast.SpawnDetail, error) {
	switch d.Kind {
	case "use":
		if d.Use == nil {
			return nil, fmt.Errorf("ir: use detail missing its payload")
		}
		names, err := membersToAST(d.Use.Names)
		if err != nil {
			return nil, err
		}
		return ast.SpawnUse{Names: names}, nil
	case "return":
		if d.Return == nil {
			return nil, fmt.Errorf("ir: return detail missing its payload")
		}
		v, err := d.Return.Var.toAST()
		if err != nil {
			return nil, err
		}
		return ast.SpawnReturn{Var: v}, nil
	case "let":
		if d.Let == nil {
			return nil, fmt.Errorf("ir: let detail missing its payload")
		}
		fn, err := d.Let.Func.toAST()
		if err != nil {
			return nil, err
		}
		args, err := membersToAST(d.Let.Args)
		if err != nil {
			return nil, err
		}
		return ast.SpawnLetTo{Name: d.Let.Name, Func: fn, Args: args}, nil
	default:
		return nil, fmt.Errorf("ir: unrecognized spawn detail kind %q", d.Kind)
	}
}
