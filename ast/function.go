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

package ast

// Function is a module member declared with "func" or "proc". A nil
// Returns makes it a proc; otherwise it is a func. The parser folds a
// body's single @return clause into Returns before handing the Function
// back, so Annotations never contains an AnnotationReturn.
type Function struct {
	Name        Name
	Args        []Member
	Returns     *Member
	Annotations []Annotation
}

// IsProc reports whether the function has no declared return value.
func (f *Function) IsProc() bool { return f.Returns == nil }

// Annotation is the tagged union of the four @-prefixed dataflow clauses
// that may appear in a function body. AnnotationReturn only exists
// transiently during parsing; it never reaches the caller of Parser.Parse.
type Annotation interface {
	isAnnotation()
}

// AnnotationReturn is «@return name». The parser consumes it and folds it
// into Function.Returns.
type AnnotationReturn struct {
	Var Name
}

func (AnnotationReturn) isAnnotation() {}

// AnnotationAffect is «@affect target(args...)»: a causal call to another
// function.
type AnnotationAffect struct {
	Func Member
	Args []Member
}

func (AnnotationAffect) isAnnotation() {}

// AnnotationModify is «@modify target { use ...; }»: target is mutated
// using the listed variables.
type AnnotationModify struct {
	Target Member
	Uses   []Member
}

func (AnnotationModify) isAnnotation() {}

// AnnotationSpawn is «@spawn result { details... }»: result is produced
// from a nested anonymous scope of uses, lets, and a terminating return.
type AnnotationSpawn struct {
	Result  Member
	Details []SpawnDetail
}

func (AnnotationSpawn) isAnnotation() {}

// SpawnDetail is one statement inside a @spawn body.
type SpawnDetail interface {
	isSpawnDetail()
}

// SpawnUse is «use name, ...;»: names already bound in an enclosing scope
// that are visible to the rest of the spawn body.
type SpawnUse struct {
	Names []Member
}

func (SpawnUse) isSpawnDetail() {}

// SpawnReturn is «return name;»: the value the spawn body produces,
// closing the anonymous scope it appeared in.
type SpawnReturn struct {
	Var Member
}

func (SpawnReturn) isSpawnDetail() {}

// SpawnLetTo is «let name = func(args...);»: binds name to the result of
// calling func with args.
type SpawnLetTo struct {
	Name Name
	Func Member
	Args []Member
}

func (SpawnLetTo) isSpawnDetail() {}
