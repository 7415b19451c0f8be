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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yuta1004/SysDC-sub000/ast"
	"github.com/Yuta1004/SysDC-sub000/errs"
)

func TestParseEmptyUnit(t *testing.T) {
	u, err := Parse("f.sysdc", "unit test;")
	require.NoError(t, err)
	assert.Equal(t, ast.Name{Namespace: ".0", Name: "test"}, u.Name)
	assert.Empty(t, u.Data)
	assert.Empty(t, u.Modules)
	assert.Empty(t, u.Imports)
}

func TestParseDottedUnitName(t *testing.T) {
	u, err := Parse("f.sysdc", "unit test.sub;")
	require.NoError(t, err)
	assert.Equal(t, ast.Name{Namespace: ".0.test", Name: "sub"}, u.Name)
}

func TestParseDataDeclaration(t *testing.T) {
	u, err := Parse("f.sysdc", "unit test; data A { x: i32, y: MyOther }")
	require.NoError(t, err)
	require.Len(t, u.Data, 1)
	d := u.Data[0]
	assert.Equal(t, ast.Name{Namespace: ".0.test", Name: "A"}, d.Name)
	require.Len(t, d.Members, 2)
	assert.Equal(t, ast.Name{Namespace: ".0.test.A", Name: "x"}, d.Members[0].Name)
	assert.Equal(t, ast.Int32, d.Members[0].Type.Kind)
	assert.Equal(t, ast.Unsolved, d.Members[1].Type.Kind)
	assert.Equal(t, "MyOther", d.Members[1].Type.Hint)
}

func TestParseDataDeclarationAllowsTrailingComma(t *testing.T) {
	u, err := Parse("f.sysdc", "unit test; data A { x: i32, y: i32, }")
	require.NoError(t, err)
	assert.Len(t, u.Data[0].Members, 2)
}

func TestParseDataMembersRequireCommaNotSemicolon(t *testing.T) {
	// members inside a data block are a comma-separated list, not
	// individually semicolon-terminated statements.
	_, err := Parse("f.sysdc", "unit test; data A { x: i32; y: i32; }")
	require.Error(t, err)
}

func TestParseImport(t *testing.T) {
	u, err := Parse("f.sysdc", "unit test.B; from test.A import A, B;")
	require.NoError(t, err)
	require.Len(t, u.Imports, 2)
	assert.Equal(t, ast.Name{Namespace: ".0.test.A", Name: "A"}, u.Imports[0])
	assert.Equal(t, ast.Name{Namespace: ".0.test.A", Name: "B"}, u.Imports[1])
}

func TestParseProcWithoutReturn(t *testing.T) {
	u, err := Parse("f.sysdc", "unit test; module M { proc p() { } }")
	require.NoError(t, err)
	fn := u.Modules[0].Functions[0]
	assert.True(t, fn.IsProc())
	assert.Nil(t, fn.Returns)
}

func TestParseFuncFoldsReturnAnnotation(t *testing.T) {
	u, err := Parse("f.sysdc", "unit test; module M { func f() -> i32 { @return r } }")
	require.NoError(t, err)
	fn := u.Modules[0].Functions[0]
	require.NotNil(t, fn.Returns)
	assert.Equal(t, "r", fn.Returns.Name.Name)
	assert.Equal(t, ast.Int32, fn.Returns.Type.Kind)
	assert.Empty(t, fn.Annotations, "AnnotationReturn must not survive into Annotations")
}

func TestParseFuncMissingReturnIsError(t *testing.T) {
	_, err := Parse("f.sysdc", "unit test; module M { func f() -> i32 { } }")
	require.Error(t, err)
	e, ok := err.(*errs.Error)
	require.True(t, ok)
	assert.Equal(t, errs.ReturnNotExists, e.Kind)
}

func TestParseProcWithReturnIsError(t *testing.T) {
	_, err := Parse("f.sysdc", "unit test; module M { proc p() { @return r } }")
	require.Error(t, err)
	e, ok := err.(*errs.Error)
	require.True(t, ok)
	assert.Equal(t, errs.ReturnExistsOnProcedure, e.Kind)
}

func TestParseMultipleReturnsIsError(t *testing.T) {
	_, err := Parse("f.sysdc", "unit test; module M { func f() -> i32 { @return a @return b } }")
	require.Error(t, err)
	e, ok := err.(*errs.Error)
	require.True(t, ok)
	assert.Equal(t, errs.ReturnExistsMultiple, e.Kind)
}

func TestParseUnknownAnnotationIsError(t *testing.T) {
	_, err := Parse("f.sysdc", "unit test; module M { proc p() { @bogus } }")
	require.Error(t, err)
	e, ok := err.(*errs.Error)
	require.True(t, ok)
	assert.Equal(t, errs.UnknownAnnotationFound, e.Kind)
	assert.Equal(t, "bogus", e.Args[0])
}

func TestParseAffectAnnotation(t *testing.T) {
	src := "unit test; module M { proc p() { @affect q.r(a, b.c) } }"
	u, err := Parse("f.sysdc", src)
	require.NoError(t, err)
	fn := u.Modules[0].Functions[0]
	require.Len(t, fn.Annotations, 1)
	aff, ok := fn.Annotations[0].(ast.AnnotationAffect)
	require.True(t, ok)
	assert.Equal(t, "q.r", aff.Func.Name.Name)
	require.Len(t, aff.Args, 2)
	assert.Equal(t, "a", aff.Args[0].Name.Name)
	assert.Equal(t, "b.c", aff.Args[1].Name.Name)
}

func TestParseModifyAnnotationWithUses(t *testing.T) {
	src := "unit test; module M { proc p() { @modify target { use a, b; } } }"
	u, err := Parse("f.sysdc", src)
	require.NoError(t, err)
	mod, ok := u.Modules[0].Functions[0].Annotations[0].(ast.AnnotationModify)
	require.True(t, ok)
	assert.Equal(t, "target", mod.Target.Name.Name)
	require.Len(t, mod.Uses, 2)
	assert.Equal(t, "a", mod.Uses[0].Name.Name)
	assert.Equal(t, "b", mod.Uses[1].Name.Name)
}

func TestParseSpawnWithBody(t *testing.T) {
	src := "unit test; module M { func f() -> i32 { @return r @spawn r: i32 { use a; let v = g(a); return v; } } }"
	u, err := Parse("f.sysdc", src)
	require.NoError(t, err)
	fn := u.Modules[0].Functions[0]
	require.Len(t, fn.Annotations, 1)
	spawn, ok := fn.Annotations[0].(ast.AnnotationSpawn)
	require.True(t, ok)
	assert.Equal(t, ast.Name{Namespace: ".0.test.M.f", Name: "r"}, spawn.Result.Name)
	require.Len(t, spawn.Details, 3)

	use, ok := spawn.Details[0].(ast.SpawnUse)
	require.True(t, ok)
	assert.Equal(t, ast.Name{Namespace: ".0.test.M.f._", Name: "a"}, use.Names[0].Name)

	let, ok := spawn.Details[1].(ast.SpawnLetTo)
	require.True(t, ok)
	assert.Equal(t, ast.Name{Namespace: ".0.test.M.f._", Name: "v"}, let.Name)
	assert.Equal(t, "g", let.Func.Name.Name)

	ret, ok := spawn.Details[2].(ast.SpawnReturn)
	require.True(t, ok)
	assert.Equal(t, ast.Name{Namespace: ".0.test.M.f._", Name: "v"}, ret.Var.Name)
}

func TestParseSpawnWithoutBody(t *testing.T) {
	src := "unit test; module M { func f() -> i32 { @return r @spawn r: i32 } }"
	u, err := Parse("f.sysdc", src)
	require.NoError(t, err)
	spawn, ok := u.Modules[0].Functions[0].Annotations[0].(ast.AnnotationSpawn)
	require.True(t, ok)
	assert.Empty(t, spawn.Details)
}

func TestParseSpawnMissingResultIsError(t *testing.T) {
	src := "unit test; module M { proc p() { @spawn } }"
	_, err := Parse("f.sysdc", src)
	require.Error(t, err)
	e, ok := err.(*errs.Error)
	require.True(t, ok)
	assert.Equal(t, errs.ResultOfSpawnNotSpecified, e.Kind)
}

func TestParseSpawnBodyUsesUnderscoreNamespace(t *testing.T) {
	src := `unit test; module M { func f() -> i32 {
		@return r
		@spawn r: i32 {
			use a;
			return a;
		}
	} }`
	u, err := Parse("f.sysdc", src)
	require.NoError(t, err)
	spawn := u.Modules[0].Functions[0].Annotations[0].(ast.AnnotationSpawn)
	use := spawn.Details[0].(ast.SpawnUse)
	assert.Equal(t, ".0.test.M.f._", use.Names[0].Name.Namespace)
}

func TestParseCommentsAreSkipped(t *testing.T) {
	u, err := Parse("f.sysdc", "unit test; % a unit with one empty data block %\n data A {}")
	require.NoError(t, err)
	require.Len(t, u.Data, 1)
}

func TestParseMissingDataOrModuleKeywordIsError(t *testing.T) {
	_, err := Parse("f.sysdc", "unit test; proc p() {}")
	require.Error(t, err)
	e, ok := err.(*errs.Error)
	require.True(t, ok)
	assert.Equal(t, errs.DataOrModuleNotFound, e.Kind)
}
