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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yuta1004/SysDC-sub000/ast"
	"github.com/Yuta1004/SysDC-sub000/errs"
	"github.com/Yuta1004/SysDC-sub000/parser"
)

func parseAll(t *testing.T, sources map[string]string) []*ast.Unit {
	t.Helper()
	units := make([]*ast.Unit, 0, len(sources))
	for filename, src := range sources {
		u, err := parser.Parse(filename, src)
		require.NoError(t, err)
		units = append(units, u)
	}
	return units
}

// S1: a single unit with no cross references checks clean and every member
// lands on a concrete, resolved primitive Type.
func TestCheckSimpleUnitResolvesPrimitiveMembers(t *testing.T) {
	units := parseAll(t, map[string]string{
		"a.sysdc": "unit test; data A { x: i32, y: bool }",
	})
	checked, err := Check(units)
	require.NoError(t, err)
	m := checked[0].Data[0].Members
	assert.Equal(t, ast.Int32, m[0].Type.Kind)
	assert.Equal(t, ast.Boolean, m[1].Type.Kind)
}

// A func declared to return void skips the declared-vs-actual return type
// check entirely: its @return identifier need not resolve to anything.
func TestCheckVoidReturnSkipsReturnTypeMatch(t *testing.T) {
	src := `unit test;
module M {
  func f() -> void { @return nothing }
}`
	units := parseAll(t, map[string]string{"a.sysdc": src})
	_, err := Check(units)
	require.NoError(t, err)
}

// S2: a Data member typed by a name imported from another unit resolves to
// that unit's Data declaration.
func TestCheckCrossUnitImportResolvesMemberType(t *testing.T) {
	units := parseAll(t, map[string]string{
		"a.sysdc": "unit test.A; data A {}",
		"b.sysdc": "unit test.B; from test.A import A; data B { a: A }",
	})
	checked, err := Check(units)
	require.NoError(t, err)

	var b *ast.Data
	for _, u := range checked {
		if u.Name.Full() == ".0.test.B" {
			b = u.Data[0]
		}
	}
	require.NotNil(t, b)
	assert.Equal(t, ast.Data, b.Members[0].Type.Kind)
	assert.Equal(t, ast.Name{Namespace: ".0.test.A", Name: "A"}, b.Members[0].Type.Refs)
	assert.Empty(t, checked[1].Imports, "checkUnit must clear Imports once validated")
}

// S3: an unqualified call to another function in the same module resolves
// without needing the module name spelled out.
func TestCheckUnqualifiedCallResolvesInSameModule(t *testing.T) {
	src := `unit test;
data A {}
module M {
  func new() -> A { @return a @spawn a: A }
  func test() -> A { @return a @spawn a: A { let b = new(); return b; } }
}`
	units := parseAll(t, map[string]string{"a.sysdc": src})
	_, err := Check(units)
	require.NoError(t, err)
}

// S4: calling a function with the wrong number of arguments is a checked
// error, not a parse error.
func TestCheckArgumentCountMismatchIsError(t *testing.T) {
	src := `unit test;
module M {
  func g(x: i32) -> i32 { @return r @spawn r: i32 }
  proc p() { @affect M.g() }
}`
	units := parseAll(t, map[string]string{"a.sysdc": src})
	_, err := Check(units)
	require.Error(t, err)
	e, ok := err.(*errs.Error)
	require.True(t, ok)
	assert.Equal(t, errs.ArgumentsLengthNotMatch, e.Kind)
}

// Two declarations competing for the same name in the same scope collide.
func TestCheckDuplicateNameInSameScopeIsError(t *testing.T) {
	units := parseAll(t, map[string]string{
		"a.sysdc": "unit test; data A {} data A {}",
	})
	_, err := Check(units)
	require.Error(t, err)
	e, ok := err.(*errs.Error)
	require.True(t, ok)
	assert.Equal(t, errs.AlreadyDefined, e.Kind)
}

// S6: walking a dotted chain through a primitive member (rather than
// terminating on it) is an illegal access, caught during Pass A.
func TestCheckIllegalAccessThroughPrimitiveMember(t *testing.T) {
	src := `unit test;
data A { x: i32 }
module M {
  func h(i: i32) -> i32 { @return o @spawn o: i32 }
  func f(a: A) -> i32 {
    @return r
    @spawn r: i32 {
      use a;
      let v = h(a.x.y);
      return v;
    }
  }
}`
	units := parseAll(t, map[string]string{"a.sysdc": src})
	_, err := Check(units)
	require.Error(t, err)
	e, ok := err.(*errs.Error)
	require.True(t, ok)
	assert.Equal(t, errs.IllegalAccess, e.Kind)
}
