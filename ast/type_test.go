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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromLiteralPrimitives(t *testing.T) {
	cases := map[string]Kind{
		"void": Void, "i32": Int32, "u32": UInt32,
		"f32": Float32, "bool": Boolean, "char": Char,
	}
	for literal, kind := range cases {
		got := FromLiteral(literal)
		assert.Equal(t, kind, got.Kind)
		assert.True(t, got.Kind.IsPrimitive())
	}
}

func TestFromLiteralUnknownIsUnsolvedHint(t *testing.T) {
	got := FromLiteral("MyData")
	assert.Equal(t, Unsolved, got.Kind)
	assert.Equal(t, "MyData", got.Hint)
	assert.True(t, got.Kind.IsUnsolved())
}

func TestNoHintIsUnsolvedNoHint(t *testing.T) {
	assert.Equal(t, UnsolvedNoHint, NoHint().Kind)
}

func TestDataTypeEquality(t *testing.T) {
	a := DataType(Name{Namespace: ".0.test", Name: "A"})
	b := DataType(Name{Namespace: ".0.test", Name: "A"})
	c := DataType(Name{Namespace: ".0.test", Name: "B"})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestPrimitiveEqualityIgnoresRefs(t *testing.T) {
	assert.True(t, Type{Kind: Int32, Refs: Name{Namespace: ".0.test", Name: "A"}}.Equal(Type{Kind: Int32}))
	assert.False(t, Type{Kind: Int32}.Equal(Type{Kind: UInt32}))
}

func TestKindFromStringRoundTrip(t *testing.T) {
	for _, k := range []Kind{Void, Int32, UInt32, Float32, Boolean, Char, Data} {
		got, ok := KindFromString(k.String())
		assert.True(t, ok)
		assert.Equal(t, k, got)
	}
}

func TestKindFromStringRejectsUnsolved(t *testing.T) {
	_, ok := KindFromString("Unsolved")
	assert.False(t, ok)
	_, ok = KindFromString("nonsense")
	assert.False(t, ok)
}
