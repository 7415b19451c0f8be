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

package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yuta1004/SysDC-sub000/errs"
)

func TestTokenizerKeywordsAndSymbols(t *testing.T) {
	tz := New("f.sysdc", "unit test; data A { a: i32 } -> @ .")

	want := []Kind{
		Unit, Identifier, Semi, Data, Identifier, LBrace,
		Identifier, Colon, Identifier, RBrace, Arrow, At, Dot,
	}
	for i, k := range want {
		tok, err := tz.Request(k)
		require.NoErrorf(t, err, "token %d", i)
		assert.Equal(t, k, tok.Kind)
	}
	assert.False(t, tz.ExistsNext())
}

func TestTokenizerComment(t *testing.T) {
	tz := New("f.sysdc", "unit %this is ignored\nstill ignored% test;")
	tok, err := tz.Request(Unit)
	require.NoError(t, err)
	assert.Equal(t, "unit", tok.Lexeme)

	tok, err = tz.Request(Identifier)
	require.NoError(t, err)
	assert.Equal(t, "test", tok.Lexeme)
}

func TestTokenizerLocationTracksRowCol(t *testing.T) {
	tz := New("f.sysdc", "unit\n  test;")
	tok, err := tz.Request(Unit)
	require.NoError(t, err)
	assert.Equal(t, 1, tok.Location.Row)
	assert.Equal(t, 1, tok.Location.Col)

	tok, err = tz.Request(Identifier)
	require.NoError(t, err)
	assert.Equal(t, 2, tok.Location.Row)
	assert.Equal(t, 3, tok.Location.Col)
}

func TestTokenizerExpectPutsTokenBack(t *testing.T) {
	tz := New("f.sysdc", "data")
	_, ok := tz.Expect(Module)
	assert.False(t, ok)
	tok, ok := tz.Expect(Data)
	assert.True(t, ok)
	assert.Equal(t, "data", tok.Lexeme)
	assert.False(t, tz.ExistsNext())
}

func TestTokenizerRequestMismatchIsRequestedTokenNotFound(t *testing.T) {
	tz := New("f.sysdc", "data")
	_, err := tz.Request(Module)
	require.Error(t, err)
	e, ok := err.(*errs.Error)
	require.True(t, ok)
	assert.Equal(t, errs.RequestedTokenNotFound, e.Kind)
}

func TestTokenizerDanglingDashIsUnregisteredSymbol(t *testing.T) {
	tz := New("f.sysdc", "- x")
	_, err := tz.Request(Arrow)
	require.Error(t, err)
	e, ok := err.(*errs.Error)
	require.True(t, ok)
	assert.Equal(t, errs.FoundUnregisteredSymbol, e.Kind)
}

func TestTokenizerUnterminatedCommentIsUnexpectedEOF(t *testing.T) {
	tz := New("f.sysdc", "unit %never closed")
	_, err := tz.Request(Unit)
	require.NoError(t, err)
	_, err = tz.Request(Identifier)
	require.Error(t, err)
	e, ok := err.(*errs.Error)
	require.True(t, ok)
	assert.Equal(t, errs.UnexpectedEOF, e.Kind)
}

func TestTokenizerNextReturnsWhateverComesNext(t *testing.T) {
	tz := New("f.sysdc", "foo")
	tok, err := tz.Next()
	require.NoError(t, err)
	assert.Equal(t, Identifier, tok.Kind)
	assert.Equal(t, "foo", tok.Lexeme)
}
