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

package sysdc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Yuta1004/SysDC-sub000/errs"
)

func TestParseThenCheckProducesSystem(t *testing.T) {
	p := New()
	require.NoError(t, p.Parse("a.sysdc", "unit test; data A { x: i32 }"))

	sys, err := p.Check()
	require.NoError(t, err)
	require.Len(t, sys.Units, 1)
	assert.Equal(t, "x", sys.Units[0].Data[0].Members[0].Name.Name)
}

func TestParseAccumulatesAcrossUnitsAndImportsResolve(t *testing.T) {
	p := New()
	require.NoError(t, p.Parse("a.sysdc", "unit test.A; data A {}"))
	require.NoError(t, p.Parse("b.sysdc", "unit test.B; from test.A import A; data B { a: A }"))

	sys, err := p.Check()
	require.NoError(t, err)
	require.Len(t, sys.Units, 2)
}

func TestParseSurfacesTokenizerErrorsWithoutAddingAUnit(t *testing.T) {
	p := New()
	err := p.Parse("bad.sysdc", "unit test; data A { x: i32 ~ }")
	require.Error(t, err)

	sys, err := p.Check()
	require.NoError(t, err)
	assert.Empty(t, sys.Units, "a unit that failed to parse must not be handed to Check")
}

func TestCheckCanBeCalledMoreThanOnce(t *testing.T) {
	p := New()
	require.NoError(t, p.Parse("a.sysdc", "unit test; data A {}"))

	first, err := p.Check()
	require.NoError(t, err)
	second, err := p.Check()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCheckReturnsUnderlyingCheckerError(t *testing.T) {
	p := New()
	require.NoError(t, p.Parse("a.sysdc", "unit test; data A {} data A {}"))

	_, err := p.Check()
	require.Error(t, err)
	e, ok := err.(*errs.Error)
	require.True(t, ok)
	assert.Equal(t, errs.AlreadyDefined, e.Kind)
}

func TestNewWithLoggerReportsParseAndCheck(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	p := NewWithLogger(zap.New(core))

	require.NoError(t, p.Parse("a.sysdc", "unit test; data A {}"))
	_, err := p.Check()
	require.NoError(t, err)

	assert.GreaterOrEqual(t, logs.Len(), 2, "expected at least one log entry for the parse and one for the check")
}
