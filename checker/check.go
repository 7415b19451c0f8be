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
	"github.com/Yuta1004/SysDC-sub000/ast"
	"github.com/Yuta1004/SysDC-sub000/defines"
)

// Check takes every Unit parsed so far and turns it into a checked system:
// a single Defines Manager is built over all of them in pre-order (the
// first AlreadyDefined collision short-circuits everything else), then
// each unit's imports are validated and its tree is resolved (Pass A) and
// type-matched (Pass B) in turn. The first error from any unit wins; there
// is no partial result and no local recovery.
func Check(units []*ast.Unit) ([]*ast.Unit, error) {
	m, err := defines.NewManager(units)
	if err != nil {
		return nil, err
	}
	idx := buildFuncIndex(units)
	for _, u := range units {
		if err := checkUnit(u, m, idx); err != nil {
			return nil, err
		}
	}
	return units, nil
}
