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

// checkUnit validates u's imports, runs Pass A and Pass B over it, and
// clears Imports: a checked Unit no longer needs them, and nothing past
// this point is allowed to observe an unresolved Member.
func checkUnit(u *ast.Unit, m *defines.Manager, idx funcIndex) error {
	for _, imp := range u.Imports {
		if err := m.CheckCanImport(imp); err != nil {
			return err
		}
	}
	if err := resolveUnit(u, m); err != nil {
		return err
	}
	for _, mod := range u.Modules {
		for _, fn := range mod.Functions {
			if err := matchFunction(fn, idx, m); err != nil {
				return err
			}
		}
	}
	u.Imports = nil
	return nil
}
