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

// Unit is the root of one parsed source file: its own dotted name, the
// data and module declarations it holds, and the imports it pulled in
// from other units. Resolution consumes Imports and leaves it nil on the
// checked tree.
type Unit struct {
	Name    Name
	Data    []*Data
	Modules []*Module
	Imports []Name
}

// Data is a record-like type declaration: a set of named, typed members.
// Self reference through a member is legal (`data A { a: A }`).
type Data struct {
	Name    Name
	Members []Member
}

// Member is one (name, type) pair inside a Data declaration.
type Member struct {
	Name Name
	Type Type
}

// Module groups a set of named functions/procedures under one namespace.
type Module struct {
	Name      Name
	Functions []*Function
}
