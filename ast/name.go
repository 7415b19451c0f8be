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

// Package ast holds the unresolved syntax representation produced by the
// parser: hierarchical names, syntactic types, and the declaration nodes
// (unit, data, module, function, annotation) that make up one source file.
package ast

import "strings"

// RootNamespace is the sentinel namespace that every top level Unit hangs
// off of.
const RootNamespace = ".0"

// Name is a hierarchical identifier: a dot-joined namespace plus a leaf
// name. Two names with the same (Namespace, Name) pair refer to the same
// entity.
type Name struct {
	Namespace string `json:"namespace" msgpack:"namespace"`
	Name      string `json:"name" msgpack:"name"`
}

// NewName builds a Name from an explicit namespace and leaf.
func NewName(namespace, name string) Name {
	return Name{Namespace: namespace, Name: name}
}

// Full returns the dotted representation "namespace.name".
func (n Name) Full() string {
	if n.Namespace == "" {
		return n.Name
	}
	return n.Namespace + "." + n.Name
}

func (n Name) String() string { return n.Full() }

// IsZero reports whether n is the zero Name (no namespace, no name).
func (n Name) IsZero() bool { return n.Namespace == "" && n.Name == "" }

// Child returns the Name for an entity called name declared directly inside
// n (i.e. n.Full() becomes the child's namespace).
func (n Name) Child(name string) Name {
	return Name{Namespace: n.Full(), Name: name}
}

// segments splits a namespace into the dot-separated components below the
// root sentinel: segments(".0") == nil, segments(".0.test.M") == []string
// {"test", "M"}. A namespace that has been fully walked above the root
// sentinel is "" and also has no segments.
func segments(namespace string) []string {
	rest := strings.TrimPrefix(namespace, RootNamespace)
	rest = strings.TrimPrefix(rest, ".")
	if rest == "" {
		return nil
	}
	return strings.Split(rest, ".")
}

// Parent strips the trailing namespace component and makes it the new leaf
// name, e.g. Name{".0.test.M", "f"}.Parent(false) == Name{".0.test", "M"}.
// When ignoreUnderscore is true, trailing "_" components (the anonymous
// scopes introduced by @spawn bodies) are skipped over transparently: they
// are treated as if they were not part of the path at all. Calling Parent
// on a Name already sitting directly under the root sentinel empties the
// namespace entirely, signalling that the walk up the scope chain is done.
func (n Name) Parent(ignoreUnderscore bool) Name {
	segs := segments(n.Namespace)
	if len(segs) == 0 {
		return Name{}
	}
	last := len(segs) - 1
	if ignoreUnderscore {
		for last >= 0 && segs[last] == "_" {
			last--
		}
		if last < 0 {
			return Name{}
		}
	}
	rest := segs[:last]
	leaf := segs[last]
	parentNamespace := RootNamespace
	if len(rest) > 0 {
		parentNamespace = RootNamespace + "." + strings.Join(rest, ".")
	}
	return Name{Namespace: parentNamespace, Name: leaf}
}

// Enclosing returns the same Name as n.Parent(ignoreUnderscore), whose leaf
// is the component of the namespace immediately above n.
func (n Name) Enclosing(ignoreUnderscore bool) Name {
	return n.Parent(ignoreUnderscore)
}

// Enclosing returns the Name of the scope that directly contains n, using
// the default (non-underscore-skipping) parent walk, for callers that do
// not care about transparent spawn scopes.
func Enclosing(n Name) Name {
	return n.Parent(false)
}
