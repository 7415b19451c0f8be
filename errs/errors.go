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

package errs

import "fmt"

// Kind is the flat enumeration of every way a stage can fail. Propagation
// is short-circuit: the pipeline surfaces the first Error it hits and
// never tries to recover or continue locally.
type Kind uint8

const (
	// Tokenization.
	RequestedTokenNotFound Kind = iota
	FoundUnregisteredSymbol
	UnexpectedEOF

	// Parsing.
	UnitNameNotSpecified
	FromNamespaceNotSpecified
	DataOrModuleNotFound
	ReturnExistsMultiple
	ReturnExistsOnProcedure
	ReturnNotExists
	ResultOfSpawnNotSpecified
	FunctionNameNotFound
	UnknownAnnotationFound

	// Checking.
	AlreadyDefined
	TypeUnmatch1
	TypeUnmatch2
	ArgumentsLengthNotMatch
	NotFound
	NotDefined
	MemberNotDefinedInData
	FuncNotDefinedInModule
	MissingFunctionName
	IllegalAccess
)

var kindNames = map[Kind]string{
	RequestedTokenNotFound:   "RequestedTokenNotFound",
	FoundUnregisteredSymbol:  "FoundUnregisteredSymbol",
	UnexpectedEOF:            "UnexpectedEOF",
	UnitNameNotSpecified:     "UnitNameNotSpecified",
	FromNamespaceNotSpecified: "FromNamespaceNotSpecified",
	DataOrModuleNotFound:     "DataOrModuleNotFound",
	ReturnExistsMultiple:     "ReturnExistsMultiple",
	ReturnExistsOnProcedure:  "ReturnExistsOnProcedure",
	ReturnNotExists:          "ReturnNotExists",
	ResultOfSpawnNotSpecified: "ResultOfSpawnNotSpecified",
	FunctionNameNotFound:     "FunctionNameNotFound",
	UnknownAnnotationFound:   "UnknownAnnotationFound",
	AlreadyDefined:           "AlreadyDefined",
	TypeUnmatch1:             "TypeUnmatch1",
	TypeUnmatch2:             "TypeUnmatch2",
	ArgumentsLengthNotMatch:  "ArgumentsLengthNotMatch",
	NotFound:                 "NotFound",
	NotDefined:               "NotDefined",
	MemberNotDefinedInData:   "MemberNotDefinedInData",
	FuncNotDefinedInModule:   "FuncNotDefinedInModule",
	MissingFunctionName:      "MissingFunctionName",
	IllegalAccess:            "IllegalAccess",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Error is the single error type returned by every stage of the front-end.
// Args carries whatever payload the Kind needs (a token kind, a name, a
// pair of mismatched types, ...); it is kept untyped so one Error shape
// can serve the whole flat enumeration instead of one struct per Kind.
type Error struct {
	Kind     Kind
	Location Location
	Args     []interface{}
}

// New builds an Error of the given kind at loc, with whatever payload args
// the kind's message format expects.
func New(kind Kind, loc Location, args ...interface{}) *Error {
	return &Error{Kind: kind, Location: loc, Args: args}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Location, e.message())
}

// Format implements fmt.Formatter so %v and %s on an *Error (or a value
// wrapping one) render the same "location: message" text as Error().
func (e *Error) Format(f fmt.State, c rune) {
	fmt.Fprint(f, e.Error())
}

func (e *Error) message() string {
	switch e.Kind {
	case RequestedTokenNotFound:
		return fmt.Sprintf("requested token not found: expected %v", arg(e.Args, 0))
	case FoundUnregisteredSymbol:
		return "found an unregistered symbol"
	case UnexpectedEOF:
		return "unexpected end of file"
	case UnitNameNotSpecified:
		return "unit name not specified"
	case FromNamespaceNotSpecified:
		return "from-namespace not specified"
	case DataOrModuleNotFound:
		return "expected a data or module declaration"
	case ReturnExistsMultiple:
		return "multiple @return annotations on the same function"
	case ReturnExistsOnProcedure:
		return "@return is not allowed on a proc"
	case ReturnNotExists:
		return "func is missing its @return annotation"
	case ResultOfSpawnNotSpecified:
		return "@spawn is missing its result (name: type)"
	case FunctionNameNotFound:
		return "function name not found"
	case UnknownAnnotationFound:
		return fmt.Sprintf("unknown annotation @%v", arg(e.Args, 0))
	case AlreadyDefined:
		return fmt.Sprintf("%v is already defined", arg(e.Args, 0))
	case TypeUnmatch1:
		return fmt.Sprintf("type %v does not resolve to a usable kind", arg(e.Args, 0))
	case TypeUnmatch2:
		return fmt.Sprintf("type mismatch: expected %v, found %v", arg(e.Args, 0), arg(e.Args, 1))
	case ArgumentsLengthNotMatch:
		return "number of arguments does not match the function's parameters"
	case NotFound:
		return fmt.Sprintf("%v not found", arg(e.Args, 0))
	case NotDefined:
		return fmt.Sprintf("%v is not defined", arg(e.Args, 0))
	case MemberNotDefinedInData:
		return fmt.Sprintf("member %v not defined in data %v", arg(e.Args, 0), arg(e.Args, 1))
	case FuncNotDefinedInModule:
		return fmt.Sprintf("function %v not defined in module %v", arg(e.Args, 0), arg(e.Args, 1))
	case MissingFunctionName:
		return "module reference is missing a function name"
	case IllegalAccess:
		return "illegal access"
	default:
		return e.Kind.String()
	}
}

func arg(args []interface{}, i int) interface{} {
	if i < len(args) {
		return args[i]
	}
	return "?"
}
