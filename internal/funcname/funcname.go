// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package funcname names functions and methods and matches them against patterns.
package funcname

import (
	"go/types"
	"strings"
)

// FuncName identifies a function or method.
type FuncName struct {
	Path     string // package path, empty for universe functions and unnamed receivers
	Receiver string // receiver type name for methods
	Name     string
}

// String renders the name like "path.Func" or "(path.Type).Method".
func (f FuncName) String() string {
	var b strings.Builder

	if f.Receiver != "" {
		b.WriteByte('(')
	}

	if f.Path != "" {
		b.WriteString(f.Path)
		b.WriteByte('.')
	}

	if f.Receiver != "" {
		b.WriteString(f.Receiver)
		b.WriteString(").")
	}

	b.WriteString(f.Name)

	return b.String()
}

// FuncNameOf returns the [FuncName] of fun.
func FuncNameOf(fun *types.Func) FuncName {
	var path string
	if pkg := fun.Pkg(); pkg != nil {
		path = pkg.Path()
	}

	recv := fun.Signature().Recv()
	if recv == nil {
		return FuncName{Path: path, Name: fun.Name()}
	}

	typ := types.Unalias(recv.Type())
	if ptr, ok := typ.(*types.Pointer); ok {
		typ = types.Unalias(ptr.Elem())
	}

	switch t := typ.(type) {
	case *types.Named:
		return FuncName{Path: path, Receiver: t.Obj().Name(), Name: fun.Name()}

	case *types.Interface:
		return FuncName{Receiver: "interface", Name: fun.Name()}

	default:
		return FuncName{Receiver: "<invalid>", Name: fun.Name()}
	}
}
