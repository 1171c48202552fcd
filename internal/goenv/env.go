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

// Package goenv implements [typeenv.Env] for [go/types].
//
// Pointers and interface values are references. The value an interface
// refers to is a dynamic object whose capabilities are the interface methods;
// an empty method set is the universal any-capability [Marker]. A type
// parameter is a dynamic object with quantified capabilities.
package goenv

import (
	"go/types"
	"iter"

	"fillmore-labs.com/anyref/internal/typeenv"
)

// Marker identifies the universal any-capability.
const Marker = "any"

// Type is a type handle, optionally denoting the object an interface value refers to.
type Type struct {
	typ types.Type
	dyn bool
}

// Of returns the handle for typ.
func Of(typ types.Type) Type { return Type{typ: typ} }

// Type returns the Go type of t.
func (t Type) Type() types.Type { return t.typ }

// Env is a [typeenv.Env] over [go/types] types.
type Env struct {
	qualifier types.Qualifier
}

var _ typeenv.Env[Type] = Env{}

// New returns an [Env] rendering types relative to pkg.
func New(pkg *types.Package) Env {
	return Env{qualifier: types.RelativeTo(pkg)}
}

// Kind implements [typeenv.Env].
func (Env) Kind(t Type) typeenv.Kind {
	if t.typ == nil {
		return typeenv.KindOther
	}

	if _, ok := types.Unalias(t.typ).(*types.TypeParam); ok {
		return typeenv.KindDynamic
	}

	switch t.typ.Underlying().(type) {
	case *types.Pointer:
		return typeenv.KindRef

	case *types.Interface:
		if t.dyn {
			return typeenv.KindDynamic
		}

		return typeenv.KindRef

	default:
		return typeenv.KindOther
	}
}

// Referent implements [typeenv.Env].
func (e Env) Referent(t Type) (Type, bool) {
	if e.Kind(t) != typeenv.KindRef {
		return Type{}, false
	}

	switch u := t.typ.Underlying().(type) {
	case *types.Pointer:
		return Type{typ: u.Elem()}, true

	case *types.Interface:
		return Type{typ: t.typ, dyn: true}, true

	default:
		return Type{}, false
	}
}

// Capabilities implements [typeenv.Env].
func (e Env) Capabilities(t Type) iter.Seq[typeenv.Capability] {
	if e.Kind(t) != typeenv.KindDynamic {
		return func(func(typeenv.Capability) bool) {}
	}

	if tp, ok := types.Unalias(t.typ).(*types.TypeParam); ok {
		constraint, _ := tp.Constraint().Underlying().(*types.Interface)

		return capabilities(constraint, true)
	}

	iface, _ := t.typ.Underlying().(*types.Interface)

	return capabilities(iface, false)
}

func capabilities(iface *types.Interface, bound bool) iter.Seq[typeenv.Capability] {
	return func(yield func(typeenv.Capability) bool) {
		switch {
		case iface == nil:
			yield(typeenv.Capability{Bound: bound})

		case iface.NumMethods() == 0:
			if !iface.IsMethodSet() {
				return // type set constraint
			}

			yield(typeenv.Capability{ID: Marker, Bound: bound})

		default:
			for m := range iface.Methods() {
				if !yield(typeenv.Capability{ID: m.Id(), Bound: bound}) {
					return
				}
			}
		}
	}
}

// Deref implements [typeenv.Env].
func (e Env) Deref(t Type) (Type, bool) { return e.Referent(t) }

// String implements [typeenv.Env].
func (e Env) String(t Type) string {
	if t.typ == nil {
		return "<nil>"
	}

	return types.TypeString(t.typ, e.qualifier)
}
