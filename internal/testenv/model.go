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

// Package testenv provides an in-memory [typeenv.Env] for tests.
//
// It models the shapes the coercion checks query (references, smart
// containers and dynamic capability objects) without a host type checker.
package testenv

import (
	"iter"
	"slices"
	"strings"

	"fillmore-labs.com/anyref/internal/typeenv"
)

// Any is the marker capability of the model.
const Any = "Any"

// Node is a type in the model.
type Node struct {
	Name string
	Kind typeenv.Kind
	Elem *Node // referent of a reference, content of a container
	Caps []typeenv.Capability
}

// Named returns a type without indirection.
func Named(name string) *Node { return &Node{Name: name, Kind: typeenv.KindOther} }

// Ref returns a reference to elem.
func Ref(elem *Node) *Node { return &Node{Kind: typeenv.KindRef, Elem: elem} }

// Box returns a container named name dereferencing to elem.
func Box(name string, elem *Node) *Node {
	return &Node{Name: name, Kind: typeenv.KindIndirect, Elem: elem}
}

// Dyn returns a dynamic object with the given capabilities.
func Dyn(caps ...typeenv.Capability) *Node { return &Node{Kind: typeenv.KindDynamic, Caps: caps} }

// DynAny returns the universal any-capability object.
func DynAny() *Node { return Dyn(typeenv.Capability{ID: Any}) }

// String renders n like a type expression.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b, 0)

	return b.String()
}

const maxDepth = 8

func (n *Node) write(b *strings.Builder, depth int) {
	if depth > maxDepth {
		b.WriteString("...")

		return
	}

	if n == nil {
		b.WriteString("<nil>")

		return
	}

	switch n.Kind {
	case typeenv.KindRef:
		b.WriteByte('&')
		n.Elem.write(b, depth+1)

	case typeenv.KindIndirect:
		b.WriteString(n.Name)
		b.WriteByte('<')
		n.Elem.write(b, depth+1)
		b.WriteByte('>')

	case typeenv.KindDynamic:
		b.WriteString("dyn ")

		for i, c := range n.Caps {
			if i > 0 {
				b.WriteString(" + ")
			}

			if c.Bound {
				b.WriteString("forall ")
			}

			b.WriteString(c.ID)
		}

	default:
		b.WriteString(n.Name)
	}
}

// Model implements [typeenv.Env] over *[Node].
type Model struct{}

var _ typeenv.Env[*Node] = Model{}

// Kind implements [typeenv.Env].
func (Model) Kind(n *Node) typeenv.Kind {
	if n == nil {
		return typeenv.KindOther
	}

	return n.Kind
}

// Referent implements [typeenv.Env].
func (Model) Referent(n *Node) (*Node, bool) {
	if n == nil || n.Kind != typeenv.KindRef || n.Elem == nil {
		return nil, false
	}

	return n.Elem, true
}

// Capabilities implements [typeenv.Env].
func (Model) Capabilities(n *Node) iter.Seq[typeenv.Capability] {
	if n == nil || n.Kind != typeenv.KindDynamic {
		return func(func(typeenv.Capability) bool) {}
	}

	return slices.Values(n.Caps)
}

// Deref implements [typeenv.Env].
func (Model) Deref(n *Node) (*Node, bool) {
	if n == nil || n.Elem == nil {
		return nil, false
	}

	switch n.Kind {
	case typeenv.KindRef, typeenv.KindIndirect:
		return n.Elem, true

	default:
		return nil, false
	}
}

// String implements [typeenv.Env].
func (Model) String(n *Node) string { return n.String() }

// Expr is a typed expression of the model.
type Expr struct {
	Decl, Adj *Node
	At        typeenv.Span
	Operand   *typeenv.Span // set for address-of expressions
}

// Declared implements [coerce.Expr].
func (e Expr) Declared() *Node { return e.Decl }

// Adjusted implements [coerce.Expr].
func (e Expr) Adjusted() *Node { return e.Adj }

// Span implements [coerce.Expr].
func (e Expr) Span() typeenv.Span { return e.At }

// AddrOf implements [coerce.Expr].
func (e Expr) AddrOf() (typeenv.Span, bool) {
	if e.Operand == nil {
		return typeenv.Span{}, false
	}

	return *e.Operand, true
}

// Source maps spans to source text.
type Source map[typeenv.Span]string

// Snippet implements [coerce.Source].
func (s Source) Snippet(span typeenv.Span) (string, bool) {
	text, ok := s[span]

	return text, ok
}
