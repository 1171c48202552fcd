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

// Package typeenv describes the read-only view of a type-checked program the
// coercion checks run against.
//
// Type handles are opaque and compared by identity. The environment never
// constructs or mutates types on behalf of its callers.
package typeenv

import (
	"go/token"
	"iter"
)

//go:generate go tool stringer -type Kind -trimprefix Kind

// Kind is the shape of a type, as far as coercion checks are concerned.
type Kind uint8

const (
	// KindOther is any type without a shape of interest.
	KindOther Kind = iota

	// KindRef is a reference to a referent type.
	KindRef

	// KindDynamic is a dynamic object known only by its capability set.
	KindDynamic

	// KindIndirect is a container that transparently dereferences to an inner type.
	KindIndirect
)

// Capability is one element of a dynamic object's capability set.
type Capability struct {
	// ID is the resolved capability identifier, empty when resolution failed.
	ID string

	// Bound reports whether the predicate is quantified over a type variable.
	Bound bool
}

// Env is a read-only type environment over type handles of type T.
//
// Implementations must be safe for concurrent use.
type Env[T comparable] interface {
	// Kind returns the shape of t.
	Kind(t T) Kind

	// Referent returns the type a [KindRef] type refers to.
	Referent(t T) (T, bool)

	// Capabilities iterates over the capability set of a [KindDynamic] type.
	Capabilities(t T) iter.Seq[Capability]

	// Deref applies one indirection-removal step to t.
	Deref(t T) (T, bool)

	// String renders t for diagnostic messages.
	String(t T) string
}

// Span is a half-open source range.
type Span struct {
	Start, Stop token.Pos
}

// Pos implements [analysis.Range].
func (s Span) Pos() token.Pos { return s.Start }

// End implements [analysis.Range].
func (s Span) End() token.Pos { return s.Stop }

// Valid reports whether s denotes a source range.
func (s Span) Valid() bool { return s.Start.IsValid() && s.Stop >= s.Start }
