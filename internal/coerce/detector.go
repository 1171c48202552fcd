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

package coerce

import "fillmore-labs.com/anyref/internal/typeenv"

// Expr is a typed expression at an implicit conversion site.
type Expr[T comparable] interface {
	// Declared is the type of the expression without implicit conversions.
	Declared() T

	// Adjusted is the type of the expression after implicit conversions.
	Adjusted() T

	// Span is the source range of the whole expression.
	Span() typeenv.Span

	// AddrOf returns the range of the operand when the expression is an explicit address-of.
	AddrOf() (referent typeenv.Span, ok bool)
}

// Finding describes a reference that should have been dereferenced.
type Finding[T comparable] struct {
	Declared, Adjusted T

	// Inner is the any-capability object reached by dereferencing.
	Inner T

	// Span is the range of the flagged expression.
	Span typeenv.Span

	// Target is the range whose source text the suggested rewrite reuses.
	Target typeenv.Span

	// Derefs is the number of dereference operators to prepend to Target.
	Derefs int
}

// Detector flags references implicitly converted to a reference to the
// universal any-capability object that already lead to such an object
// through dereferencing.
type Detector[T comparable] struct {
	env        typeenv.Env[T]
	classifier Classifier[T]
}

// NewDetector returns a [Detector] for env, with marker identifying the universal
// any-capability.
func NewDetector[T comparable](env typeenv.Env[T], marker string) Detector[T] {
	return Detector[T]{env: env, classifier: NewClassifier(env, marker)}
}

// Check decides whether e should be reported.
func (d Detector[T]) Check(e Expr[T]) (Finding[T], bool) {
	// The expression is effectively a reference to the any object...
	adjusted := e.Adjusted()
	if r, ok := d.referent(adjusted); !ok || !d.classifier.IsAny(r) {
		return Finding[T]{}, false
	}

	// ... but only through conversion ...
	declared := e.Declared()

	r2, ok := d.referent(declared)
	if !ok || d.classifier.IsAny(r2) {
		return Finding[T]{}, false
	}

	// ... while dereferencing would reach the any object as well.
	steps, last, ok := Last(DerefChain(d.env, r2))
	if !ok || !d.classifier.IsAny(last) {
		return Finding[T]{}, false
	}

	f := Finding[T]{Declared: declared, Adjusted: adjusted, Inner: last, Span: e.Span()}

	if referent, ok := e.AddrOf(); ok {
		// The existing address-of supplies one layer.
		f.Target, f.Derefs = referent, steps
	} else {
		f.Target, f.Derefs = f.Span, steps+1
	}

	return f, true
}

func (d Detector[T]) referent(t T) (T, bool) {
	if d.env.Kind(t) != typeenv.KindRef {
		var zero T

		return zero, false
	}

	return d.env.Referent(t)
}
