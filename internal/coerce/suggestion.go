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

import (
	"fmt"
	"strings"

	"fillmore-labs.com/anyref/internal/typeenv"
)

// Applicability states how safe it is to apply a suggested rewrite unreviewed.
type Applicability uint8

const (
	// MaybeIncorrect rewrites may not compile or may change meaning.
	MaybeIncorrect Applicability = iota

	// MachineApplicable rewrites are always correct.
	MachineApplicable
)

func (a Applicability) String() string {
	switch a {
	case MaybeIncorrect:
		return "maybe incorrect"

	case MachineApplicable:
		return "machine applicable"

	default:
		return fmt.Sprintf("Applicability(%d)", uint8(a))
	}
}

// Placeholder replaces source text that can't be retrieved.
const Placeholder = "x"

// Source retrieves verbatim source text.
type Source interface {
	Snippet(span typeenv.Span) (string, bool)
}

// Notation spells references and dereferences.
type Notation struct {
	// Ref takes a reference.
	Ref string

	// Deref removes one indirection.
	Deref string

	// Implicit is the number of dereferences the host language applies without spelling them.
	Implicit int
}

var (
	// Explicit spells every reference and dereference: &**x.
	Explicit = Notation{Ref: "&", Deref: "*"}

	// GoNotation spells suggestions in Go syntax. Converting to an interface type
	// supplies the reference, and the interface value itself is dereferenced
	// implicitly.
	GoNotation = Notation{Deref: "*", Implicit: 1}
)

// Render returns the rewrite of text with derefs dereferences.
func (n Notation) Render(derefs int, text string) string {
	derefs = max(derefs-n.Implicit, 0)

	var b strings.Builder
	b.Grow(len(n.Ref) + derefs*len(n.Deref) + len(text))

	b.WriteString(n.Ref)                           // ignore error
	b.WriteString(strings.Repeat(n.Deref, derefs)) // ignore error
	b.WriteString(text)                            // ignore error

	return b.String()
}

// Suggestion is a diagnostic with a suggested rewrite.
type Suggestion struct {
	// Span is the range of the diagnostic.
	Span typeenv.Span

	// Message describes the problem.
	Message string

	// Edit is the range to replace, NewText its replacement.
	Edit    typeenv.Span
	NewText string

	// FixMessage describes the rewrite.
	FixMessage string

	Applicability Applicability
}

// Builder renders findings as suggestions.
type Builder[T comparable] struct {
	env      typeenv.Env[T]
	notation Notation
}

// NewBuilder returns a [Builder] spelling rewrites in notation.
func NewBuilder[T comparable](env typeenv.Env[T], notation Notation) Builder[T] {
	return Builder[T]{env: env, notation: notation}
}

// Suggest renders f with source text retrieved from src.
func (b Builder[T]) Suggest(f Finding[T], src Source) Suggestion {
	text, ok := "", false
	if src != nil {
		text, ok = src.Snippet(f.Target)
	}

	if !ok {
		text = Placeholder
	}

	declared, adjusted, inner := b.env.String(f.Declared), b.env.String(f.Adjusted), b.env.String(f.Inner)

	return Suggestion{
		Span:          f.Span,
		Message:       fmt.Sprintf("coercing `%s` to `%s` rather than dereferencing to the `%s` inside", declared, adjusted, inner),
		Edit:          f.Span,
		NewText:       b.notation.Render(f.Derefs, text),
		FixMessage:    "consider dereferencing",
		Applicability: MaybeIncorrect,
	}
}
