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
package a

import (
	"encoding/json"
	"fmt"
)

type Value struct{ V any }

type Ptr *any

type Empty interface{}

func f(v any) {}

func g(vs ...any) {}

func calls() {
	var e any = 42
	p := &e
	pp := &p

	f(&e) // want "coercing `\\*any` to `any` rather than dereferencing to the `any` inside"

	f(p) // want "coercing `\\*any` to `any`"

	f(&p) // want "coercing `\\*\\*any` to `any`"

	f(pp) // want "coercing `\\*\\*any` to `any`"

	f((&e)) // want "coercing `\\*any` to `any`"

	f(e)
	f(*p)
	f(**pp)
	f(any(&e))

	g(1, &e, p) // want "coercing `\\*any`" "coercing `\\*any`"

	g([]any{p}...) // want "coercing `\\*any`"

	fmt.Println(p) // want "coercing `\\*any` to `any`"

	var q Ptr = p
	f(q) // want "coercing `Ptr` to `any`"

	var s fmt.Stringer
	f(&s)

	n := 1
	f(&n)

	f(p) //nolint:anyref
}

func sites(ch chan any, m map[string]any) any {
	var e any
	p := &e

	var x any = p // want "coercing `\\*any` to `any`"

	x = &e // want "coercing `\\*any` to `any`"

	m["k"] = p // want "coercing `\\*any` to `any`"

	ch <- p // want "coercing `\\*any` to `any`"

	_ = []any{p} // want "coercing `\\*any` to `any`"

	_ = map[any]int{&e: 1} // want "coercing `\\*any` to `any`"

	_ = Value{V: &e} // want "coercing `\\*any` to `any`"

	_ = x == p // want "coercing `\\*any` to `any`"

	_ = append([]any{}, p) // want "coercing `\\*any` to `any`"

	_ = func() any { return p } // want "coercing `\\*any` to `any`"

	var i interface{} = p // want "coercing `\\*any` to `interface"

	var em Empty = p // want "coercing `\\*any` to `Empty` rather than dereferencing to the `any` inside"

	_, _ = i, em

	return p // want "coercing `\\*any` to `any`"
}

func switches(x any, m map[any]int) int {
	var e any
	p := &e

	switch x {
	case p: // want "coercing `\\*any` to `any`"
		return 1
	}

	return m[p] // want "coercing `\\*any` to `any`"
}

func ignored(b []byte) error {
	var e any

	return json.Unmarshal(b, &e)
}

func generic[T any](x *T) {
	f(x)
}

//nolint:anyref
func suppressed() {
	var e any
	f(&e)
}
