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
	"iter"

	"fillmore-labs.com/anyref/internal/typeenv"
)

// MaxDerefSteps bounds the length of a dereference chain.
const MaxDerefSteps = 128

// DerefChain yields the types reached by successive indirection removals from t,
// indexed from 0. The start type itself is not part of the chain.
//
// The chain ends when no step applies, when a step returns its input or after
// [MaxDerefSteps] steps.
func DerefChain[T comparable](env typeenv.Env[T], t T) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		current := t
		for i := range MaxDerefSteps {
			next, ok := env.Deref(current)
			if !ok || next == current {
				return
			}

			if !yield(i, next) {
				return
			}

			current = next
		}
	}
}

// Last consumes chain and returns its final element together with the number of
// steps taken. ok is false for an empty chain.
func Last[T any](chain iter.Seq2[int, T]) (steps int, last T, ok bool) {
	for i, t := range chain {
		steps, last, ok = i+1, t, true
	}

	return steps, last, ok
}
