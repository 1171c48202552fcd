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

// Classifier decides whether a type is the universal any-capability object.
type Classifier[T comparable] struct {
	env    typeenv.Env[T]
	marker string
}

// NewClassifier returns a [Classifier] matching capabilities identified by marker.
func NewClassifier[T comparable](env typeenv.Env[T], marker string) Classifier[T] {
	return Classifier[T]{env: env, marker: marker}
}

// IsAny reports whether t is a dynamic object whose capability set contains the
// unquantified marker capability.
func (c Classifier[T]) IsAny(t T) bool {
	if c.marker == "" || c.env.Kind(t) != typeenv.KindDynamic {
		return false
	}

	for capability := range c.env.Capabilities(t) {
		if capability.Bound {
			continue
		}

		if capability.ID == c.marker {
			return true
		}
	}

	return false
}
