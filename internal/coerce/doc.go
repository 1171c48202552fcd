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

// Package coerce detects references that are implicitly converted to a
// reference to the universal any-capability object while they could have been
// dereferenced to reach such an object directly.
//
// In Go terms:
//
//	var e any = 42
//	fmt.Println(&e) // the *any is boxed, the 42 is not printed
//
// The checks run against an abstract [typeenv.Env], so the decision rule is
// independent of the host type checker.
package coerce
