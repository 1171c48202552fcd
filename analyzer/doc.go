// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

// Package analyzer implements the anyref static analysis pass.
//
// # Overview
//
// anyref detects pointers to interface values that are implicitly converted
// to an empty interface. Converting a *any to any stores the pointer, not the
// value it points to:
//
//	var err error = ...
//	var v any = err
//	p := &v
//
//	fmt.Println(p)   // prints an address
//	fmt.Println(*p)  // prints the error
//
// # Checked Sites
//
// Implicit conversions happen at
//
//   - function call arguments, including variadic arguments and append
//   - assignments and typed variable declarations
//   - return statements
//   - composite literal elements, map keys and struct fields
//   - channel sends
//   - comparisons with interface values, switch cases and map index keys
//
// Each kind of site can be disabled with a flag or an [Option].
//
// # Suggested Fixes
//
// The suggested fix dereferences the expression until the interface value is
// reached, so &v becomes v and a **any value pp becomes **pp. Fixes are not
// suggested in generated files.
//
// # Exceptions
//
// Functions that store a result through a pointer passed as any, like
// encoding/json.Unmarshal or (database/sql.Rows).Scan, are ignored. Further
// functions can be added as glob patterns with -ignore-funcs. Single lines,
// declarations and files are excluded with a //nolint:anyref comment.
//
// # Configuration File
//
// Settings can be read from a TOML file with -config:
//
//	generated = false
//	fix = true
//	standard-ignores = true
//	ignore-funcs = ["example.com/decode.Into"]
//
//	[sites]
//	compare = false
package analyzer
