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

package funcname

import (
	"errors"
	"fmt"
	"go/types"

	"github.com/gobwas/glob"
)

// ErrInvalidPattern is returned for patterns that don't compile.
var ErrInvalidPattern = errors.New("invalid function pattern")

// DefaultIgnore lists functions that take a pointer through an `any` parameter
// to store a result.
var DefaultIgnore = []string{
	"encoding/json.Unmarshal",
	"(encoding/json.Decoder).Decode",
	"encoding/xml.Unmarshal",
	"(encoding/xml.Decoder).Decode*",
	"(encoding/gob.Decoder).Decode",
	"encoding/binary.Read",
	"encoding/asn1.Unmarshal*",
	"errors.As",
	"fmt.{Scan,Sscan,Fscan}*",
	"(database/sql.Row).Scan",
	"(database/sql.Rows).Scan",
	"reflect.ValueOf",
	"gopkg.in/yaml.v*.Unmarshal",
	"(gopkg.in/yaml.v*.{Decoder,Node}).Decode",
	"github.com/BurntSushi/toml.{Decode,DecodeFile,DecodeFS,Unmarshal}",
	"(github.com/BurntSushi/toml.{Decoder,MetaData}).{Decode,PrimitiveDecode}",
	"github.com/vmihailenco/msgpack/v5.Unmarshal",
	"(github.com/vmihailenco/msgpack/v5.Decoder).Decode",
}

// Matcher matches function names against glob patterns.
type Matcher struct {
	globs []glob.Glob
}

// Compile returns a [Matcher] for patterns.
func Compile(patterns []string) (Matcher, error) {
	globs := make([]glob.Glob, 0, len(patterns))

	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return Matcher{}, fmt.Errorf("%w %q: %w", ErrInvalidPattern, p, err)
		}

		globs = append(globs, g)
	}

	return Matcher{globs: globs}, nil
}

// Match reports whether name matches any pattern.
func (m Matcher) Match(name FuncName) bool {
	if len(m.globs) == 0 {
		return false
	}

	s := name.String()
	for _, g := range m.globs {
		if g.Match(s) {
			return true
		}
	}

	return false
}

// MatchFunc reports whether fun matches any pattern. A nil fun never matches.
func (m Matcher) MatchFunc(fun *types.Func) bool {
	if fun == nil {
		return false
	}

	return m.Match(FuncNameOf(fun))
}
