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

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrUnknownKey is returned for configuration keys that are not recognized.
var ErrUnknownKey = errors.New("unknown configuration key")

// File is the content of a TOML configuration file.
//
//	generated = false
//	fix = true
//	standard-ignores = true
//	ignore-funcs = ["example.com/decode.Into"]
//
//	[sites]
//	compare = false
type File struct {
	Generated       *bool     `toml:"generated"`
	Fix             *bool     `toml:"fix"`
	StandardIgnores *bool     `toml:"standard-ignores"`
	IgnoreFuncs     []string  `toml:"ignore-funcs"`
	Sites           SiteTable `toml:"sites"`
}

// SiteTable enables or disables conversion sites.
type SiteTable struct {
	Call      *bool `toml:"call"`
	Assign    *bool `toml:"assign"`
	Return    *bool `toml:"return"`
	Composite *bool `toml:"composite"`
	Send      *bool `toml:"send"`
	Compare   *bool `toml:"compare"`
}

// Load reads the configuration file at path.
func Load(path string) (*File, error) {
	var f File

	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("can't read configuration %q: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}

		return nil, fmt.Errorf("configuration %q: %w: %s", path, ErrUnknownKey, strings.Join(keys, ", "))
	}

	return &f, nil
}

// Apply sets the sites and behavior present in the file.
func (f *File) Apply(sites *Sites, behavior *Behavior) {
	sites.SetPtr(CallSite, f.Sites.Call)
	sites.SetPtr(AssignSite, f.Sites.Assign)
	sites.SetPtr(ReturnSite, f.Sites.Return)
	sites.SetPtr(CompositeSite, f.Sites.Composite)
	sites.SetPtr(SendSite, f.Sites.Send)
	sites.SetPtr(CompareSite, f.Sites.Compare)

	behavior.SetPtr(IncludeGenerated, f.Generated)
	behavior.SetPtr(SuggestFixes, f.Fix)
	behavior.SetPtr(StandardIgnores, f.StandardIgnores)
}
