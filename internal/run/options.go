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

package run

import (
	"errors"
	"slices"
	"sync"

	"fillmore-labs.com/anyref/internal/config"
	"fillmore-labs.com/anyref/internal/funcname"
)

// Options represent configuration options for the anyref analyzer.
type Options struct {
	// Sites represent the conversion sites to be checked.
	Sites config.Sites

	// Behavior holds behavioral options.
	Behavior config.Behavior

	// IgnoreFuncs holds patterns of functions whose arguments are not checked.
	IgnoreFuncs []string

	// Err is a configuration error reported when the analyzer runs.
	Err error

	ignore func() (funcname.Matcher, error)
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	r := &Options{
		Sites:    config.DefaultSites(),
		Behavior: config.DefaultBehavior(),
	}

	r.ignore = sync.OnceValues(r.compileIgnore)

	return r
}

// LoadConfig applies the configuration file at path.
func (r *Options) LoadConfig(path string) error {
	f, err := config.Load(path)
	if err != nil {
		return err
	}

	f.Apply(&r.Sites, &r.Behavior)
	r.IgnoreFuncs = append(r.IgnoreFuncs, f.IgnoreFuncs...)

	return nil
}

// AddError records a configuration error.
func (r *Options) AddError(err error) {
	r.Err = errors.Join(r.Err, err)
}

// Ignore returns the [funcname.Matcher] of functions to ignore.
// It is compiled once, on first use.
func (r *Options) Ignore() (funcname.Matcher, error) {
	if r.ignore == nil {
		return r.compileIgnore()
	}

	return r.ignore()
}

func (r *Options) compileIgnore() (funcname.Matcher, error) {
	var patterns []string
	if r.Behavior.Enabled(config.StandardIgnores) {
		patterns = slices.Clone(funcname.DefaultIgnore)
	}

	patterns = append(patterns, r.IgnoreFuncs...)

	return funcname.Compile(patterns)
}
