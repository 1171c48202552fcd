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

package analyzer

import (
	"flag"
	"strconv"
	"strings"

	"fillmore-labs.com/anyref/internal/config"
	"fillmore-labs.com/anyref/internal/run"
)

// NewSiteValue returns a boolean [flag.Value] enabling a conversion site.
func NewSiteValue(sites *config.Sites, site config.SiteFlags) flag.Getter {
	return boolValue[config.SiteFlags, *config.Sites]{flags: sites, value: site}
}

// NewBehaviorValue returns a boolean [flag.Value] setting a behavioral option.
func NewBehaviorValue(behavior *config.Behavior, option config.Config) flag.Getter {
	return boolValue[config.Config, *config.Behavior]{flags: behavior, value: option}
}

type boolValue[F any, B boolFlag[F]] struct {
	flags B
	value F
}

type boolFlag[F any] interface {
	comparable
	Set(flag F, value bool)
	Enabled(flag F) bool
}

// Set implements [flag.Value].
func (f boolValue[_, B]) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}

	f.flags.Set(f.value, b)

	return nil
}

// String implements [flag.Value].
func (f boolValue[_, B]) String() string {
	var null B
	if f.flags == null {
		return "false"
	}

	return strconv.FormatBool(f.flags.Enabled(f.value))
}

// Get implements [flag.Getter].
func (f boolValue[_, B]) Get() any {
	var null B
	if f.flags == null {
		return false
	}

	return f.flags.Enabled(f.value)
}

// IsBoolFlag returns true to indicate that this is a boolean [flag.Value].
func (f boolValue[_, _]) IsBoolFlag() bool { return true }

// parseBool returns the boolean value represented by the string.
func parseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "on", "On", "full", "Full":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "off", "Off":
		return false, nil
	}

	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}

// NewPatternsValue returns a [flag.Value] appending comma-separated patterns.
func NewPatternsValue(patterns *[]string) flag.Getter {
	return (*patternsValue)(patterns)
}

type patternsValue []string

// Set implements [flag.Value].
func (p *patternsValue) Set(s string) error {
	for pattern := range strings.SplitSeq(s, ",") {
		if pattern = strings.TrimSpace(pattern); pattern != "" {
			*p = append(*p, pattern)
		}
	}

	return nil
}

// String implements [flag.Value].
func (p *patternsValue) String() string {
	if p == nil {
		return ""
	}

	return strings.Join(*p, ",")
}

// Get implements [flag.Getter].
func (p *patternsValue) Get() any {
	if p == nil {
		return []string(nil)
	}

	return []string(*p)
}

// NewConfigValue returns a [flag.Value] applying a configuration file to r when set.
// Flags given before the file are overridden by it, flags given after override the file.
func NewConfigValue(r *run.Options) flag.Getter {
	return &configValue{options: r}
}

type configValue struct {
	options *run.Options
	path    string
}

// Set implements [flag.Value].
func (c *configValue) Set(path string) error {
	if err := c.options.LoadConfig(path); err != nil {
		return err
	}

	c.path = path

	return nil
}

// String implements [flag.Value].
func (c *configValue) String() string {
	if c == nil {
		return ""
	}

	return c.path
}

// Get implements [flag.Getter].
func (c *configValue) Get() any {
	if c == nil {
		return ""
	}

	return c.path
}
