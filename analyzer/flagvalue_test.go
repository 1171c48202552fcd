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

package analyzer_test

import (
	"flag"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	. "fillmore-labs.com/anyref/analyzer"
	"fillmore-labs.com/anyref/internal/config"
	"fillmore-labs.com/anyref/internal/run"
)

func TestFlagValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial config.SiteFlags
		args    []string
		want    bool
	}{
		{
			name:    "Enable",
			initial: config.SendSite,
			args:    []string{"-compare"},
			want:    true,
		},
		{
			name:    "Disable",
			initial: config.CompareSite,
			args:    []string{"-compare=false"},
			want:    false,
		},
		{
			name:    "Off",
			initial: config.CompareSite,
			args:    []string{"-compare=off"},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var flags config.Sites
			flags.Set(tt.initial, true)

			fs := flag.NewFlagSet("test", flag.ContinueOnError)

			const value = config.CompareSite
			fv := NewSiteValue(&flags, value)
			fs.Var(fv, "compare", "check comparisons")

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if fv.Get() != tt.want {
				t.Errorf("Flag get = %v, want %v", fv.Get(), tt.want)
			}

			if flags.Enabled(value) != tt.want {
				t.Errorf("CompareSite enabled = %v, want %v", flags.Enabled(value), tt.want)
			}
		})
	}
}

func TestFlagValueInvalid(t *testing.T) {
	t.Parallel()

	behavior := config.DefaultBehavior()

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(&strings.Builder{})
	fs.Var(NewBehaviorValue(&behavior, config.SuggestFixes), "fix-suggestions", "suggest fixes")

	if err := fs.Parse([]string{"-fix-suggestions=maybe"}); err == nil {
		t.Error("Expected parse error")
	}

	if !behavior.Enabled(config.SuggestFixes) {
		t.Error("Expected SuggestFixes to stay enabled")
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	var flags config.Sites
	flags.Set(config.CallSite, true)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	fv := NewSiteValue(&flags, config.CallSite)
	fs.Var(fv, "call", "check function call arguments")

	const expectedUsage = `
  -call
    	check function call arguments (default true)
`

	var out strings.Builder
	fs.SetOutput(&out)
	fs.Usage()

	if got, want := out.String(), expectedUsage; !strings.HasSuffix(got, want) {
		t.Errorf("Usage() = %q, want suffix %q", got, want)
	}
}

func TestPatternsValue(t *testing.T) {
	t.Parallel()

	var patterns []string

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(NewPatternsValue(&patterns), "ignore-funcs", "ignored functions")

	args := []string{"-ignore-funcs", "a.F, b.G", "-ignore-funcs=(c.T).*"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if want := []string{"a.F", "b.G", "(c.T).*"}; !slices.Equal(patterns, want) {
		t.Errorf("Got patterns %q, want %q", patterns, want)
	}
}

func TestConfigValue(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "anyref.toml")
	writeFile(t, path, "generated = true\n\n[sites]\ncall = false\n")

	tests := []struct {
		name          string
		args          []string
		wantCall      bool
		wantGenerated bool
	}{
		{
			name:          "File",
			args:          []string{"-config", path},
			wantCall:      false,
			wantGenerated: true,
		},
		{
			name:          "FlagAfterFile",
			args:          []string{"-config", path, "-call"},
			wantCall:      true,
			wantGenerated: true,
		},
		{
			name:          "FlagBeforeFile",
			args:          []string{"-call", "-generated=false", "-config", path},
			wantCall:      false,
			wantGenerated: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := run.DefaultOptions()

			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			fs.Var(NewSiteValue(&r.Sites, config.CallSite), "call", "check function call arguments")
			fs.Var(NewBehaviorValue(&r.Behavior, config.IncludeGenerated), "generated", "check generated files")
			fs.Var(NewConfigValue(r), "config", "configuration file")

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if got := r.Sites.Enabled(config.CallSite); got != tt.wantCall {
				t.Errorf("Got call %t, want %t", got, tt.wantCall)
			}

			if got := r.Behavior.Enabled(config.IncludeGenerated); got != tt.wantGenerated {
				t.Errorf("Got generated %t, want %t", got, tt.wantGenerated)
			}
		})
	}
}

func TestConfigValueMissing(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(&strings.Builder{})
	fs.Var(NewConfigValue(run.DefaultOptions()), "config", "configuration file")

	if err := fs.Parse([]string{"-config", filepath.Join(t.TempDir(), "missing.toml")}); err == nil {
		t.Error("Expected error for missing configuration file")
	}
}
