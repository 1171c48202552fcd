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

package gclplugin_test

import (
	"testing"

	"github.com/golangci/plugin-module-register/register"

	. "fillmore-labs.com/anyref/gclplugin"
)

func TestPlugin(t *testing.T) {
	t.Parallel()

	p, err := New(map[string]any{"compare": false, "ignore-funcs": []any{"example.com/decode.Into"}})
	if err != nil {
		t.Fatalf("Can't create plugin: %v", err)
	}

	if got, want := p.GetLoadMode(), register.LoadModeTypesInfo; got != want {
		t.Errorf("Got load mode %q, want %q", got, want)
	}

	analyzers, err := p.BuildAnalyzers()
	if err != nil {
		t.Fatalf("Can't build analyzers: %v", err)
	}

	if len(analyzers) != 1 || analyzers[0].Name != "anyref" {
		t.Errorf("Got analyzers %v, want [anyref]", analyzers)
	}
}

func TestPluginInvalidSettings(t *testing.T) {
	t.Parallel()

	if _, err := New(map[string]any{"compare": "sometimes"}); err == nil {
		t.Error("Expected error for invalid settings")
	}
}
