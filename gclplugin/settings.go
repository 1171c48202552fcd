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

package gclplugin

import anyref "fillmore-labs.com/anyref/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Call enables checks of function call arguments.
	Call *bool `json:"call,omitzero"`
	// Assign enables checks of assignments.
	Assign *bool `json:"assign,omitzero"`
	// Return enables checks of returned values.
	Return *bool `json:"return,omitzero"`
	// Composite enables checks of composite literal elements.
	Composite *bool `json:"composite,omitzero"`
	// Send enables checks of channel sends.
	Send *bool `json:"send,omitzero"`
	// Compare enables checks of comparisons with interface values.
	Compare *bool `json:"compare,omitzero"`
	// Fix enables suggested fixes.
	Fix *bool `json:"fix,omitzero"`
	// StandardIgnores exempts standard out-parameter functions like encoding/json.Unmarshal.
	StandardIgnores *bool `json:"standard-ignores,omitzero"`
	// IgnoreFuncs lists glob patterns of functions whose arguments are not checked.
	IgnoreFuncs []string `json:"ignore-funcs,omitzero"`
	// Config names a TOML configuration file, applied before the other settings.
	Config *string `json:"config,omitzero"`
}

// Options converts [Settings] into a list of [anyref.Option] for the anyref analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []anyref.Option {
	var opts []anyref.Option

	opts = appendOption(opts, s.Config, anyref.WithConfigFile)
	opts = appendOption(opts, s.Call, anyref.WithCall)
	opts = appendOption(opts, s.Assign, anyref.WithAssign)
	opts = appendOption(opts, s.Return, anyref.WithReturn)
	opts = appendOption(opts, s.Composite, anyref.WithComposite)
	opts = appendOption(opts, s.Send, anyref.WithSend)
	opts = appendOption(opts, s.Compare, anyref.WithCompare)
	opts = appendOption(opts, s.Fix, anyref.WithFix)
	opts = appendOption(opts, s.StandardIgnores, anyref.WithStandardIgnores)

	if len(s.IgnoreFuncs) > 0 {
		opts = append(opts, anyref.WithIgnoreFuncs(s.IgnoreFuncs...))
	}

	return opts
}

// appendOption appends a non-nil setting to a [anyref.Option] list.
func appendOption[T any](opts []anyref.Option, value *T, constructor func(T) anyref.Option) []anyref.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
