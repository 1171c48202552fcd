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
	"log/slog"

	"fillmore-labs.com/anyref/internal/config"
	"fillmore-labs.com/anyref/internal/run"
)

// Option configures specific behavior of a [New] anyref analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
// Options are applied in order, later options override earlier ones.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithFix is an [Option] to configure whether diagnostics carry suggested fixes.
func WithFix(fix bool) Option { return fixOption{fix: fix} }

type fixOption struct{ fix bool }

func (o fixOption) apply(r *run.Options) {
	r.Behavior.Set(config.SuggestFixes, o.fix)
}

func (o fixOption) LogAttr() slog.Attr {
	return slog.Bool("fix", o.fix)
}

// WithStandardIgnores is an [Option] to configure whether arguments of standard
// out-parameter functions, like encoding/json.Unmarshal, are exempt.
func WithStandardIgnores(ignore bool) Option { return standardIgnoresOption{ignore: ignore} }

type standardIgnoresOption struct{ ignore bool }

func (o standardIgnoresOption) apply(r *run.Options) {
	r.Behavior.Set(config.StandardIgnores, o.ignore)
}

func (o standardIgnoresOption) LogAttr() slog.Attr {
	return slog.Bool("standard-ignores", o.ignore)
}

// WithCall is an [Option] to configure whether function call arguments are checked.
func WithCall(check bool) Option { return siteOption{"call", config.CallSite, check} }

// WithAssign is an [Option] to configure whether assignments are checked.
func WithAssign(check bool) Option { return siteOption{"assign", config.AssignSite, check} }

// WithReturn is an [Option] to configure whether returned values are checked.
func WithReturn(check bool) Option { return siteOption{"return", config.ReturnSite, check} }

// WithComposite is an [Option] to configure whether composite literal elements are checked.
func WithComposite(check bool) Option { return siteOption{"composite", config.CompositeSite, check} }

// WithSend is an [Option] to configure whether channel sends are checked.
func WithSend(check bool) Option { return siteOption{"send", config.SendSite, check} }

// WithCompare is an [Option] to configure whether comparisons with interface values,
// switch cases and map index keys are checked.
func WithCompare(check bool) Option { return siteOption{"compare", config.CompareSite, check} }

type siteOption struct {
	name  string
	site  config.SiteFlags
	check bool
}

func (o siteOption) apply(r *run.Options) {
	r.Sites.Set(o.site, o.check)
}

func (o siteOption) LogAttr() slog.Attr {
	return slog.Bool(o.name, o.check)
}

// WithIgnoreFuncs is an [Option] adding glob patterns of functions whose arguments are not checked,
// like "example.com/decode.Into" or "(example.com/decode.Decoder).*".
func WithIgnoreFuncs(patterns ...string) Option { return ignoreFuncsOption{patterns: patterns} }

type ignoreFuncsOption struct{ patterns []string }

func (o ignoreFuncsOption) apply(r *run.Options) {
	r.IgnoreFuncs = append(r.IgnoreFuncs, o.patterns...)
}

func (o ignoreFuncsOption) LogAttr() slog.Attr {
	return slog.Any("ignore-funcs", o.patterns)
}

// WithConfigFile is an [Option] applying a TOML configuration file.
// Errors reading the file are reported when the analyzer runs.
func WithConfigFile(path string) Option { return configFileOption{path: path} }

type configFileOption struct{ path string }

func (o configFileOption) apply(r *run.Options) {
	if err := r.LoadConfig(o.path); err != nil {
		r.AddError(err)
	}
}

func (o configFileOption) LogAttr() slog.Attr {
	return slog.String("config", o.path)
}
