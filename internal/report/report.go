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

// Package report turns suggestions into analyzer diagnostics.
package report

import (
	"context"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/anyref/internal/astutil"
	"fillmore-labs.com/anyref/internal/coerce"
	"fillmore-labs.com/anyref/internal/typeenv"
)

// Reporter emits diagnostics for a single file.
type Reporter struct {
	pass        *analysis.Pass
	currentFile astutil.CurrentFile
	source      *Source

	// fix enables suggested fixes.
	fix bool

	// edits holds the ranges of suggested fixes already reported.
	edits []typeenv.Span
}

// New creates a [Reporter] for the current file. Generated files never get suggested fixes.
func New(p *analysis.Pass, currentFile astutil.CurrentFile, fix bool) *Reporter {
	return &Reporter{
		pass:        p,
		currentFile: currentFile,
		source:      NewSource(p.ReadFile, currentFile),
		fix:         fix && !currentFile.Generated(),
	}
}

// Source returns the source text of the current file.
func (r *Reporter) Source() *Source {
	return r.source
}

// Report emits a diagnostic for s, unless the line carries a nolint comment.
//
// A suggested fix is only attached when it does not overlap a fix reported earlier,
// so that all fixes of a file can be applied together.
func (r *Reporter) Report(ctx context.Context, s coerce.Suggestion) bool {
	defer trace.StartRegion(ctx, "Report").End()

	if !s.Span.Valid() {
		astutil.InternalError(r.pass, s.Edit, "Diagnostic without valid range: %s", s.Message)

		return false
	}

	if r.currentFile.NoLintComment(s.Span.Pos()) {
		return false
	}

	diagnostic := analysis.Diagnostic{
		Pos:     s.Span.Pos(),
		End:     s.Span.End(),
		Message: s.Message,
	}

	if r.fix && s.Edit.Valid() && !r.overlaps(s.Edit) {
		r.edits = append(r.edits, s.Edit)

		diagnostic.SuggestedFixes = []analysis.SuggestedFix{{
			Message: s.FixMessage,
			TextEdits: []analysis.TextEdit{{
				Pos:     s.Edit.Pos(),
				End:     s.Edit.End(),
				NewText: []byte(s.NewText),
			}},
		}}
	}

	r.pass.Report(diagnostic)

	return true
}

func (r *Reporter) overlaps(span typeenv.Span) bool {
	for _, e := range r.edits {
		if span.Start < e.Stop && e.Start < span.Stop {
			return true
		}
	}

	return false
}
