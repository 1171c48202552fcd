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
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/anyref/internal/astutil"
	"fillmore-labs.com/anyref/internal/coerce"
	"fillmore-labs.com/anyref/internal/config"
	"fillmore-labs.com/anyref/internal/goenv"
	"fillmore-labs.com/anyref/internal/report"
	"fillmore-labs.com/anyref/internal/site"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the anyref analyzer.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("anyref: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	if r.Err != nil {
		return nil, fmt.Errorf("anyref: %w", r.Err)
	}

	ignore, err := r.Ignore()
	if err != nil {
		return nil, fmt.Errorf("anyref: %w", err)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "AnyRef")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	env := goenv.New(p.Pkg)
	c := checker{
		pass:      p,
		detector:  coerce.NewDetector[goenv.Type](env, goenv.Marker),
		builder:   coerce.NewBuilder[goenv.Type](env, coerce.GoNotation),
		collector: site.New(p.TypesInfo, r.Sites, ignore),
	}

	fix := r.Behavior.Enabled(config.SuggestFixes)

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if astutil.DocHasNoLint(file.Doc) {
			continue
		}

		c.checkFile(ctx, f, report.New(p, currentFile, fix))
	}

	return nil, nil
}

type checker struct {
	pass      *analysis.Pass
	detector  coerce.Detector[goenv.Type]
	builder   coerce.Builder[goenv.Type]
	collector site.Collector
}

func (c checker) checkFile(ctx context.Context, f inspector.Cursor, reporter *report.Reporter) {
	defer trace.StartRegion(ctx, "File").End()

	for decl := range f.Children() {
		// Skip declarations with nolint comment
		switch d := decl.Node().(type) {
		case *ast.FuncDecl:
			if astutil.DocHasNoLint(d.Doc) {
				continue
			}

		case *ast.GenDecl:
			if astutil.DocHasNoLint(d.Doc) {
				continue
			}
		}

		for s := range c.collector.Sites(decl) {
			expr := goenv.NewExpr(c.pass.TypesInfo, s.Expr, s.Target)

			finding, ok := c.detector.Check(expr)
			if !ok {
				continue
			}

			src := reporter.Source().Nodes(c.pass.Fset, expr.Nodes()...)
			reporter.Report(ctx, c.builder.Suggest(finding, src))
		}
	}
}
