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

package goenv_test

import (
	"go/ast"
	"go/token"
	"go/types"
	"slices"
	"testing"

	"fillmore-labs.com/anyref/internal/coerce"
	. "fillmore-labs.com/anyref/internal/goenv"
	"fillmore-labs.com/anyref/internal/testsource"
	"fillmore-labs.com/anyref/internal/typeenv"
)

const declarations = `
	type (
		Value interface{}
		P     *P
		Ptr   *any
	)

	var (
		e   any
		p   = &e
		pp  = &p
		v   Value
		err error
		n   int
		rp  P
		np  Ptr
	)

	_, _, _, _, _, _, _, _ = e, p, pp, v, err, n, rp, np
`

func varTypes(tb testing.TB, src string) (*types.Package, map[string]types.Type) {
	tb.Helper()

	fset, f, _, _ := testsource.Parse(tb, src)
	pkg, info := testsource.Check(tb, fset, f)

	vars := make(map[string]types.Type)

	for id, obj := range info.Defs {
		if v, ok := obj.(*types.Var); ok {
			vars[id.Name] = v.Type()
		}
	}

	return pkg, vars
}

func TestKind(t *testing.T) {
	t.Parallel()

	pkg, vars := varTypes(t, declarations)
	env := New(pkg)

	tests := []struct {
		name         string
		wantKind     typeenv.Kind
		wantReferent typeenv.Kind
	}{
		{"e", typeenv.KindRef, typeenv.KindDynamic},
		{"p", typeenv.KindRef, typeenv.KindRef},
		{"pp", typeenv.KindRef, typeenv.KindRef},
		{"v", typeenv.KindRef, typeenv.KindDynamic},
		{"err", typeenv.KindRef, typeenv.KindDynamic},
		{"n", typeenv.KindOther, typeenv.KindOther},
		{"rp", typeenv.KindRef, typeenv.KindRef},
		{"np", typeenv.KindRef, typeenv.KindRef},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			typ := Of(vars[tt.name])

			if got := env.Kind(typ); got != tt.wantKind {
				t.Errorf("Kind(%s) = %v, want %v", env.String(typ), got, tt.wantKind)
			}

			referent, ok := env.Referent(typ)
			if got := env.Kind(referent); got != tt.wantReferent {
				t.Errorf("Kind(Referent(%s)) = %v (%t), want %v", env.String(typ), got, ok, tt.wantReferent)
			}
		})
	}
}

func TestIsAny(t *testing.T) {
	t.Parallel()

	pkg, vars := varTypes(t, declarations)
	env := New(pkg)
	c := coerce.NewClassifier[Type](env, Marker)

	tests := []struct {
		name string
		want bool
	}{
		{"e", true},
		{"v", true},
		{"err", false},
		{"n", false},
		{"p", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			typ := Of(vars[tt.name])

			if c.IsAny(typ) {
				t.Errorf("IsAny(%s) = true, want false for the reference", env.String(typ))
			}

			referent, _ := env.Referent(typ)
			if got := c.IsAny(referent); got != tt.want {
				t.Errorf("IsAny(Referent(%s)) = %t, want %t", env.String(typ), got, tt.want)
			}
		})
	}
}

func TestTypeParam(t *testing.T) {
	t.Parallel()

	anyType := types.Universe.Lookup("any").Type()
	errorType := types.Universe.Lookup("error").Type()

	newTypeParam := func(name string, constraint types.Type) types.Type {
		return types.NewTypeParam(types.NewTypeName(token.NoPos, nil, name, nil), constraint)
	}

	env := New(nil)
	c := coerce.NewClassifier[Type](env, Marker)

	tests := []struct {
		name       string
		constraint types.Type
		wantIDs    []string
	}{
		{"T", anyType, []string{Marker}},
		{"E", errorType, []string{"Error"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			typ := Of(newTypeParam(tt.name, tt.constraint))

			if got := env.Kind(typ); got != typeenv.KindDynamic {
				t.Fatalf("Kind(%s) = %v, want %v", tt.name, got, typeenv.KindDynamic)
			}

			var ids []string

			for capability := range env.Capabilities(typ) {
				if !capability.Bound {
					t.Errorf("Capability %q of %s is not bound", capability.ID, tt.name)
				}

				ids = append(ids, capability.ID)
			}

			if !slices.Equal(ids, tt.wantIDs) {
				t.Errorf("Capabilities(%s) = %v, want %v", tt.name, ids, tt.wantIDs)
			}

			if c.IsAny(typ) {
				t.Errorf("IsAny(%s) = true, want false", tt.name)
			}

			if _, ok := env.Deref(typ); ok {
				t.Errorf("Deref(%s) succeeded", tt.name)
			}
		})
	}
}

func TestDerefChain(t *testing.T) {
	t.Parallel()

	pkg, vars := varTypes(t, declarations)
	env := New(pkg)

	tests := []struct {
		name      string
		wantSteps int // 0 for an empty chain
		wantLast  string
	}{
		{"e", 1, "any"},
		{"p", 2, "any"},
		{"pp", 3, "any"},
		{"np", 2, "any"},
		{"rp", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			steps, last, ok := coerce.Last(coerce.DerefChain[Type](env, Of(vars[tt.name])))
			if got, want := ok, tt.wantSteps > 0; got != want {
				t.Fatalf("Got non-empty chain = %t for %s, want %t", got, tt.name, want)
			}

			if !ok {
				return
			}

			if steps != tt.wantSteps {
				t.Errorf("Got %d steps for %s, want %d", steps, tt.name, tt.wantSteps)
			}

			if got := env.String(last); got != tt.wantLast {
				t.Errorf("Got last %s for %s, want %s", got, tt.name, tt.wantLast)
			}
		})
	}
}

type exprSource struct{ root ast.Node }

func (s exprSource) Snippet(span typeenv.Span) (text string, ok bool) {
	ast.Inspect(s.root, func(n ast.Node) bool {
		if e, isExpr := n.(ast.Expr); isExpr && SpanOf(e) == span {
			text, ok = types.ExprString(e), true
		}

		return !ok
	})

	return text, ok
}

func TestCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expr     string
		wantText string // empty for no report
	}{
		{"address of any", "&e", "e"},
		{"pointer to any", "p", "*p"},
		{"parenthesized address of any", "(&e)", "e"},
		{"address of pointer to any", "&p", "*p"},
		{"pointer to pointer to any", "pp", "**pp"},
		{"named pointer", "np", "*np"},
		{"address of named empty interface", "&v", "v"},
		{"any", "e", ""},
		{"dereferenced", "*p", ""},
		{"address of dereferenced", "&*p", "*p"},
		{"address of int", "&n", ""},
		{"address of error", "&err", ""},
		{"recursive pointer", "rp", ""},
		{"nil", "nil", ""},
		{"explicit conversion", "any(&e)", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := declarations + "\n\tvar x any = " + tt.expr + "\n\t_ = x\n"

			fset, f, _, body := testsource.Parse(t, src)
			pkg, info := testsource.Check(t, fset, f)

			var spec *ast.ValueSpec

			for c := range body.Preorder((*ast.ValueSpec)(nil)) {
				if s := c.Node().(*ast.ValueSpec); s.Names[0].Name == "x" {
					spec = s
				}
			}

			if spec == nil {
				t.Fatal("Declaration of x not found")
			}

			env := New(pkg)
			d := coerce.NewDetector[Type](env, Marker)
			b := coerce.NewBuilder[Type](env, coerce.GoNotation)

			e := NewExpr(info, spec.Values[0], info.TypeOf(spec.Type))

			finding, ok := d.Check(e)
			if got, want := ok, tt.wantText != ""; got != want {
				t.Fatalf("Check(%s) = %t, want %t", tt.expr, got, want)
			}

			if !ok {
				return
			}

			s := b.Suggest(finding, exprSource{spec})
			if s.NewText != tt.wantText {
				t.Errorf("Suggest(%s) = %q, want %q", tt.expr, s.NewText, tt.wantText)
			}
		})
	}
}
