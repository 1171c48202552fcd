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

// Package site finds the expressions a Go program implicitly converts to an
// interface type, together with the type they are converted to.
package site

import (
	"go/ast"
	"go/token"
	"go/types"
	"iter"

	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"

	"fillmore-labs.com/anyref/internal/config"
	"fillmore-labs.com/anyref/internal/funcname"
)

// Site is an expression assigned to a value of interface type.
type Site struct {
	Expr   ast.Expr
	Target types.Type
	Kind   config.SiteFlags
}

// Collector finds conversion sites.
type Collector struct {
	info   *types.Info
	sites  config.Sites
	ignore funcname.Matcher
}

// New returns a [Collector] for the enabled sites, skipping arguments of calls
// to functions matched by ignore.
func New(info *types.Info, sites config.Sites, ignore funcname.Matcher) Collector {
	return Collector{info: info, sites: sites, ignore: ignore}
}

var nodeTypes = []ast.Node{
	(*ast.CallExpr)(nil),
	(*ast.AssignStmt)(nil),
	(*ast.ValueSpec)(nil),
	(*ast.ReturnStmt)(nil),
	(*ast.CompositeLit)(nil),
	(*ast.SendStmt)(nil),
	(*ast.BinaryExpr)(nil),
	(*ast.SwitchStmt)(nil),
	(*ast.IndexExpr)(nil),
}

// Sites yields all conversion sites below root.
func (c Collector) Sites(root inspector.Cursor) iter.Seq[Site] {
	return func(yield func(Site) bool) {
		emit := func(kind config.SiteFlags, expr ast.Expr, target types.Type) bool {
			if expr == nil || !isInterface(target) {
				return true
			}

			return yield(Site{Expr: expr, Target: target, Kind: kind})
		}

		for cur := range root.Preorder(nodeTypes...) {
			var proceed bool

			switch n := cur.Node().(type) {
			case *ast.CallExpr:
				proceed = !c.sites.Enabled(config.CallSite) || c.call(n, emit)

			case *ast.AssignStmt:
				proceed = !c.sites.Enabled(config.AssignSite) || c.assign(n, emit)

			case *ast.ValueSpec:
				proceed = !c.sites.Enabled(config.AssignSite) || c.valueSpec(n, emit)

			case *ast.ReturnStmt:
				proceed = !c.sites.Enabled(config.ReturnSite) || c.returns(cur, n, emit)

			case *ast.CompositeLit:
				proceed = !c.sites.Enabled(config.CompositeSite) || c.composite(n, emit)

			case *ast.SendStmt:
				proceed = !c.sites.Enabled(config.SendSite) || c.send(n, emit)

			case *ast.BinaryExpr:
				proceed = !c.sites.Enabled(config.CompareSite) || c.compare(n, emit)

			case *ast.SwitchStmt:
				proceed = !c.sites.Enabled(config.CompareSite) || c.switchCases(n, emit)

			case *ast.IndexExpr:
				proceed = !c.sites.Enabled(config.CompareSite) || c.mapIndex(n, emit)

			default:
				proceed = true
			}

			if !proceed {
				return
			}
		}
	}
}

type emitFunc func(kind config.SiteFlags, expr ast.Expr, target types.Type) bool

func (c Collector) call(n *ast.CallExpr, emit emitFunc) bool {
	fun := c.info.Types[n.Fun]
	if fun.IsType() {
		return true // explicit conversion
	}

	if fun.IsBuiltin() {
		return c.builtin(n, emit)
	}

	if fun.Type == nil {
		return true
	}

	sig, ok := fun.Type.Underlying().(*types.Signature)
	if !ok {
		return true
	}

	if callee, ok := typeutil.Callee(c.info, n).(*types.Func); ok && c.ignore.MatchFunc(callee) {
		return true
	}

	params := sig.Params()
	if len(n.Args) == 1 && params.Len() > 1 {
		return true // f(g()) with a multi-value g
	}

	for i, arg := range n.Args {
		if !emit(config.CallSite, arg, paramType(sig, i, n.Ellipsis.IsValid())) {
			return false
		}
	}

	return true
}

// paramType returns the type argument i is assigned to.
func paramType(sig *types.Signature, i int, ellipsis bool) types.Type {
	params := sig.Params()

	last := params.Len() - 1
	if !sig.Variadic() || i < last {
		if i > last {
			return nil
		}

		return params.At(i).Type()
	}

	if ellipsis {
		return nil // the slice itself is passed
	}

	if s, ok := params.At(last).Type().Underlying().(*types.Slice); ok {
		return s.Elem()
	}

	return nil
}

func (c Collector) builtin(n *ast.CallExpr, emit emitFunc) bool {
	id, ok := ast.Unparen(n.Fun).(*ast.Ident)
	if !ok || id.Name != "append" || len(n.Args) < 2 || n.Ellipsis.IsValid() {
		return true
	}

	if _, ok := c.info.Uses[id].(*types.Builtin); !ok {
		return true
	}

	s, ok := coreType(c.info.TypeOf(n.Args[0])).(*types.Slice)
	if !ok {
		return true
	}

	for _, arg := range n.Args[1:] {
		if !emit(config.CallSite, arg, s.Elem()) {
			return false
		}
	}

	return true
}

func (c Collector) assign(n *ast.AssignStmt, emit emitFunc) bool {
	if n.Tok != token.ASSIGN || len(n.Lhs) != len(n.Rhs) {
		return true
	}

	for i, lhs := range n.Lhs {
		if id, ok := lhs.(*ast.Ident); ok && id.Name == "_" {
			continue
		}

		if !emit(config.AssignSite, n.Rhs[i], c.info.TypeOf(lhs)) {
			return false
		}
	}

	return true
}

func (c Collector) valueSpec(n *ast.ValueSpec, emit emitFunc) bool {
	if n.Type == nil || len(n.Names) != len(n.Values) {
		return true
	}

	target := c.info.TypeOf(n.Type)

	for _, value := range n.Values {
		if !emit(config.AssignSite, value, target) {
			return false
		}
	}

	return true
}

func (c Collector) returns(cur inspector.Cursor, n *ast.ReturnStmt, emit emitFunc) bool {
	sig := c.enclosingSignature(cur)
	if sig == nil || sig.Results().Len() != len(n.Results) {
		return true
	}

	for i, result := range n.Results {
		if !emit(config.ReturnSite, result, sig.Results().At(i).Type()) {
			return false
		}
	}

	return true
}

func (c Collector) enclosingSignature(cur inspector.Cursor) *types.Signature {
	for fun := range cur.Enclosing((*ast.FuncDecl)(nil), (*ast.FuncLit)(nil)) {
		var typ types.Type

		switch f := fun.Node().(type) {
		case *ast.FuncDecl:
			if obj := c.info.Defs[f.Name]; obj != nil {
				typ = obj.Type()
			}

		case *ast.FuncLit:
			typ = c.info.TypeOf(f)
		}

		sig, _ := typ.(*types.Signature)

		return sig
	}

	return nil
}

func (c Collector) composite(n *ast.CompositeLit, emit emitFunc) bool {
	switch t := coreType(c.info.TypeOf(n)).(type) {
	case *types.Slice:
		return elements(n.Elts, t.Elem(), emit)

	case *types.Array:
		return elements(n.Elts, t.Elem(), emit)

	case *types.Map:
		for _, elt := range n.Elts {
			kv, ok := elt.(*ast.KeyValueExpr)
			if !ok {
				continue
			}

			if !emit(config.CompositeSite, kv.Key, t.Key()) || !emit(config.CompositeSite, kv.Value, t.Elem()) {
				return false
			}
		}

	case *types.Struct:
		for i, elt := range n.Elts {
			if kv, ok := elt.(*ast.KeyValueExpr); ok {
				field, ok := kv.Key.(*ast.Ident)
				if !ok {
					continue
				}

				if obj, ok := c.info.Uses[field].(*types.Var); ok && !emit(config.CompositeSite, kv.Value, obj.Type()) {
					return false
				}

				continue
			}

			if i < t.NumFields() && !emit(config.CompositeSite, elt, t.Field(i).Type()) {
				return false
			}
		}
	}

	return true
}

func elements(elts []ast.Expr, elem types.Type, emit emitFunc) bool {
	for _, elt := range elts {
		if kv, ok := elt.(*ast.KeyValueExpr); ok {
			elt = kv.Value
		}

		if !emit(config.CompositeSite, elt, elem) {
			return false
		}
	}

	return true
}

func (c Collector) send(n *ast.SendStmt, emit emitFunc) bool {
	ch, ok := coreType(c.info.TypeOf(n.Chan)).(*types.Chan)
	if !ok {
		return true
	}

	return emit(config.SendSite, n.Value, ch.Elem())
}

func (c Collector) compare(n *ast.BinaryExpr, emit emitFunc) bool {
	if n.Op != token.EQL && n.Op != token.NEQ {
		return true
	}

	x, y := c.info.TypeOf(n.X), c.info.TypeOf(n.Y)

	switch {
	case isInterface(x) && !isInterface(y):
		return emit(config.CompareSite, n.Y, x)

	case isInterface(y) && !isInterface(x):
		return emit(config.CompareSite, n.X, y)

	default:
		return true
	}
}

// switchCases handles case expressions compared with the switch tag.
func (c Collector) switchCases(n *ast.SwitchStmt, emit emitFunc) bool {
	if n.Tag == nil || n.Body == nil {
		return true
	}

	tag := c.info.TypeOf(n.Tag)
	tagEmitted := false

	for _, stmt := range n.Body.List {
		clause, ok := stmt.(*ast.CaseClause)
		if !ok {
			continue
		}

		for _, expr := range clause.List {
			x := c.info.TypeOf(expr)

			switch {
			case isInterface(tag) && !isInterface(x):
				if !emit(config.CompareSite, expr, tag) {
					return false
				}

			case isInterface(x) && !isInterface(tag) && !tagEmitted:
				tagEmitted = true

				if !emit(config.CompareSite, n.Tag, x) {
					return false
				}
			}
		}
	}

	return true
}

// mapIndex handles keys of map index expressions.
func (c Collector) mapIndex(n *ast.IndexExpr, emit emitFunc) bool {
	if c.info.Types[n.X].IsType() {
		return true // generic type instantiation
	}

	m, ok := coreType(c.info.TypeOf(n.X)).(*types.Map)
	if !ok {
		return true
	}

	return emit(config.CompareSite, n.Index, m.Key())
}

func isInterface(t types.Type) bool {
	if t == nil {
		return false
	}

	if _, ok := types.Unalias(t).(*types.TypeParam); ok {
		return false
	}

	_, ok := t.Underlying().(*types.Interface)

	return ok
}

// coreType returns the underlying type of t, or the common underlying type of
// a type parameter's type set.
func coreType(t types.Type) types.Type {
	if t == nil {
		return nil
	}

	tp, ok := types.Unalias(t).(*types.TypeParam)
	if !ok {
		return t.Underlying()
	}

	iface, ok := tp.Constraint().Underlying().(*types.Interface)
	if !ok {
		return nil
	}

	var core types.Type

	for i := range iface.NumEmbeddeds() {
		u := iface.EmbeddedType(i).Underlying()
		if union, ok := u.(*types.Union); ok {
			if union.Len() != 1 {
				return nil
			}

			u = union.Term(0).Type().Underlying()
		}

		if _, ok := u.(*types.Interface); ok {
			continue
		}

		if core != nil && !types.Identical(core, u) {
			return nil
		}

		core = u
	}

	return core
}
