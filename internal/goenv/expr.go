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

package goenv

import (
	"go/ast"
	"go/token"
	"go/types"

	"fillmore-labs.com/anyref/internal/typeenv"
)

// Expr is an expression implicitly converted to a target type.
type Expr struct {
	expr             ast.Expr
	declared, target types.Type
}

// NewExpr returns the [coerce.Expr] view of expr converted to target.
func NewExpr(info *types.Info, expr ast.Expr, target types.Type) Expr {
	return Expr{expr: expr, declared: info.TypeOf(expr), target: target}
}

// Declared implements [coerce.Expr].
func (e Expr) Declared() Type { return Of(e.declared) }

// Adjusted implements [coerce.Expr].
func (e Expr) Adjusted() Type { return Of(e.target) }

// Span implements [coerce.Expr].
func (e Expr) Span() typeenv.Span { return SpanOf(e.expr) }

// AddrOf implements [coerce.Expr].
func (e Expr) AddrOf() (typeenv.Span, bool) {
	x, ok := operand(e.expr)
	if !ok {
		return typeenv.Span{}, false
	}

	return SpanOf(x), true
}

// Nodes returns the expression and, for an address-of, its operand.
func (e Expr) Nodes() []ast.Node {
	if x, ok := operand(e.expr); ok {
		return []ast.Node{e.expr, x}
	}

	return []ast.Node{e.expr}
}

func operand(expr ast.Expr) (ast.Expr, bool) {
	u, ok := ast.Unparen(expr).(*ast.UnaryExpr)
	if !ok || u.Op != token.AND {
		return nil, false
	}

	return u.X, true
}

// SpanOf returns the source range of n.
func SpanOf(n ast.Node) typeenv.Span {
	return typeenv.Span{Start: n.Pos(), Stop: n.End()}
}
