// Copyright 2026 The McParse Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package macro implements keyword- and operator-triggered macro
// expansion and the Pratt-style expression-parsing loop that drives it.
package macro

import (
	"github.com/mcparse/mcparse/shape"
	"github.com/mcparse/mcparse/tree"
)

// Associativity controls how an operator macro's own precedence compares
// to itself when parsing its right-hand side.
type Associativity int

const (
	Left Associativity = iota
	Right
)

// Expansion is the result of a macro's Expand function: either a
// replacement tree, or a failure message reported as a ParseError at the
// signature's failure point.
type Expansion struct {
	Tree TokenTreeOrNil
	Err  string
}

// TokenTreeOrNil is tree.TokenTree; the alias exists purely so Expansion's
// zero value reads naturally as "no tree yet" without a separate bool.
type TokenTreeOrNil = tree.TokenTree

// Ok builds a successful Expansion.
func Ok(t tree.TokenTree) Expansion { return Expansion{Tree: t} }

// Err builds a failed Expansion.
func Err(message string) Expansion { return Expansion{Err: message} }

func (e Expansion) failed() bool { return e.Err != "" }

// Macro is a keyword- or operator-triggered rewrite rule. A non-operator
// macro is invoked at the head of an expression when its Name is seen at
// an unshadowed identifier position; an operator macro is invoked as a
// continuation when its Name is seen with sufficient precedence.
type Macro struct {
	Name          string
	Signature     shape.Shape
	IsOperator    bool
	Precedence    uint32
	Associativity Associativity

	// Expand runs the macro. args is the result of matching Signature; lhs
	// is the accumulated head for an operator macro (nil for a
	// head-position macro).
	Expand func(args tree.TokenTree, lhs *tree.TokenTree, ctx *shape.MatchContext) Expansion
}

// Table indexes a language's macros by name for lookup during the
// expression loop.
type Table struct {
	byName map[string]*Macro
}

// NewTable builds a lookup Table from a set of macros.
func NewTable(macros ...*Macro) *Table {
	t := &Table{byName: make(map[string]*Macro, len(macros))}
	for _, m := range macros {
		t.byName[m.Name] = m
	}
	return t
}

func (t *Table) lookup(name string) (*Macro, bool) {
	m, ok := t.byName[name]
	return m, ok
}

// toParseError adapts a macro's plain-string failure into the ParseError
// type every other shape reports.
func toParseError(t tree.TokenTree, message string) error {
	return &shape.ParseError{Span: t.Span(), Expected: message, Found: "macro expansion failure"}
}
