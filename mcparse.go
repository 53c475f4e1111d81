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

package mcparse

import (
	"github.com/mcparse/mcparse/complete"
	"github.com/mcparse/mcparse/incremental"
	"github.com/mcparse/mcparse/internal/arena"
	"github.com/mcparse/mcparse/internal/intern"
	"github.com/mcparse/mcparse/langdef"
	"github.com/mcparse/mcparse/lex"
	"github.com/mcparse/mcparse/macro"
	"github.com/mcparse/mcparse/scope"
	"github.com/mcparse/mcparse/shape"
	"github.com/mcparse/mcparse/tree"
)

// Lex tokenizes text according to lang's lexical rules, producing a flat
// (but internally nested, at delimiters) slice of token trees.
func Lex(text string, lang *langdef.LanguageDefinition) []tree.TokenTree {
	return lex.Lex(text, lang.Language)
}

// Scope runs both scoping passes over trees in place: BindingPass
// assigns a fresh BindingId at every binding site, and ReferencePass
// resolves every identifier reference it can against those bindings. It
// returns the root Scope BindingPass built, which CollectScopeAt and
// complete.Complete need to answer "what's visible here" queries later.
func Scope(trees []tree.TokenTree, lang *langdef.LanguageDefinition) *scope.Scope {
	root := scope.BindingPass(trees, lang.ScopeConfig)
	scope.ReferencePass(trees, root, lang.ScopeConfig)
	return root
}

// MatchShape runs s against stream, returning the matched tree and the
// unconsumed remainder, or the ParseError it failed with.
func MatchShape(s shape.Shape, stream tree.Stream, ctx *shape.MatchContext) (tree.TokenTree, tree.Stream, error) {
	return s.Match(stream, ctx)
}

// ParseExpression runs lang's macro table's Pratt-style expression loop
// over stream, starting at minPrec.
func ParseExpression(stream tree.Stream, lang *langdef.LanguageDefinition, minPrec uint32) (tree.TokenTree, tree.Stream, error) {
	ctx := macro.NewContext(lang.Macros)
	return lang.Macros.ParseExpression(stream, minPrec, ctx)
}

// Document owns the Arena and intern.Table a Green tree's pointers are
// relative to, so that GreenOf, RedAt, and ApplyEdit can keep sharing
// unchanged subtrees across a sequence of edits to the same file. A
// freshly lexed file becomes a Document via NewDocument; every
// subsequent edit goes through Document.ApplyEdit.
type Document struct {
	arena *tree.Arena
	table *intern.Table
	Green arena.Pointer[tree.Green]
}

// NewDocument builds the Green tree for a freshly lexed file (the
// GreenOf boundary operation), rooting it in a fresh Arena and
// intern.Table that the returned Document keeps for the file's lifetime.
func NewDocument(trees []tree.TokenTree) *Document {
	ar := &tree.Arena{}
	table := &intern.Table{}
	root := tree.NewGroup(trees, tree.FullSpan(trees))
	return &Document{arena: ar, table: table, Green: tree.GreenOf(root, ar, table)}
}

// RedAt wraps d's current Green tree as a Red node positioned at offset,
// the entry point for any offset-aware query (FindDeepest,
// scope.CollectScopeAt's underlying tree walk, a hover or go-to-definition
// lookup).
func (d *Document) RedAt(offset int) tree.Red {
	return tree.RedAt(d.Green, d.arena, offset)
}

// ApplyEdit re-lexes only as much of d's source text as edit touches,
// replacing d.Green with the spliced (or, on failure to splice, fully
// re-lexed) result.
func (d *Document) ApplyEdit(edit incremental.TextEdit, lang *langdef.LanguageDefinition) {
	d.Green = incremental.ApplyEdit(d.Green, d.arena, d.table, edit, lang.Language)
}

// Text renders d's current Green tree back to source text.
func (d *Document) Text() string {
	return tree.Text(d.Green.In(d.arena), d.arena, d.table)
}

// Complete suggests completions at cursorOffset against trees (the same
// slice Scope was run over) and root (the Scope Scope returned).
func Complete(lang *langdef.LanguageDefinition, trees []tree.TokenTree, root *scope.Scope, ctx *shape.MatchContext, cursorOffset int) []complete.CompletionItem {
	return complete.Complete(trees, root, lang.ScopeConfig, lang.Grammar, ctx, cursorOffset)
}
