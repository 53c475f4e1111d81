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

// Package complete answers "what could go here" at a cursor offset by
// combining the scoping passes' visible bindings with whatever a
// language's grammar shape expected but did not find.
package complete

import (
	"github.com/mcparse/mcparse/scope"
	"github.com/mcparse/mcparse/shape"
	"github.com/mcparse/mcparse/tree"
)

// CompletionItem is a single suggestion offered at a cursor position.
type CompletionItem struct {
	Label  string
	Kind   string // "binding" or "shape"
	Detail string
}

// Complete suggests completions at cursorOffset within trees: every name
// visible from the innermost scope enclosing the cursor (per
// [scope.CollectScopeAt]), plus whatever grammar's shape expected to find
// there, read off the ParseError it fails with when run from that point.
//
// trees must already have been through scope.BindingPass and
// scope.ReferencePass; root is the Scope BindingPass returned.
func Complete(trees []tree.TokenTree, root *scope.Scope, cfg *scope.Config, grammar shape.Shape, ctx *shape.MatchContext, cursorOffset int) []CompletionItem {
	var items []CompletionItem

	stack := scope.CollectScopeAt(trees, root, cursorOffset, cfg)
	for name := range stack.Visible() {
		items = append(items, CompletionItem{Label: name, Kind: "binding"})
	}

	s := advanceToOffset(tree.NewStream(trees), cursorOffset)
	if _, _, err := grammar.Match(s, ctx); err != nil {
		if pe, ok := err.(*shape.ParseError); ok {
			items = append(items, CompletionItem{
				Label: pe.Expected, Kind: "shape", Detail: "expected " + pe.Expected,
			})
		}
	}

	return items
}

// advanceToOffset skips every tree fully to the left of offset, leaving
// the stream positioned at the tree containing offset (or, if offset
// falls in a gap past the end, positioned at the end of the stream).
func advanceToOffset(s tree.Stream, offset int) tree.Stream {
	for {
		tt, ok := s.Peek()
		if !ok || tt.Span().End.Offset > offset {
			return s
		}
		s = s.Advance(1)
	}
}
