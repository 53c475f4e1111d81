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

package tree

import (
	"strings"

	"github.com/mcparse/mcparse/atom"
	"github.com/mcparse/mcparse/internal/arena"
	"github.com/mcparse/mcparse/internal/intern"
)

// Green is the immutable, position-independent twin of TokenTree. It stores
// only a byte width rather than an absolute span, so that identical
// subtrees produced across successive edits can be structurally shared:
// two Green values with equal fields describe interchangeable source text
// regardless of where in a file either one occurs.
//
// Green is allocated in an [arena.Arena], and children are referenced by
// [arena.Pointer] rather than by Go pointer, so that sharing a subtree
// across two trees costs one pointer copy rather than a deep clone.
type Green struct {
	Kind     Kind
	Width    int
	AtomKind atom.Kind        // AtomNode
	Text     intern.ID        // AtomNode (token text), ErrorNode (message)
	Delim    Delimiter        // DelimitedNode
	Closed   bool             // DelimitedNode
	Children []arena.Pointer[Green] // DelimitedNode, GroupNode
	Skipped  []arena.Pointer[Green] // ErrorNode
}

// Arena is the backing store for a family of Green nodes produced from a
// single lex or incremental re-lex pass. Every Pointer[Green] stored in a
// Green's Children or Skipped must have been allocated from the same Arena
// that ultimately roots the tree containing it.
type Arena = arena.Arena[Green]

// GreenOf converts an offset-annotated TokenTree into its width-only Green
// twin, allocating nodes into ar and interning leaf text and error messages
// through table.
func GreenOf(t TokenTree, ar *Arena, table *intern.Table) arena.Pointer[Green] {
	width := t.Span().Len()
	switch t.Kind() {
	case AtomNode:
		tok := t.Atom()
		return ar.New(Green{
			Kind: AtomNode, Width: width,
			AtomKind: tok.Kind, Text: table.Intern(tok.Text),
		})
	case DelimitedNode:
		children := make([]arena.Pointer[Green], len(t.Children()))
		for i, c := range t.Children() {
			children[i] = GreenOf(c, ar, table)
		}
		return ar.New(Green{
			Kind: DelimitedNode, Width: width,
			Delim: t.Delimiter(), Closed: t.IsClosed(), Children: children,
		})
	case GroupNode:
		children := make([]arena.Pointer[Green], len(t.Children()))
		for i, c := range t.Children() {
			children[i] = GreenOf(c, ar, table)
		}
		return ar.New(Green{Kind: GroupNode, Width: width, Children: children})
	case ErrorNode:
		skipped := make([]arena.Pointer[Green], len(t.Skipped()))
		for i, c := range t.Skipped() {
			skipped[i] = GreenOf(c, ar, table)
		}
		return ar.New(Green{
			Kind: ErrorNode, Width: width,
			Text: table.Intern(t.Message()), Skipped: skipped,
		})
	default:
		panic("tree: unknown Kind in GreenOf")
	}
}

// Text renders a Green subtree back to the source text it was built from,
// resolving interned leaf text through table. It is the inverse of
// GreenOf's text-interning step, used by incremental re-lexing to recover
// a delimited node's content before splicing an edit into it.
func Text(g *Green, ar *Arena, table *intern.Table) string {
	var b strings.Builder
	writeText(&b, g, ar, table)
	return b.String()
}

func writeText(b *strings.Builder, g *Green, ar *Arena, table *intern.Table) {
	switch g.Kind {
	case AtomNode:
		b.WriteString(table.Value(g.Text))
	case DelimitedNode:
		b.WriteString(g.Delim.Open)
		for _, c := range g.Children {
			writeText(b, c.In(ar), ar, table)
		}
		b.WriteString(g.Delim.Close)
	case GroupNode:
		for _, c := range g.Children {
			writeText(b, c.In(ar), ar, table)
		}
	case ErrorNode:
		for _, c := range g.Skipped {
			writeText(b, c.In(ar), ar, table)
		}
	}
}
