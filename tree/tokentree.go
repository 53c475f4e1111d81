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

// Package tree defines TokenTree, the parser's offset-annotated view of
// source as a balanced tree of atoms and delimited groups, and its two
// derived forms: the position-independent GreenNode and the transient,
// offset-bearing RedNode.
package tree

import "github.com/mcparse/mcparse/atom"

// Kind identifies which of the four TokenTree variants a node is.
type Kind int

const (
	// AtomNode wraps a single lexer [atom.Token].
	AtomNode Kind = iota
	// DelimitedNode is a balanced (or unclosed-at-EOF) bracketed group.
	DelimitedNode
	// GroupNode is a synthetic grouping with no surface delimiters, such as
	// the output of a macro expansion or the root of a file.
	GroupNode
	// ErrorNode is a recovery node, always produced by the recover combinator.
	ErrorNode
)

func (k Kind) String() string {
	switch k {
	case AtomNode:
		return "Atom"
	case DelimitedNode:
		return "Delimited"
	case GroupNode:
		return "Group"
	case ErrorNode:
		return "Error"
	default:
		return "Kind(?)"
	}
}

// Delimiter is a named pair of opening and closing literal text, e.g.
// ("paren", "(", ")").
type Delimiter struct {
	Name  string
	Open  string
	Close string
}

// TokenTree is the sum type at the center of the parsing model. Exactly one
// of the per-variant accessors below is meaningful, selected by Kind.
type TokenTree struct {
	kind Kind
	span atom.Span

	tok    atom.Token  // AtomNode
	del    Delimiter   // DelimitedNode
	kids   []TokenTree // DelimitedNode, GroupNode
	closed bool        // DelimitedNode

	message string      // ErrorNode
	skipped []TokenTree // ErrorNode
}

// NewAtom wraps a single lexed token as a leaf TokenTree.
func NewAtom(tok atom.Token) TokenTree {
	return TokenTree{kind: AtomNode, span: tok.Span, tok: tok}
}

// NewDelimited builds a Delimited node. closed is false for a delimiter
// whose closing text was never found before end of input.
func NewDelimited(delim Delimiter, children []TokenTree, closed bool, span atom.Span) TokenTree {
	return TokenTree{kind: DelimitedNode, span: span, del: delim, kids: children, closed: closed}
}

// NewGroup builds a synthetic Group node with no surface delimiters.
func NewGroup(children []TokenTree, span atom.Span) TokenTree {
	return TokenTree{kind: GroupNode, span: span, kids: children}
}

// NewError builds a recovery node that swallowed an inner parse error and
// resynchronised by skipping the given trees.
func NewError(message string, skipped []TokenTree, span atom.Span) TokenTree {
	return TokenTree{kind: ErrorNode, span: span, message: message, skipped: skipped}
}

func (t TokenTree) Kind() Kind     { return t.kind }
func (t TokenTree) Span() atom.Span { return t.span }

// Atom returns the wrapped token. Only meaningful when Kind() == AtomNode.
func (t TokenTree) Atom() atom.Token { return t.tok }

// Delimiter returns the delimiter. Only meaningful when Kind() == DelimitedNode.
func (t TokenTree) Delimiter() Delimiter { return t.del }

// Children returns the child trees. Only meaningful when Kind() is
// DelimitedNode or GroupNode.
func (t TokenTree) Children() []TokenTree { return t.kids }

// IsClosed reports whether a Delimited node's closing text was found before
// end of input. Only meaningful when Kind() == DelimitedNode.
func (t TokenTree) IsClosed() bool { return t.closed }

// Message returns the recovery message. Only meaningful when Kind() == ErrorNode.
func (t TokenTree) Message() string { return t.message }

// Skipped returns the trees discarded during recovery. Only meaningful when
// Kind() == ErrorNode.
func (t TokenTree) Skipped() []TokenTree { return t.skipped }

// FullSpan returns the smallest span containing every tree in trees,
// which must be non-empty and contiguous (as lex.Lex's output always is).
func FullSpan(trees []TokenTree) atom.Span {
	span := trees[0].Span()
	for _, t := range trees[1:] {
		span = atom.Join(span, t.Span())
	}
	return span
}
