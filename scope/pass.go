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

package scope

import (
	"github.com/mcparse/mcparse/atom"
	"github.com/mcparse/mcparse/tree"
)

// BindingSite reports whether the binding predicate fires for the
// (text, precedingText) pair at the current position: the default
// predicate is "identifier immediately following one of a configured set
// of keyword texts."
type BindingSite func(precedingText, text string) bool

// KeywordBindingSite builds the default BindingSite predicate: a token's
// text is a binding site if the immediately preceding sibling token's text
// is one of keywords (e.g. "let", "fn").
func KeywordBindingSite(keywords ...string) BindingSite {
	set := make(map[string]bool, len(keywords))
	for _, k := range keywords {
		set[k] = true
	}
	return func(precedingText, _ string) bool {
		return set[precedingText]
	}
}

// IsScopeOpener reports whether a delimiter opens a new lexical scope.
type IsScopeOpener func(delim tree.Delimiter) bool

// Config bundles the language-specific predicates the two passes need.
type Config struct {
	IsBindingSite BindingSite
	OpensScope    IsScopeOpener

	nextID atom.BindingID
}

func (c *Config) freshID() atom.BindingID {
	c.nextID++
	return c.nextID
}

// BindingPass performs a depth-first walk of trees, mutating atom.Token
// values in place to assign a fresh BindingId at each binding site, and
// returns the populated root Scope.
//
// trees is walked (and mutated) in place; this is the one point in the
// pipeline where a Token's Binding slot changes after the lexer first
// produced it (spec.md §4.1's "mutated once" lifecycle).
func BindingPass(trees []tree.TokenTree, cfg *Config) *Scope {
	root := NewScope(nil, atom.Span{})
	bindTrees(trees, root, cfg)
	return root
}

func bindTrees(trees []tree.TokenTree, cur *Scope, cfg *Config) {
	var preceding string
	for i := range trees {
		t := &trees[i]
		switch t.Kind() {
		case tree.AtomNode:
			tok := t.Atom()
			if tok.Kind.IsTrivia() {
				continue
			}
			if tok.Kind == atom.Identifier && cfg.IsBindingSite != nil && cfg.IsBindingSite(preceding, tok.Text) {
				id := cfg.freshID()
				tok.Binding = id
				*t = tree.NewAtom(tok)
				cur.Declare(tok.Text, id)
			}
			preceding = tok.Text
		case tree.DelimitedNode:
			child := cur
			if cfg.OpensScope != nil && cfg.OpensScope(t.Delimiter()) {
				child = NewScope(cur, t.Span())
			}
			children := t.Children()
			bindTrees(children, child, cfg)
			*t = tree.NewDelimited(t.Delimiter(), children, t.IsClosed(), t.Span())
			preceding = ""
		case tree.GroupNode:
			children := t.Children()
			bindTrees(children, cur, cfg)
			*t = tree.NewGroup(children, t.Span())
			preceding = ""
		case tree.ErrorNode:
			preceding = ""
		}
	}
}

// ReferencePass performs a second depth-first walk, following the same
// Scope chain BindingPass attached to each scope-opening delimiter, and
// resolves every identifier token whose Binding slot is still NoBinding
// by looking its text up through that chain, innermost scope first.
// Unresolved references are left as NoBinding; that is not an error at
// this stage.
func ReferencePass(trees []tree.TokenTree, root *Scope, cfg *Config) {
	refTrees(trees, root, cfg)
}

func refTrees(trees []tree.TokenTree, cur *Scope, cfg *Config) {
	for i := range trees {
		t := &trees[i]
		switch t.Kind() {
		case tree.AtomNode:
			tok := t.Atom()
			if tok.Kind == atom.Identifier && !tok.IsBound() {
				if id, ok := cur.Lookup(tok.Text); ok {
					tok.Binding = id
					*t = tree.NewAtom(tok)
				}
			}
		case tree.DelimitedNode:
			child := cur
			if cfg.OpensScope != nil && cfg.OpensScope(t.Delimiter()) {
				child = childScopeFor(cur, t.Span())
			}
			refTrees(t.Children(), child, cfg)
		case tree.GroupNode:
			refTrees(t.Children(), cur, cfg)
		}
	}
}

// childScopeFor finds the child scope of parent whose OpenerSpan matches
// span; BindingPass already created it, so ReferencePass only needs to
// locate it again rather than allocate a new, empty one.
func childScopeFor(parent *Scope, span atom.Span) *Scope {
	for _, child := range parent.children {
		if child.OpenerSpan == span {
			return child
		}
	}
	return NewScope(parent, span)
}
