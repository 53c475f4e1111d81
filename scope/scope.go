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

// Package scope implements the two scoping passes that run over a lexed
// tree before shape matching: BindingPass, which assigns BindingIds to
// declaration sites, and ReferencePass, which resolves identifier
// occurrences against them.
package scope

import (
	"github.com/mcparse/mcparse/atom"
)

// Scope is one level of lexical nesting: a map from declared name to the
// BindingId introduced for it, plus a link to the enclosing scope.
//
// Bindings are stored in declaration order (a plain map plus an order
// slice) rather than a sorted structure, since lookups are always by exact
// name and scopes are typically small.
type Scope struct {
	Parent   *Scope
	Bindings map[string]atom.BindingID
	order    []string
	children []*Scope

	// OpenerSpan is the span of the delimiter opener that introduced this
	// scope (zero Span for the root scope).
	OpenerSpan atom.Span
}

// NewScope returns an empty scope nested inside parent, and (if parent is
// non-nil) records it as one of parent's children so that a later walk
// over the same tree shape can find it again by OpenerSpan.
func NewScope(parent *Scope, openerSpan atom.Span) *Scope {
	s := &Scope{Parent: parent, Bindings: map[string]atom.BindingID{}, OpenerSpan: openerSpan}
	if parent != nil {
		parent.children = append(parent.children, s)
	}
	return s
}

// Declare registers name as bound to id in this scope, overwriting any
// prior binding of the same name in this scope (shadowing happens between
// scopes, not within one; a re-declaration of the same name in the same
// scope simply replaces it, matching ordinary block-scoped languages).
func (s *Scope) Declare(name string, id atom.BindingID) {
	if _, exists := s.Bindings[name]; !exists {
		s.order = append(s.order, name)
	}
	s.Bindings[name] = id
}

// Names returns the names declared directly in this scope, in declaration
// order.
func (s *Scope) Names() []string {
	return append([]string(nil), s.order...)
}

// Lookup resolves name against this scope and, failing that, its
// enclosing scopes, innermost first (standard lexical shadowing).
func (s *Scope) Lookup(name string) (atom.BindingID, bool) {
	for cur := s; cur != nil; cur = cur.Parent {
		if id, ok := cur.Bindings[name]; ok {
			return id, true
		}
	}
	return atom.NoBinding, false
}

// ScopeStack is the live stack of nested Scopes at some point in a walk,
// innermost last.
type ScopeStack []*Scope

// Top returns the innermost scope, or nil if the stack is empty.
func (s ScopeStack) Top() *Scope {
	if len(s) == 0 {
		return nil
	}
	return s[len(s)-1]
}

// Visible returns every name visible from the top of the stack, innermost
// declarations shadowing outer ones of the same name, all duplicates
// resolved before the caller sees them.
func (s ScopeStack) Visible() map[string]atom.BindingID {
	out := map[string]atom.BindingID{}
	for _, level := range s {
		for name, id := range level.Bindings {
			out[name] = id
		}
	}
	return out
}
