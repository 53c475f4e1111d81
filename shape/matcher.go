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

// Package shape implements the combinator algebra that turns a
// tree.Stream into a matched tree.TokenTree (or a ParseError), and the
// leaf Matcher capability combinators are built from.
package shape

import (
	"fmt"

	"github.com/mcparse/mcparse/atom"
	"github.com/mcparse/mcparse/tree"
)

// Matcher is the leaf capability consulted by Term: it decides whether a
// single TokenTree is acceptable at the current position, and can explain
// itself for diagnostics and completion.
type Matcher interface {
	Matches(t tree.TokenTree) bool
	Describe() string
}

type kindMatcher atom.Kind

// ByKind matches any Atom leaf of the given atom.Kind.
func ByKind(k atom.Kind) Matcher { return kindMatcher(k) }

func (m kindMatcher) Matches(t tree.TokenTree) bool {
	return t.Kind() == tree.AtomNode && t.Atom().Kind == atom.Kind(m)
}
func (m kindMatcher) Describe() string { return atom.Kind(m).String() }

type textMatcher string

// ByText matches any Atom leaf whose text is exactly text.
func ByText(text string) Matcher { return textMatcher(text) }

func (m textMatcher) Matches(t tree.TokenTree) bool {
	return t.Kind() == tree.AtomNode && t.Atom().Text == string(m)
}
func (m textMatcher) Describe() string { return fmt.Sprintf("%q", string(m)) }

type delimiterMatcher string

// ByDelimiter matches any Delimited node whose delimiter name is name.
func ByDelimiter(name string) Matcher { return delimiterMatcher(name) }

func (m delimiterMatcher) Matches(t tree.TokenTree) bool {
	return t.Kind() == tree.DelimitedNode && t.Delimiter().Name == string(m)
}
func (m delimiterMatcher) Describe() string { return string(m) }

// Any matches any tree at all; it is mostly useful as a recover
// terminator that should never itself fail to match.
func Any() Matcher { return anyMatcher{} }

type anyMatcher struct{}

func (anyMatcher) Matches(tree.TokenTree) bool { return true }
func (anyMatcher) Describe() string            { return "anything" }
