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

package shape

import (
	"fmt"

	"github.com/mcparse/mcparse/atom"
	"github.com/mcparse/mcparse/tree"
)

// Shape matches a prefix of a tree.Stream, producing the consumed tree and
// the remainder, or a ParseError. Every combinator below is a Shape.
type Shape interface {
	Match(s tree.Stream, ctx *MatchContext) (tree.TokenTree, tree.Stream, error)
}

// ParseError is the error type every Shape reports failure with.
type ParseError struct {
	Span     atom.Span
	Expected string
	Found    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: expected %s, found %s", e.Span.Start, e.Expected, e.Found)
}

// describeTree renders a found-token description for a ParseError.
func describeTree(t tree.TokenTree) string {
	switch t.Kind() {
	case tree.AtomNode:
		return fmt.Sprintf("%s %q", t.Atom().Kind, t.Atom().Text)
	case tree.DelimitedNode:
		return "delimiter " + t.Delimiter().Name
	case tree.GroupNode:
		return "group"
	case tree.ErrorNode:
		return "error token"
	default:
		return "token"
	}
}

// groupSpan returns the smallest span containing every kid's span, or a
// zero-width span at fallback's current position if kids is empty.
func groupSpan(kids []tree.TokenTree, fallback tree.Stream) atom.Span {
	if len(kids) == 0 {
		p := fallback.PositionHint()
		return atom.Span{Start: p, End: p}
	}
	span := kids[0].Span()
	for _, k := range kids[1:] {
		span = atom.Join(span, k.Span())
	}
	return span
}
