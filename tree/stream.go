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

import "github.com/mcparse/mcparse/atom"

// Stream is a token-tree-level cursor: a slice of TokenTree plus an index
// into it. Peek, Advance, and Rest are all O(1). Stream is a value type
// with no interior mutability; Advance returns a new Stream.
type Stream struct {
	trees []TokenTree
	index int
}

// NewStream wraps a slice of TokenTree as a Stream positioned at its start.
func NewStream(trees []TokenTree) Stream {
	return Stream{trees: trees}
}

// Done reports whether the stream has been fully consumed.
func (s Stream) Done() bool { return s.index >= len(s.trees) }

// Peek returns the tree at the current position, or ok=false at end of stream.
func (s Stream) Peek() (TokenTree, bool) {
	if s.Done() {
		return TokenTree{}, false
	}
	return s.trees[s.index], true
}

// PeekAt returns the tree k trees ahead of the current position, or
// ok=false if that position is past the end of the stream.
func (s Stream) PeekAt(k int) (TokenTree, bool) {
	i := s.index + k
	if i < 0 || i >= len(s.trees) {
		return TokenTree{}, false
	}
	return s.trees[i], true
}

// Advance returns a Stream positioned k trees further along. k may be 0.
func (s Stream) Advance(k int) Stream {
	return Stream{trees: s.trees, index: s.index + k}
}

// Rest returns the unconsumed suffix of the stream's trees.
func (s Stream) Rest() []TokenTree {
	if s.Done() {
		return nil
	}
	return s.trees[s.index:]
}

// Index returns the current position within the original tree slice.
func (s Stream) Index() int { return s.index }

// isTrivia reports whether a tree is skippable by the whitespace-skipping
// helpers below: a leaf atom whose Kind is trivia.
func isTrivia(t TokenTree) bool {
	return t.Kind() == AtomNode && t.Atom().Kind.IsTrivia()
}

// SkipTrivia returns a Stream advanced past any contiguous run of
// Whitespace or Comment atoms at the current position, without allocating.
func (s Stream) SkipTrivia() Stream {
	for {
		t, ok := s.Peek()
		if !ok || !isTrivia(t) {
			return s
		}
		s = s.Advance(1)
	}
}

// PeekNonTrivia is Peek preceded by SkipTrivia: it returns the next
// semantically meaningful tree, skipping over any intervening trivia.
func (s Stream) PeekNonTrivia() (TokenTree, Stream, bool) {
	s = s.SkipTrivia()
	t, ok := s.Peek()
	return t, s, ok
}

// PositionHint returns a best-effort source position for this stream: the
// start of the next tree if one remains, otherwise the end of the
// previously consumed tree, otherwise the zero Position. It is used by
// zero-width shapes (empty, end) and by diagnostics that need to locate a
// point rather than a tree.
func (s Stream) PositionHint() atom.Position {
	if t, ok := s.Peek(); ok {
		return t.Span().Start
	}
	if t, ok := s.PeekAt(-1); ok {
		return t.Span().End
	}
	return atom.Position{}
}
