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
	"github.com/mcparse/mcparse/atom"
	"github.com/mcparse/mcparse/tree"
)

// Term skips leading trivia, peeks, and consumes one tree if m accepts it.
type Term struct{ Matcher Matcher }

func (t Term) Match(s tree.Stream, ctx *MatchContext) (tree.TokenTree, tree.Stream, error) {
	ctx.assertOwner()
	skipped := s.SkipTrivia()
	tt, ok := skipped.Peek()
	if !ok {
		p := skipped.PositionHint()
		return tree.TokenTree{}, skipped, &ParseError{
			Span: atom.Span{Start: p, End: p}, Expected: t.Matcher.Describe(), Found: "end of input",
		}
	}
	if !t.Matcher.Matches(tt) {
		return tree.TokenTree{}, skipped, &ParseError{
			Span: tt.Span(), Expected: t.Matcher.Describe(), Found: describeTree(tt),
		}
	}
	return tt, skipped.Advance(1), nil
}

// Seq runs each shape in order, feeding each the remainder of the last,
// and fails as soon as any of them does, propagating that error unchanged.
// On success it groups the consumed trees.
type Seq struct{ Shapes []Shape }

func (sq Seq) Match(s tree.Stream, ctx *MatchContext) (tree.TokenTree, tree.Stream, error) {
	ctx.assertOwner()
	cur := s
	kids := make([]tree.TokenTree, 0, len(sq.Shapes))
	for _, sh := range sq.Shapes {
		tt, rest, err := sh.Match(cur, ctx)
		if err != nil {
			return tree.TokenTree{}, rest, err
		}
		kids = append(kids, tt)
		cur = rest
	}
	return tree.NewGroup(kids, groupSpan(kids, s)), cur, nil
}

// Choice attempts each shape in order, every time against the original
// starting stream. The first to succeed is committed to. A branch that
// fails, whether or not it consumed anything before erroring, simply
// lets the next branch be tried against s unchanged; only the last
// branch's error is returned if every branch fails.
type Choice struct{ Shapes []Shape }

func (c Choice) Match(s tree.Stream, ctx *MatchContext) (tree.TokenTree, tree.Stream, error) {
	ctx.assertOwner()
	var lastErr error
	lastRest := s
	for _, sh := range c.Shapes {
		tt, rest, err := sh.Match(s, ctx)
		if err == nil {
			return tt, rest, nil
		}
		lastErr, lastRest = err, rest
	}
	return tree.TokenTree{}, lastRest, lastErr
}

// Rep runs a repeatedly until it fails, collecting every success into a
// Group. Rep always succeeds, possibly with zero children.
type Rep struct{ Shape Shape }

func (r Rep) Match(s tree.Stream, ctx *MatchContext) (tree.TokenTree, tree.Stream, error) {
	ctx.assertOwner()
	cur := s
	var kids []tree.TokenTree
	for {
		tt, rest, err := r.Shape.Match(cur, ctx)
		if err != nil || rest.Index() == cur.Index() {
			break
		}
		kids = append(kids, tt)
		cur = rest
	}
	return tree.NewGroup(kids, groupSpan(kids, s)), cur, nil
}

// Enter requires the current tree (after trivia skip) to be a Delimited
// node matching delim, and requires Inner to consume all of its children
// (an implicit End inside). It returns the matched Delimited node.
type Enter struct {
	Delim tree.Delimiter
	Inner Shape
}

func (e Enter) Match(s tree.Stream, ctx *MatchContext) (tree.TokenTree, tree.Stream, error) {
	ctx.assertOwner()
	skipped := s.SkipTrivia()
	tt, ok := skipped.Peek()
	if !ok || tt.Kind() != tree.DelimitedNode || tt.Delimiter() != e.Delim {
		p := skipped.PositionHint()
		found := "end of input"
		if ok {
			found = describeTree(tt)
		}
		return tree.TokenTree{}, skipped, &ParseError{
			Span: atom.Span{Start: p, End: p}, Expected: "delimiter " + e.Delim.Name, Found: found,
		}
	}
	innerStream := tree.NewStream(tt.Children())
	_, innerRest, err := e.Inner.Match(innerStream, ctx)
	if err != nil {
		return tree.TokenTree{}, skipped, err
	}
	trailing := innerRest.SkipTrivia()
	if !trailing.Done() {
		extra, _ := trailing.Peek()
		return tree.TokenTree{}, skipped, &ParseError{
			Span: extra.Span(), Expected: "end of " + e.Delim.Name, Found: describeTree(extra),
		}
	}
	return tt, skipped.Advance(1), nil
}

// Adjacent runs A, then requires the very next tree (without skipping
// whitespace) to not itself be whitespace before running B. This is what
// distinguishes "x.y" from "x . y".
type Adjacent struct{ A, B Shape }

func (ab Adjacent) Match(s tree.Stream, ctx *MatchContext) (tree.TokenTree, tree.Stream, error) {
	ctx.assertOwner()
	aTree, rest, err := ab.A.Match(s, ctx)
	if err != nil {
		return tree.TokenTree{}, rest, err
	}
	if next, ok := rest.Peek(); ok && next.Kind() == tree.AtomNode && next.Atom().Kind == atom.Whitespace {
		return tree.TokenTree{}, rest, &ParseError{
			Span: next.Span(), Expected: "no intervening whitespace", Found: "whitespace",
		}
	}
	bTree, rest2, err := ab.B.Match(rest, ctx)
	if err != nil {
		return tree.TokenTree{}, rest2, err
	}
	kids := []tree.TokenTree{aTree, bTree}
	return tree.NewGroup(kids, groupSpan(kids, s)), rest2, nil
}

// Empty always succeeds, consumes nothing, and yields an empty Group.
type Empty struct{}

func (Empty) Match(s tree.Stream, ctx *MatchContext) (tree.TokenTree, tree.Stream, error) {
	ctx.assertOwner()
	return tree.NewGroup(nil, groupSpan(nil, s)), s, nil
}

// End succeeds iff no more trees remain after skipping trivia.
type End struct{}

func (End) Match(s tree.Stream, ctx *MatchContext) (tree.TokenTree, tree.Stream, error) {
	ctx.assertOwner()
	skipped := s.SkipTrivia()
	if tt, ok := skipped.Peek(); ok {
		return tree.TokenTree{}, skipped, &ParseError{
			Span: tt.Span(), Expected: "end of input", Found: describeTree(tt),
		}
	}
	return tree.NewGroup(nil, groupSpan(nil, skipped)), skipped, nil
}

// Recover runs Inner; on failure it discards the error and advances the
// stream token-by-token until Terminator matches (consuming it) or the
// stream ends, returning an Error tree. Recover always succeeds.
type Recover struct {
	Inner      Shape
	Terminator Matcher
}

func (r Recover) Match(s tree.Stream, ctx *MatchContext) (tree.TokenTree, tree.Stream, error) {
	ctx.assertOwner()
	tt, rest, err := r.Inner.Match(s, ctx)
	if err == nil {
		return tt, rest, nil
	}

	cur := s
	var skipped []tree.TokenTree
	for {
		next, ok := cur.Peek()
		if !ok {
			break
		}
		skipped = append(skipped, next)
		cur = cur.Advance(1)
		if r.Terminator.Matches(next) {
			break
		}
	}
	return tree.NewError(err.Error(), skipped, groupSpan(skipped, s)), cur, nil
}
