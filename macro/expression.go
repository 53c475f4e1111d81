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

package macro

import (
	"github.com/mcparse/mcparse/atom"
	"github.com/mcparse/mcparse/shape"
	"github.com/mcparse/mcparse/tree"
)

// ParseExpression implements the head/continuation loop of spec.md §4.5.
//
// Head: the next non-trivia tree is either a call into a non-operator
// macro (if it is an unshadowed identifier naming one) or a plain literal
// term. Shadowing is read directly off the token's Binding slot, which the
// scope package's ReferencePass already populated: a bound identifier is,
// by construction, a reference to a local declaration, so the macro table
// is never even consulted for it.
//
// Continuation: repeatedly checks whether the next non-trivia tree names
// an operator macro whose precedence is at least min_prec, consuming it
// and recursing for the right-hand side. The recursive call's min_prec is
// one above the operator's own precedence for a left-associative
// operator — so a second operator of equal precedence is left for this
// level to pick up, producing a left-leaning tree — and equal to it for a
// right-associative one, letting equal precedence chain into the
// right-hand side instead.
func (t *Table) ParseExpression(s tree.Stream, minPrecedence uint32, ctx *shape.MatchContext) (tree.TokenTree, tree.Stream, error) {
	head, rest, err := t.parseHead(s, ctx)
	if err != nil {
		return tree.TokenTree{}, rest, err
	}

	for {
		next, afterTrivia, ok := rest.PeekNonTrivia()
		if !ok || next.Kind() != tree.AtomNode || next.Atom().Kind != atom.Identifier {
			return head, rest, nil
		}
		op, ok := t.lookup(next.Atom().Text)
		if !ok || !op.IsOperator {
			return head, rest, nil
		}

		if op.Precedence < minPrecedence {
			return head, rest, nil
		}
		nextMin := op.Precedence
		if op.Associativity == Left {
			// Strictly higher than this operator's own precedence, so a
			// second operator of equal precedence is left for this level
			// to pick up (left-associative chaining) rather than being
			// absorbed into the right-hand side.
			nextMin = op.Precedence + 1
		}

		afterOp := afterTrivia.Advance(1)
		rhs, afterRHS, err := t.ParseExpression(afterOp, nextMin, ctx)
		if err != nil {
			return tree.TokenTree{}, afterRHS, err
		}

		lhs := head
		expansion := op.Expand(rhs, &lhs, ctx)
		if expansion.failed() {
			return tree.TokenTree{}, afterRHS, toParseError(next, expansion.Err)
		}
		head = expansion.Tree
		rest = afterRHS
	}
}

// parseHead resolves the single leading tree of an expression: either a
// head-position macro invocation, or a plain term (any one tree).
func (t *Table) parseHead(s tree.Stream, ctx *shape.MatchContext) (tree.TokenTree, tree.Stream, error) {
	next, afterTrivia, ok := s.PeekNonTrivia()
	if ok && next.Kind() == tree.AtomNode && next.Atom().Kind == atom.Identifier && !next.Atom().IsBound() {
		if m, found := t.lookup(next.Atom().Text); found && !m.IsOperator {
			afterName := afterTrivia.Advance(1)
			args, rest, err := m.Signature.Match(afterName, ctx)
			if err != nil {
				return tree.TokenTree{}, rest, err
			}
			expansion := m.Expand(args, nil, ctx)
			if expansion.failed() {
				return tree.TokenTree{}, rest, toParseError(next, expansion.Err)
			}
			return expansion.Tree, rest, nil
		}
	}
	return shape.Term{Matcher: shape.Any()}.Match(s, ctx)
}
