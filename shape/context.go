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

	"github.com/petermattis/goid"

	"github.com/mcparse/mcparse/tree"
)

// ParseExpression is the signature MatchContext exposes so that any shape
// (including an operator macro's own expand function) can recurse back
// into the expression-parsing loop. It is filled in by package macro,
// which owns that loop; shape only depends on the function shape, not on
// macro's types, avoiding an import cycle between the two packages.
type ParseExpression func(s tree.Stream, minPrecedence uint32) (tree.TokenTree, tree.Stream, error)

// MatchContext is the mutable, passed-through state threaded through a
// single match_shape or parse_expression call. It is single-owner for the
// duration of one parse (spec.md §5): MatchContext must never be shared
// between two concurrently running parses, which this type asserts by
// recording the goroutine that created it and panicking if a different
// goroutine ever calls into it.
type MatchContext struct {
	// CursorOffset, if non-negative, is the byte offset completion is being
	// computed at; shapes may consult it to decide whether to record a
	// suggestion instead of (or in addition to) matching normally.
	CursorOffset int

	// ParseExpression recurses into the Pratt-style expression loop; nil
	// unless the context was built by package macro.
	ParseExpression ParseExpression

	ownerGoroutine int64
}

// NewMatchContext returns a MatchContext with no cursor offset and no
// expression loop attached, usable directly by match_shape callers that
// never need macro recursion.
func NewMatchContext() *MatchContext {
	return &MatchContext{CursorOffset: -1, ownerGoroutine: goid.Get()}
}

// assertOwner panics if ctx is being used from a goroutine other than the
// one that created it. Every combinator's Match calls this first.
func (ctx *MatchContext) assertOwner() {
	if ctx.ownerGoroutine == 0 {
		ctx.ownerGoroutine = goid.Get()
		return
	}
	if g := goid.Get(); g != ctx.ownerGoroutine {
		panic(fmt.Sprintf("shape: MatchContext used from goroutine %d, but was created on %d", g, ctx.ownerGoroutine))
	}
}
