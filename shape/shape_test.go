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

package shape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcparse/mcparse/atom"
	"github.com/mcparse/mcparse/lex"
	"github.com/mcparse/mcparse/shape"
	"github.com/mcparse/mcparse/tree"
)

func testLanguage() *lex.Language {
	return &lex.Language{
		Recognizers: []atom.Recognizer{
			atom.WhitespaceRun(),
			atom.DefaultIdent(),
			atom.DecimalNumber(),
			atom.Operators(",", ".", "+"),
		},
		Delimiters: []tree.Delimiter{{Name: "paren", Open: "(", Close: ")"}},
	}
}

func streamOf(text string) tree.Stream {
	return tree.NewStream(lex.Lex(text, testLanguage()))
}

func TestTermSuccessAndFailure(t *testing.T) {
	ctx := shape.NewMatchContext()
	s := streamOf("foo")
	tt, rest, err := shape.Term{Matcher: shape.ByKind(atom.Identifier)}.Match(s, ctx)
	require.NoError(t, err)
	assert.Equal(t, "foo", tt.Atom().Text)
	assert.True(t, rest.Done())

	s = streamOf("42")
	_, _, err = shape.Term{Matcher: shape.ByKind(atom.Identifier)}.Match(s, ctx)
	require.Error(t, err)
	var perr *shape.ParseError
	require.ErrorAs(t, err, &perr)
}

func TestSeqPropagatesFirstFailure(t *testing.T) {
	ctx := shape.NewMatchContext()
	s := streamOf("foo")
	_, _, err := shape.Seq{Shapes: []shape.Shape{
		shape.Term{Matcher: shape.ByKind(atom.Identifier)},
		shape.Term{Matcher: shape.ByKind(atom.Number)},
	}}.Match(s, ctx)
	require.Error(t, err)
}

func TestChoiceFallsBackWithoutConsumption(t *testing.T) {
	ctx := shape.NewMatchContext()
	s := streamOf("42")
	tt, rest, err := shape.Choice{Shapes: []shape.Shape{
		shape.Term{Matcher: shape.ByKind(atom.Identifier)},
		shape.Term{Matcher: shape.ByKind(atom.Number)},
	}}.Match(s, ctx)
	require.NoError(t, err)
	assert.Equal(t, "42", tt.Atom().Text)
	assert.True(t, rest.Done())
}

func TestChoiceFallsBackAfterConsumption(t *testing.T) {
	ctx := shape.NewMatchContext()
	// First branch consumes "foo" then fails on the missing "," — choice
	// must still retry the second branch against the original stream
	// rather than bubbling the first branch's error.
	s := streamOf("foo 42")
	first := shape.Seq{Shapes: []shape.Shape{
		shape.Term{Matcher: shape.ByKind(atom.Identifier)},
		shape.Term{Matcher: shape.ByText(",")},
	}}
	second := shape.Term{Matcher: shape.ByKind(atom.Identifier)}
	tt, rest, err := shape.Choice{Shapes: []shape.Shape{first, second}}.Match(s, ctx)
	require.NoError(t, err)
	assert.Equal(t, "foo", tt.Atom().Text)
	assert.False(t, rest.Done())
}

func TestChoiceReturnsLastErrorWhenEveryBranchFails(t *testing.T) {
	ctx := shape.NewMatchContext()
	s := streamOf("foo 42")
	first := shape.Term{Matcher: shape.ByKind(atom.Number)}
	second := shape.Seq{Shapes: []shape.Shape{
		shape.Term{Matcher: shape.ByKind(atom.Identifier)},
		shape.Term{Matcher: shape.ByText(",")},
	}}
	_, _, err := shape.Choice{Shapes: []shape.Shape{first, second}}.Match(s, ctx)
	require.Error(t, err)
	var pe *shape.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, `","`, pe.Expected)
}

func TestRepAlwaysSucceeds(t *testing.T) {
	ctx := shape.NewMatchContext()
	s := streamOf("1 2 3 x")
	tt, rest, err := shape.Rep{Shape: shape.Term{Matcher: shape.ByKind(atom.Number)}}.Match(s, ctx)
	require.NoError(t, err)
	assert.Len(t, tt.Children(), 3)
	next, ok := rest.SkipTrivia().Peek()
	require.True(t, ok)
	assert.Equal(t, "x", next.Atom().Text)
}

func TestEnterRequiresFullInnerConsumption(t *testing.T) {
	ctx := shape.NewMatchContext()
	delim := tree.Delimiter{Name: "paren", Open: "(", Close: ")"}
	s := streamOf("(foo)")
	tt, _, err := shape.Enter{Delim: delim, Inner: shape.Term{Matcher: shape.ByKind(atom.Identifier)}}.Match(s, ctx)
	require.NoError(t, err)
	assert.Equal(t, tree.DelimitedNode, tt.Kind())

	s = streamOf("(foo 42)")
	_, _, err = shape.Enter{Delim: delim, Inner: shape.Term{Matcher: shape.ByKind(atom.Identifier)}}.Match(s, ctx)
	require.Error(t, err, "trailing tree inside the delimiter should fail the implicit end()")
}

func TestAdjacentRejectsWhitespace(t *testing.T) {
	ctx := shape.NewMatchContext()
	dot := shape.Term{Matcher: shape.ByText(".")}
	ident := shape.Term{Matcher: shape.ByKind(atom.Identifier)}

	s := streamOf("x.y")
	_, rest, err := shape.Adjacent{A: ident, B: shape.Adjacent{A: dot, B: ident}}.Match(s, ctx)
	require.NoError(t, err)
	assert.True(t, rest.Done())

	s = streamOf("x . y")
	_, _, err = shape.Adjacent{A: ident, B: dot}.Match(s, ctx)
	require.Error(t, err)
}

func TestEndAndEmpty(t *testing.T) {
	ctx := shape.NewMatchContext()
	s := streamOf("")
	_, _, err := shape.End{}.Match(s, ctx)
	require.NoError(t, err)

	_, rest, err := shape.Empty{}.Match(s, ctx)
	require.NoError(t, err)
	assert.Equal(t, s.Index(), rest.Index())
}

func TestRecoverSynchronisesToTerminator(t *testing.T) {
	ctx := shape.NewMatchContext()
	s := streamOf("42 , foo")
	tt, rest, err := shape.Recover{
		Inner:      shape.Term{Matcher: shape.ByKind(atom.Identifier)},
		Terminator: shape.ByText(","),
	}.Match(s, ctx)
	require.NoError(t, err)
	assert.Equal(t, tree.ErrorNode, tt.Kind())

	next, ok := rest.SkipTrivia().Peek()
	require.True(t, ok)
	assert.Equal(t, "foo", next.Atom().Text)
}

func TestSeparated(t *testing.T) {
	ctx := shape.NewMatchContext()
	s := streamOf("1, 2, 3")
	sep := shape.Separated(shape.Term{Matcher: shape.ByKind(atom.Number)}, shape.Term{Matcher: shape.ByText(",")})
	tt, rest, err := sep.Match(s, ctx)
	require.NoError(t, err)
	assert.True(t, rest.Done())
	require.Len(t, tt.Children(), 2)
	assert.Len(t, tt.Children()[1].Children(), 2)
}

func TestJoined(t *testing.T) {
	ctx := shape.NewMatchContext()
	s := streamOf("x.y.z")
	dotIdent := shape.Adjacent{A: shape.Term{Matcher: shape.ByText(".")}, B: shape.Term{Matcher: shape.ByKind(atom.Identifier)}}
	joined := shape.Joined(shape.Choice{Shapes: []shape.Shape{
		shape.Term{Matcher: shape.ByKind(atom.Identifier)},
		dotIdent,
	}})
	_, rest, err := joined.Match(s, ctx)
	require.NoError(t, err)
	assert.True(t, rest.Done())
}
