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

package atom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcparse/mcparse/atom"
)

func TestWhitespaceRun(t *testing.T) {
	r := atom.WhitespaceRun()
	matched, ok := r.Match(atom.NewCursor("   \t\nfoo"))
	require.True(t, ok)
	assert.Equal(t, "   \t\n", matched)
	assert.Equal(t, atom.Whitespace, r.Kind())

	_, ok = r.Match(atom.NewCursor("foo"))
	assert.False(t, ok)
}

func TestLineComment(t *testing.T) {
	r := atom.LineComment("//")
	matched, ok := r.Match(atom.NewCursor("// hi\nrest"))
	require.True(t, ok)
	assert.Equal(t, "// hi", matched)

	matched, ok = r.Match(atom.NewCursor("// unterminated"))
	require.True(t, ok)
	assert.Equal(t, "// unterminated", matched)

	_, ok = r.Match(atom.NewCursor("not a comment"))
	assert.False(t, ok)
}

func TestBlockComment(t *testing.T) {
	r := atom.BlockComment("/*", "*/")
	matched, ok := r.Match(atom.NewCursor("/* hi */rest"))
	require.True(t, ok)
	assert.Equal(t, "/* hi */", matched)

	matched, ok = r.Match(atom.NewCursor("/* unterminated"))
	require.True(t, ok)
	assert.Equal(t, "/* unterminated", matched)
}

func TestDefaultIdent(t *testing.T) {
	r := atom.DefaultIdent()
	matched, ok := r.Match(atom.NewCursor("foo_Bar2 baz"))
	require.True(t, ok)
	assert.Equal(t, "foo_Bar2", matched)

	_, ok = r.Match(atom.NewCursor("2foo"))
	assert.False(t, ok)
}

func TestDecimalNumber(t *testing.T) {
	r := atom.DecimalNumber()

	cases := []struct {
		in, want string
	}{
		{"123rest", "123"},
		{"12.34rest", "12.34"},
		{"1e10rest", "1e10"},
		{"1.5e-3rest", "1.5e-3"},
		{"1.rest", "1"},
	}
	for _, c := range cases {
		matched, ok := r.Match(atom.NewCursor(c.in))
		require.True(t, ok, c.in)
		assert.Equal(t, c.want, matched, c.in)
	}

	_, ok := r.Match(atom.NewCursor("abc"))
	assert.False(t, ok)
}

func TestQuotedString(t *testing.T) {
	r := atom.QuotedString('"', '\\')

	matched, ok := r.Match(atom.NewCursor(`"hello\"world" rest`))
	require.True(t, ok)
	assert.Equal(t, `"hello\"world"`, matched)

	matched, ok = r.Match(atom.NewCursor(`"unterminated`))
	require.True(t, ok)
	assert.Equal(t, `"unterminated`, matched)

	_, ok = r.Match(atom.NewCursor("no quote"))
	assert.False(t, ok)
}

func TestKeyword(t *testing.T) {
	r := atom.Keyword("true", atom.Boolean)
	matched, ok := r.Match(atom.NewCursor("true false"))
	require.True(t, ok)
	assert.Equal(t, "true", matched)
	assert.Equal(t, atom.Boolean, r.Kind())

	_, ok = r.Match(atom.NewCursor("truthy"))
	assert.True(t, ok, "Keyword only checks the literal prefix; longest-match tie-breaking against a broader identifier recogniser happens in the lexer")
}

func TestOperatorsLongestMatch(t *testing.T) {
	r := atom.Operators("+", "+=", "-", "->")

	matched, ok := r.Match(atom.NewCursor("+=1"))
	require.True(t, ok)
	assert.Equal(t, "+=", matched)

	matched, ok = r.Match(atom.NewCursor("->x"))
	require.True(t, ok)
	assert.Equal(t, "->", matched)

	matched, ok = r.Match(atom.NewCursor("+1"))
	require.True(t, ok)
	assert.Equal(t, "+", matched)

	_, ok = r.Match(atom.NewCursor("*1"))
	assert.False(t, ok)
}

func TestCursorAdvanceGrapheme(t *testing.T) {
	c := atom.NewCursor("a👍b")
	c, g := c.AdvanceGrapheme()
	assert.Equal(t, "a", g)
	c, g = c.AdvanceGrapheme()
	assert.Equal(t, "👍", g)
	c, g = c.AdvanceGrapheme()
	assert.Equal(t, "b", g)
	assert.True(t, c.Done())
}
