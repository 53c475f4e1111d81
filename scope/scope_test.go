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

package scope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcparse/mcparse/atom"
	"github.com/mcparse/mcparse/lex"
	"github.com/mcparse/mcparse/scope"
	"github.com/mcparse/mcparse/tree"
)

func lang() *lex.Language {
	return &lex.Language{
		Recognizers: []atom.Recognizer{
			atom.WhitespaceRun(),
			atom.DefaultIdent(),
			atom.Keyword("let", atom.Identifier),
		},
		Delimiters: []tree.Delimiter{{Name: "brace", Open: "{", Close: "}"}},
	}
}

func cfg() *scope.Config {
	return &scope.Config{
		IsBindingSite: scope.KeywordBindingSite("let"),
		OpensScope: func(d tree.Delimiter) bool { return d.Name == "brace" },
	}
}

func TestBindingThenReferencePass(t *testing.T) {
	text := "let x { x }"
	trees := lex.Lex(text, lang())

	c := cfg()
	root := scope.BindingPass(trees, c)
	scope.ReferencePass(trees, root, c)

	brace := trees[len(trees)-1]
	require.Equal(t, tree.DelimitedNode, brace.Kind())

	var ref atom.Token
	for _, child := range brace.Children() {
		if child.Kind() == tree.AtomNode && child.Atom().Kind == atom.Identifier {
			ref = child.Atom()
		}
	}
	require.True(t, ref.IsBound(), "reference inside the brace scope should resolve to the outer let-binding")

	var decl atom.Token
	for _, top := range trees {
		if top.Kind() == tree.AtomNode && top.Atom().Text == "x" {
			decl = top.Atom()
		}
	}
	assert.Equal(t, decl.Binding, ref.Binding)
}

func TestReferencePassLeavesUnresolvedAsNoBinding(t *testing.T) {
	text := "y"
	trees := lex.Lex(text, lang())
	c := cfg()
	root := scope.BindingPass(trees, c)
	scope.ReferencePass(trees, root, c)

	assert.Equal(t, atom.NoBinding, trees[0].Atom().Binding)
}

func TestCollectScopeAtInsideUnclosedDelimiter(t *testing.T) {
	text := "let x { let y"
	trees := lex.Lex(text, lang())
	c := cfg()
	root := scope.BindingPass(trees, c)

	stack := scope.CollectScopeAt(trees, root, len(text), c)
	require.Len(t, stack, 2, "cursor at EOF inside the unclosed brace is still inside that scope")

	_, ok := stack.Top().Lookup("y")
	assert.True(t, ok)
	_, ok = stack.Top().Lookup("x")
	assert.True(t, ok, "outer binding remains visible from the inner scope")
}
