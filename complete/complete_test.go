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

package complete_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcparse/mcparse/atom"
	"github.com/mcparse/mcparse/complete"
	"github.com/mcparse/mcparse/lex"
	"github.com/mcparse/mcparse/scope"
	"github.com/mcparse/mcparse/shape"
	"github.com/mcparse/mcparse/tree"
)

func testLanguage() *lex.Language {
	return &lex.Language{
		Recognizers: []atom.Recognizer{
			atom.WhitespaceRun(),
			atom.DefaultIdent(),
			atom.DecimalNumber(),
			atom.Operators("="),
			atom.Keyword("let", atom.Identifier),
		},
		Delimiters: []tree.Delimiter{{Name: "brace", Open: "{", Close: "}"}},
	}
}

func testConfig() *scope.Config {
	return &scope.Config{
		IsBindingSite: scope.KeywordBindingSite("let"),
		OpensScope:    func(d tree.Delimiter) bool { return d.Name == "brace" },
	}
}

// statement is "let" ident "=" number, used to exercise the shape-derived
// half of completion when the assignment's right-hand side is missing.
func statement() shape.Shape {
	return shape.Seq{Shapes: []shape.Shape{
		shape.Term{Matcher: shape.ByText("let")},
		shape.Term{Matcher: shape.ByKind(atom.Identifier)},
		shape.Term{Matcher: shape.ByText("=")},
		shape.Term{Matcher: shape.ByKind(atom.Number)},
	}}
}

func TestCompleteSuggestsVisibleBindings(t *testing.T) {
	text := "let x { "
	trees := lex.Lex(text, testLanguage())
	cfg := testConfig()
	root := scope.BindingPass(trees, cfg)
	scope.ReferencePass(trees, root, cfg)

	ctx := shape.NewMatchContext()
	items := complete.Complete(trees, root, cfg, shape.Rep{Shape: statement()}, ctx, len(text))

	var labels []string
	for _, it := range items {
		if it.Kind == "binding" {
			labels = append(labels, it.Label)
		}
	}
	assert.Contains(t, labels, "x")
}

func TestCompleteSuggestsExpectedShapeAtFailurePoint(t *testing.T) {
	text := "let x ="
	trees := lex.Lex(text, testLanguage())
	cfg := testConfig()
	root := scope.BindingPass(trees, cfg)
	scope.ReferencePass(trees, root, cfg)

	ctx := shape.NewMatchContext()
	items := complete.Complete(trees, root, cfg, statement(), ctx, 0)

	var sawShapeSuggestion bool
	for _, it := range items {
		if it.Kind == "shape" {
			sawShapeSuggestion = true
			assert.Equal(t, atom.Number.String(), it.Label)
		}
	}
	assert.True(t, sawShapeSuggestion)
}
