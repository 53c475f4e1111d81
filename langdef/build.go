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

package langdef

import (
	"fmt"

	"github.com/mcparse/mcparse/atom"
	"github.com/mcparse/mcparse/lex"
	"github.com/mcparse/mcparse/scope"
	"github.com/mcparse/mcparse/tree"
)

// Build assembles spec's lexical and scoping halves into a lex.Language
// and a scope.Config. It does not touch Files; use MatchesFile for that.
func Build(spec *Spec) (*lex.Language, *scope.Config, error) {
	lang := &lex.Language{}
	for _, rs := range spec.Recognizers {
		r, err := buildRecognizer(rs)
		if err != nil {
			return nil, nil, fmt.Errorf("langdef: building %q for %s: %w", rs.Kind, spec.Name, err)
		}
		lang.Recognizers = append(lang.Recognizers, r)
	}
	for _, ds := range spec.Delimiters {
		lang.Delimiters = append(lang.Delimiters, tree.Delimiter{Name: ds.Name, Open: ds.Open, Close: ds.Close})
	}

	scopeNames := make(map[string]bool, len(spec.ScopeDelimiters))
	for _, name := range spec.ScopeDelimiters {
		scopeNames[name] = true
	}
	cfg := &scope.Config{
		IsBindingSite: scope.KeywordBindingSite(spec.BindingKeywords...),
		OpensScope:    func(d tree.Delimiter) bool { return scopeNames[d.Name] },
	}

	return lang, cfg, nil
}

func buildRecognizer(rs RecognizerSpec) (atom.Recognizer, error) {
	switch rs.Kind {
	case "whitespace":
		return atom.WhitespaceRun(), nil
	case "line_comment":
		if len(rs.Args) != 1 {
			return nil, fmt.Errorf("line_comment wants 1 arg, got %d", len(rs.Args))
		}
		return atom.LineComment(rs.Args[0]), nil
	case "block_comment":
		if len(rs.Args) != 2 {
			return nil, fmt.Errorf("block_comment wants 2 args, got %d", len(rs.Args))
		}
		return atom.BlockComment(rs.Args[0], rs.Args[1]), nil
	case "ident":
		return atom.DefaultIdent(), nil
	case "number":
		return atom.DecimalNumber(), nil
	case "string":
		if len(rs.Args) != 2 || len(rs.Args[0]) != 1 || len(rs.Args[1]) != 1 {
			return nil, fmt.Errorf("string wants 2 single-byte args (quote, escape), got %v", rs.Args)
		}
		return atom.QuotedString(rs.Args[0][0], rs.Args[1][0]), nil
	case "keyword":
		if len(rs.Args) != 1 {
			return nil, fmt.Errorf("keyword wants 1 arg, got %d", len(rs.Args))
		}
		return atom.Keyword(rs.Args[0], atom.Identifier), nil
	case "operators":
		if len(rs.Args) == 0 {
			return nil, fmt.Errorf("operators wants at least 1 arg")
		}
		return atom.Operators(rs.Args...), nil
	default:
		return nil, fmt.Errorf("unknown recognizer kind %q", rs.Kind)
	}
}
