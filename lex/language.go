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

// Package lex implements the atomic lexer: turning source text into a
// flat-but-balanced []tree.TokenTree, total over every byte of input.
package lex

import (
	"github.com/mcparse/mcparse/atom"
	"github.com/mcparse/mcparse/tree"
)

// Language is the lexer's configuration: the atom recognisers to try, in
// declaration order, and the delimiter pairs that introduce nesting.
//
// A Language is read-only once built and safe to share across concurrently
// running lex calls.
type Language struct {
	Recognizers []atom.Recognizer
	Delimiters  []tree.Delimiter
}
