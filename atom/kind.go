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

package atom

// Kind identifies what kind of atom a particular Token is. The built-in set
// covers spec.md's minimum; a language definition is free to register
// recognisers that produce additional, numerically larger Kinds.
type Kind int

const (
	// Error is the kind of a token synthesised for a byte (or grapheme
	// cluster) matched by no recogniser. Never produced by a language's own
	// atoms.
	Error Kind = iota

	Whitespace
	Comment
	Identifier
	Number
	String
	Boolean
	Null
	Operator

	// FirstUserKind is the smallest Kind value a language definition should
	// use for its own extended atom kinds, leaving room above the built-ins.
	FirstUserKind
)

var builtinNames = map[Kind]string{
	Error:      "Error",
	Whitespace: "Whitespace",
	Comment:    "Comment",
	Identifier: "Identifier",
	Number:     "Number",
	String:     "String",
	Boolean:    "Boolean",
	Null:       "Null",
	Operator:   "Operator",
}

// String implements fmt.Stringer for the built-in kinds; a language
// definition that registers extended kinds should prefer
// [Recognizer.Kind] plus its own name table when describing them to users.
func (k Kind) String() string {
	if name, ok := builtinNames[k]; ok {
		return name
	}
	return "Kind(?)"
}

// IsTrivia reports whether tokens of this kind are skipped by whitespace-
// skipping helpers on [tree.Stream] (see spec.md §4.1).
func (k Kind) IsTrivia() bool {
	return k == Whitespace || k == Comment
}
