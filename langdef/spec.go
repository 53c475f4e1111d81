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

// Package langdef loads the serializable half of a language definition —
// its lexical recognizers, delimiters, binding keywords, and the file
// globs it claims — from YAML, and builds them into the lex.Language and
// scope.Config the rest of the pipeline runs on. A language's grammar
// Shape and macro Table are Go closures and cannot round-trip through
// YAML; New attaches those separately once a Spec has been built.
package langdef

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// RecognizerSpec names one lexical recognizer and its construction
// arguments. Kind selects which atom.Recognizer constructor Build calls;
// Args supplies its arguments in constructor order, each as a string
// (a single-byte Args entry is used where the constructor wants a byte).
type RecognizerSpec struct {
	Kind string   `yaml:"kind"`
	Args []string `yaml:"args,omitempty"`
}

// DelimiterSpec is the YAML form of tree.Delimiter.
type DelimiterSpec struct {
	Name  string `yaml:"name"`
	Open  string `yaml:"open"`
	Close string `yaml:"close"`
}

// Spec is the full YAML document describing one language.
type Spec struct {
	Name string `yaml:"name"`

	// Files lists doublestar glob patterns (e.g. "**/*.mcp") identifying
	// source files that belong to this language.
	Files []string `yaml:"files,omitempty"`

	Recognizers []RecognizerSpec `yaml:"recognizers"`
	Delimiters  []DelimiterSpec  `yaml:"delimiters,omitempty"`

	// BindingKeywords lists the keyword texts after which the immediately
	// following identifier is a binding site (scope.KeywordBindingSite).
	BindingKeywords []string `yaml:"binding_keywords,omitempty"`

	// ScopeDelimiters is the subset of Delimiters' names that open a new
	// lexical scope.
	ScopeDelimiters []string `yaml:"scope_delimiters,omitempty"`
}

// LoadYAML decodes a Spec from r.
func LoadYAML(r io.Reader) (*Spec, error) {
	var spec Spec
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		return nil, fmt.Errorf("langdef: decoding spec: %w", err)
	}
	return &spec, nil
}
