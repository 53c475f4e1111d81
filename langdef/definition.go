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
	"io"

	"github.com/mcparse/mcparse/lex"
	"github.com/mcparse/mcparse/macro"
	"github.com/mcparse/mcparse/scope"
	"github.com/mcparse/mcparse/shape"
)

// LanguageDefinition bundles everything the pipeline needs for one
// language: the YAML-serializable lexing and scoping halves built by
// Build, plus the grammar Shape and macro Table a caller assembles in
// Go, since neither can be expressed as data.
type LanguageDefinition struct {
	Name        string
	Language    *lex.Language
	ScopeConfig *scope.Config
	Grammar     shape.Shape
	Macros      *macro.Table
}

// New builds a LanguageDefinition directly from in-memory pieces,
// bypassing YAML entirely. This is the path a language embedded in Go
// code (rather than loaded from a spec file) uses.
func New(name string, lang *lex.Language, scopeCfg *scope.Config, grammar shape.Shape, macros *macro.Table) *LanguageDefinition {
	return &LanguageDefinition{Name: name, Language: lang, ScopeConfig: scopeCfg, Grammar: grammar, Macros: macros}
}

// FromSpec builds the lexing and scoping halves of a LanguageDefinition
// from a loaded Spec, leaving Grammar and Macros for the caller to
// attach with WithGrammar/WithMacros.
func FromSpec(spec *Spec) (*LanguageDefinition, error) {
	lang, cfg, err := Build(spec)
	if err != nil {
		return nil, err
	}
	return &LanguageDefinition{Name: spec.Name, Language: lang, ScopeConfig: cfg}, nil
}

// WithGrammar attaches a grammar Shape to a LanguageDefinition built from
// a Spec, returning the same value for chaining.
func (d *LanguageDefinition) WithGrammar(grammar shape.Shape) *LanguageDefinition {
	d.Grammar = grammar
	return d
}

// WithMacros attaches a macro Table to a LanguageDefinition built from a
// Spec, returning the same value for chaining.
func (d *LanguageDefinition) WithMacros(macros *macro.Table) *LanguageDefinition {
	d.Macros = macros
	return d
}

// Load reads a host-supplied YAML bundle from r and builds its lexing
// and scoping halves, equivalent to LoadYAML followed by FromSpec.
func Load(r io.Reader) (*LanguageDefinition, error) {
	spec, err := LoadYAML(r)
	if err != nil {
		return nil, err
	}
	return FromSpec(spec)
}
