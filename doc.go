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

// Package mcparse is a parsing toolkit for interactive language tooling:
// an atomic lexer, two scoping passes, a combinator algebra for matching
// token-tree shapes, a Pratt-style macro expansion loop, and an
// incremental green/red tree that lets an editor re-lex only the region
// around an edit.
//
// The subpackages do the work; this package re-exports the eight
// operations an embedder crosses the library boundary through, each a
// thin wrapper named after the pipeline stage it drives:
// Lex, Scope, MatchShape, ParseExpression, NewDocument (backing
// GreenOf), RedAt, ApplyEdit, and Complete.
package mcparse
