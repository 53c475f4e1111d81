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

// BindingID is an opaque, monotonically-assigned identifier linking a
// reference occurrence of a name to the declaration site that introduced it.
//
// The zero value, NoBinding, means "not yet resolved" (or "not resolvable").
// It lives in this package, rather than package scope, because a [Token]
// carries one directly and atom must not import scope (scope walks trees of
// tokens, so the dependency would be circular).
type BindingID uint32

// NoBinding is the zero value of BindingID, meaning the slot is unset.
const NoBinding BindingID = 0

// Token is the leaf unit produced by the lexer: a run of text tagged with an
// atom Kind, plus a Span locating it in the source, plus a Binding slot that
// starts empty and is populated at most once, by the scoping passes.
type Token struct {
	Kind    Kind
	Text    string
	Span    Span
	Binding BindingID
}

// IsBound reports whether the scoping passes have assigned a binding to this
// token.
func (t Token) IsBound() bool {
	return t.Binding != NoBinding
}
