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

// Package atom defines the recognisers that turn a prefix of source text
// into a single Token, and the Cursor they consume from.
package atom

import "fmt"

// Position is a byte offset together with the line/column it corresponds to.
//
// Line and Column are both one-based, matching editor conventions.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span is a half-open range [Start, End) of source text.
type Span struct {
	Start, End Position
}

// Len returns the number of bytes spanned.
func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}

// Contains reports whether offset falls within this span. The end of the
// span is included, so that a cursor sitting immediately after the last
// byte of an (unclosed) span is still considered inside it.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start.Offset && offset <= s.End.Offset
}

// Join returns the smallest span containing both a and b.
func Join(a, b Span) Span {
	start, end := a.Start, a.End
	if b.Start.Offset < start.Offset {
		start = b.Start
	}
	if b.End.Offset > end.Offset {
		end = b.End
	}
	return Span{Start: start, End: end}
}
