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

import "github.com/rivo/uniseg"

// Cursor is a position-tracked view into source text. It is a value type:
// Advance returns a new Cursor rather than mutating the receiver, so a
// Cursor can be cheaply cloned by copying it (used by recognisers that need
// to try a match and roll back).
type Cursor struct {
	rest string
	pos  Position
}

// NewCursor returns a Cursor over the start of text.
func NewCursor(text string) Cursor {
	return Cursor{rest: text, pos: Position{Offset: 0, Line: 1, Column: 1}}
}

// Rest returns the unconsumed suffix of the source text.
func (c Cursor) Rest() string { return c.rest }

// Position returns the current position of the cursor.
func (c Cursor) Position() Position { return c.pos }

// Done reports whether the cursor has consumed all of the text.
func (c Cursor) Done() bool { return len(c.rest) == 0 }

// HasPrefix reports whether the remaining text starts with s.
func (c Cursor) HasPrefix(s string) bool {
	return len(c.rest) >= len(s) && c.rest[:len(s)] == s
}

// Advance consumes n bytes of rest and returns the resulting Cursor.
//
// n must be a valid byte count not splitting a UTF-8 sequence; callers that
// need to step by a single user-perceived character should use
// [Cursor.AdvanceGrapheme] instead.
func (c Cursor) Advance(n int) Cursor {
	consumed := c.rest[:n]
	pos := c.pos
	for _, r := range consumed {
		if r == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	pos.Offset += n
	return Cursor{rest: c.rest[n:], pos: pos}
}

// AdvanceGrapheme consumes a single user-perceived character (grapheme
// cluster) from rest and returns the resulting Cursor and the consumed text.
//
// This is used by the lexer's catch-all "no recogniser matched" step so that
// a multi-codepoint emoji or combining-mark sequence becomes one Error atom
// rather than being split across several, matching the way a terminal or
// editor counts characters.
func (c Cursor) AdvanceGrapheme() (Cursor, string) {
	if c.Done() {
		return c, ""
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(c.rest, -1)
	return c.Advance(len(cluster)), cluster
}
