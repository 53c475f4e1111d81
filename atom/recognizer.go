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

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mcparse/mcparse/internal/trie"
)

// Recognizer attempts to consume a prefix of the text remaining at cur and,
// if successful, reports the matched text.
//
// A Recognizer never returns a partial match it isn't willing to have
// adopted: the lexer picks whichever registered Recognizer returns the
// longest Match, breaking ties by declaration order (spec.md §4.2).
type Recognizer interface {
	// Kind is the atom Kind produced when this Recognizer matches.
	Kind() Kind

	// Match reports the text (a non-empty prefix of cur.Rest()) this
	// Recognizer is willing to consume, or ok=false if it does not match
	// here at all.
	Match(cur Cursor) (matched string, ok bool)
}

type funcRecognizer struct {
	kind  Kind
	match func(Cursor) (string, bool)
}

func (f funcRecognizer) Kind() Kind                      { return f.kind }
func (f funcRecognizer) Match(cur Cursor) (string, bool) { return f.match(cur) }

// Func builds a Recognizer from a plain matching function. Most of the
// built-ins below are implemented this way.
func Func(kind Kind, match func(Cursor) (string, bool)) Recognizer {
	return funcRecognizer{kind: kind, match: match}
}

// WhitespaceRun recognises a maximal run of Unicode whitespace, tagged with
// the built-in Whitespace kind.
func WhitespaceRun() Recognizer {
	return Func(Whitespace, func(cur Cursor) (string, bool) {
		rest := cur.Rest()
		n := 0
		for n < len(rest) {
			r, size := utf8.DecodeRuneInString(rest[n:])
			if !unicode.IsSpace(r) {
				break
			}
			n += size
		}
		if n == 0 {
			return "", false
		}
		return rest[:n], true
	})
}

// LineComment recognises text from a fixed prefix (e.g. "//") to the next
// newline or end of input.
func LineComment(prefix string) Recognizer {
	return Func(Comment, func(cur Cursor) (string, bool) {
		if !cur.HasPrefix(prefix) {
			return "", false
		}
		rest := cur.Rest()
		end := len(rest)
		if idx := strings.IndexByte(rest, '\n'); idx >= 0 {
			end = idx
		}
		return rest[:end], true
	})
}

// BlockComment recognises text delimited by open and close, inclusive. If
// close never appears, the comment runs to end of input (the lexer still
// accounts for every byte; an unterminated block comment is not an error at
// the atom level).
func BlockComment(open, close string) Recognizer {
	return Func(Comment, func(cur Cursor) (string, bool) {
		if !cur.HasPrefix(open) {
			return "", false
		}
		rest := cur.Rest()
		idx := strings.Index(rest[len(open):], close)
		if idx < 0 {
			return rest, true
		}
		end := len(open) + idx + len(close)
		return rest[:end], true
	})
}

// Ident recognises a run starting with a rune satisfying isStart and
// continuing with runes satisfying isCont, tagged with the built-in
// Identifier kind.
func Ident(isStart, isCont func(r rune) bool) Recognizer {
	return Func(Identifier, func(cur Cursor) (string, bool) {
		rest := cur.Rest()
		r, size := utf8.DecodeRuneInString(rest)
		if size == 0 || !isStart(r) {
			return "", false
		}
		n := size
		for n < len(rest) {
			r, size := utf8.DecodeRuneInString(rest[n:])
			if !isCont(r) {
				break
			}
			n += size
		}
		return rest[:n], true
	})
}

// DefaultIdent recognises the common `[A-Za-z_][A-Za-z0-9_]*` shape.
func DefaultIdent() Recognizer {
	isLetter := func(r rune) bool { return unicode.IsLetter(r) || r == '_' }
	isLetterOrDigit := func(r rune) bool { return isLetter(r) || unicode.IsDigit(r) }
	return Ident(isLetter, isLetterOrDigit)
}

// DecimalNumber recognises a decimal integer or float: digits, an optional
// `.digits` fraction, and an optional `[eE][+-]?digits` exponent, tagged
// with the built-in Number kind.
func DecimalNumber() Recognizer {
	return Func(Number, func(cur Cursor) (string, bool) {
		rest := cur.Rest()
		n := scanDigits(rest, 0)
		if n == 0 {
			return "", false
		}
		if n < len(rest) && rest[n] == '.' && n+1 < len(rest) && isDigitByte(rest[n+1]) {
			n = scanDigits(rest, n+1)
		}
		if n < len(rest) && (rest[n] == 'e' || rest[n] == 'E') {
			m := n + 1
			if m < len(rest) && (rest[m] == '+' || rest[m] == '-') {
				m++
			}
			if m < len(rest) && isDigitByte(rest[m]) {
				n = scanDigits(rest, m)
			}
		}
		return rest[:n], true
	})
}

func scanDigits(s string, from int) int {
	n := from
	for n < len(s) && isDigitByte(s[n]) {
		n++
	}
	return n
}

func isDigitByte(b byte) bool { return b >= '0' && b <= '9' }

// QuotedString recognises text delimited by a repeated quote byte, with
// escape as an escape character that always consumes the following byte
// (so an escaped quote does not end the string). If the closing quote is
// never found, the string runs to end of input, matching the lexer's total
// coverage guarantee. Tagged with the built-in String kind.
func QuotedString(quote, escape byte) Recognizer {
	return Func(String, func(cur Cursor) (string, bool) {
		rest := cur.Rest()
		if len(rest) == 0 || rest[0] != quote {
			return "", false
		}
		n := 1
		for n < len(rest) {
			switch rest[n] {
			case escape:
				n++
				if n < len(rest) {
					n++
				}
			case quote:
				return rest[:n+1], true
			default:
				n++
			}
		}
		return rest, true
	})
}

// Keyword recognises one fixed literal text, e.g. "true" tagged as Boolean
// or "null" tagged as Null. Longest-match resolution against a broader
// [Identifier] recogniser means a keyword only wins when it is not itself a
// proper prefix of a longer identifier at that position.
func Keyword(text string, kind Kind) Recognizer {
	return Func(kind, func(cur Cursor) (string, bool) {
		if cur.HasPrefix(text) {
			return text, true
		}
		return "", false
	})
}

// Operators recognises the longest of a fixed set of operator texts (e.g.
// "+", "+=", "->") using a longest-prefix trie, so multi-character operators
// are preferred over any single-character prefix of them without the
// recogniser needing to be told the set's internal structure.
func Operators(symbols ...string) Recognizer {
	var t trie.Trie[struct{}]
	for _, s := range symbols {
		t.Insert(s, struct{}{})
	}
	return Func(Operator, func(cur Cursor) (string, bool) {
		prefix, _ := t.Get(cur.Rest())
		if prefix == "" {
			return "", false
		}
		return prefix, true
	})
}
