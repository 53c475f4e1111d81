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

package lex

import (
	"github.com/mcparse/mcparse/atom"
	"github.com/mcparse/mcparse/internal/trie"
	"github.com/mcparse/mcparse/tree"
)

// builder is an in-progress Delimited node: the stack entry pushed when an
// opener is consumed and popped when its closer is found (or end of input
// is reached).
type builder struct {
	delim    tree.Delimiter
	start    atom.Position
	children []tree.TokenTree
}

// Lex turns text into a total, balanced []tree.TokenTree: every byte is
// accounted for by exactly one produced token, including synthetic Error
// atoms for text matched by no recogniser. Lex always succeeds.
//
// Determinism: for a fixed Language, Lex is a pure function of text.
func Lex(text string, lang *Language) []tree.TokenTree {
	var openers trie.Trie[tree.Delimiter]
	for _, d := range lang.Delimiters {
		openers.Insert(d.Open, d)
	}

	root := &builder{}
	stack := []*builder{root}
	cur := atom.NewCursor(text)

	for !cur.Done() {
		top := stack[len(stack)-1]

		if openText, delim, ok := matchOpener(&openers, cur); ok {
			start := cur.Position()
			cur = cur.Advance(len(openText))
			stack = append(stack, &builder{delim: delim, start: start})
			continue
		}

		if len(stack) > 1 && cur.HasPrefix(top.delim.Close) {
			cur = cur.Advance(len(top.delim.Close))
			popClosed(&stack, cur.Position())
			continue
		}

		if matched, kind, ok := matchLongestAtom(lang.Recognizers, cur); ok {
			start := cur.Position()
			next := cur.Advance(len(matched))
			top.children = append(top.children, tree.NewAtom(atom.Token{
				Kind: kind, Text: matched,
				Span: atom.Span{Start: start, End: next.Position()},
			}))
			cur = next
			continue
		}

		start := cur.Position()
		next, g := cur.AdvanceGrapheme()
		top.children = append(top.children, tree.NewAtom(atom.Token{
			Kind: atom.Error, Text: g,
			Span: atom.Span{Start: start, End: next.Position()},
		}))
		cur = next
	}

	for len(stack) > 1 {
		popUnclosed(&stack, cur.Position())
	}
	return root.children
}

// matchOpener checks whether cur starts with any configured delimiter
// opener, preferring the longest match (a trie property) so that, e.g., a
// three-character opener wins over a one-character prefix of it.
func matchOpener(openers *trie.Trie[tree.Delimiter], cur atom.Cursor) (string, tree.Delimiter, bool) {
	prefix, delim := openers.Get(cur.Rest())
	if prefix == "" {
		return "", tree.Delimiter{}, false
	}
	return prefix, delim, true
}

// matchLongestAtom tries every recogniser in declaration order and adopts
// the longest successful match, with ties broken in favour of the earlier
// recogniser (spec.md §4.2 step 2).
func matchLongestAtom(recognizers []atom.Recognizer, cur atom.Cursor) (string, atom.Kind, bool) {
	bestLen := -1
	var bestText string
	var bestKind atom.Kind
	for _, r := range recognizers {
		matched, ok := r.Match(cur)
		if !ok || len(matched) <= bestLen {
			continue
		}
		bestLen = len(matched)
		bestText = matched
		bestKind = r.Kind()
	}
	if bestLen <= 0 {
		return "", 0, false
	}
	return bestText, bestKind, true
}

// popClosed finalises the top-of-stack builder as a closed Delimited node
// ending at end, and appends it to the new top of stack.
func popClosed(stack *[]*builder, end atom.Position) {
	finishPop(stack, end, true)
}

// popUnclosed finalises the top-of-stack builder as an unclosed Delimited
// node, used both at end of input and nowhere else: every other pop goes
// through popClosed.
func popUnclosed(stack *[]*builder, end atom.Position) {
	finishPop(stack, end, false)
}

func finishPop(stack *[]*builder, end atom.Position, closed bool) {
	s := *stack
	finished := s[len(s)-1]
	s = s[:len(s)-1]
	*stack = s

	span := atom.Span{Start: finished.start, End: end}
	node := tree.NewDelimited(finished.delim, finished.children, closed, span)
	s[len(s)-1].children = append(s[len(s)-1].children, node)
}
