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

package incremental

import (
	"github.com/mcparse/mcparse/atom"
	"github.com/mcparse/mcparse/internal/arena"
	"github.com/mcparse/mcparse/internal/intern"
	"github.com/mcparse/mcparse/lex"
	"github.com/mcparse/mcparse/tree"
)

// pathStep records one step taken while descending from the root toward
// the node an edit was located inside: the ancestor, and which of its
// children the descent continued into. Rebuilding after a splice walks
// this path in reverse, cloning each ancestor with exactly one child
// pointer replaced.
type pathStep struct {
	node       tree.Red
	childIndex int
}

// ApplyEdit re-lexes only as much of root's source text as necessary to
// reflect edit, returning a new Green root. It implements the locate,
// re-lex, and splice-or-bubble-up algorithm: find the deepest Delimited
// node whose content fully contains the edited range, re-lex that node's
// content alone, and graft the result back in, sharing every untouched
// sibling subtree by arena pointer. If no enclosing Delimited node can
// absorb the edit without producing an unbalanced result, the search
// bubbles up to successively shallower Delimited ancestors, and finally
// falls back to re-lexing the whole file.
func ApplyEdit(root arena.Pointer[tree.Green], ar *tree.Arena, table *intern.Table, edit TextEdit, lang *lex.Language) arena.Pointer[tree.Green] {
	red := tree.RedAt(root, ar, 0)

	target, path, ok := locate(red, edit)
	for ok {
		if newRoot, success := tryRelex(ar, table, target, path, edit, lang); success {
			return newRoot
		}
		if len(path) == 0 {
			break
		}
		target = path[len(path)-1].node
		path = path[:len(path)-1]
		if target.Green().Kind != tree.DelimitedNode {
			break
		}
	}
	return fullRelex(ar, table, red, edit, lang)
}

// locate descends from root to the deepest Delimited node whose content
// span (excluding its own opening and closing delimiter text) fully
// contains edit's byte range, recording the path taken to reach it.
func locate(root tree.Red, edit TextEdit) (tree.Red, []pathStep, bool) {
	return locateRec(root, edit, nil)
}

func locateRec(node tree.Red, edit TextEdit, path []pathStep) (tree.Red, []pathStep, bool) {
	containsHere := false
	if node.Green().Kind == tree.DelimitedNode {
		cs, ce := contentRange(node)
		if edit.Start < cs || edit.End > ce {
			return tree.Red{}, nil, false
		}
		containsHere = true
	}

	for i, child := range node.Children() {
		if deepest, deeperPath, ok := locateRec(child, edit, append(path, pathStep{node, i})); ok {
			return deepest, deeperPath, true
		}
	}

	if containsHere {
		return node, path, true
	}
	return tree.Red{}, nil, false
}

// contentRange returns the absolute byte range of a Delimited node's
// content, excluding its opening and closing delimiter text.
func contentRange(node tree.Red) (start, end int) {
	delim := node.Green().Delim
	return node.Offset() + len(delim.Open), node.End() - len(delim.Close)
}

// tryRelex attempts to re-lex node's content with edit applied, splicing
// the result back into a freshly rebuilt path to the root. Reports
// success only if node is itself a Delimited node whose content contains
// edit and the re-lexed content is balanced.
func tryRelex(ar *tree.Arena, table *intern.Table, node tree.Red, path []pathStep, edit TextEdit, lang *lex.Language) (arena.Pointer[tree.Green], bool) {
	if node.Green().Kind != tree.DelimitedNode {
		return arena.Pointer[tree.Green](0), false
	}
	cs, ce := contentRange(node)
	if edit.Start < cs || edit.End > ce {
		return arena.Pointer[tree.Green](0), false
	}

	delim := node.Green().Delim
	fullText := tree.Text(node.Green(), ar, table)
	content := fullText[len(delim.Open) : len(fullText)-len(delim.Close)]

	relStart, relEnd := edit.Start-cs, edit.End-cs
	newContent := content[:relStart] + edit.NewText + content[relEnd:]

	newTrees := lex.Lex(newContent, lang)
	if !balanced(newTrees) {
		return arena.Pointer[tree.Green](0), false
	}

	children := make([]arena.Pointer[tree.Green], len(newTrees))
	childWidth := 0
	for i, t := range newTrees {
		children[i] = tree.GreenOf(t, ar, table)
		childWidth += t.Span().Len()
	}
	newWidth := len(delim.Open) + childWidth + len(delim.Close)
	newNode := ar.New(tree.Green{
		Kind: tree.DelimitedNode, Width: newWidth,
		Delim: delim, Closed: node.Green().Closed, Children: children,
	})

	return rebuild(ar, path, newNode, newWidth-node.Green().Width), true
}

// balanced reports whether a freshly re-lexed slice of top-level trees is
// safe to splice back in: no unmatched delimiter or unrecognized byte at
// the top level, which would otherwise indicate the edit crossed a
// delimiter boundary that re-lexing this node alone cannot resolve.
func balanced(trees []tree.TokenTree) bool {
	for _, t := range trees {
		switch t.Kind() {
		case tree.ErrorNode:
			return false
		case tree.DelimitedNode:
			if !t.IsClosed() {
				return false
			}
		case tree.AtomNode:
			if t.Atom().Kind == atom.Error {
				return false
			}
		}
	}
	return true
}

// rebuild clones every ancestor recorded in path, from innermost to
// outermost, replacing the one child pointer that leads to the edited
// subtree and adjusting each ancestor's width by delta. Every other
// child pointer is copied unchanged, so untouched sibling subtrees are
// shared with the old tree rather than recopied.
func rebuild(ar *tree.Arena, path []pathStep, newChild arena.Pointer[tree.Green], delta int) arena.Pointer[tree.Green] {
	cur := newChild
	for i := len(path) - 1; i >= 0; i-- {
		step := path[i]
		g := *step.node.Green()
		children := make([]arena.Pointer[tree.Green], len(g.Children))
		copy(children, g.Children)
		children[step.childIndex] = cur
		g.Children = children
		g.Width += delta
		cur = ar.New(g)
	}
	return cur
}

// fullRelex re-lexes the entire file with edit applied. It is the
// fallback used when no enclosing delimiter can absorb the edit.
func fullRelex(ar *tree.Arena, table *intern.Table, red tree.Red, edit TextEdit, lang *lex.Language) arena.Pointer[tree.Green] {
	oldText := tree.Text(red.Green(), ar, table)
	newText := oldText[:edit.Start] + edit.NewText + oldText[edit.End:]

	newTrees := lex.Lex(newText, lang)
	root := tree.NewGroup(newTrees, wholeSpan(newText))
	return tree.GreenOf(root, ar, table)
}

func wholeSpan(text string) atom.Span {
	end := atom.NewCursor(text).Advance(len(text)).Position()
	return atom.Span{Start: atom.Position{Offset: 0, Line: 1, Column: 1}, End: end}
}
