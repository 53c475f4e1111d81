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

package tree

import (
	"github.com/mcparse/mcparse/internal/arena"
	"github.com/mcparse/mcparse/internal/interval"
)

// Red is a transient wrapper around a Green node that supplies the
// absolute byte offset the Green node occurs at. Unlike Green, a Red value
// is not meant to outlive a single traversal: it is recreated lazily as a
// walk descends, with each Red's offset computed from its parent's offset
// plus the widths of its preceding siblings.
type Red struct {
	green  *Green
	arena  *Arena
	offset int
	parent *Red
}

// RedAt wraps green, rooted in ar, as a Red positioned at offset. This is
// the entry point for every traversal: offset is usually 0 for a
// whole-file root, but [incremental.ApplyEdit] re-enters a subtree at its
// absolute offset within the surrounding file.
func RedAt(green arena.Pointer[Green], ar *Arena, offset int) Red {
	return Red{green: green.In(ar), arena: ar, offset: offset}
}

// Green returns the wrapped Green node.
func (r Red) Green() *Green { return r.green }

// Offset returns this node's absolute byte offset within the file.
func (r Red) Offset() int { return r.offset }

// End returns the absolute byte offset immediately after this node.
func (r Red) End() int { return r.offset + r.green.Width }

// Contains reports whether offset falls within this node's span, inclusive
// of the end offset (so a cursor sitting just past the last byte of an
// unclosed node is still considered inside it).
func (r Red) Contains(offset int) bool {
	return offset >= r.offset && offset <= r.End()
}

// Parent returns the enclosing Red node, if this one was reached by
// descending from one.
func (r Red) Parent() (Red, bool) {
	if r.parent == nil {
		return Red{}, false
	}
	return *r.parent, true
}

// Children returns the immediate children of this node as Red values,
// each with its absolute offset computed from the cumulative width of its
// preceding siblings. Returns nil for a leaf (AtomNode) node.
func (r Red) Children() []Red {
	if len(r.green.Children) == 0 {
		return nil
	}
	out := make([]Red, len(r.green.Children))
	offset := r.offset
	for i, ptr := range r.green.Children {
		child := ptr.In(r.arena)
		out[i] = Red{green: child, arena: r.arena, offset: offset, parent: &r}
		offset += child.Width
	}
	return out
}

// childIndex builds an offset-range index over r's immediate children,
// keyed by each child's inclusive [start, end] byte range, so that
// descending through a wide node (a long Delimited group) need not scan
// every child linearly.
func (r Red) childIndex() (interval.Map[int, int], []Red) {
	children := r.Children()
	var idx interval.Map[int, int]
	for i, c := range children {
		end := c.End()
		if end > c.Offset() {
			end-- // Map intervals are inclusive; Span end offsets are exclusive.
		}
		idx.Insert(c.Offset(), end, i)
	}
	return idx, children
}

// FindDeepest returns the deepest Red descendant of root (inclusive) whose
// span contains targetOffset, descending via childIndex at each level. It
// is the basis for [scope.CollectScopeAt] and the locate step of
// [incremental.ApplyEdit].
func FindDeepest(root Red, targetOffset int) Red {
	node := root
	for {
		if !node.Contains(targetOffset) {
			return node
		}
		idx, children := node.childIndex()
		if len(children) == 0 {
			return node
		}
		hit := idx.Get(targetOffset)
		if hit.Value == nil {
			return node
		}
		node = children[*hit.Value]
	}
}
