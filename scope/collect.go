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

package scope

import "github.com/mcparse/mcparse/tree"

// CollectScopeAt walks trees (already processed by BindingPass, so that
// Delimited nodes crossing a scope boundary have a corresponding child
// Scope reachable from root) until it reaches the deepest node whose span
// contains targetOffset, and returns the ScopeStack as it would read at
// that point.
//
// [atom.Span.Contains] already includes the end offset, which is exactly
// spec.md §4.3's rule that an unclosed Delimited node's "inside" test
// includes its end (a cursor sitting at end of file is still inside the
// unclosed group it never left).
func CollectScopeAt(trees []tree.TokenTree, root *Scope, targetOffset int, cfg *Config) ScopeStack {
	stack := ScopeStack{root}
	return collect(trees, root, targetOffset, cfg, stack)
}

func collect(trees []tree.TokenTree, cur *Scope, targetOffset int, cfg *Config, stack ScopeStack) ScopeStack {
	for _, t := range trees {
		if !t.Span().Contains(targetOffset) {
			continue
		}
		switch t.Kind() {
		case tree.DelimitedNode:
			child := cur
			if cfg.OpensScope != nil && cfg.OpensScope(t.Delimiter()) {
				child = childScopeFor(cur, t.Span())
				stack = append(stack, child)
			}
			return collect(t.Children(), child, targetOffset, cfg, stack)
		case tree.GroupNode:
			return collect(t.Children(), cur, targetOffset, cfg, stack)
		default:
			return stack
		}
	}
	return stack
}
