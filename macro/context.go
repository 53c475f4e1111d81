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

package macro

import (
	"github.com/mcparse/mcparse/shape"
	"github.com/mcparse/mcparse/tree"
)

// NewContext returns a MatchContext whose ParseExpression field recurses
// back into t's expression loop, so that any shape matched through this
// context (including a macro's own Signature) can itself contain a
// nested expression via ctx.ParseExpression.
func NewContext(t *Table) *shape.MatchContext {
	ctx := shape.NewMatchContext()
	ctx.ParseExpression = func(s tree.Stream, minPrecedence uint32) (tree.TokenTree, tree.Stream, error) {
		return t.ParseExpression(s, minPrecedence, ctx)
	}
	return ctx
}
