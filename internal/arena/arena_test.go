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

package arena_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcparse/mcparse/internal/arena"
)

func TestNewAndIn(t *testing.T) {
	t.Parallel()
	var a arena.Arena[int]

	p1 := a.New(5)
	assert.Equal(t, 5, *p1.In(&a))

	// Force growth across several doubling boundaries; every earlier
	// pointer must keep resolving to the same value afterward, since a
	// Green node's Pointer must stay valid for the arena's entire
	// lifetime even as later siblings are allocated.
	var later []arena.Pointer[int]
	for i := range 64 {
		later = append(later, a.New(i+100))
	}

	assert.Equal(t, 5, *p1.In(&a))
	for i, p := range later {
		assert.Equal(t, i+100, *p.In(&a))
	}
}

func TestPointerNil(t *testing.T) {
	t.Parallel()

	var p arena.Pointer[int]
	assert.True(t, p.Nil())

	var a arena.Arena[int]
	p = a.New(1)
	assert.False(t, p.Nil())
}
