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

// Package incremental re-lexes the smallest enclosing delimited region
// after a text edit, splicing the result back into an existing Green
// tree instead of re-lexing the whole file.
package incremental

// TextEdit describes a single contiguous replacement of source text:
// the bytes in [Start, End) are replaced with NewText.
type TextEdit struct {
	Start, End int
	NewText    string
}

func (e TextEdit) deltaWidth() int {
	return len(e.NewText) - (e.End - e.Start)
}
