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

package langdef_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mcparse/mcparse/langdef"
	"github.com/mcparse/mcparse/lex"
)

const sampleYAML = `
name: toy
files:
  - "**/*.toy"
recognizers:
  - kind: whitespace
  - kind: ident
  - kind: number
  - kind: keyword
    args: ["let"]
  - kind: operators
    args: ["=", "+"]
delimiters:
  - name: brace
    open: "{"
    close: "}"
binding_keywords: ["let"]
scope_delimiters: ["brace"]
`

func TestLoadYAMLAndBuild(t *testing.T) {
	spec, err := langdef.LoadYAML(strings.NewReader(sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, "toy", spec.Name)

	def, err := langdef.FromSpec(spec)
	require.NoError(t, err)

	trees := lex.Lex("let x = 1 + 2", def.Language)
	require.NotEmpty(t, trees)
	assert.Equal(t, "let", trees[0].Atom().Text)
}

func TestBuildRejectsUnknownRecognizerKind(t *testing.T) {
	spec := &langdef.Spec{
		Name:        "bad",
		Recognizers: []langdef.RecognizerSpec{{Kind: "not-a-real-kind"}},
	}
	_, _, err := langdef.Build(spec)
	assert.Error(t, err)
}

func TestMatchesFileGlob(t *testing.T) {
	spec := &langdef.Spec{Files: []string{"**/*.toy"}}

	ok, err := langdef.MatchesFile(spec, "examples/hello.toy")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = langdef.MatchesFile(spec, "examples/hello.rs")
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestSpecRoundTripsThroughYAML marshals a Spec back to YAML and reloads
// it, asserting the two values are identical. cmp.Diff's output is folded
// into the failure message so a field-level mismatch is legible instead
// of a single opaque "not equal".
func TestSpecRoundTripsThroughYAML(t *testing.T) {
	spec, err := langdef.LoadYAML(strings.NewReader(sampleYAML))
	require.NoError(t, err)

	out, err := yaml.Marshal(spec)
	require.NoError(t, err)

	roundTripped, err := langdef.LoadYAML(strings.NewReader(string(out)))
	require.NoError(t, err)

	if diff := cmp.Diff(spec, roundTripped); diff != "" {
		t.Fatalf("spec changed across a YAML round trip (-want +got):\n%s", diff)
	}
}

// TestRecognizerKindsMatchExpectedSet renders the expected and actual
// recognizer-kind lists as line-delimited text and reports a unified diff
// on mismatch, rather than a plain slice-inequality assertion.
func TestRecognizerKindsMatchExpectedSet(t *testing.T) {
	spec, err := langdef.LoadYAML(strings.NewReader(sampleYAML))
	require.NoError(t, err)

	want := []string{"whitespace", "ident", "number", "keyword", "operators"}
	var got []string
	for _, rs := range spec.Recognizers {
		got = append(got, rs.Kind)
	}

	if !cmp.Equal(want, got) {
		diff := difflib.UnifiedDiff{
			A:        difflib.SplitLines(strings.Join(want, "\n") + "\n"),
			B:        difflib.SplitLines(strings.Join(got, "\n") + "\n"),
			FromFile: "want",
			ToFile:   "got",
			Context:  2,
		}
		text, derr := difflib.GetUnifiedDiffString(diff)
		require.NoError(t, derr)
		t.Fatalf("recognizer kinds mismatch:\n%s", text)
	}
}
