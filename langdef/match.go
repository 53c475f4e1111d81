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

package langdef

import "github.com/bmatcuk/doublestar/v4"

// MatchesFile reports whether path is claimed by one of spec's Files
// glob patterns, used to pick which language definition applies to a
// given source file in a multi-language workspace.
func MatchesFile(spec *Spec, path string) (bool, error) {
	for _, pattern := range spec.Files {
		ok, err := doublestar.Match(pattern, path)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
