// Copyright 2025 Ian Lewis
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

package jsonutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    any
		indent   string
		expected string
	}{
		{
			name:     "compact",
			value:    []any{"mi", 0, []string{"me"}},
			expected: `["mi",0,["me"]]`,
		},
		{
			name:     "html",
			value:    "<b>&</b>",
			expected: `"<b>&</b>"`,
		},
		{
			name:     "non-ascii",
			value:    "我 é",
			expected: `"我 é"`,
		},
		{
			name:     "line separators",
			value:    "a\u2028b\u2029c",
			expected: "\"a\u2028b\u2029c\"",
		},
		{
			name:     "escaped backslash",
			value:    `\u2028`,
			expected: `"\\u2028"`,
		},
		{
			name:     "other escapes",
			value:    "\"\\\n\u0001",
			expected: `"\"\\\n\u0001"`,
		},
		{
			name:     "indent",
			value:    map[string]any{"title": "mi\u2028"},
			indent:   "  ",
			expected: "{\n  \"title\": \"mi\u2028\"\n}",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			b, err := Marshal(test.value, test.indent)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if diff := cmp.Diff(test.expected, string(b)); diff != "" {
				t.Fatalf("Marshal (-want, +got):\n%s", diff)
			}
		})
	}
}
