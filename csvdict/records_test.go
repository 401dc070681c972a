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

package csvdict

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRecordReader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     string
		expected [][]string
	}{
		{
			name: "basic",
			data: "tok,en\nmi,me\n",
			expected: [][]string{
				{"tok", "en"},
				{"mi", "me"},
			},
		},
		{
			name: "crlf",
			data: "tok,en\r\nmi,me\r\n",
			expected: [][]string{
				{"tok", "en"},
				{"mi", "me"},
			},
		},
		{
			name: "bare cr",
			data: "tok,en\rmi,me",
			expected: [][]string{
				{"tok", "en"},
				{"mi", "me"},
			},
		},
		{
			name: "no trailing newline",
			data: "mi,me",
			expected: [][]string{
				{"mi", "me"},
			},
		},
		{
			name: "empty fields",
			data: ",\nmi,,\n",
			expected: [][]string{
				{"", ""},
				{"mi", "", ""},
			},
		},
		{
			name: "blank lines",
			data: "\nmi,me\n\r\n\nsina,you\n",
			expected: [][]string{
				{"mi", "me"},
				{"sina", "you"},
			},
		},
		{
			name: "quoted",
			data: "mi,\"I, me, we\",\"\"\n",
			expected: [][]string{
				{"mi", "I, me, we", ""},
			},
		},
		{
			name: "escaped quote",
			data: "mi,\"say \"\"hi\"\"\"\n",
			expected: [][]string{
				{"mi", "say \"hi\""},
			},
		},
		{
			name: "quoted newline",
			data: "mi,\"I\r\nme\"\nsina,you\n",
			expected: [][]string{
				{"mi", "I\r\nme"},
				{"sina", "you"},
			},
		},
		{
			name: "quote in unquoted field",
			data: "sina,5\" tall\n",
			expected: [][]string{
				{"sina", "5\" tall"},
			},
		},
		{
			name: "text after closing quote",
			data: "mi,\"I\" or me\n",
			expected: [][]string{
				{"mi", "I or me"},
			},
		},
		{
			name: "unterminated quote",
			data: "mi,\"I\nme",
			expected: [][]string{
				{"mi", "I\nme"},
			},
		},
		{
			name: "non-ascii",
			data: "mi,我\n",
			expected: [][]string{
				{"mi", "我"},
			},
		},
		{
			name:     "empty",
			data:     "",
			expected: nil,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			records, err := NewRecordReader(strings.NewReader(test.data)).ReadAll()
			if err != nil {
				t.Fatalf("ReadAll: %v", err)
			}
			if diff := cmp.Diff(test.expected, records); diff != "" {
				t.Fatalf("ReadAll (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestRecordReader_eof(t *testing.T) {
	t.Parallel()

	r := NewRecordReader(strings.NewReader("mi,me\n"))
	if _, err := r.Read(); err != nil {
		t.Fatalf("Read: %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, err := r.Read(); !errors.Is(err, io.EOF) {
			t.Fatalf("Read: want %v, got %v", io.EOF, err)
		}
	}
}
