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

// Package jsonutil encodes JSON documents the way dictionary files are
// written: no HTML escaping, no trailing newline and non-ASCII text kept as
// literal UTF-8.
package jsonutil

import (
	"bytes"
	"encoding/json"
)

// Marshal encodes v. If indent is not empty, the output is indented with it.
//
// encoding/json always escapes U+2028 and U+2029. Marshal writes them as
// literal characters like every other non-ASCII rune.
func Marshal(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		//nolint:wrapcheck // error should not be wrapped
		return nil, err
	}
	return unescapeSeparators(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

var (
	lineSep = []byte("\u2028")
	paraSep = []byte("\u2029")
)

// unescapeSeparators replaces the \u2028 and \u2029 escapes in encoded JSON
// with the raw characters. Escaped backslashes are skipped so that a literal
// `\u2028` in a string value is left alone.
func unescapeSeparators(b []byte) []byte {
	if !bytes.Contains(b, []byte(`\u202`)) {
		return b
	}

	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] != '\\' || i+1 >= len(b) {
			out = append(out, b[i])
			continue
		}
		if b[i+1] != 'u' || i+6 > len(b) {
			out = append(out, b[i], b[i+1])
			i++
			continue
		}
		switch string(b[i+2 : i+6]) {
		case "2028":
			out = append(out, lineSep...)
		case "2029":
			out = append(out, paraSep...)
		default:
			out = append(out, b[i:i+6]...)
		}
		i += 5
	}
	return out
}
