// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package yomitan

import (
	"strings"

	"github.com/k3a/html2text"

	"github.com/ianlewis/go-yomitan/termbank"
)

// Entry is a dictionary search result.
type Entry struct {
	term *termbank.Term
}

// Title return the entry's headword.
func (e *Entry) Title() string {
	return e.term.Expression
}

// Definitions returns the entry's definitions.
func (e *Entry) Definitions() []string {
	return e.term.Definitions
}

// Term returns the underlying term bank entry.
func (e *Entry) Term() *termbank.Term {
	return e.term
}

// String returns a plain text representation of the Entry. Markup in
// definitions is converted to text.
func (e *Entry) String() string {
	var b strings.Builder
	b.WriteString(e.term.Expression)
	b.WriteString("\n")
	for _, d := range e.term.Definitions {
		b.WriteString(html2text.HTML2Text(d))
		b.WriteString("\n")
	}
	return b.String()
}
