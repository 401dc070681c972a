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

// Package termbank implements reading and writing Yomitan term bank files.
//
// A term bank is a JSON array of terms. Each term is itself an array with
// exactly eight positional fields:
//  1. expression: the dictionary headword.
//  2. reading: the reading of the headword. Empty for Toki Pona.
//  3. definition tags: space separated tag names.
//  4. rules: space separated deinflection rule identifiers.
//  5. score: a number used to order results.
//  6. definitions: an array of definition strings.
//  7. sequence: a number grouping related terms.
//  8. term tags: space separated tag names.
package termbank

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/ianlewis/go-yomitan/internal/jsonutil"
)

// termFields is the number of positional fields in a term.
const termFields = 8

// ErrInvalidTerm indicates a term that does not have the expected shape.
var ErrInvalidTerm = errors.New("invalid term")

// FileName returns the name of the n-th term bank file in a dictionary.
// Numbering starts at 1.
func FileName(n int) string {
	return fmt.Sprintf("term_bank_%d.json", n)
}

// Term is a single term bank entry.
type Term struct {
	Expression     string
	Reading        string
	DefinitionTags string
	Rules          string
	Score          int
	Definitions    []string
	Sequence       int
	TermTags       string
}

// New returns a term for a headword with a single definition. All other
// fields are left at their zero values.
func New(expression, definition string) *Term {
	return &Term{
		Expression:  expression,
		Definitions: []string{definition},
	}
}

// MarshalJSON implements [json.Marshaler]. The term is encoded as a
// positional array.
func (t *Term) MarshalJSON() ([]byte, error) {
	defs := t.Definitions
	if defs == nil {
		defs = []string{}
	}
	return marshal([]any{
		t.Expression,
		t.Reading,
		t.DefinitionTags,
		t.Rules,
		t.Score,
		defs,
		t.Sequence,
		t.TermTags,
	})
}

// UnmarshalJSON implements [json.Unmarshaler].
func (t *Term) UnmarshalJSON(b []byte) error {
	var fields []json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTerm, err)
	}
	if len(fields) != termFields {
		return fmt.Errorf("%w: got %d fields, want %d", ErrInvalidTerm, len(fields), termFields)
	}

	var term Term
	for i, dst := range []any{
		&term.Expression,
		&term.Reading,
		&term.DefinitionTags,
		&term.Rules,
		&term.Score,
		&term.Definitions,
		&term.Sequence,
		&term.TermTags,
	} {
		if err := json.Unmarshal(fields[i], dst); err != nil {
			return fmt.Errorf("%w: field %d: %w", ErrInvalidTerm, i+1, err)
		}
	}

	*t = term
	return nil
}

// Write writes terms to w as a single compact JSON array. HTML characters are
// not escaped and no trailing newline is written.
func Write(w io.Writer, terms []*Term) error {
	if terms == nil {
		terms = []*Term{}
	}
	b, err := marshal(terms)
	if err != nil {
		return fmt.Errorf("encoding term bank: %w", err)
	}
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("writing term bank: %w", err)
	}
	return nil
}

// Read reads a term bank from r.
func Read(r io.Reader) ([]*Term, error) {
	var terms []*Term
	if err := json.NewDecoder(r).Decode(&terms); err != nil {
		return nil, fmt.Errorf("decoding term bank: %w", err)
	}
	for i, t := range terms {
		if t == nil {
			return nil, fmt.Errorf("%w: term %d is null", ErrInvalidTerm, i)
		}
	}
	return terms, nil
}

// marshal encodes v without HTML escaping and without the trailing newline
// added by json.Encoder.
func marshal(v any) ([]byte, error) {
	return jsonutil.Marshal(v, "")
}
