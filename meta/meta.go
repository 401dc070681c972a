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

// Package meta implements reading and writing Yomitan dictionary index.json
// files.
package meta

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ianlewis/go-yomitan/internal/jsonutil"
)

const (
	// FileName is the name of the index file within a dictionary archive.
	FileName = "index.json"

	// Format is the supported dictionary format version.
	Format = 3

	// Revision is the revision written to new dictionaries.
	Revision = "1.0.0"

	// SourceLanguage is the source language of all dictionaries.
	SourceLanguage = "toki-pona"

	// DefaultAuthor is the author written to new dictionaries.
	DefaultAuthor = "Toki Pona Dictionary Converter"
)

var (
	// ErrUnsupportedFormat indicates an index with an unsupported format version.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrMissingTitle indicates an index without a title.
	ErrMissingTitle = errors.New("missing title")
)

// Index is a dictionary's metadata. Field order matches the order the fields
// are written in.
type Index struct {
	Title                    string            `json:"title"`
	Revision                 string            `json:"revision"`
	Sequenced                bool              `json:"sequenced"`
	Format                   int               `json:"format"`
	Version                  int               `json:"version"`
	Author                   string            `json:"author"`
	URL                      string            `json:"url"`
	Description              string            `json:"description"`
	Attribution              string            `json:"attribution"`
	SourceLanguage           string            `json:"sourceLanguage"`
	TargetLanguage           string            `json:"targetLanguage"`
	PrefixWildcardsSupported bool              `json:"prefixWildcardsSupported"`
	Tags                     map[string]string `json:"tags"`
}

// New returns the index for a Toki Pona dictionary with the given target
// language, e.g. "french".
func New(targetLanguage string) *Index {
	name := DisplayName(targetLanguage)
	return &Index{
		Title:          "Toki Pona to " + name,
		Revision:       Revision,
		Sequenced:      true,
		Format:         Format,
		Version:        Format,
		Author:         DefaultAuthor,
		Description:    "Toki Pona to " + name + " dictionary",
		SourceLanguage: SourceLanguage,
		TargetLanguage: targetLanguage,
		Tags:           map[string]string{},
	}
}

// DisplayName returns the language identifier with the first letter of each
// word upper cased and the rest lower cased.
func DisplayName(lang string) string {
	return cases.Title(language.Und).String(lang)
}

// Write writes the index to w as JSON indented by two spaces. HTML characters
// are not escaped and no trailing newline is written.
func Write(w io.Writer, idx *Index) error {
	out := *idx
	if out.Tags == nil {
		out.Tags = map[string]string{}
	}

	b, err := jsonutil.Marshal(&out, "  ")
	if err != nil {
		return fmt.Errorf("encoding index: %w", err)
	}
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("writing index: %w", err)
	}
	return nil
}

// Read reads and validates an index from r.
func Read(r io.Reader) (*Index, error) {
	var idx Index
	if err := json.NewDecoder(r).Decode(&idx); err != nil {
		return nil, fmt.Errorf("decoding index: %w", err)
	}

	if idx.Format != Format {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedFormat, idx.Format)
	}
	if idx.Title == "" {
		return nil, ErrMissingTitle
	}

	return &idx, nil
}
