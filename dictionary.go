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
	"archive/zip"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/transform"

	"github.com/ianlewis/go-yomitan/internal/folding"
	"github.com/ianlewis/go-yomitan/internal/index"
	"github.com/ianlewis/go-yomitan/meta"
	"github.com/ianlewis/go-yomitan/termbank"
)

const termBankPrefix = "term_bank_"

var errMissingIndex = errors.New("missing " + meta.FileName)

// Dictionary is a Yomitan dictionary read from an archive.
type Dictionary struct {
	path  string
	index *meta.Index
	terms []*termbank.Term

	// search is sorted by folded expression.
	search *index.Index[*foldedTerm]

	folder func() transform.Transformer
}

type foldedTerm struct {
	folded string
	term   *termbank.Term
}

func (t *foldedTerm) String() string {
	return t.folded
}

// OpenOptions are options for reading a dictionary archive.
type OpenOptions struct {
	// Folder returns a [transform.Transformer] that performs folding (e.g.
	// case folding, whitespace folding, etc.) on expressions and queries.
	Folder func() transform.Transformer
}

// DefaultOpenOptions folds whitespace and case.
var DefaultOpenOptions = &OpenOptions{
	Folder: func() transform.Transformer {
		return folding.Folder()
	},
}

// OpenAll opens all dictionary archives in a directory. This function will
// return all successfully opened dictionaries along with any errors that
// occurred.
func OpenAll(path string, options *OpenOptions) ([]*Dictionary, []error) {
	var dicts []*Dictionary
	var errs []error
	if err := filepath.WalkDir(path, func(path string, info fs.DirEntry, err error) error {
		// Walking the file path will ignore errors.
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if !info.IsDir() && strings.EqualFold(filepath.Ext(info.Name()), ".zip") {
			d, err := Open(path, options)
			if err != nil {
				errs = append(errs, err)
				return nil
			}
			dicts = append(dicts, d)
		}
		return nil
	}); err != nil {
		errs = append(errs, err)
		return nil, errs
	}
	return dicts, errs
}

// Open reads the Yomitan dictionary archive at path. All term banks are
// read into memory.
func Open(path string, options *OpenOptions) (*Dictionary, error) {
	if options == nil {
		options = DefaultOpenOptions
	}

	d := &Dictionary{
		path:   path,
		folder: DefaultOpenOptions.Folder,
	}
	if options.Folder != nil {
		d.folder = options.Folder
	}

	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer zr.Close()

	var banks []*zip.File
	for _, f := range zr.File {
		switch {
		case f.Name == meta.FileName:
			d.index, err = readIndex(f)
			if err != nil {
				return nil, fmt.Errorf("reading %q: %w", path, err)
			}
		case termBankNumber(f.Name) > 0:
			banks = append(banks, f)
		}
	}
	if d.index == nil {
		return nil, fmt.Errorf("reading %q: %w", path, errMissingIndex)
	}

	slices.SortFunc(banks, func(a, b *zip.File) int {
		return termBankNumber(a.Name) - termBankNumber(b.Name)
	})
	for _, f := range banks {
		terms, err := readTermBank(f)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		d.terms = append(d.terms, terms...)
	}

	folded := make([]*foldedTerm, 0, len(d.terms))
	for _, t := range d.terms {
		f, err := d.fold(t.Expression)
		if err != nil {
			return nil, err
		}
		folded = append(folded, &foldedTerm{
			folded: f,
			term:   t,
		})
	}
	d.search = index.NewIndex(folded, strings.Compare)

	return d, nil
}

// Path returns the path of the dictionary archive.
func (d *Dictionary) Path() string {
	return d.path
}

// Title returns the dictionary title.
func (d *Dictionary) Title() string {
	return d.index.Title
}

// Revision returns the dictionary revision.
func (d *Dictionary) Revision() string {
	return d.index.Revision
}

// Author returns the dictionary author.
func (d *Dictionary) Author() string {
	return d.index.Author
}

// Description returns the dictionary description.
func (d *Dictionary) Description() string {
	return d.index.Description
}

// SourceLanguage returns the dictionary's source language.
func (d *Dictionary) SourceLanguage() string {
	return d.index.SourceLanguage
}

// TargetLanguage returns the dictionary's target language.
func (d *Dictionary) TargetLanguage() string {
	return d.index.TargetLanguage
}

// Index returns the dictionary's metadata.
func (d *Dictionary) Index() *meta.Index {
	return d.index
}

// TermCount returns the number of terms in the dictionary.
func (d *Dictionary) TermCount() int {
	return len(d.terms)
}

// Terms returns all terms in term bank order.
func (d *Dictionary) Terms() []*termbank.Term {
	return d.terms
}

// Search returns the entries whose expression matches query after folding.
func (d *Dictionary) Search(query string) ([]*Entry, error) {
	q, err := d.fold(query)
	if err != nil {
		return nil, err
	}

	var entries []*Entry
	for _, t := range d.search.Search(q) {
		entries = append(entries, &Entry{term: t.term})
	}
	return entries, nil
}

func (d *Dictionary) fold(s string) (string, error) {
	folded, _, err := transform.String(d.folder(), s)
	if err != nil {
		return "", fmt.Errorf("folding %q: %w", s, err)
	}
	return folded, nil
}

// termBankNumber returns n for files named "term_bank_<n>.json" and 0
// otherwise.
func termBankNumber(name string) int {
	if !strings.HasPrefix(name, termBankPrefix) || filepath.Ext(name) != ".json" {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(name, termBankPrefix), ".json"))
	if err != nil || n < 1 {
		return 0
	}
	return n
}

func readIndex(f *zip.File) (*meta.Index, error) {
	r, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", f.Name, err)
	}
	defer r.Close()

	idx, err := meta.Read(r)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", f.Name, err)
	}
	return idx, nil
}

func readTermBank(f *zip.File) ([]*termbank.Term, error) {
	r, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", f.Name, err)
	}
	defer r.Close()

	terms, err := termbank.Read(r)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", f.Name, err)
	}
	return terms, nil
}
