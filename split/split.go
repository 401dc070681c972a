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

// Package split splits a multilingual Toki Pona dictionary CSV file into one
// dictionary file per target language.
//
// The input file has a header row with a "tok" column holding the Toki Pona
// word and one column per language holding definitions in that language,
// keyed by language code. Each output file is written with the [csvdict]
// package and named "toki-pona-to-<language>.csv".
package split

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-yomitan/csvdict"
)

// WordColumn is the header name of the Toki Pona word column.
const WordColumn = "tok"

// ErrMissingColumn indicates that the input has no Toki Pona word column.
var ErrMissingColumn = errors.New("missing column")

// Language is a target language.
type Language struct {
	// Code is the header name of the language's column, e.g. "fr".
	Code string

	// Name is the language's name used in output file names, e.g. "french".
	Name string
}

// Languages is the list of languages that are split out of the input file, in
// the order they are processed.
var Languages = []Language{
	{Code: "de", Name: "german"},
	{Code: "eo", Name: "esperanto"},
	{Code: "fr", Name: "french"},
	{Code: "ru", Name: "russian"},
	{Code: "sk", Name: "slovak"},
	{Code: "en", Name: "english"},
	{Code: "cs", Name: "czech"},
	{Code: "it", Name: "italian"},
	{Code: "id", Name: "indonesian"},
	{Code: "nl", Name: "dutch"},
	{Code: "es", Name: "spanish"},
	{Code: "pl", Name: "polish"},
	{Code: "tr", Name: "turkish"},
	{Code: "zh", Name: "chinese"},
	{Code: "pt", Name: "portuguese"},
}

// OutputFileName returns the name of the dictionary file for the language
// name.
func OutputFileName(name string) string {
	return "toki-pona-to-" + name + ".csv"
}

// Options are options for a Splitter.
type Options struct {
	// Languages are the languages to split out. If nil, [Languages] is used.
	Languages []Language

	// Logger receives warnings and progress messages. If nil, nothing is
	// logged.
	Logger *slog.Logger
}

// DefaultOptions are the default options for a Splitter.
var DefaultOptions = &Options{
	Languages: Languages,
}

// Splitter splits multilingual dictionaries.
type Splitter struct {
	languages []Language
	logger    *slog.Logger
}

// New returns a new Splitter.
func New(options *Options) *Splitter {
	if options == nil {
		options = DefaultOptions
	}

	s := &Splitter{
		languages: options.Languages,
		logger:    options.Logger,
	}
	if s.languages == nil {
		s.languages = Languages
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

// SplitFile splits the multilingual dictionary at path into outDir. Files
// ending in ".gz" are read as gzip and files ending in ".dz" are read as
// dictzip.
func (s *Splitter) SplitFile(path, outDir string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening %q: %w", path, err)
		}
		defer gz.Close()
		r = gz
	case ".dz":
		dz, err := dictzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening %q: %w", path, err)
		}
		r = io.NewSectionReader(dz, 0, math.MaxInt64)
	}

	files, err := s.Split(r, outDir)
	if err != nil {
		return nil, fmt.Errorf("splitting %q: %w", path, err)
	}
	return files, nil
}

// Split reads a multilingual dictionary from r and writes one dictionary file
// per language into outDir. Languages without a column in the header are
// skipped with a warning. It returns the paths of the files written.
func (s *Splitter) Split(r io.Reader, outDir string) ([]string, error) {
	cr := csvdict.NewRecordReader(r)

	header, err := cr.Read()
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	wordCol := column(header, WordColumn)
	if wordCol < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, WordColumn)
	}

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading records: %w", err)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	var files []string
	for _, lang := range s.languages {
		langCol := column(header, lang.Code)
		if langCol < 0 {
			s.logger.Warn("language code not found in headers", slog.String("code", lang.Code))
			continue
		}

		path := filepath.Join(outDir, OutputFileName(lang.Name))
		n, err := writeLanguage(path, records, wordCol, langCol)
		if err != nil {
			return files, err
		}
		s.logger.Info("created dictionary", slog.String("path", path), slog.Int("words", n))
		files = append(files, path)
	}

	return files, nil
}

// Rows returns the dictionary rows for a single language column. Records
// that are too short or have a blank word or definition are omitted.
func Rows(records [][]string, wordCol, langCol int) []*csvdict.Row {
	var rows []*csvdict.Row
	for _, record := range records {
		if len(record) <= max(wordCol, langCol) {
			continue
		}
		row := &csvdict.Row{
			Word:       strings.TrimSpace(record[wordCol]),
			Definition: strings.TrimSpace(record[langCol]),
		}
		if row.Empty() {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

func writeLanguage(path string, records [][]string, wordCol, langCol int) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("creating %q: %w", path, err)
	}
	defer f.Close()

	rows := Rows(records, wordCol, langCol)
	w := csvdict.NewWriter(f)
	if err := w.WriteHeader(); err != nil {
		return 0, fmt.Errorf("writing %q: %w", path, err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return 0, fmt.Errorf("writing %q: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return 0, fmt.Errorf("writing %q: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("closing %q: %w", path, err)
	}
	return len(rows), nil
}

// column returns the index of the first header column named name or -1.
func column(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i
		}
	}
	return -1
}
