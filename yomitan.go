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

package yomitan

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-yomitan/csvdict"
	"github.com/ianlewis/go-yomitan/meta"
	"github.com/ianlewis/go-yomitan/termbank"
)

const (
	// filePrefix is the prefix of dictionary file and directory names.
	filePrefix = "toki-pona-to-"

	// csvPattern matches dictionary CSV files in a directory.
	csvPattern = filePrefix + "*.csv"
)

// ErrUnknownLanguage indicates that the target language could not be
// determined from a file name.
var ErrUnknownLanguage = errors.New("unknown target language")

// Options are options for converting dictionaries.
type Options struct {
	// Author overrides the author written to the dictionary index.
	Author string

	// Logger receives progress and warning messages. If nil, nothing is
	// logged.
	Logger *slog.Logger
}

// DefaultOptions are the default conversion options.
var DefaultOptions = &Options{
	Author: meta.DefaultAuthor,
}

func (o *Options) logger() *slog.Logger {
	if o == nil || o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

func (o *Options) author() string {
	if o == nil || o.Author == "" {
		return meta.DefaultAuthor
	}
	return o.Author
}

// LanguageFromFilename returns the target language of a dictionary CSV file
// named like "toki-pona-to-<language>.csv". It returns false if the name does
// not match.
func LanguageFromFilename(name string) (string, bool) {
	parts := strings.Split(strings.TrimSuffix(name, filepath.Ext(name)), "-")
	if len(parts) < 4 || parts[0] != "toki" || parts[1] != "pona" || parts[2] != "to" {
		return "", false
	}
	if parts[3] == "" {
		return "", false
	}
	return parts[3], true
}

// ConvertAll converts every "toki-pona-to-*.csv" file in dir to a Yomitan
// dictionary archive in outDir. Files whose target language cannot be
// determined are skipped. Conversion stops at the first error. The paths of
// the archives created are returned.
func ConvertAll(dir, outDir string, options *Options) ([]string, error) {
	logger := options.logger()

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	// NOTE: Glob only returns errors for malformed patterns.
	files, _ := filepath.Glob(filepath.Join(dir, csvPattern))
	if len(files) == 0 {
		logger.Warn("no dictionary files found", slog.String("dir", dir), slog.String("pattern", csvPattern))
		return nil, nil
	}

	var archives []string
	for _, path := range files {
		logger.Info("converting", slog.String("path", path))

		zipPath, err := Convert(path, outDir, options)
		if errors.Is(err, ErrUnknownLanguage) {
			logger.Warn("skipping file, couldn't determine target language", slog.String("path", path))
			continue
		}
		if err != nil {
			return archives, err
		}

		logger.Info("created", slog.String("path", zipPath))
		archives = append(archives, zipPath)
	}

	return archives, nil
}

// Convert converts the dictionary CSV file at csvPath to a Yomitan dictionary
// archive in outDir and returns the archive's path. The term bank and index
// are written to a working directory which is archived and then removed.
func Convert(csvPath, outDir string, options *Options) (zipPath string, err error) {
	name := filepath.Base(csvPath)
	lang, ok := LanguageFromFilename(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, name)
	}

	terms, err := ReadTerms(csvPath)
	if err != nil {
		return "", err
	}

	idx := meta.New(lang)
	idx.Author = options.author()

	wd, err := createWorkDir(filepath.Join(outDir, filePrefix+lang))
	if err != nil {
		return "", err
	}
	defer func() {
		if rmErr := wd.remove(); rmErr != nil {
			err = errors.Join(err, rmErr)
		}
	}()

	if err := wd.writeFile(termbank.FileName(1), func(w io.Writer) error {
		return termbank.Write(w, terms)
	}); err != nil {
		return "", err
	}
	if err := wd.writeFile(meta.FileName, func(w io.Writer) error {
		return meta.Write(w, idx)
	}); err != nil {
		return "", err
	}

	return wd.archive()
}

// ReadTerms reads a dictionary CSV file and returns its rows as terms in file
// order. Rows with a blank word or definition are omitted.
func ReadTerms(csvPath string) ([]*termbank.Term, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", csvPath, err)
	}
	defer f.Close()

	r, err := csvdict.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", csvPath, err)
	}
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", csvPath, err)
	}

	return Terms(rows), nil
}

// Terms converts dictionary rows to terms.
func Terms(rows []*csvdict.Row) []*termbank.Term {
	terms := make([]*termbank.Term, 0, len(rows))
	for _, row := range rows {
		if row.Empty() {
			continue
		}
		terms = append(terms, termbank.New(row.Word, row.Definition))
	}
	return terms
}
