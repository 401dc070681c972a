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

// Package csvdict implements reading and writing narrow dictionary CSV files.
//
// A narrow dictionary file holds a single target language. It has a header
// row containing the columns "word" and "definition" and one row per
// dictionary entry.
package csvdict

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	// WordColumn is the header name of the Toki Pona word column.
	WordColumn = "word"

	// DefinitionColumn is the header name of the definition column.
	DefinitionColumn = "definition"
)

// ErrMissingColumn indicates that a required header column is not present.
var ErrMissingColumn = errors.New("missing column")

// Row is a single dictionary entry.
type Row struct {
	// Word is the Toki Pona word.
	Word string

	// Definition is the word's gloss in the target language.
	Definition string
}

// Empty returns true if either the word or the definition is blank.
func (r *Row) Empty() bool {
	return r.Word == "" || r.Definition == ""
}

// Reader reads dictionary rows from a CSV file.
type Reader struct {
	r *RecordReader

	wordCol int
	defCol  int

	// line is the current record number, the header being record 1.
	line int
}

// NewReader returns a new Reader that reads from r. The header row is read
// immediately and an error wrapping ErrMissingColumn is returned if either
// required column is absent. Stray quotes are read leniently as described
// for RecordReader.
func NewReader(r io.Reader) (*Reader, error) {
	cr := NewRecordReader(r)

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, WordColumn)
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}

	d := &Reader{
		r:       cr,
		wordCol: -1,
		defCol:  -1,
		line:    1,
	}
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case WordColumn:
			if d.wordCol < 0 {
				d.wordCol = i
			}
		case DefinitionColumn:
			if d.defCol < 0 {
				d.defCol = i
			}
		}
	}
	if d.wordCol < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, WordColumn)
	}
	if d.defCol < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, DefinitionColumn)
	}

	return d, nil
}

// Read reads the next row. Values are trimmed of surrounding whitespace.
// Read returns io.EOF at the end of input. A record that is too short to
// contain both columns is an error wrapping ErrMissingColumn.
func (d *Reader) Read() (*Row, error) {
	record, err := d.r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("reading record: %w", err)
	}
	d.line++

	if len(record) <= max(d.wordCol, d.defCol) {
		return nil, fmt.Errorf("%w: record %d has %d fields", ErrMissingColumn, d.line, len(record))
	}

	return &Row{
		Word:       strings.TrimSpace(record[d.wordCol]),
		Definition: strings.TrimSpace(record[d.defCol]),
	}, nil
}

// ReadAll reads all remaining rows.
func (d *Reader) ReadAll() ([]*Row, error) {
	var rows []*Row
	for {
		row, err := d.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}

// Writer writes dictionary rows to a CSV file.
type Writer struct {
	w *csv.Writer

	wroteHeader bool
}

// NewWriter returns a new Writer that writes to w. Records are terminated with
// \r\n.
func NewWriter(w io.Writer) *Writer {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	return &Writer{
		w: cw,
	}
}

// WriteHeader writes the header row. It is called implicitly by the first
// call to Write.
func (d *Writer) WriteHeader() error {
	if d.wroteHeader {
		return nil
	}
	d.wroteHeader = true
	if err := d.w.Write([]string{WordColumn, DefinitionColumn}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	return nil
}

// Write writes a single row.
func (d *Writer) Write(row *Row) error {
	if err := d.WriteHeader(); err != nil {
		return err
	}
	if err := d.w.Write([]string{row.Word, row.Definition}); err != nil {
		return fmt.Errorf("writing row %q: %w", row.Word, err)
	}
	return nil
}

// Flush writes any buffered data to the underlying writer.
func (d *Writer) Flush() error {
	d.w.Flush()
	//nolint:wrapcheck // error should not be wrapped
	return d.w.Error()
}
