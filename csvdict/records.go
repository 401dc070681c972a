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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

type recordState int

const (
	startRecord recordState = iota
	startField
	inField
	inQuotedField
	quoteInQuotedField
)

// RecordReader reads CSV records leniently. A quote inside an unquoted field
// is kept as a literal character. Text following the closing quote of a
// quoted field is appended to the field. Blank lines are skipped, and a
// quoted field left open at the end of input ends the final record.
type RecordReader struct {
	r *bufio.Reader

	// line is the current physical line, starting at 1.
	line int
}

// NewRecordReader returns a new RecordReader that reads from r.
func NewRecordReader(r io.Reader) *RecordReader {
	return &RecordReader{
		r:    bufio.NewReader(r),
		line: 1,
	}
}

// Read reads the next record. It returns io.EOF when no records remain.
func (rr *RecordReader) Read() ([]string, error) {
	var (
		record []string
		field  strings.Builder
		state  = startRecord
	)
	saveField := func() {
		record = append(record, field.String())
		field.Reset()
	}

	for {
		c, _, err := rr.r.ReadRune()
		if errors.Is(err, io.EOF) {
			if state == startRecord {
				return nil, io.EOF
			}
			saveField()
			return record, nil
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", rr.line, err)
		}

		if c == '\r' || c == '\n' {
			crlf := false
			if c == '\r' {
				if crlf, err = rr.skipLF(); err != nil {
					return nil, err
				}
			}
			rr.line++

			switch state {
			case startRecord:
				continue
			case inQuotedField:
				field.WriteRune(c)
				if crlf {
					field.WriteByte('\n')
				}
				continue
			default:
				saveField()
				return record, nil
			}
		}

		switch state {
		case startRecord, startField:
			switch c {
			case '"':
				state = inQuotedField
			case ',':
				saveField()
				state = startField
			default:
				field.WriteRune(c)
				state = inField
			}
		case inField:
			if c == ',' {
				saveField()
				state = startField
			} else {
				field.WriteRune(c)
			}
		case inQuotedField:
			if c == '"' {
				state = quoteInQuotedField
			} else {
				field.WriteRune(c)
			}
		case quoteInQuotedField:
			switch c {
			case '"':
				field.WriteRune(c)
				state = inQuotedField
			case ',':
				saveField()
				state = startField
			default:
				field.WriteRune(c)
				state = inField
			}
		}
	}
}

// ReadAll reads all remaining records.
func (rr *RecordReader) ReadAll() ([][]string, error) {
	var records [][]string
	for {
		record, err := rr.Read()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return records, err
		}
		records = append(records, record)
	}
}

// skipLF consumes the LF of a CRLF line ending and reports whether one was
// present.
func (rr *RecordReader) skipLF() (bool, error) {
	b, err := rr.r.Peek(1)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, fmt.Errorf("line %d: %w", rr.line, err)
	}
	if b[0] != '\n' {
		return false, nil
	}
	_, err = rr.r.ReadByte()
	return true, err
}
