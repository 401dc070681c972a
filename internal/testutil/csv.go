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

package testutil

import (
	"bytes"
	"compress/gzip"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/ianlewis/go-dictzip"
)

// WideCSVOptions are options for writing a test multilingual dictionary.
type WideCSVOptions struct {
	// Ext is the file extension. Defaults to '.csv.dz' if DictZip is true,
	// '.csv.gz' if Gzip is true, and '.csv' otherwise.
	Ext string

	// DictZip indicates that the file should be compressed with DictZip.
	DictZip bool

	// Gzip indicates that the file should be compressed with gzip.
	Gzip bool
}

// GetExt returns the file extension for the options.
func (o *WideCSVOptions) GetExt() string {
	if o != nil {
		if o.Ext != "" {
			return o.Ext
		}
		if o.DictZip {
			return ".csv.dz"
		}
		if o.Gzip {
			return ".csv.gz"
		}
	}
	return ".csv"
}

// MakeCSV encodes a header and records as CSV.
func MakeCSV(t *testing.T, header []string, records [][]string) []byte {
	t.Helper()

	var b bytes.Buffer
	w := csv.NewWriter(&b)
	if header != nil {
		if err := w.Write(header); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.WriteAll(records); err != nil {
		t.Fatal(err)
	}
	return b.Bytes()
}

// MakeTempWideCSV writes a multilingual dictionary to a temporary directory
// and returns its path.
func MakeTempWideCSV(t *testing.T, header []string, records [][]string, opts *WideCSVOptions) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "multilanguage-toki-pona-dictionary"+opts.GetExt())
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	d := MakeCSV(t, header, records)

	switch {
	case opts != nil && opts.DictZip:
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := z.Write(d); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	case opts != nil && opts.Gzip:
		z := gzip.NewWriter(f)
		if _, err := z.Write(d); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	default:
		if _, err := f.Write(d); err != nil {
			t.Fatal(err)
		}
	}

	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

// WriteFile writes data to name in dir and returns the file path.
func WriteFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}
