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
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-yomitan/csvdict"
	"github.com/ianlewis/go-yomitan/internal/testutil"
	"github.com/ianlewis/go-yomitan/meta"
	"github.com/ianlewis/go-yomitan/split"
	"github.com/ianlewis/go-yomitan/termbank"
)

// readZip returns the contents of each file in the archive by name.
func readZip(t *testing.T, path string) map[string]string {
	t.Helper()

	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("zip.OpenReader: %v", err)
	}
	defer zr.Close()

	files := map[string]string{}
	for _, f := range zr.File {
		if f.Method != zip.Deflate {
			t.Errorf("%s: want method %d, got %d", f.Name, zip.Deflate, f.Method)
		}
		r, err := f.Open()
		if err != nil {
			t.Fatalf("Open(%q): %v", f.Name, err)
		}
		b, err := io.ReadAll(r)
		r.Close()
		if err != nil {
			t.Fatalf("ReadAll(%q): %v", f.Name, err)
		}
		files[f.Name] = string(b)
	}
	return files
}

func TestLanguageFromFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expected string
		ok       bool
	}{
		{name: "toki-pona-to-french.csv", expected: "french", ok: true},
		{name: "toki-pona-to-chinese", expected: "chinese", ok: true},
		{name: "toki-pona-to-english-extra.csv", expected: "english", ok: true},
		{name: "random.csv"},
		{name: "toki-pona-to.csv"},
		{name: "toki-pona-to-.csv"},
		{name: "toki-pona-from-french.csv"},
		{name: "pona-toki-to-french.csv"},
		{name: ""},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			lang, ok := LanguageFromFilename(test.name)
			if lang != test.expected || ok != test.ok {
				t.Fatalf("LanguageFromFilename(%q): want (%q, %v), got (%q, %v)",
					test.name, test.expected, test.ok, lang, ok)
			}
		})
	}
}

func TestConvert(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	outDir := t.TempDir()
	csvPath := testutil.WriteFile(t, dir, "toki-pona-to-french.csv",
		testutil.MakeCSV(t, []string{"word", "definition"}, [][]string{
			{"mi", "me"},
			{"sina", "you"},
		}))

	zipPath, err := Convert(csvPath, outDir, nil)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if want := filepath.Join(outDir, "toki-pona-to-french.zip"); zipPath != want {
		t.Fatalf("Convert: want %q, got %q", want, zipPath)
	}

	var idx bytes.Buffer
	if err := meta.Write(&idx, meta.New("french")); err != nil {
		t.Fatalf("meta.Write: %v", err)
	}
	want := map[string]string{
		"term_bank_1.json": `[["mi","","","",0,["me"],0,""],["sina","","","",0,["you"],0,""]]`,
		"index.json":       idx.String(),
	}
	if diff := cmp.Diff(want, readZip(t, zipPath)); diff != "" {
		t.Fatalf("archive (-want, +got):\n%s", diff)
	}

	// The working directory is removed.
	if _, err := os.Stat(filepath.Join(outDir, "toki-pona-to-french")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("working directory: want %v, got %v", os.ErrNotExist, err)
	}
}

func TestConvert_idempotent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	outDir := t.TempDir()
	csvPath := testutil.WriteFile(t, dir, "toki-pona-to-english.csv",
		[]byte("word,definition\r\nmi,me\r\nijo,\"thing, something\"\r\n"))

	first, err := Convert(csvPath, outDir, nil)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	want := readZip(t, first)

	// A stale working directory from an interrupted run is reused.
	stale := filepath.Join(outDir, "toki-pona-to-english")
	if err := os.Mkdir(stale, 0o755); err != nil {
		t.Fatal(err)
	}
	testutil.WriteFile(t, stale, "index.json", []byte("stale"))

	second, err := Convert(csvPath, outDir, nil)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if diff := cmp.Diff(want, readZip(t, second)); diff != "" {
		t.Fatalf("second archive (-want, +got):\n%s", diff)
	}
}

func TestConvert_author(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	csvPath := testutil.WriteFile(t, dir, "toki-pona-to-dutch.csv", []byte("word,definition\nmi,ik\n"))

	zipPath, err := Convert(csvPath, t.TempDir(), &Options{Author: "jan Ilo"})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	d, err := Open(zipPath, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if want, got := "jan Ilo", d.Author(); want != got {
		t.Fatalf("Author: want %q, got %q", want, got)
	}
}

func TestConvert_errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		file string
		data string
		err  error
	}{
		{
			name: "unknown language",
			file: "random.csv",
			data: "word,definition\nmi,me\n",
			err:  ErrUnknownLanguage,
		},
		{
			name: "missing definition column",
			file: "toki-pona-to-french.csv",
			data: "word,meaning\nmi,me\n",
			err:  csvdict.ErrMissingColumn,
		},
		{
			name: "short record",
			file: "toki-pona-to-french.csv",
			data: "word,definition\nmi\n",
			err:  csvdict.ErrMissingColumn,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			outDir := t.TempDir()
			csvPath := testutil.WriteFile(t, t.TempDir(), test.file, []byte(test.data))

			_, err := Convert(csvPath, outDir, nil)
			if !errors.Is(err, test.err) {
				t.Fatalf("Convert: want error %v, got %v", test.err, err)
			}

			entries, err := os.ReadDir(outDir)
			if err != nil {
				t.Fatal(err)
			}
			if len(entries) != 0 {
				t.Fatalf("Convert: output directory not empty: %v", entries)
			}
		})
	}
}

func TestConvert_notExist(t *testing.T) {
	t.Parallel()

	_, err := Convert(filepath.Join(t.TempDir(), "toki-pona-to-french.csv"), t.TempDir(), nil)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Convert: want error %v, got %v", os.ErrNotExist, err)
	}
}

func TestConvertAll(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "yomitan_dictionaries")
	testutil.WriteFile(t, dir, "toki-pona-to-french.csv", []byte("word,definition\nmi,je\n"))
	testutil.WriteFile(t, dir, "toki-pona-to-english.csv", []byte("word,definition\nmi,me\n"))
	testutil.WriteFile(t, dir, "toki-pona-to-.csv", []byte("word,definition\nmi,me\n"))
	testutil.WriteFile(t, dir, "multilanguage-toki-pona-dictionary.csv", []byte("tok,en\nmi,me\n"))

	archives, err := ConvertAll(dir, outDir, nil)
	if err != nil {
		t.Fatalf("ConvertAll: %v", err)
	}

	want := []string{
		filepath.Join(outDir, "toki-pona-to-english.zip"),
		filepath.Join(outDir, "toki-pona-to-french.zip"),
	}
	if diff := cmp.Diff(want, archives); diff != "" {
		t.Fatalf("ConvertAll (-want, +got):\n%s", diff)
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	if diff := cmp.Diff([]string{"toki-pona-to-english.zip", "toki-pona-to-french.zip"}, names); diff != "" {
		t.Fatalf("output directory (-want, +got):\n%s", diff)
	}
}

func TestConvertAll_none(t *testing.T) {
	t.Parallel()

	archives, err := ConvertAll(t.TempDir(), t.TempDir(), nil)
	if err != nil {
		t.Fatalf("ConvertAll: %v", err)
	}
	if len(archives) != 0 {
		t.Fatalf("ConvertAll: want no archives, got %v", archives)
	}
}

func TestConvertAll_stopsOnError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.WriteFile(t, dir, "toki-pona-to-dutch.csv", []byte("word,definition\nmi,ik\n"))
	testutil.WriteFile(t, dir, "toki-pona-to-english.csv", []byte("tok,en\nmi,me\n"))
	testutil.WriteFile(t, dir, "toki-pona-to-french.csv", []byte("word,definition\nmi,je\n"))

	archives, err := ConvertAll(dir, t.TempDir(), nil)
	if !errors.Is(err, csvdict.ErrMissingColumn) {
		t.Fatalf("ConvertAll: want error %v, got %v", csvdict.ErrMissingColumn, err)
	}
	if want, got := 1, len(archives); want != got {
		t.Fatalf("ConvertAll: want %d archives, got %d", want, got)
	}
}

func TestTerms(t *testing.T) {
	t.Parallel()

	rows := []*csvdict.Row{
		{Word: "mi", Definition: "me"},
		{Word: "mi", Definition: ""},
		{Word: "", Definition: "you"},
		{Word: "sina", Definition: "you"},
	}
	want := []*termbank.Term{
		termbank.New("mi", "me"),
		termbank.New("sina", "you"),
	}
	if diff := cmp.Diff(want, Terms(rows)); diff != "" {
		t.Fatalf("Terms (-want, +got):\n%s", diff)
	}
}

type pair struct {
	word       string
	definition string
}

func TestSplitConvertRoundTrip(t *testing.T) {
	t.Parallel()

	header := []string{"tok", "en", "fr", "eo"}
	records := [][]string{
		{"mi", "I, me", "je", "mi"},
		{"sina", "you", "", "vi"},
		{" ona ", " they ", "il", ""},
		{"", "nothing", "rien", "nenio"},
		{"toki", "language <talk>", "langue", "lingvo"},
	}

	dataDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "yomitan_dictionaries")

	input := testutil.MakeTempWideCSV(t, header, records, nil)
	if _, err := split.New(nil).SplitFile(input, dataDir); err != nil {
		t.Fatalf("SplitFile: %v", err)
	}
	archives, err := ConvertAll(dataDir, outDir, nil)
	if err != nil {
		t.Fatalf("ConvertAll: %v", err)
	}
	if want, got := 3, len(archives); want != got {
		t.Fatalf("ConvertAll: want %d archives, got %d", want, got)
	}

	for col, code := range header[1:] {
		col++
		var name string
		for _, lang := range split.Languages {
			if lang.Code == code {
				name = lang.Name
			}
		}

		var want []pair
		for _, r := range split.Rows(records, 0, col) {
			want = append(want, pair{r.Word, r.Definition})
		}

		d, err := Open(filepath.Join(outDir, "toki-pona-to-"+name+".zip"), nil)
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		if want, got := name, d.TargetLanguage(); want != got {
			t.Errorf("TargetLanguage: want %q, got %q", want, got)
		}
		var got []pair
		for _, term := range d.Terms() {
			got = append(got, pair{term.Expression, term.Definitions[0]})
		}

		less := func(s []pair) func(i, j int) bool {
			return func(i, j int) bool { return s[i].word < s[j].word }
		}
		sort.Slice(want, less(want))
		sort.Slice(got, less(got))
		if diff := cmp.Diff(want, got, cmp.AllowUnexported(pair{})); diff != "" {
			t.Errorf("%s terms (-want, +got):\n%s", name, diff)
		}
	}
}
