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
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// workDir is a directory holding a dictionary's files until they are
// archived. It must be released with remove.
type workDir struct {
	path string
}

// createWorkDir creates the working directory at path. An existing directory
// is reused and its files are overwritten.
func createWorkDir(path string) (*workDir, error) {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("creating %q: %w", path, err)
	}
	return &workDir{path: path}, nil
}

// writeFile creates or truncates the named file in the working directory and
// writes its contents with write.
func (d *workDir) writeFile(name string, write func(io.Writer) error) error {
	path := filepath.Join(d.path, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %q: %w", path, err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %q: %w", path, err)
	}
	return nil
}

// zipPath returns the path of the archive for the working directory.
func (d *workDir) zipPath() string {
	return filepath.Clean(d.path) + ".zip"
}

// archive writes the regular files in the working directory to a DEFLATE
// compressed zip archive next to it. Files are stored without directory
// entries or path prefixes. A partially written archive is removed on error.
func (d *workDir) archive() (string, error) {
	zipPath := d.zipPath()
	if err := writeZip(zipPath, d.path); err != nil {
		return "", errors.Join(err, removeIfExists(zipPath))
	}
	return zipPath, nil
}

// remove deletes the working directory and its contents.
func (d *workDir) remove() error {
	if err := os.RemoveAll(d.path); err != nil {
		return fmt.Errorf("removing %q: %w", d.path, err)
	}
	return nil
}

func writeZip(zipPath, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading %q: %w", dir, err)
	}

	f, err := os.Create(zipPath)
	if err != nil {
		return fmt.Errorf("creating %q: %w", zipPath, err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if err := addFile(zw, filepath.Join(dir, e.Name())); err != nil {
			return err
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("writing %q: %w", zipPath, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %q: %w", zipPath, err)
	}
	return nil
}

func addFile(zw *zip.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("reading %q: %w", path, err)
	}
	hdr, err := zip.FileInfoHeader(info)
	if err != nil {
		return fmt.Errorf("archiving %q: %w", path, err)
	}
	hdr.Name = filepath.Base(path)
	hdr.Method = zip.Deflate

	w, err := zw.CreateHeader(hdr)
	if err != nil {
		return fmt.Errorf("archiving %q: %w", path, err)
	}
	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("archiving %q: %w", path, err)
	}
	return nil
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing %q: %w", path, err)
	}
	return nil
}
