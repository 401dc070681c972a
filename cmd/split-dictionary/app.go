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

package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-yomitan/internal/cmdutil"
	"github.com/ianlewis/go-yomitan/split"
)

const (
	defaultInput     = "dictionaries/multilanguage-toki-pona-dictionary.csv"
	defaultOutputDir = "dictionaries"
)

func newSplitApp() *cli.App {
	return cmdutil.NewApp(
		"Split a multilingual Toki Pona dictionary into one CSV file per language.",
		[]cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Usage:   "read the multilingual dictionary from `FILE`",
				Aliases: []string{"i"},
				Value:   defaultInput,
			},
			&cli.StringFlag{
				Name:    "output-dir",
				Usage:   "write dictionary files to `DIR`",
				Aliases: []string{"o"},
				Value:   defaultOutputDir,
			},
		},
		runSplit,
	)
}

func runSplit(c *cli.Context) error {
	if c.NArg() > 0 {
		return fmt.Errorf("%w: unexpected arguments: %v", cmdutil.ErrFlagParse, c.Args().Slice())
	}

	s := split.New(&split.Options{
		Logger: cmdutil.Logger(c),
	})
	files, err := s.SplitFile(c.String("input"), c.String("output-dir"))
	if err != nil {
		return err //nolint:wrapcheck // error is already wrapped
	}

	for _, f := range files {
		fmt.Fprintf(c.App.Writer, "Created: %s\n", f)
	}
	return nil
}
