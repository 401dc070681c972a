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

	"github.com/ianlewis/go-yomitan"
	"github.com/ianlewis/go-yomitan/internal/cmdutil"
	"github.com/ianlewis/go-yomitan/meta"
)

const (
	defaultInputDir  = "dictionaries"
	defaultOutputDir = "yomitan_dictionaries"
)

func newConvertApp() *cli.App {
	return cmdutil.NewApp(
		"Convert Toki Pona dictionary CSV files to Yomitan dictionaries.",
		[]cli.Flag{
			&cli.StringFlag{
				Name:    "input-dir",
				Usage:   "read toki-pona-to-*.csv files from `DIR`",
				Aliases: []string{"i"},
				Value:   defaultInputDir,
			},
			&cli.StringFlag{
				Name:    "output-dir",
				Usage:   "write Yomitan dictionaries to `DIR`",
				Aliases: []string{"o"},
				Value:   defaultOutputDir,
			},
			&cli.StringFlag{
				Name:  "author",
				Usage: "dictionary author written to index.json",
				Value: meta.DefaultAuthor,
			},
		},
		runConvert,
	)
}

func runConvert(c *cli.Context) error {
	if c.NArg() > 0 {
		return fmt.Errorf("%w: unexpected arguments: %v", cmdutil.ErrFlagParse, c.Args().Slice())
	}

	inputDir := c.String("input-dir")
	archives, err := yomitan.ConvertAll(inputDir, c.String("output-dir"), &yomitan.Options{
		Author: c.String("author"),
		Logger: cmdutil.Logger(c),
	})
	for _, a := range archives {
		fmt.Fprintf(c.App.Writer, "Created: %s\n", a)
	}
	if err != nil {
		return err //nolint:wrapcheck // error is already wrapped
	}

	if len(archives) == 0 {
		fmt.Fprintf(c.App.Writer, "No Yomitan dictionaries created from toki-pona-to-*.csv files in %s\n", inputDir)
		return nil
	}
	fmt.Fprintf(c.App.Writer, "\nConversion complete! Created %d Yomitan dictionary files.\n", len(archives))
	return nil
}
