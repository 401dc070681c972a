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

package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-yomitan/internal/cmdutil"
)

var queryCommand = &cli.Command{
	Name:        "query",
	Usage:       "Query dictionaries",
	ArgsUsage:   "WORD",
	Description: `Look up a Toki Pona word in all dictionaries in the --data-dir directories.`,
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: expected a single WORD argument", cmdutil.ErrFlagParse)
		}
		query := c.Args().First()

		dicts, errs := openDictionaries(c.StringSlice("data-dir"))

		for _, d := range dicts {
			entries, err := d.Search(query)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if len(entries) == 0 {
				continue
			}

			fmt.Fprintln(c.App.Writer, d.Title())
			fmt.Fprintln(c.App.Writer)
			for _, e := range entries {
				fmt.Fprintln(c.App.Writer, e)
			}
		}

		return printErrors(c, errs)
	},
}
