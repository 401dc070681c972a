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
	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"
)

var listCommand = &cli.Command{
	Name:      "list",
	Usage:     "List dictionaries",
	ArgsUsage: "[DIR]...",
	Description: `List all Yomitan dictionaries found in the given directories or
the --data-dir directories.`,
	Action: func(c *cli.Context) error {
		dirs := c.Args().Slice()
		if len(dirs) == 0 {
			dirs = c.StringSlice("data-dir")
		}

		dicts, errs := openDictionaries(dirs)

		tbl := table.New("Title", "Source", "Target", "Revision", "Terms", "Path")
		tbl.WithWriter(c.App.Writer)
		for _, d := range dicts {
			tbl.AddRow(d.Title(), d.SourceLanguage(), d.TargetLanguage(), d.Revision(), d.TermCount(), d.Path())
		}
		tbl.Print()

		return printErrors(c, errs)
	},
}
