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
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-yomitan"
	"github.com/ianlewis/go-yomitan/internal/cmdutil"
)

func openDictionaries(dirs []string) ([]*yomitan.Dictionary, []error) {
	var dicts []*yomitan.Dictionary
	var errs []error

	for _, path := range dirs {
		// Missing default locations are not an error.
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		openDicts, openErrs := yomitan.OpenAll(path, nil)

		dicts = append(dicts, openDicts...)
		errs = append(errs, openErrs...)
	}

	return dicts, errs
}

func newUtilApp() *cli.App {
	app := cmdutil.NewApp(
		"Inspect and search Yomitan dictionaries.",
		[]cli.Flag{
			&cli.StringSliceFlag{
				Name:    "data-dir",
				Usage:   "include dictionaries in `DIR`",
				Aliases: []string{"d"},
				Value:   cli.NewStringSlice(dictLocations()...),
			},
		},
		func(c *cli.Context) error {
			cmdutil.Check(cli.ShowAppHelp(c))
			return nil
		},
	)
	app.Commands = []*cli.Command{
		listCommand,
		queryCommand,
	}
	return app
}

// printErrors prints dictionary errors and returns an error if there were any.
func printErrors(c *cli.Context, errs []error) error {
	for _, err := range errs {
		fmt.Fprintln(c.App.ErrWriter, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d dictionaries could not be read", len(errs))
	}
	return nil
}
