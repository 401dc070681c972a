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

// Package cmdutil holds the pieces shared by the command line tools.
package cmdutil

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = errors.New("parsing flags")

// CopyrightNames are the copyright holders printed by --version.
var CopyrightNames = []string{
	"2025 Ian Lewis",
}

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// but we don't use commands.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// Check checks the error and panics if not nil.
func Check(err error) {
	if err != nil {
		panic(err)
	}
}

// SpecialFlags returns the --verbose, --help and --version flags shown at the
// end of every command's flag list.
func SpecialFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:               "verbose",
			Usage:              "log progress messages",
			Aliases:            []string{"v"},
			DisableDefaultText: true,
		},
		&cli.BoolFlag{
			Name:               "help",
			Usage:              "print this help text and exit",
			Aliases:            []string{"h"},
			DisableDefaultText: true,
		},
		&cli.BoolFlag{
			Name:               "version",
			Usage:              "print version information and exit",
			Aliases:            []string{"V"},
			DisableDefaultText: true,
		},
	}
}

// NewApp returns an app with the fields common to all commands set.
func NewApp(usage string, flags []cli.Flag, action cli.ActionFunc) *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: usage,
		Description: strings.Join([]string{
			"Toki Pona dictionary to Yomitan converter written in Go.",
			"http://github.com/ianlewis/go-yomitan",
		}, "\n"),
		Flags:           append(flags, SpecialFlags()...),
		Copyright:       strings.Join(CopyrightNames, "\n"),
		HideHelp:        true,
		HideHelpCommand: true,
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		},
		Action: func(c *cli.Context) error {
			if c.Bool("help") {
				Check(cli.ShowAppHelp(c))
				return nil
			}
			if c.Bool("version") {
				return PrintVersion(c)
			}
			return action(c)
		},
	}
}

// Run runs the app and returns the process exit code.
func Run(app *cli.App, args []string) int {
	if err := app.Run(args); err != nil {
		var w io.Writer = os.Stderr
		if app.ErrWriter != nil {
			w = app.ErrWriter
		}
		fmt.Fprintf(w, "%s: %v\n", app.Name, err)
		if errors.Is(err, ErrFlagParse) {
			return ExitCodeFlagParseError
		}
		return ExitCodeUnknownError
	}
	return ExitCodeSuccess
}

// PrintVersion prints version information for the app.
func PrintVersion(c *cli.Context) error {
	versionInfo := version.GetVersionInfo()

	_, err := fmt.Fprintf(c.App.Writer, `%s %s
Copyright (c) %s

%s`, c.App.Name, versionInfo.GitVersion, c.App.Copyright, versionInfo.String())
	if err != nil {
		return fmt.Errorf("printing version: %w", err)
	}
	return nil
}

// Logger returns a logger writing to the app's error writer. Warnings are
// always logged and info messages only with --verbose.
func Logger(c *cli.Context) *slog.Logger {
	level := slog.LevelWarn
	if c.Bool("verbose") {
		level = slog.LevelInfo
	}
	var w io.Writer = os.Stderr
	if c.App.ErrWriter != nil {
		w = c.App.ErrWriter
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
