// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Package output delivers rendered reports to their destination.
package output

import (
	"fmt"
	"io"
	"log"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/go-git/go-billy/v5"
	"github.com/google/buildinfo/internal/linefile"
	"github.com/google/buildinfo/internal/settings"
	"github.com/google/buildinfo/pkg/report"
	"github.com/pkg/errors"
)

// Stdout is the destination naming standard output.
const Stdout = "-"

var (
	yellow = color.New(color.FgYellow).SprintFunc()
	white  = color.New(color.FgWhite).SprintFunc()
)

// Note prints an informational message that is not an error.
func Note(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", yellow("NOTE:"), white(fmt.Sprintf(format, args...)))
}

// Options resolves the report options of a command: values set on the command
// line win, then those of the settings file, then the command's defaults.
func Options(fs billy.Filesystem, configFile string, cur settings.Report, section func(*settings.File) settings.Report, explicit func(string) bool) (settings.Report, error) {
	if configFile == "" {
		return cur, nil
	}
	abs, err := filepath.Abs(configFile)
	if err != nil {
		return cur, errors.Wrap(err, "resolving settings path")
	}
	file, err := settings.Load(fs, abs)
	if err != nil {
		return cur, err
	}
	if explicit == nil {
		explicit = func(string) bool { return false }
	}
	return cur.Merge(section(file), explicit), nil
}

// Format selects the report format from the options before anything is
// rendered. Printing to stdout requires an explicit format.
func Format(opts settings.Report) (report.Format, error) {
	if opts.OutputFile == Stdout || opts.OutputFile == "" {
		if opts.OutputFormat == "" {
			return 0, &report.UnsupportedFormatError{Name: opts.OutputFile}
		}
		return report.ParseFormat(opts.OutputFormat)
	}
	return report.SelectFormat(opts.OutputFormat, opts.OutputFile)
}

// Emit writes the report to dest, or to stdout when dest is Stdout or empty.
func Emit(fs billy.Filesystem, stdout io.Writer, dest string, f report.Format, r report.Report) error {
	if dest == Stdout || dest == "" {
		return linefile.Print(stdout, r)
	}
	abs, err := filepath.Abs(dest)
	if err != nil {
		return errors.Wrap(err, "resolving output path")
	}
	log.Printf("Writing %d lines to file %q (format %s)", len(r), abs, f)
	return linefile.Write(fs, abs, r)
}
