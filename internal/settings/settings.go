// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Package settings loads report options from a TOML file.
//
// A settings file has one table per report:
//
//	[deployed-artifacts]
//	output-file = "target/artifacts.json"
//
//	[distribution-management]
//	output-format = "sh"
//
// Options given on the command line take precedence over the file.
package settings

import (
	"github.com/go-git/go-billy/v5"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Flag names shared by the report commands.
const (
	FlagOutputFile     = "output-file"
	FlagOutputFormat   = "output-format"
	FlagFieldSeparator = "field-separator"
)

// Report holds the output options of one report.
type Report struct {
	OutputFile     string `toml:"output-file"`
	OutputFormat   string `toml:"output-format"`
	FieldSeparator string `toml:"field-separator"`
}

// File is the content of a settings file.
type File struct {
	DeployedArtifacts      Report `toml:"deployed-artifacts"`
	DistributionManagement Report `toml:"distribution-management"`
}

// Load reads the settings file at name.
func Load(fs billy.Filesystem, name string) (*File, error) {
	f, err := fs.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "opening settings")
	}
	defer f.Close()
	var s File
	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(&s); err != nil {
		return nil, errors.Wrapf(err, "decoding settings %s", name)
	}
	return &s, nil
}

// Merge returns r with each option that was not set explicitly replaced by the
// non-empty value of the same option in file.
func (r Report) Merge(file Report, explicit func(flag string) bool) Report {
	pick := func(flag, cur, fromFile string) string {
		if fromFile == "" || explicit(flag) {
			return cur
		}
		return fromFile
	}
	return Report{
		OutputFile:     pick(FlagOutputFile, r.OutputFile, file.OutputFile),
		OutputFormat:   pick(FlagOutputFormat, r.OutputFormat, file.OutputFormat),
		FieldSeparator: pick(FlagFieldSeparator, r.FieldSeparator, file.FieldSeparator),
	}
}
