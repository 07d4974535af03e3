// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is an output encoding of a report.
type Format int

const (
	// ShellExport renders shell variable assignments.
	ShellExport Format = iota + 1
	// JSON renders a single JSON document.
	JSON
	// CSV renders a '#'-prefixed header followed by one row per record.
	CSV
	// XML renders one element per record.
	XML
	// YAML renders a single YAML document.
	YAML
)

// Formats lists every supported format.
var Formats = []Format{ShellExport, JSON, CSV, XML, YAML}

var formatNames = map[Format]string{
	ShellExport: "sh",
	JSON:        "json",
	CSV:         "csv",
	XML:         "xml",
	YAML:        "yml",
}

// Alternate spellings accepted by ParseFormat and InferFormat.
var formatAliases = map[string]Format{
	"yaml": YAML,
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// UnsupportedFormatError reports a format name, or file extension, that does
// not correspond to any Format.
type UnsupportedFormatError struct {
	Name string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported output format: %q", e.Name)
}

// ParseFormat returns the Format with the given name, ignoring case.
func ParseFormat(name string) (Format, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, f := range Formats {
		if formatNames[f] == n {
			return f, nil
		}
	}
	if f, ok := formatAliases[n]; ok {
		return f, nil
	}
	return 0, &UnsupportedFormatError{Name: name}
}

// InferFormat returns the Format implied by the extension of filename.
func InferFormat(filename string) (Format, error) {
	ext := filepath.Ext(filename)
	if ext == "" {
		return 0, &UnsupportedFormatError{Name: filename}
	}
	f, err := ParseFormat(ext[1:])
	if err != nil {
		return 0, &UnsupportedFormatError{Name: filename}
	}
	return f, nil
}

// SelectFormat returns the explicitly requested format if there is one and the
// format implied by filename otherwise.
func SelectFormat(explicit, filename string) (Format, error) {
	if explicit != "" {
		return ParseFormat(explicit)
	}
	return InferFormat(filename)
}
