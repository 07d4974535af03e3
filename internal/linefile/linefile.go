// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Package linefile writes line-oriented text to files without exposing partial
// content.
package linefile

import (
	"bufio"
	"fmt"
	"io"
	"path"

	"github.com/go-git/go-billy/v5"
	"github.com/pkg/errors"
)

// WriteError reports a destination that could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Print writes each line followed by a newline.
func Print(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Write replaces the file at name with lines, each followed by a newline.
// Content is staged in a temporary file next to name and renamed into place, so
// name is either left untouched or fully written.
func Write(fs billy.Filesystem, name string, lines []string) (err error) {
	tmp, err := fs.TempFile(path.Dir(name), "."+path.Base(name)+".")
	if err != nil {
		return &WriteError{Path: name, Err: errors.Wrap(err, "creating temporary file")}
	}
	defer func() {
		if err != nil {
			fs.Remove(tmp.Name())
		}
	}()
	if err := Print(tmp, lines); err != nil {
		tmp.Close()
		return &WriteError{Path: name, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &WriteError{Path: name, Err: err}
	}
	if err := fs.Rename(tmp.Name(), name); err != nil {
		return &WriteError{Path: name, Err: errors.Wrap(err, "renaming temporary file")}
	}
	return nil
}
