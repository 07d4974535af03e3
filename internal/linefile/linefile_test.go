// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

package linefile

import (
	"bytes"
	"os"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/pkg/errors"
)

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	if err := Print(&buf, []string{"a", "", "b"}); err != nil {
		t.Fatalf("Print() error = %v", err)
	}
	if got, want := buf.String(), "a\n\nb\n"; got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}

func TestWrite(t *testing.T) {
	fs := memfs.New()
	if err := util.WriteFile(fs, "/out/report.csv", []byte("stale content that is longer\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := Write(fs, "/out/report.csv", []string{"#key,value", "releases_id,rel"}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	got, err := util.ReadFile(fs, "/out/report.csv")
	if err != nil {
		t.Fatal(err)
	}
	if want := "#key,value\nreleases_id,rel\n"; string(got) != want {
		t.Errorf("file = %q, want %q", got, want)
	}
	entries, err := fs.ReadDir("/out")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("ReadDir() = %d entries, want only the report", len(entries))
	}
}

type failingRename struct {
	billy.Filesystem
}

func (failingRename) Rename(from, to string) error { return os.ErrPermission }

func TestWriteFailureLeavesDestination(t *testing.T) {
	fs := failingRename{memfs.New()}
	if err := util.WriteFile(fs, "/out/report.csv", []byte("previous\n"), 0644); err != nil {
		t.Fatal(err)
	}
	err := Write(fs, "/out/report.csv", []string{"new"})
	var we *WriteError
	if !errors.As(err, &we) {
		t.Fatalf("Write() error = %v, want WriteError", err)
	}
	if we.Path != "/out/report.csv" {
		t.Errorf("WriteError.Path = %v, want /out/report.csv", we.Path)
	}
	got, err := util.ReadFile(fs, "/out/report.csv")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "previous\n" {
		t.Errorf("file = %q, want previous content", got)
	}
	entries, err := fs.ReadDir("/out")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("ReadDir() = %d entries, want temporary file removed", len(entries))
	}
}
