// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/google/buildinfo/internal/settings"
	"github.com/google/buildinfo/pkg/report"
	"github.com/google/go-cmp/cmp"
)

func TestNote(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	Note(&buf, "no artifacts in %d modules", 3)
	if got, want := buf.String(), "NOTE: no artifacts in 3 modules\n"; got != want {
		t.Errorf("Note() = %q, want %q", got, want)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name    string
		opts    settings.Report
		want    report.Format
		wantErr bool
	}{
		{"inferred", settings.Report{OutputFile: "out/artifacts.json"}, report.JSON, false},
		{"explicit wins", settings.Report{OutputFile: "artifacts.csv", OutputFormat: "xml"}, report.XML, false},
		{"stdout without format", settings.Report{OutputFile: Stdout}, 0, true},
		{"empty destination without format", settings.Report{}, 0, true},
		{"stdout explicit", settings.Report{OutputFile: Stdout, OutputFormat: "sh"}, report.ShellExport, false},
		{"unknown extension", settings.Report{OutputFile: "artifacts.txt"}, 0, true},
		{"unknown explicit", settings.Report{OutputFile: "artifacts.csv", OutputFormat: "toml"}, 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Format(tc.opts)
			if tc.wantErr {
				var ufe *report.UnsupportedFormatError
				if !errors.As(err, &ufe) {
					t.Fatalf("Format() error = %v, want UnsupportedFormatError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			if got != tc.want {
				t.Errorf("Format() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestOptions(t *testing.T) {
	fs := memfs.New()
	content := "[distribution-management]\noutput-file = \"/out/dm.sh\"\nfield-separator = \";\"\n"
	if err := util.WriteFile(fs, "/work/buildinfo.toml", []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	cur := settings.Report{OutputFile: "distribution-management.csv", FieldSeparator: "|"}
	section := func(f *settings.File) settings.Report { return f.DistributionManagement }
	explicit := func(flag string) bool { return flag == settings.FlagFieldSeparator }
	got, err := Options(fs, "/work/buildinfo.toml", cur, section, explicit)
	if err != nil {
		t.Fatalf("Options() error = %v", err)
	}
	want := settings.Report{OutputFile: "/out/dm.sh", FieldSeparator: "|"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Options() mismatch (-want +got):\n%s", diff)
	}
	if got, err := Options(fs, "", cur, section, explicit); err != nil || got != cur {
		t.Errorf("Options() without settings = %v, %v; want %v", got, err, cur)
	}
	if _, err := Options(fs, "/work/missing.toml", cur, section, nil); err == nil {
		t.Error("Options() with missing settings error = nil, want error")
	}
}

func TestEmit(t *testing.T) {
	fs := memfs.New()
	r := report.Report{"#a,b", "1,2"}
	var stdout bytes.Buffer
	if err := Emit(fs, &stdout, Stdout, report.CSV, r); err != nil {
		t.Fatalf("Emit(stdout) error = %v", err)
	}
	if got, want := stdout.String(), "#a,b\n1,2\n"; got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
	if err := fs.MkdirAll("/out", 0755); err != nil {
		t.Fatal(err)
	}
	if err := Emit(fs, &stdout, "/out/report.csv", report.CSV, r); err != nil {
		t.Fatalf("Emit(file) error = %v", err)
	}
	got, err := util.ReadFile(fs, "/out/report.csv")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("#a,b\n1,2\n", string(got)); diff != "" {
		t.Errorf("file mismatch (-want +got):\n%s", diff)
	}
}
