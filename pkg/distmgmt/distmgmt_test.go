// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

package distmgmt

import (
	"testing"

	"github.com/google/buildinfo/pkg/pom"
	"github.com/google/go-cmp/cmp"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name    string
		project *pom.Project
		want    Record
		wantOK  bool
	}{
		{
			name:    "nil project",
			project: nil,
		},
		{
			name:    "no distribution management",
			project: &pom.Project{ArtifactID: "widget"},
		},
		{
			name:    "empty distribution management",
			project: &pom.Project{Distribution: &pom.DistributionManagement{}},
			wantOK:  true,
		},
		{
			name: "both repositories",
			project: &pom.Project{Distribution: &pom.DistributionManagement{
				Repository:         &pom.Repository{ID: "rel", Name: "Releases", URL: "https://repo.acme.com/releases", Layout: "default"},
				SnapshotRepository: &pom.Repository{ID: "snap", URL: "${nexus}/snapshots"},
			}},
			want: Record{
				Releases:  Target{ID: "rel", Name: "Releases", URL: "https://repo.acme.com/releases", Layout: "default"},
				Snapshots: Target{ID: "snap", URL: "${nexus}/snapshots"},
			},
			wantOK: true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Extract(tc.project)
			if ok != tc.wantOK {
				t.Fatalf("Extract() ok = %v, want %v", ok, tc.wantOK)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
