// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Package distmgmt projects a project's declared publish targets.
package distmgmt

import "github.com/google/buildinfo/pkg/pom"

// Target is one deployment repository endpoint.
type Target struct {
	ID     string
	Name   string
	URL    string
	Layout string
}

// Record holds the releases and snapshot repositories of a project.
type Record struct {
	Releases  Target
	Snapshots Target
}

// Extract returns the project's distribution management, reporting false when
// the project declares none. Undeclared repositories and fields are empty.
func Extract(p *pom.Project) (Record, bool) {
	if p == nil || p.Distribution == nil {
		return Record{}, false
	}
	return Record{
		Releases:  target(p.Distribution.Repository),
		Snapshots: target(p.Distribution.SnapshotRepository),
	}, true
}

func target(r *pom.Repository) Target {
	if r == nil {
		return Target{}
	}
	return Target{ID: r.ID, Name: r.Name, URL: r.URL, Layout: r.Layout}
}
