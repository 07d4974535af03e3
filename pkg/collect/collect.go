// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Package collect aggregates the artifacts published by every module of a
// multi-module build into a single ordered list.
//
// The aggregation state is an Accumulator value owned by the caller and threaded
// through one Visit per module. The list is only handed out once the last module
// has been visited, so partial results of an in-progress build are never
// rendered.
package collect

import (
	"slices"

	"github.com/google/buildinfo/pkg/registry/maven"
	"github.com/pkg/errors"
)

// Record is a published artifact and its location in the deployment repository.
type Record struct {
	maven.Artifact
	url string
}

// NewRecord resolves the artifact against the repository at base.
func NewRecord(base string, a maven.Artifact) (Record, error) {
	u, err := maven.ResolveURL(base, a)
	if err != nil {
		return Record{}, err
	}
	return Record{Artifact: a, url: u}, nil
}

// URL returns the absolute URL of the artifact.
func (r Record) URL() string { return r.url }

// Module is the published output of one module of the build.
type Module struct {
	Name     string
	Primary  maven.Artifact
	Attached []maven.Artifact
	// RepositoryURL is the base URL of the module's deployment repository.
	// Modules without one are not deployed and contribute no records.
	RepositoryURL string
}

// Result is the outcome of a Visit.
type Result struct {
	// Complete is set once the last module has been visited.
	Complete bool
	// Records holds every collected record when Complete is set.
	Records []Record
}

// Empty reports whether a completed aggregation found nothing to render.
func (r Result) Empty() bool { return r.Complete && len(r.Records) == 0 }

// Accumulator holds the records collected from the modules visited so far.
// The zero value is ready to use.
type Accumulator struct {
	records []Record
	visited int
}

// Len returns the number of records collected so far.
func (a Accumulator) Len() int { return len(a.records) }

// Visited returns the number of modules visited so far.
func (a Accumulator) Visited() int { return a.visited }

// Visit adds the module's primary artifact followed by its attached artifacts
// and returns the updated accumulator. The receiver is left unchanged.
func (a Accumulator) Visit(m Module, last bool) (Accumulator, Result, error) {
	next := Accumulator{records: slices.Clip(a.records), visited: a.visited + 1}
	if m.RepositoryURL != "" {
		for _, art := range append([]maven.Artifact{m.Primary}, m.Attached...) {
			r, err := NewRecord(m.RepositoryURL, art)
			if err != nil {
				return a, Result{}, errors.Wrapf(err, "collecting module %s", m.Name)
			}
			next.records = append(next.records, r)
		}
	}
	if !last {
		return next, Result{}, nil
	}
	return next, Result{Complete: true, Records: slices.Clone(next.records)}, nil
}

// VisitIndexed is Visit for the module at index of a build of total modules.
func (a Accumulator) VisitIndexed(index, total int, m Module) (Accumulator, Result, error) {
	if index < 0 || index >= total {
		return a, Result{}, errors.Errorf("module index %d out of range for %d modules", index, total)
	}
	return a.Visit(m, index == total-1)
}
