// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Package report renders collected build information in one of several text
// encodings.
//
// Every encoding emits the fields of a record in the same order:
//
//	artifacts:               groupId, artifactId, version, classifier, type, url
//	distribution management: releases id, name, url, layout, then snapshot id, name, url, layout
//
// Records are rendered in the order given. The CSV, XML and shell encodings
// pass values through verbatim; a value containing the field separator, markup
// or a quote is not escaped.
package report

import (
	"strings"

	"github.com/google/buildinfo/pkg/collect"
	"github.com/google/buildinfo/pkg/distmgmt"
	"github.com/pkg/errors"
)

// DefaultFieldSeparator is the CSV field separator used when none is configured.
const DefaultFieldSeparator = ","

// Entity is something that can be rendered.
type Entity interface {
	entity()
}

// Artifacts is the list of artifacts published by a build.
type Artifacts []collect.Record

func (Artifacts) entity() {}

// DistributionManagement is a project's pair of deployment repositories.
type DistributionManagement distmgmt.Record

func (DistributionManagement) entity() {}

// Options tune the rendering.
type Options struct {
	// FieldSeparator delimits CSV fields. Defaults to DefaultFieldSeparator.
	FieldSeparator string
}

func (o Options) separator() string {
	if o.FieldSeparator == "" {
		return DefaultFieldSeparator
	}
	return o.FieldSeparator
}

// Report is a rendered report, one element per line.
type Report []string

// String returns the report with every line terminated by a newline.
func (r Report) String() string {
	var b strings.Builder
	for _, line := range r {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// encoder renders each kind of Entity in one Format.
type encoder interface {
	artifacts(Artifacts, Options) (Report, error)
	distributionManagement(DistributionManagement, Options) (Report, error)
}

var encoders = map[Format]encoder{
	ShellExport: shellEncoder{},
	JSON:        jsonEncoder{},
	CSV:         csvEncoder{},
	XML:         xmlEncoder{},
	YAML:        yamlEncoder{},
}

// Render encodes e in format f.
func Render(e Entity, f Format, opts Options) (Report, error) {
	enc, ok := encoders[f]
	if !ok {
		return nil, &UnsupportedFormatError{Name: f.String()}
	}
	switch e := e.(type) {
	case Artifacts:
		return enc.artifacts(e, opts)
	case DistributionManagement:
		return enc.distributionManagement(e, opts)
	default:
		return nil, errors.Errorf("unsupported entity %T", e)
	}
}

// A field of a distribution management record.
type dmField struct {
	// key names the field in the shell, CSV, JSON and YAML encodings.
	key string
	// element names the field in the XML encoding.
	element string
	value   func(DistributionManagement) string
}

var dmFields = []dmField{
	{"releases_id", "releasesId", func(d DistributionManagement) string { return d.Releases.ID }},
	{"releases_name", "releasesName", func(d DistributionManagement) string { return d.Releases.Name }},
	{"releases_url", "releasesUrl", func(d DistributionManagement) string { return d.Releases.URL }},
	{"releases_layout", "releasesLayout", func(d DistributionManagement) string { return d.Releases.Layout }},
	{"snapshot_id", "snapshotId", func(d DistributionManagement) string { return d.Snapshots.ID }},
	{"snapshot_name", "snapshotName", func(d DistributionManagement) string { return d.Snapshots.Name }},
	{"snapshot_url", "snapshotUrl", func(d DistributionManagement) string { return d.Snapshots.URL }},
	{"snapshot_layout", "snapshotLayout", func(d DistributionManagement) string { return d.Snapshots.Layout }},
}

var artifactFields = []string{"groupId", "artifactId", "version", "classifier", "type", "url"}

func artifactValues(r collect.Record) []string {
	return []string{r.GroupID, r.ArtifactID, r.Version, r.Classifier, r.Type, r.URL()}
}
