// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

type jsonEncoder struct{}

// artifactDocument fixes the key order of an artifact in the JSON and YAML
// encodings.
type artifactDocument struct {
	GroupID    string `json:"groupId" yaml:"groupId" xml:"groupId"`
	ArtifactID string `json:"artifactId" yaml:"artifactId" xml:"artifactId"`
	Version    string `json:"version" yaml:"version" xml:"version"`
	Classifier string `json:"classifier" yaml:"classifier" xml:"classifier"`
	Type       string `json:"type" yaml:"type" xml:"type"`
	URL        string `json:"url" yaml:"url" xml:"url"`
}

func artifactDocuments(as Artifacts) []artifactDocument {
	out := make([]artifactDocument, 0, len(as))
	for _, a := range as {
		out = append(out, artifactDocument{
			GroupID:    a.GroupID,
			ArtifactID: a.ArtifactID,
			Version:    a.Version,
			Classifier: a.Classifier,
			Type:       a.Type,
			URL:        a.URL(),
		})
	}
	return out
}

func encodeJSON(v any) (Report, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, errors.Wrap(err, "encoding json")
	}
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n"), nil
}

func (jsonEncoder) artifacts(as Artifacts, _ Options) (Report, error) {
	return encodeJSON(artifactDocuments(as))
}

// distributionDocument fixes the key order of the distribution
// management object.
type distributionDocument struct {
	ReleasesID     string `json:"releases_id" yaml:"releases_id"`
	ReleasesName   string `json:"releases_name" yaml:"releases_name"`
	ReleasesURL    string `json:"releases_url" yaml:"releases_url"`
	ReleasesLayout string `json:"releases_layout" yaml:"releases_layout"`
	SnapshotID     string `json:"snapshot_id" yaml:"snapshot_id"`
	SnapshotName   string `json:"snapshot_name" yaml:"snapshot_name"`
	SnapshotURL    string `json:"snapshot_url" yaml:"snapshot_url"`
	SnapshotLayout string `json:"snapshot_layout" yaml:"snapshot_layout"`
}

func newDistributionDocument(d DistributionManagement) distributionDocument {
	return distributionDocument{
		ReleasesID:     d.Releases.ID,
		ReleasesName:   d.Releases.Name,
		ReleasesURL:    d.Releases.URL,
		ReleasesLayout: d.Releases.Layout,
		SnapshotID:     d.Snapshots.ID,
		SnapshotName:   d.Snapshots.Name,
		SnapshotURL:    d.Snapshots.URL,
		SnapshotLayout: d.Snapshots.Layout,
	}
}

func (jsonEncoder) distributionManagement(d DistributionManagement, _ Options) (Report, error) {
	return encodeJSON(newDistributionDocument(d))
}
