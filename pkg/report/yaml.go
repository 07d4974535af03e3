// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v3"
)

// yamlEncoder renders the same documents as jsonEncoder in YAML.
type yamlEncoder struct{}

func encodeYAML(v any) (Report, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, errors.Wrap(err, "encoding yaml")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "encoding yaml")
	}
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n"), nil
}

func (yamlEncoder) artifacts(as Artifacts, _ Options) (Report, error) {
	return encodeYAML(artifactDocuments(as))
}

func (yamlEncoder) distributionManagement(d DistributionManagement, _ Options) (Report, error) {
	return encodeYAML(newDistributionDocument(d))
}
