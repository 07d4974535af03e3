// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

package report

import "strings"

// csvEncoder renders a '#'-prefixed header line and one line per record. Values
// are neither quoted nor escaped.
type csvEncoder struct{}

func (csvEncoder) artifacts(as Artifacts, opts Options) (Report, error) {
	sep := opts.separator()
	out := Report{"#" + strings.Join(artifactFields, sep)}
	for _, a := range as {
		out = append(out, strings.Join(artifactValues(a), sep))
	}
	return out, nil
}

func (csvEncoder) distributionManagement(d DistributionManagement, opts Options) (Report, error) {
	sep := opts.separator()
	out := Report{"#key" + sep + "value"}
	for _, f := range dmFields {
		out = append(out, f.key+sep+f.value(d))
	}
	return out, nil
}
