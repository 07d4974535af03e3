// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

package report

// shellEncoder renders bash source. Distribution management becomes one
// assignment per field. Artifacts become a single indexed array holding every
// field of every record in field order, so consumers step through it in strides
// of len(artifactFields).
type shellEncoder struct{}

func (shellEncoder) artifacts(as Artifacts, _ Options) (Report, error) {
	out := Report{"declare -a artifacts=("}
	for _, a := range as {
		for _, v := range artifactValues(a) {
			out = append(out, "  '"+v+"'")
		}
	}
	return append(out, ")"), nil
}

func (shellEncoder) distributionManagement(d DistributionManagement, _ Options) (Report, error) {
	var out Report
	for _, f := range dmFields {
		out = append(out, f.key+"='"+f.value(d)+"'")
	}
	return out, nil
}
