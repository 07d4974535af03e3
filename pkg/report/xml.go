// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

package report

// xmlEncoder renders one element per field inside a root element. Values are
// written as-is, without escaping markup characters.
type xmlEncoder struct{}

func element(indent, name, value string) string {
	return indent + "<" + name + ">" + value + "</" + name + ">"
}

func (xmlEncoder) artifacts(as Artifacts, _ Options) (Report, error) {
	out := Report{"<artifacts>"}
	for _, a := range as {
		out = append(out, "  <artifact>")
		for i, v := range artifactValues(a) {
			out = append(out, element("    ", artifactFields[i], v))
		}
		out = append(out, "  </artifact>")
	}
	return append(out, "</artifacts>"), nil
}

func (xmlEncoder) distributionManagement(d DistributionManagement, _ Options) (Report, error) {
	out := Report{"<distributionManagement>"}
	for _, f := range dmFields {
		out = append(out, element("  ", f.element, f.value(d)))
	}
	return append(out, "</distributionManagement>"), nil
}
