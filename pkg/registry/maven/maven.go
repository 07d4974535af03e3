// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Package maven maps Maven artifact coordinates onto the Maven 2 repository layout.
package maven

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/buildinfo/internal/urlx"
)

// SnapshotQualifier is the symbolic suffix of an unresolved snapshot version.
const SnapshotQualifier = "SNAPSHOT"

// A resolved snapshot version replaces "SNAPSHOT" with "<yyyyMMdd.HHmmss>-<buildNumber>".
var resolvedSnapshotRE = regexp.MustCompile(`^(.*)-([0-9]{8}\.[0-9]{6})-([0-9]+)$`)

// Packaging types whose physical artifact is a jar.
// See maven-core/src/site/apt/artifact-handlers.apt.
var jarTypes = map[string]bool{
	"java-source":  true,
	"maven-plugin": true,
	"ejb":          true,
	"javadoc":      true,
	"ejb-client":   true,
	"test-jar":     true,
}

// Artifact identifies a single file published to a Maven repository.
type Artifact struct {
	GroupID    string
	ArtifactID string
	// Version is the resolved version, which may carry a snapshot timestamp.
	Version    string
	Classifier string
	Type       string
}

// String returns the artifact in group:artifact:type[:classifier]:version notation.
func (a Artifact) String() string {
	parts := []string{a.GroupID, a.ArtifactID, a.Type}
	if a.Classifier != "" {
		parts = append(parts, a.Classifier)
	}
	return strings.Join(append(parts, a.Version), ":")
}

// InvalidCoordinateError reports an artifact missing a mandatory coordinate.
type InvalidCoordinateError struct {
	Artifact Artifact
	Field    string
}

func (e *InvalidCoordinateError) Error() string {
	return fmt.Sprintf("invalid artifact coordinates %q: missing %s", e.Artifact.String(), e.Field)
}

// Validate checks that the artifact can be placed in a repository.
func (a Artifact) Validate() error {
	switch {
	case a.GroupID == "":
		return &InvalidCoordinateError{Artifact: a, Field: "groupId"}
	case a.ArtifactID == "":
		return &InvalidCoordinateError{Artifact: a, Field: "artifactId"}
	}
	return nil
}

// BaseVersion returns the symbolic version used for the artifact's directory.
// Timestamped snapshots collapse back to "-SNAPSHOT".
func BaseVersion(version string) string {
	if m := resolvedSnapshotRE.FindStringSubmatch(version); m != nil {
		return m[1] + "-" + SnapshotQualifier
	}
	return version
}

// IsSnapshot reports whether version is a snapshot, resolved or not.
func IsSnapshot(version string) bool {
	return strings.HasSuffix(BaseVersion(version), "-"+SnapshotQualifier)
}

// ResolveSnapshot substitutes a deploy timestamp of the form "yyyyMMdd.HHmmss-N"
// into a "-SNAPSHOT" version. Other versions are returned unchanged.
func ResolveSnapshot(version, timestamp string) string {
	if timestamp == "" || !strings.HasSuffix(version, "-"+SnapshotQualifier) {
		return version
	}
	return strings.TrimSuffix(version, SnapshotQualifier) + timestamp
}

// Extension returns the file extension for a packaging type.
func Extension(typ string) string {
	if jarTypes[typ] {
		return "jar"
	}
	return typ
}

// Location returns the escaped repository path of the artifact, with a leading slash.
//
// The directory uses the base version while the file name uses the resolved version.
func Location(a Artifact) (string, error) {
	if err := a.Validate(); err != nil {
		return "", err
	}
	var p strings.Builder
	p.WriteByte('/')
	p.WriteString(strings.ReplaceAll(a.GroupID, ".", "/"))
	p.WriteByte('/')
	p.WriteString(a.ArtifactID)
	p.WriteByte('/')
	p.WriteString(BaseVersion(a.Version))
	p.WriteByte('/')
	p.WriteString(a.ArtifactID)
	p.WriteByte('-')
	p.WriteString(a.Version)
	if a.Classifier != "" {
		p.WriteByte('-')
		p.WriteString(a.Classifier)
	}
	if ext := Extension(a.Type); ext != "" {
		p.WriteByte('.')
		p.WriteString(ext)
	}
	return (&url.URL{Path: p.String()}).EscapedPath(), nil
}

// ResolveURL returns the absolute URL of the artifact within the repository at base.
func ResolveURL(base string, a Artifact) (string, error) {
	loc, err := Location(a)
	if err != nil {
		return "", err
	}
	return urlx.AppendPath(base, loc), nil
}
