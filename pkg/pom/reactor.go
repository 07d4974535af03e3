// Copyright 2025 Google LLC
// SPDX-License-Identifier: Apache-2.0

package pom

import (
	"path"
	"slices"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/google/buildinfo/pkg/registry/maven"
	"github.com/pkg/errors"
)

// FileName is the conventional name of a project descriptor.
const FileName = "pom.xml"

// Classifiers with a dedicated artifact type.
// See maven-core/src/site/apt/artifact-handlers.apt.
var classifierTypes = map[string]string{
	"sources":      "java-source",
	"javadoc":      "javadoc",
	"tests":        "test-jar",
	"test-sources": "java-source",
	"client":       "ejb-client",
}

// Suffixes of signatures and checksums written next to artifacts.
var sidecarSuffixes = []string{".asc", ".md5", ".sha1", ".sha256", ".sha512"}

func isSidecar(name string) bool {
	return slices.ContainsFunc(sidecarSuffixes, func(s string) bool {
		return strings.HasSuffix(name, s)
	})
}

// Load reads the POM in dir, or dir itself when it names a file.
func Load(fs billy.Filesystem, dir string) (*Project, error) {
	file := dir
	if fi, err := fs.Stat(dir); err == nil && fi.IsDir() {
		file = path.Join(dir, FileName)
	} else {
		dir = path.Dir(dir)
	}
	f, err := fs.Open(file)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", file)
	}
	defer f.Close()
	p, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", file)
	}
	p.Dir = dir
	return p, nil
}

// LoadReactor returns the projects of the multi-module build rooted at dir in
// build order: each aggregator precedes its modules, which follow in
// declaration order. Modules without their own distribution management inherit
// the aggregator's.
func LoadReactor(fs billy.Filesystem, dir string) ([]*Project, error) {
	var reactor []*Project
	seen := map[string]bool{}
	var visit func(dir string, parent *Project) error
	visit = func(dir string, parent *Project) error {
		p, err := Load(fs, dir)
		if err != nil {
			return err
		}
		if seen[p.Dir] {
			return errors.Errorf("module cycle at %s", p.Dir)
		}
		seen[p.Dir] = true
		if parent != nil {
			inherit(p, parent)
		}
		reactor = append(reactor, p)
		for _, m := range p.Modules {
			if err := visit(path.Join(p.Dir, strings.TrimSpace(m)), p); err != nil {
				return errors.Wrapf(err, "loading module %s of %s", m, p.Name())
			}
		}
		return nil
	}
	if err := visit(dir, nil); err != nil {
		return nil, err
	}
	return reactor, nil
}

func inherit(p, parent *Project) {
	if p.Parent.GroupID == "" && p.GroupID == "" {
		p.Parent.GroupID = parent.Group()
	}
	if p.Parent.VersionID == "" && p.VersionID == "" {
		p.Parent.VersionID = parent.Version()
	}
	if p.Distribution == nil {
		p.Distribution = parent.Distribution
	}
	for k, v := range parent.Properties {
		if _, ok := p.Properties[k]; !ok {
			if p.Properties == nil {
				p.Properties = Properties{}
			}
			p.Properties[k] = v
		}
	}
}

// Artifacts returns the primary artifact of the project and the artifacts
// attached to it in the build directory. A non-empty timestamp resolves
// snapshot versions as a deployment would.
func (p *Project) Artifacts(fs billy.Filesystem, timestamp string) (primary maven.Artifact, attached []maven.Artifact, err error) {
	version := maven.ResolveSnapshot(p.Version(), timestamp)
	primary = maven.Artifact{
		GroupID:    p.Group(),
		ArtifactID: p.ArtifactID,
		Version:    version,
		Type:       p.Packaging(),
	}
	if p.Packaging() == "pom" {
		return primary, nil, nil
	}
	entries, err := fs.ReadDir(p.buildPath())
	if err != nil {
		// Nothing was built; the primary artifact is still described.
		return primary, nil, nil
	}
	prefix := p.FinalName() + "-"
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), prefix) && !isSidecar(e.Name()) {
			names = append(names, e.Name())
		}
	}
	slices.Sort(names)
	for _, name := range names {
		classifier, ext, ok := strings.Cut(strings.TrimPrefix(name, prefix), ".")
		if !ok || classifier == "" || ext == "" {
			continue
		}
		typ := ext
		if t, known := classifierTypes[classifier]; known && ext == "jar" {
			typ = t
		}
		attached = append(attached, maven.Artifact{
			GroupID:    p.Group(),
			ArtifactID: p.ArtifactID,
			Version:    version,
			Classifier: classifier,
			Type:       typ,
		})
	}
	return primary, attached, nil
}
