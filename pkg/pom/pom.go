// Copyright 2024 The OSS Rebuild Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package pom reads the subset of the Maven project model needed to describe a
// build's published artifacts and its distribution management.
package pom

import (
	"encoding/xml"
	"io"
	"path"
	"regexp"
	"strings"

	"github.com/google/buildinfo/pkg/registry/maven"
	"github.com/pkg/errors"
	"golang.org/x/net/html/charset"
)

// Project is the root element of a Maven POM file.
// The root element is called "project" and this is handled by the Decode method.
type Project struct {
	GroupID      string                  `xml:"groupId"`
	ArtifactID   string                  `xml:"artifactId"`
	VersionID    string                  `xml:"version"`
	PackagingID  string                  `xml:"packaging"`
	Parent       Parent                  `xml:"parent"`
	Modules      []string                `xml:"modules>module"`
	Properties   Properties              `xml:"properties"`
	Build        Build                   `xml:"build"`
	Distribution *DistributionManagement `xml:"distributionManagement"`

	// Dir is the directory holding the POM, set by the reactor loader.
	Dir string `xml:"-"`
}

// Parent represents the parent package ref within a Maven POM file.
type Parent struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	VersionID  string `xml:"version"`
}

// Build holds the build output settings of a POM.
type Build struct {
	Directory string `xml:"directory"`
	FinalName string `xml:"finalName"`
}

// DistributionManagement is the <distributionManagement> element of a POM.
type DistributionManagement struct {
	Repository         *Repository `xml:"repository"`
	SnapshotRepository *Repository `xml:"snapshotRepository"`
}

// Repository is a deployment repository declaration.
type Repository struct {
	ID     string `xml:"id"`
	Name   string `xml:"name"`
	URL    string `xml:"url"`
	Layout string `xml:"layout"`
}

// Properties are the free-form <properties> of a POM, keyed by element name.
type Properties map[string]string

// UnmarshalXML collects each child element of <properties> as a key/value pair.
func (p *Properties) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	*p = Properties{}
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var v string
			if err := d.DecodeElement(&v, &t); err != nil {
				return err
			}
			(*p)[t.Name.Local] = strings.TrimSpace(v)
		case xml.EndElement:
			return nil
		}
	}
}

// Decode parses a POM document.
func Decode(r io.Reader) (*Project, error) {
	var p Project
	d := xml.NewDecoder(r)
	d.CharsetReader = charset.NewReaderLabel
	if err := d.Decode(&p); err != nil {
		return nil, errors.Wrap(err, "decoding pom")
	}
	return &p, nil
}

// Name returns the Maven package name.
func (p *Project) Name() string {
	return p.Group() + ":" + p.ArtifactID
}

// Group returns the Maven package group.
func (p *Project) Group() string {
	if g := p.GroupID; g != "" {
		return g
	}
	return p.Parent.GroupID
}

// Version returns the Maven package version.
func (p *Project) Version() string {
	if v := p.VersionID; v != "" {
		return v
	}
	return p.Parent.VersionID
}

// Packaging returns the declared packaging, defaulting to "jar".
func (p *Project) Packaging() string {
	if p.PackagingID != "" {
		return p.PackagingID
	}
	return "jar"
}

// FinalName returns the base name of the files in the build directory.
func (p *Project) FinalName() string {
	if p.Build.FinalName != "" {
		return p.Interpolate(p.Build.FinalName)
	}
	return p.ArtifactID + "-" + p.Version()
}

// BuildDirectory returns the build output directory relative to Dir.
func (p *Project) BuildDirectory() string {
	if p.Build.Directory != "" {
		d := p.Interpolate(p.Build.Directory)
		return strings.TrimPrefix(d, p.Dir+"/")
	}
	return "target"
}

// buildPath returns the build output directory as a path.
func (p *Project) buildPath() string {
	d := p.BuildDirectory()
	if path.IsAbs(d) {
		return d
	}
	return path.Join(p.Dir, d)
}

var propertyRE = regexp.MustCompile(`\$\{([^}]+)\}`)

// Interpolate expands ${...} references to project coordinates and properties.
// Unknown references are left in place.
func (p *Project) Interpolate(s string) string {
	return propertyRE.ReplaceAllStringFunc(s, func(ref string) string {
		key := ref[2 : len(ref)-1]
		switch key {
		case "project.groupId", "pom.groupId":
			return p.Group()
		case "project.artifactId", "pom.artifactId":
			return p.ArtifactID
		case "project.version", "pom.version":
			return p.Version()
		case "project.basedir", "basedir":
			return p.Dir
		case "project.build.directory":
			if strings.Contains(p.Build.Directory, ref) {
				return ref
			}
			return p.buildPath()
		}
		if v, ok := p.Properties[key]; ok {
			return v
		}
		return ref
	})
}

// DeploymentRepository returns the repository that receives this project's
// artifacts: the snapshot repository for snapshot versions, the releases
// repository otherwise. It returns nil if none is declared.
func (p *Project) DeploymentRepository() *Repository {
	if p.Distribution == nil {
		return nil
	}
	repo := p.Distribution.Repository
	if maven.IsSnapshot(p.Version()) && p.Distribution.SnapshotRepository != nil {
		repo = p.Distribution.SnapshotRepository
	}
	if repo == nil {
		return nil
	}
	resolved := *repo
	resolved.URL = p.Interpolate(repo.URL)
	return &resolved
}
