package domain

import (
	"fmt"
	"strings"
)

// Kind selects how a dependency's sources are fetched.
type Kind string

const (
	// KindGit clones the sources from RepoURL.
	KindGit Kind = "git"
	// KindArchive downloads and extracts the sources from DownloadURL.
	KindArchive Kind = "archive"
)

// Descriptor is a declarative record describing one third-party library to fetch and build.
// The version is fixed at construction and cannot be changed afterwards.
type Descriptor struct {
	Name                string
	RepoURL             string
	DownloadURLTemplate string
	StaticLibs          []string
	DependsOn           []string
	Kind                Kind
	Recurse             bool
	Release             bool
	CMake               map[string]string
	Preload             []string

	version string
}

// NewDescriptor creates a descriptor for the named dependency.
// An empty version means the default branch or latest release.
func NewDescriptor(name, version string) *Descriptor {
	return &Descriptor{
		Name:    name,
		Kind:    KindGit,
		version: version,
	}
}

// Version returns the full version string the descriptor was created with.
func (d *Descriptor) Version() string {
	return d.version
}

// Ver returns "major.minor", e.g. "3.11" for "3.11.7". Components are split on
// dots, so "3.11.7.1" also yields "3.11".
func (d *Descriptor) Ver() string {
	parts := d.parts()
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return strings.Join(parts, ".")
}

// VerMajor returns the major version component.
func (d *Descriptor) VerMajor() string {
	return d.component(0)
}

// VerMinor returns the minor version component, or "" when the version has none.
func (d *Descriptor) VerMinor() string {
	return d.component(1)
}

// VerPatch returns the patch version component, or "" when the version has none.
func (d *Descriptor) VerPatch() string {
	return d.component(2)
}

// VerNoDot returns Ver without dots, e.g. "311".
func (d *Descriptor) VerNoDot() string {
	return strings.ReplaceAll(d.Ver(), ".", "")
}

// NameVersion returns "<name>-<version>", e.g. "Python-3.11.7".
func (d *Descriptor) NameVersion() string {
	return d.Name + "-" + d.version
}

// NameVer returns the lowercased name followed by Ver, e.g. "python3.11".
func (d *Descriptor) NameVer() string {
	return strings.ToLower(d.Name) + d.Ver()
}

// DownloadURL returns the download URL template with the version interpolated.
//
//	{ver}, {version}  full version       3.11.7
//	{major}           major component    3
//	{minor}           minor component    11
//	{patch}           patch component    7
//	{ver_short}       Ver                3.11
//	{ver_nodot}       VerNoDot           311
//	{name_ver}        NameVer            python3.11
func (d *Descriptor) DownloadURL() string {
	return strings.NewReplacer(
		"{ver}", d.version,
		"{version}", d.version,
		"{major}", d.VerMajor(),
		"{minor}", d.VerMinor(),
		"{patch}", d.VerPatch(),
		"{ver_short}", d.Ver(),
		"{ver_nodot}", d.VerNoDot(),
		"{name_ver}", d.NameVer(),
	).Replace(d.DownloadURLTemplate)
}

func (d *Descriptor) String() string {
	return fmt.Sprintf("<Descriptor '%s'>", d.NameVersion())
}

func (d *Descriptor) parts() []string {
	if d.version == "" {
		return nil
	}
	return strings.Split(d.version, ".")
}

func (d *Descriptor) component(i int) string {
	parts := d.parts()
	if i >= len(parts) {
		return ""
	}
	return parts[i]
}
