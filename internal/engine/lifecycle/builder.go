// Package lifecycle runs the ordered build phases of a third-party dependency.
package lifecycle

import (
	"context"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/manage/internal/core/domain"
	"go.trai.ch/manage/internal/core/ports"
	"go.trai.ch/zerr"
)

// Builder fetches, builds and installs one dependency. Phases run in the order
// returned by domain.Phases.
type Builder interface {
	Descriptor() *domain.Descriptor
	PreProcess(ctx context.Context) error
	Setup(ctx context.Context) error
	Configure(ctx context.Context) error
	Build(ctx context.Context) error
	Install(ctx context.Context) error
	Clean(ctx context.Context) error
	PostProcess(ctx context.Context) error
}

// Deps are the collaborators shared by every builder of a run.
type Deps struct {
	Layout   domain.Layout
	Shell    ports.Shell
	Logger   ports.Logger
	Platform domain.Platform
}

// Base implements every phase as a no-op and derives the dependency's paths.
// Concrete builders embed it and override the phases they need.
type Base struct {
	Deps

	desc   *domain.Descriptor
	srcDir string
}

// NewBase creates a Base for desc. Sources live in <src>/<name>.
func NewBase(desc *domain.Descriptor, deps Deps) Base {
	return Base{
		Deps:   deps,
		desc:   desc,
		srcDir: filepath.Join(deps.Layout.Src(), desc.Name),
	}
}

// Descriptor returns the dependency being built.
func (b *Base) Descriptor() *domain.Descriptor { return b.desc }

// SrcDir returns the source tree of the dependency.
func (b *Base) SrcDir() string { return b.srcDir }

// BuildDir returns the cmake build tree inside SrcDir.
func (b *Base) BuildDir() string { return filepath.Join(b.srcDir, "build") }

// Prefix returns the install prefix, <install>/<lowercased name>.
func (b *Base) Prefix() string {
	return filepath.Join(b.Layout.Install(), strings.ToLower(b.desc.Name))
}

// Bin returns the prefix bin directory.
func (b *Base) Bin() string { return filepath.Join(b.Prefix(), "bin") }

// Lib returns the prefix lib directory.
func (b *Base) Lib() string { return filepath.Join(b.Prefix(), "lib") }

// Artifacts returns the platform specific artifact names of the dependency.
func (b *Base) Artifacts() (domain.ArtifactNames, error) {
	return domain.PlatformArtifactNames(b.Platform, b.desc.Name)
}

// Executable returns the path of the dependency's executable.
func (b *Base) Executable() (string, error) {
	names, err := b.Artifacts()
	if err != nil {
		return "", err
	}
	return filepath.Join(b.Bin(), names.Executable), nil
}

// StaticLib returns the path of the dependency's static library.
func (b *Base) StaticLib() (string, error) {
	names, err := b.Artifacts()
	if err != nil {
		return "", err
	}
	return filepath.Join(b.Lib(), names.StaticLib), nil
}

// Dylib returns the path of the dependency's dynamic library.
func (b *Base) Dylib() (string, error) {
	names, err := b.Artifacts()
	if err != nil {
		return "", err
	}
	return filepath.Join(b.Lib(), names.DynamicLib), nil
}

// DylibLink returns the path of the dynamic library symlink. Platforms without one
// return ErrUnsupportedPlatform.
func (b *Base) DylibLink() (string, error) {
	names, err := b.Artifacts()
	if err != nil {
		return "", err
	}
	if names.DynamicLink == "" {
		err := zerr.Wrap(domain.ErrUnsupportedPlatform, "no dynamic library link name")
		return "", zerr.With(err, "platform", b.Platform.String())
	}
	return filepath.Join(b.Lib(), names.DynamicLink), nil
}

// LibsStaticExist reports whether every declared static library is present in Lib.
// Without declared libraries the platform static library of the dependency is
// checked instead.
func (b *Base) LibsStaticExist() bool {
	if len(b.desc.StaticLibs) == 0 {
		lib, err := b.StaticLib()
		return err == nil && b.Shell.Exists(lib)
	}
	for _, lib := range b.desc.StaticLibs {
		if !b.Shell.Exists(filepath.Join(b.Lib(), lib)) {
			return false
		}
	}
	return true
}

// InstalledArtifacts returns the artifacts of the dependency found under Prefix:
// the declared static libraries, then the platform static library, dynamic
// library, its link and the executable.
func (b *Base) InstalledArtifacts() []string {
	var candidates []string
	for _, lib := range b.desc.StaticLibs {
		candidates = append(candidates, filepath.Join(b.Lib(), lib))
	}
	for _, path := range []func() (string, error){b.StaticLib, b.Dylib, b.DylibLink, b.Executable} {
		if p, err := path(); err == nil {
			candidates = append(candidates, p)
		}
	}

	var found []string
	for _, p := range candidates {
		if !slices.Contains(found, p) && b.Shell.Exists(p) {
			found = append(found, p)
		}
	}
	return found
}

// PreProcess does nothing.
func (b *Base) PreProcess(context.Context) error { return nil }

// Setup does nothing.
func (b *Base) Setup(context.Context) error { return nil }

// Configure does nothing.
func (b *Base) Configure(context.Context) error { return nil }

// Build does nothing.
func (b *Base) Build(context.Context) error { return nil }

// Install does nothing.
func (b *Base) Install(context.Context) error { return nil }

// Clean does nothing.
func (b *Base) Clean(context.Context) error { return nil }

// PostProcess does nothing.
func (b *Base) PostProcess(context.Context) error { return nil }
