package lifecycle

import (
	"context"

	"go.trai.ch/manage/internal/core/domain"
)

// CMakeBuilder builds a fetched source tree with cmake. Fetching is left to the
// embedding builder.
type CMakeBuilder struct {
	Base
}

// Configure generates BuildDir from SrcDir with the descriptor's options and
// preload scripts.
func (b *CMakeBuilder) Configure(ctx context.Context) error {
	return b.Shell.Run(ctx, domain.CMakeConfigure(b.SrcDir(), b.BuildDir(), b.desc.Preload, b.desc.CMake))
}

// Build runs the generator, in the Release configuration when requested.
func (b *CMakeBuilder) Build(ctx context.Context) error {
	return b.Shell.Run(ctx, domain.CMakeBuild(b.BuildDir(), b.desc.Release))
}

// Install copies the build artifacts to Prefix.
func (b *CMakeBuilder) Install(ctx context.Context) error {
	return b.Shell.Run(ctx, domain.CMakeInstall(b.BuildDir(), b.Prefix()))
}

// Clean removes BuildDir. Other dependencies are left alone.
func (b *CMakeBuilder) Clean(context.Context) error {
	return b.Shell.Remove(b.BuildDir(), false)
}

// PostProcess reports the artifacts found under Prefix.
func (b *CMakeBuilder) PostProcess(context.Context) error {
	found := b.InstalledArtifacts()
	if len(found) == 0 {
		b.Logger.Warn("no artifacts of " + b.desc.Name + " found in " + b.Prefix())
		return nil
	}
	for _, path := range found {
		b.Logger.Info("installed: " + path)
	}
	return nil
}
