package lifecycle

import (
	"context"
	"path/filepath"

	"go.trai.ch/manage/internal/core/domain"
)

// ArchiveBuilder downloads and unpacks a release archive. Release tarballs unpack
// into <name>-<version>, which becomes the source tree.
type ArchiveBuilder struct {
	CMakeBuilder
}

// NewArchiveBuilder creates an ArchiveBuilder.
func NewArchiveBuilder(desc *domain.Descriptor, deps Deps) Builder {
	base := NewBase(desc, deps)
	base.srcDir = filepath.Join(deps.Layout.Src(), desc.NameVersion())
	return &ArchiveBuilder{CMakeBuilder{base}}
}

// Setup creates the project directories, then downloads and extracts the archive.
// Both steps are skipped when their output already exists.
func (b *ArchiveBuilder) Setup(ctx context.Context) error {
	if err := b.Shell.MakeDirs(b.Layout.SetupDirs()...); err != nil {
		return err
	}

	if b.Shell.Exists(b.SrcDir()) {
		b.Logger.Info("sources already present: " + b.SrcDir())
		markCached(ctx)
		return nil
	}

	archive, err := b.Shell.Download(ctx, b.desc.DownloadURL(), b.Layout.Src())
	if err != nil {
		return err
	}
	if err := b.Shell.Extract(archive, b.Layout.Src()); err != nil {
		// A partial tree would be taken as present on the next run.
		if rmErr := b.Shell.Remove(b.SrcDir(), true); rmErr != nil {
			b.Logger.Warn("failed to remove partial sources: " + rmErr.Error())
		}
		return err
	}
	return nil
}
