package lifecycle

import (
	"context"

	"go.trai.ch/manage/internal/core/domain"
	"go.trai.ch/manage/internal/core/ports"
)

// GitBuilder clones the dependency from its repository.
type GitBuilder struct {
	CMakeBuilder
}

// NewGitBuilder creates a GitBuilder.
func NewGitBuilder(desc *domain.Descriptor, deps Deps) Builder {
	return &GitBuilder{CMakeBuilder{NewBase(desc, deps)}}
}

// Setup creates the project directories and clones the repository at the
// descriptor's version, or its default branch when no version is set. An existing
// source tree is kept.
func (b *GitBuilder) Setup(ctx context.Context) error {
	if err := b.Shell.MakeDirs(b.Layout.SetupDirs()...); err != nil {
		return err
	}

	if b.Shell.Exists(b.SrcDir()) {
		b.Logger.Info("sources already present: " + b.SrcDir())
		markCached(ctx)
		return nil
	}

	b.Logger.Info("update from " + b.desc.Name + " main repo")
	return b.Shell.Run(ctx, domain.GitClone(domain.GitCloneOptions{
		URL:       b.desc.RepoURL,
		Branch:    b.desc.Version(),
		Directory: b.desc.Name,
		Recurse:   b.desc.Recurse,
		Dir:       b.Layout.Src(),
	}))
}

func markCached(ctx context.Context) {
	if v, ok := ports.VertexFromContext(ctx); ok {
		v.Cached()
	}
}
