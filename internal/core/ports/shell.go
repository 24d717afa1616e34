package ports

import (
	"context"

	"go.trai.ch/manage/internal/core/domain"
)

// Fetcher downloads remote files.
//
//go:generate mockgen -source=shell.go -destination=mocks/mock_shell.go -package=mocks
type Fetcher interface {
	// Fetch downloads url to the file at dest.
	Fetch(ctx context.Context, url, dest string) error
}

// Extractor expands archives.
type Extractor interface {
	// Extract expands archive into destDir. Unrecognised input returns
	// *domain.UnsupportedArchiveError and leaves destDir untouched.
	Extract(archive, destDir string) error
}

// Shell is the façade through which builders and handlers spawn processes and touch
// the filesystem.
type Shell interface {
	FileSystem

	// Run executes cmd synchronously and returns *domain.CommandError on a nonzero exit.
	Run(ctx context.Context, cmd domain.Command) error
	// Output executes cmd and returns its trimmed standard output.
	Output(ctx context.Context, cmd domain.Command) (string, error)
	// Download fetches url into destDir unless the file is already present, and
	// returns the local path.
	Download(ctx context.Context, url, destDir string) (string, error)
	// Extract expands archive into destDir.
	Extract(archive, destDir string) error
}
