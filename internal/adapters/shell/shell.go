package shell

import (
	"bytes"
	"context"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"go.trai.ch/manage/internal/core/domain"
	"go.trai.ch/manage/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Shell = (*Shell)(nil)

// Shell is the façade builders and handlers use for every side effect.
type Shell struct {
	ports.FileSystem
	executor  ports.Executor
	fetcher   ports.Fetcher
	extractor ports.Extractor
	logger    ports.Logger
}

// New creates a new Shell.
func New(
	fsys ports.FileSystem,
	executor ports.Executor,
	fetcher ports.Fetcher,
	extractor ports.Extractor,
	logger ports.Logger,
) *Shell {
	return &Shell{
		FileSystem: fsys,
		executor:   executor,
		fetcher:    fetcher,
		extractor:  extractor,
		logger:     logger,
	}
}

// Run echoes cmd and executes it, streaming its output to the log.
func (s *Shell) Run(ctx context.Context, cmd domain.Command) error {
	s.logger.Info(cmd.String())
	return s.executor.Execute(ctx, cmd, nil, nil)
}

// Output executes cmd and returns its standard output with surrounding whitespace
// removed. Standard error still goes to the log.
func (s *Shell) Output(ctx context.Context, cmd domain.Command) (string, error) {
	s.logger.Debug(cmd.String())
	var stdout bytes.Buffer
	if err := s.executor.Execute(ctx, cmd, &stdout, nil); err != nil {
		return "", err
	}
	return strings.TrimSpace(stdout.String()), nil
}

// Download fetches rawURL into destDir, naming the file after the last URL path
// segment. An existing file is reused.
func (s *Shell) Download(ctx context.Context, rawURL, destDir string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "invalid download url"), "url", rawURL)
	}
	name := path.Base(u.Path)
	if name == "/" || name == "." {
		return "", zerr.With(zerr.Wrap(domain.ErrDownloadFailed, "url has no file name"), "url", rawURL)
	}

	target := filepath.Join(destDir, name)
	if s.Exists(target) {
		s.logger.Debug("already downloaded: " + target)
		return target, nil
	}

	if err := s.MakeDirs(destDir); err != nil {
		return "", err
	}
	s.logger.Info("downloading " + rawURL)
	if err := s.fetcher.Fetch(ctx, rawURL, target); err != nil {
		return "", err
	}
	return target, nil
}

// Extract expands archive into destDir.
func (s *Shell) Extract(archive, destDir string) error {
	s.logger.Info("extracting " + archive + " to " + destDir)
	return s.extractor.Extract(archive, destDir)
}
