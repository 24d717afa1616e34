// Package download fetches remote source archives.
package download

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"go.trai.ch/manage/internal/core/domain"
	"go.trai.ch/manage/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Fetcher = (*Fetcher)(nil)

// Fetcher downloads files over HTTP(S).
type Fetcher struct {
	client *http.Client
	logger ports.Logger
}

// NewFetcher creates a new Fetcher. A nil client uses http.DefaultClient.
func NewFetcher(client *http.Client, logger ports.Logger) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{client: client, logger: logger}
}

// Fetch writes the body of url to dest. The file only appears at dest once the
// whole body has been received.
func (f *Fetcher) Fetch(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create request"), "url", url)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrDownloadFailed, err.Error()), "url", url)
	}
	defer resp.Body.Close() //nolint:errcheck // Best effort close in defer

	if resp.StatusCode != http.StatusOK {
		return zerr.With(zerr.Wrap(domain.ErrDownloadFailed, "unexpected status "+resp.Status), "url", url)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), ".download-*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create temporary file"), "dir", filepath.Dir(dest))
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // Gone after a successful rename

	n, err := io.Copy(tmp, resp.Body)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrDownloadFailed, err.Error()), "url", url)
	}

	if err := os.Rename(tmp.Name(), dest); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to move download into place"), "path", dest)
	}

	f.logger.Info("downloaded " + filepath.Base(dest) + " (" + humanize.Bytes(uint64(n)) + ")") //nolint:gosec // n is never negative
	return nil
}
