// Package archive expands downloaded source archives.
package archive

import (
	"archive/tar"
	"archive/zip"
	"compress/bzip2"
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
	"go.trai.ch/manage/internal/core/domain"
	"go.trai.ch/manage/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Extractor = (*Extractor)(nil)

// Format identifies an archive container and its compression.
type Format string

const (
	// FormatUnknown is returned for files that are not supported archives.
	FormatUnknown Format = ""
	// FormatTar is an uncompressed tar archive.
	FormatTar Format = "tar"
	// FormatTarGzip is a gzip compressed tar archive.
	FormatTarGzip Format = "tar.gz"
	// FormatTarXz is an xz compressed tar archive.
	FormatTarXz Format = "tar.xz"
	// FormatTarZstd is a zstd compressed tar archive.
	FormatTarZstd Format = "tar.zst"
	// FormatTarBzip2 is a bzip2 compressed tar archive.
	FormatTarBzip2 Format = "tar.bz2"
	// FormatZip is a zip archive.
	FormatZip Format = "zip"
)

var formats = []struct {
	mime   string
	format Format
}{
	{"application/gzip", FormatTarGzip},
	{"application/x-xz", FormatTarXz},
	{"application/zstd", FormatTarZstd},
	{"application/x-bzip2", FormatTarBzip2},
	{"application/x-tar", FormatTar},
	{"application/zip", FormatZip},
}

// Extractor unpacks tar and zip archives.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Detect sniffs the archive format of path from its leading bytes.
func Detect(path string) (Format, error) {
	m, err := mimetype.DetectFile(path)
	if err != nil {
		return FormatUnknown, zerr.With(zerr.Wrap(err, "failed to read archive"), "path", path)
	}
	for ; m != nil; m = m.Parent() {
		for _, f := range formats {
			if m.Is(f.mime) {
				return f.format, nil
			}
		}
	}
	return FormatUnknown, nil
}

// Extract unpacks archive into destDir. Files that are not a supported archive
// return *domain.UnsupportedArchiveError and leave destDir untouched.
func (e *Extractor) Extract(archive, destDir string) error {
	format, err := Detect(archive)
	if err != nil {
		return err
	}

	switch format {
	case FormatUnknown:
		return &domain.UnsupportedArchiveError{Path: archive}
	case FormatZip:
		err = extractZip(archive, destDir)
	default:
		err = extractTar(archive, destDir, format)
	}
	if err != nil {
		var unsupported *domain.UnsupportedArchiveError
		if errors.As(err, &unsupported) {
			return err
		}
		return zerr.With(zerr.With(zerr.Wrap(err, domain.ErrExtractFailed.Error()), "archive", archive), "dest", destDir)
	}
	return nil
}

func decompressor(format Format, r io.Reader) (io.ReadCloser, error) {
	switch format {
	case FormatTarGzip:
		return gzip.NewReader(r)
	case FormatTarXz:
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, err
		}
		return io.NopCloser(xr), nil
	case FormatTarZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr.IOReadCloser(), nil
	case FormatTarBzip2:
		return io.NopCloser(bzip2.NewReader(r)), nil
	default:
		return io.NopCloser(r), nil
	}
}

func extractTar(archive, destDir string, format Format) error {
	f, err := os.Open(archive) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	r, err := decompressor(format, f)
	if err != nil {
		return err
	}
	defer r.Close() //nolint:errcheck // Best effort close in defer

	tr := tar.NewReader(r)
	hdr, err := tr.Next()
	if err != nil {
		// A compressed stream that does not hold a tar is not something we unpack.
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, tar.ErrHeader) {
			return &domain.UnsupportedArchiveError{Path: archive}
		}
		return err
	}

	if err := os.MkdirAll(destDir, 0o750); err != nil {
		return err
	}

	for ; err == nil; hdr, err = tr.Next() {
		if err := writeTarEntry(tr, hdr, destDir); err != nil {
			return err
		}
	}
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func writeTarEntry(tr *tar.Reader, hdr *tar.Header, destDir string) error {
	target, err := safeJoin(destDir, hdr.Name)
	if err != nil {
		return err
	}
	mode := iofs.FileMode(hdr.Mode).Perm() //nolint:gosec // Mode bits come from the archive header

	switch hdr.Typeflag {
	case tar.TypeDir:
		if err := checkParent(destDir, target, hdr.Name); err != nil {
			return err
		}
		return os.MkdirAll(target, mode|0o700)
	case tar.TypeReg:
		if err := makeParent(destDir, target, hdr.Name); err != nil {
			return err
		}
		return writeFile(target, tr, mode)
	case tar.TypeSymlink:
		if err := makeParent(destDir, target, hdr.Name); err != nil {
			return err
		}
		dest := hdr.Linkname
		if !filepath.IsAbs(dest) {
			dest = filepath.Join(filepath.Dir(target), dest)
		}
		if !within(destDir, dest) {
			return zerr.With(zerr.With(zerr.Wrap(domain.ErrUnsafeArchivePath, "refusing symlink"),
				"entry", hdr.Name), "link", hdr.Linkname)
		}
		if err := os.Symlink(hdr.Linkname, target); err != nil && !errors.Is(err, iofs.ErrExist) {
			return err
		}
		return nil
	case tar.TypeLink:
		source, err := safeJoin(destDir, hdr.Linkname)
		if err != nil {
			return err
		}
		if err := checkParent(destDir, source, hdr.Linkname); err != nil {
			return err
		}
		if err := makeParent(destDir, target, hdr.Name); err != nil {
			return err
		}
		if err := os.Remove(target); err != nil && !errors.Is(err, iofs.ErrNotExist) {
			return err
		}
		return os.Link(source, target)
	default:
		// Device nodes and fifos are not needed for source trees.
		return nil
	}
}

func extractZip(archive, destDir string) error {
	zr, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer zr.Close() //nolint:errcheck // Best effort close in defer

	if err := os.MkdirAll(destDir, 0o750); err != nil {
		return err
	}

	for _, zf := range zr.File {
		if err := writeZipEntry(zf, destDir); err != nil {
			return err
		}
	}
	return nil
}

func writeZipEntry(zf *zip.File, destDir string) error {
	target, err := safeJoin(destDir, zf.Name)
	if err != nil {
		return err
	}
	if zf.FileInfo().IsDir() {
		if err := checkParent(destDir, target, zf.Name); err != nil {
			return err
		}
		return os.MkdirAll(target, 0o750)
	}
	if err := makeParent(destDir, target, zf.Name); err != nil {
		return err
	}

	rc, err := zf.Open()
	if err != nil {
		return err
	}
	defer rc.Close() //nolint:errcheck // Best effort close in defer

	mode := zf.Mode().Perm()
	if mode == 0 {
		mode = 0o644
	}
	return writeFile(target, rc, mode)
}

func writeFile(path string, r io.Reader, mode iofs.FileMode) error {
	out, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode|0o600) //nolint:gosec // Target is checked by safeJoin
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, r); err != nil { //nolint:gosec // Archives are trusted project sources
		_ = out.Close()
		return err
	}
	return out.Close()
}

// safeJoin resolves name below destDir, rejecting entries that would escape it.
func safeJoin(destDir, name string) (string, error) {
	target := filepath.Join(destDir, name)
	if !within(destDir, target) {
		return "", zerr.With(zerr.Wrap(domain.ErrUnsafeArchivePath, "refusing archive entry"), "entry", name)
	}
	return target, nil
}

func within(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) && !filepath.IsAbs(rel)
}

// makeParent creates the parent directory of target and checks that it does not
// resolve outside destDir through a previously extracted symlink.
func makeParent(destDir, target, name string) error {
	if err := checkParent(destDir, target, name); err != nil {
		return err
	}
	return os.MkdirAll(filepath.Dir(target), 0o750)
}

// checkParent resolves the deepest existing ancestor of target and rejects it
// when it lies outside destDir.
func checkParent(destDir, target, name string) error {
	root, err := filepath.EvalSymlinks(destDir)
	if err != nil {
		return err
	}
	dir := filepath.Dir(target)
	for {
		resolved, err := filepath.EvalSymlinks(dir)
		if err == nil {
			if !within(root, resolved) {
				return zerr.With(zerr.Wrap(domain.ErrUnsafeArchivePath, "refusing archive entry"), "entry", name)
			}
			return nil
		}
		if !errors.Is(err, iofs.ErrNotExist) {
			return err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil
		}
		dir = parent
	}
}
