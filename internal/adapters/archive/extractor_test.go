package archive_test

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
	"go.trai.ch/manage/internal/adapters/archive"
	"go.trai.ch/manage/internal/core/domain"
)

type entry struct {
	name     string
	content  string
	link     string
	typeflag byte
}

var sourceTree = []entry{
	{name: "Python-3.11.7/"},
	{name: "Python-3.11.7/configure", content: "#!/bin/sh\n"},
	{name: "Python-3.11.7/Include/Python.h", content: "#define PY\n"},
}

func tarBytes(t *testing.T, entries []entry) []byte {
	t.Helper()
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	for _, e := range entries {
		hdr := &tar.Header{Name: e.name, Mode: 0o644, Size: int64(len(e.content)), Typeflag: tar.TypeReg}
		switch {
		case e.link != "":
			hdr.Typeflag = e.typeflag
			hdr.Linkname = e.link
		case e.content == "" && e.name[len(e.name)-1] == '/':
			hdr.Typeflag = tar.TypeDir
			hdr.Mode = 0o755
		}
		require.NoError(t, tw.WriteHeader(hdr))
		_, err := tw.Write([]byte(e.content))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	return buf.Bytes()
}

func compress(t *testing.T, data []byte, wrap func(io.Writer) (io.WriteCloser, error)) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := wrap(&buf)
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func zipBytes(t *testing.T, entries []entry) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, e := range entries {
		w, err := zw.Create(e.name)
		require.NoError(t, err)
		_, err = w.Write([]byte(e.content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func writeArchive(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestExtract_Formats(t *testing.T) {
	raw := tarBytes(t, sourceTree)

	tests := []struct {
		name   string
		file   string
		data   []byte
		format archive.Format
	}{
		{name: "Tar", file: "src.tar", data: raw, format: archive.FormatTar},
		{
			name: "Gzip", file: "src.tgz", format: archive.FormatTarGzip,
			data: compress(t, raw, func(w io.Writer) (io.WriteCloser, error) { return gzip.NewWriter(w), nil }),
		},
		{
			name: "Xz", file: "src.tar.xz", format: archive.FormatTarXz,
			data: compress(t, raw, func(w io.Writer) (io.WriteCloser, error) { return xz.NewWriter(w) }),
		},
		{
			name: "Zstd", file: "src.tar.zst", format: archive.FormatTarZstd,
			data: compress(t, raw, func(w io.Writer) (io.WriteCloser, error) { return zstd.NewWriter(w) }),
		},
		{name: "Zip", file: "src.zip", data: zipBytes(t, sourceTree), format: archive.FormatZip},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeArchive(t, tt.file, tt.data)

			format, err := archive.Detect(path)
			require.NoError(t, err)
			assert.Equal(t, tt.format, format)

			dest := filepath.Join(t.TempDir(), "build")
			require.NoError(t, archive.NewExtractor().Extract(path, dest))

			data, err := os.ReadFile(filepath.Join(dest, "Python-3.11.7", "Include", "Python.h"))
			require.NoError(t, err)
			assert.Equal(t, "#define PY\n", string(data))
			assert.FileExists(t, filepath.Join(dest, "Python-3.11.7", "configure"))
		})
	}
}

func TestExtract_Unsupported(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "PlainText", data: []byte("this is not an archive\n")},
		{
			name: "GzipWithoutTar",
			data: compress(t, []byte("just some text"), func(w io.Writer) (io.WriteCloser, error) {
				return gzip.NewWriter(w), nil
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeArchive(t, "download.bin", tt.data)
			dest := filepath.Join(t.TempDir(), "build")

			err := archive.NewExtractor().Extract(path, dest)

			var unsupported *domain.UnsupportedArchiveError
			require.True(t, errors.As(err, &unsupported), "expected UnsupportedArchiveError, got %v", err)
			assert.Equal(t, path, unsupported.Path)
			assert.Equal(t, "cannot extract from this file: "+path, err.Error())
			assert.NoDirExists(t, dest)
		})
	}
}

func TestExtract_RejectsEscapingEntries(t *testing.T) {
	path := writeArchive(t, "evil.zip", zipBytes(t, []entry{{name: "../escape.txt", content: "x"}}))
	dest := filepath.Join(t.TempDir(), "build")

	err := archive.NewExtractor().Extract(path, dest)
	require.ErrorIs(t, err, domain.ErrUnsafeArchivePath)
	assert.NoFileExists(t, filepath.Join(filepath.Dir(dest), "escape.txt"))
}

func TestExtract_TarLinks(t *testing.T) {
	tree := append(append([]entry{}, sourceTree...),
		entry{name: "Python-3.11.7/python.h", link: "Python-3.11.7/Include/Python.h", typeflag: tar.TypeLink},
		entry{name: "Python-3.11.7/headers", link: "Include", typeflag: tar.TypeSymlink},
	)
	path := writeArchive(t, "src.tar", tarBytes(t, tree))
	dest := filepath.Join(t.TempDir(), "build")

	require.NoError(t, archive.NewExtractor().Extract(path, dest))

	data, err := os.ReadFile(filepath.Join(dest, "Python-3.11.7", "python.h"))
	require.NoError(t, err)
	assert.Equal(t, "#define PY\n", string(data))

	data, err = os.ReadFile(filepath.Join(dest, "Python-3.11.7", "headers", "Python.h"))
	require.NoError(t, err)
	assert.Equal(t, "#define PY\n", string(data))
}

func TestExtract_RejectsEscapingLinks(t *testing.T) {
	outside := t.TempDir()

	tests := []struct {
		name    string
		entries []entry
	}{
		{
			name: "AbsoluteSymlink",
			entries: []entry{
				{name: "pkg/link", link: outside, typeflag: tar.TypeSymlink},
				{name: "pkg/link/pwned.txt", content: "x"},
			},
		},
		{
			name: "RelativeSymlink",
			entries: []entry{
				{name: "pkg/link", link: strings.Repeat("../", 32) + strings.TrimPrefix(outside, "/"), typeflag: tar.TypeSymlink},
				{name: "pkg/link/pwned.txt", content: "x"},
			},
		},
		{
			name: "HardLink",
			entries: []entry{
				{name: "pkg/passwd", link: "../../etc/passwd", typeflag: tar.TypeLink},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeArchive(t, "evil.tar", tarBytes(t, tt.entries))
			dest := filepath.Join(t.TempDir(), "build")

			err := archive.NewExtractor().Extract(path, dest)
			require.ErrorIs(t, err, domain.ErrUnsafeArchivePath)
			assert.NoFileExists(t, filepath.Join(outside, "pwned.txt"))
		})
	}
}

func TestExtract_MissingFile(t *testing.T) {
	err := archive.NewExtractor().Extract(filepath.Join(t.TempDir(), "missing.tgz"), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read archive")
}
