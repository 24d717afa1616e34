package fs

import (
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/manage/internal/core/domain"
	"go.trai.ch/zerr"
)

// Copy copies src to dst like `cp -rf`. When dst is an existing directory, src is
// placed inside it. File modes and modification times are preserved.
func (f *FileSystem) Copy(src, dst string) error {
	f.logger.Info("copy " + src + " to " + dst)

	info, err := os.Lstat(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSourceNotFound.Error()), "path", src)
	}

	if target, err := os.Stat(dst); err == nil && target.IsDir() {
		dst = filepath.Join(dst, filepath.Base(src))
	}

	if info.IsDir() {
		err = copyTree(src, dst)
	} else {
		err = copyEntry(src, dst, info)
	}
	if err != nil {
		return zerr.With(zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "src", src), "dst", dst)
	}
	return nil
}

func copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		info, err := d.Info()
		if err != nil {
			return err
		}
		if d.IsDir() {
			return os.MkdirAll(target, info.Mode().Perm()|0o700)
		}
		return copyEntry(path, target, info)
	})
}

func copyEntry(src, dst string, info iofs.FileInfo) error {
	if info.Mode()&iofs.ModeSymlink != 0 {
		link, err := os.Readlink(src)
		if err != nil {
			return err
		}
		_ = os.Remove(dst)
		return os.Symlink(link, dst)
	}
	if err := copyFile(src, dst, info.Mode().Perm()); err != nil {
		return err
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}

func copyFile(src, dst string, perm iofs.FileMode) (err error) {
	in, err := os.Open(src) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck // Read-only file

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perm|0o200) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	return os.Chmod(dst, perm)
}
