package fs

import (
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/manage/internal/core/domain"
	"go.trai.ch/zerr"
)

// removeAll deletes path. When the first attempt is refused because of read-only
// entries, write permission is restored on the whole tree and the removal is retried
// once.
func removeAll(path string) error {
	err := os.RemoveAll(path)
	if err == nil {
		return nil
	}
	if !isAccessDenied(err) {
		return zerr.With(zerr.Wrap(err, domain.ErrRemoveFailed.Error()), "path", path)
	}

	if chmodErr := makeWritable(path); chmodErr != nil {
		return zerr.With(zerr.Wrap(chmodErr, "failed to clear read-only attribute"), "path", path)
	}

	if err := os.RemoveAll(path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRemoveFailed.Error()), "path", path)
	}
	return nil
}

func makeWritable(root string) error {
	return filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type()&iofs.ModeSymlink != 0 {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		mode := info.Mode().Perm() | 0o200
		if d.IsDir() {
			mode |= 0o700
		}
		return os.Chmod(path, mode)
	})
}
