package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/manage/internal/core/domain"
	"go.trai.ch/manage/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileSystem = (*FileSystem)(nil)

// FileSystem implements ports.FileSystem on the local disk.
type FileSystem struct {
	logger   ports.Logger
	walker   *Walker
	resolver *Resolver
}

// NewFileSystem creates a new FileSystem.
func NewFileSystem(logger ports.Logger, walker *Walker, resolver *Resolver) *FileSystem {
	return &FileSystem{
		logger:   logger,
		walker:   walker,
		resolver: resolver,
	}
}

// Remove deletes path and everything below it.
func (f *FileSystem) Remove(path string, silent bool) error {
	info, err := os.Lstat(path)
	if errors.Is(err, iofs.ErrNotExist) {
		if !silent {
			f.logger.Warn("path not found: " + path)
		}
		return nil
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRemoveFailed.Error()), "path", path)
	}

	if !silent {
		if info.IsDir() {
			f.logger.Info("remove folder: " + path)
		} else {
			f.logger.Info("remove file: " + path)
		}
	}

	return removeAll(path)
}

// Walk traverses root. See Walker.Walk.
func (f *FileSystem) Walk(root string, match ports.MatchFunc, action ports.ActionFunc, skipDirs []string) error {
	return f.walker.Walk(root, match, action, skipDirs)
}

// GlobCopy copies the entries of src matching patterns into dst, creating dst if needed.
func (f *FileSystem) GlobCopy(src, dst string, patterns []string) error {
	if !f.Exists(src) {
		return zerr.With(zerr.Wrap(domain.ErrSourceNotFound, "cannot copy matches"), "path", src)
	}
	if err := f.MakeDirs(dst); err != nil {
		return err
	}

	matches, err := f.resolver.Resolve(src, patterns)
	if err != nil {
		return err
	}
	for _, m := range matches {
		if err := f.Copy(m, dst); err != nil {
			return err
		}
	}
	return nil
}

// GlobRemove removes every entry below root whose base name matches one of patterns.
func (f *FileSystem) GlobRemove(root string, patterns, skipDirs []string, silent bool) error {
	match := func(path string, _ bool) bool {
		name := filepath.Base(path)
		for _, p := range patterns {
			if ok, _ := filepath.Match(p, name); ok {
				return true
			}
		}
		return false
	}
	action := func(path string) error {
		return f.Remove(path, silent)
	}
	return f.walker.Walk(root, match, action, skipDirs)
}

// MakeDirs creates each directory together with any missing parents.
func (f *FileSystem) MakeDirs(paths ...string) error {
	for _, p := range paths {
		f.logger.Debug("making directory: " + p)
		if err := os.MkdirAll(p, 0o750); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrMkdirFailed.Error()), "path", p)
		}
	}
	return nil
}

// Exists reports whether path exists.
func (f *FileSystem) Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// Glob returns the sorted entries of root matching any of patterns.
func (f *FileSystem) Glob(root string, patterns []string) ([]string, error) {
	return f.resolver.Resolve(root, patterns)
}

// ReadFile returns the contents of path.
func (f *FileSystem) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read file"), "path", path)
	}
	return data, nil
}

// WriteFile writes data to path.
func (f *FileSystem) WriteFile(path string, data []byte) error {
	f.logger.Debug("writing file: " + path)
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // Generated sources are world readable
		return zerr.With(zerr.Wrap(err, "failed to write file"), "path", path)
	}
	return nil
}
