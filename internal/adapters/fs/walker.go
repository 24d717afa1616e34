// Package fs provides the filesystem half of the shell façade: walking, copying,
// removing and comparing directory trees.
package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/manage/internal/core/ports"
	"go.trai.ch/zerr"
)

// Walker provides directory traversal.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Walk visits every entry below root top-down in lexical order. Directories whose
// name matches one of skipDirs are pruned along with their subtree. action is called
// for each entry accepted by match; root itself is never visited.
func (w *Walker) Walk(root string, match ports.MatchFunc, action ports.ActionFunc, skipDirs []string) error {
	err := filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, iofs.ErrNotExist) && path != root {
				// Removed by an earlier action.
				return nil
			}
			return err
		}
		if path == root {
			return nil
		}

		if d.IsDir() && skipped(d.Name(), skipDirs) {
			return filepath.SkipDir
		}

		if !match(path, d.IsDir()) {
			return nil
		}
		if err := action(path); err != nil {
			return err
		}

		if d.IsDir() {
			if _, statErr := os.Lstat(path); errors.Is(statErr, iofs.ErrNotExist) {
				return filepath.SkipDir
			}
		}
		return nil
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to walk directory"), "root", root)
	}
	return nil
}

func skipped(name string, skipDirs []string) bool {
	for _, pattern := range skipDirs {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}
