package ports

import "go.trai.ch/manage/internal/core/domain"

// MatchFunc reports whether a walked path should be acted upon.
type MatchFunc func(path string, isDir bool) bool

// ActionFunc is applied to every walked path accepted by a MatchFunc.
type ActionFunc func(path string) error

// FileSystem defines the filesystem half of the shell façade.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Remove deletes path recursively. A missing path is not an error. When silent is
	// false, a missing path emits a single warning.
	Remove(path string, silent bool) error
	// Copy copies a file or directory tree like `cp -rf`.
	Copy(src, dst string) error
	// Walk traverses root top-down in lexical order, pruning directories named in skipDirs.
	Walk(root string, match MatchFunc, action ActionFunc, skipDirs []string) error
	// GlobCopy copies every entry of src matching one of patterns into dst.
	GlobCopy(src, dst string, patterns []string) error
	// GlobRemove removes every entry under root whose name matches one of patterns.
	GlobRemove(root string, patterns, skipDirs []string, silent bool) error
	// MakeDirs creates each directory and any missing parents.
	MakeDirs(paths ...string) error
	// Exists reports whether path exists.
	Exists(path string) bool
	// Glob returns the sorted paths under root matching any of patterns. Patterns are
	// not recursive.
	Glob(root string, patterns []string) ([]string, error)
	// ReadFile returns the contents of path.
	ReadFile(path string) ([]byte, error)
	// WriteFile writes data to path, creating or truncating it.
	WriteFile(path string, data []byte) error
}

// Comparer defines the interface for recursive directory comparison.
type Comparer interface {
	Compare(left, right string) ([]domain.DiffEntry, error)
}
