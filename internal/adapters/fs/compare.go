package fs

import (
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/manage/internal/core/domain"
	"go.trai.ch/manage/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Comparer = (*Comparer)(nil)

// DefaultCompareIgnores are entry names excluded from directory comparison.
var DefaultCompareIgnores = []string{"RCS", "CVS", "tags", ".git", ".hg", ".bzr", "_darcs", "__pycache__"}

// Comparer reports the differences between two directory trees.
type Comparer struct {
	hasher  *Hasher
	ignores []string
}

// NewComparer creates a new Comparer.
func NewComparer(hasher *Hasher) *Comparer {
	return &Comparer{
		hasher:  hasher,
		ignores: DefaultCompareIgnores,
	}
}

// Compare walks left and right together. For every directory level it reports the
// entries only present on the left, then those only present on the right, then the
// common files whose content differs, and finally recurses into common
// sub-directories. An entry that is a file on one side and a directory on the other
// is reported as different content.
func (c *Comparer) Compare(left, right string) ([]domain.DiffEntry, error) {
	var diffs []domain.DiffEntry
	if err := c.compareDir(left, right, "", &diffs); err != nil {
		return nil, err
	}
	return diffs, nil
}

func (c *Comparer) compareDir(left, right, rel string, diffs *[]domain.DiffEntry) error {
	leftEntries, err := c.list(filepath.Join(left, rel))
	if err != nil {
		return err
	}
	rightEntries, err := c.list(filepath.Join(right, rel))
	if err != nil {
		return err
	}

	var common []string
	for _, name := range sortedKeys(leftEntries) {
		if _, ok := rightEntries[name]; ok {
			common = append(common, name)
			continue
		}
		*diffs = append(*diffs, domain.DiffEntry{Kind: domain.DiffLeftOnly, Path: filepath.Join(rel, name)})
	}
	for _, name := range sortedKeys(rightEntries) {
		if _, ok := leftEntries[name]; !ok {
			*diffs = append(*diffs, domain.DiffEntry{Kind: domain.DiffRightOnly, Path: filepath.Join(rel, name)})
		}
	}

	var subdirs []string
	for _, name := range common {
		path := filepath.Join(rel, name)
		leftDir, rightDir := leftEntries[name], rightEntries[name]

		switch {
		case leftDir && rightDir:
			subdirs = append(subdirs, path)
		case leftDir != rightDir:
			*diffs = append(*diffs, domain.DiffEntry{Kind: domain.DiffContent, Path: path})
		default:
			same, err := c.sameContent(filepath.Join(left, path), filepath.Join(right, path))
			if err != nil {
				return err
			}
			if !same {
				*diffs = append(*diffs, domain.DiffEntry{Kind: domain.DiffContent, Path: path})
			}
		}
	}

	for _, sub := range subdirs {
		if err := c.compareDir(left, right, sub, diffs); err != nil {
			return err
		}
	}
	return nil
}

// list maps entry names to whether they are directories.
func (c *Comparer) list(dir string) (map[string]bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read directory"), "path", dir)
	}
	out := make(map[string]bool, len(entries))
	for _, e := range entries {
		if slices.Contains(c.ignores, e.Name()) {
			continue
		}
		out[e.Name()] = e.IsDir()
	}
	return out, nil
}

func (c *Comparer) sameContent(a, b string) (bool, error) {
	ai, err := os.Stat(a)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to stat file"), "path", a)
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to stat file"), "path", b)
	}
	if ai.Size() != bi.Size() {
		return false, nil
	}

	ah, err := c.hasher.ComputeFileHash(a)
	if err != nil {
		return false, err
	}
	bh, err := c.hasher.ComputeFileHash(b)
	if err != nil {
		return false, err
	}
	return ah == bh, nil
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
