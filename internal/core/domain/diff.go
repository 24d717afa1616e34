package domain

// DiffKind classifies one difference between two directory trees.
type DiffKind int

const (
	// DiffLeftOnly marks an entry present only in the left tree.
	DiffLeftOnly DiffKind = iota
	// DiffRightOnly marks an entry present only in the right tree.
	DiffRightOnly
	// DiffContent marks an entry present in both trees with different content or type.
	DiffContent
)

// DiffEntry is one difference found when comparing two directory trees.
// Path is relative to both roots.
type DiffEntry struct {
	Kind DiffKind
	Path string
}
