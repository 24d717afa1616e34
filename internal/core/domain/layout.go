package domain

import "path/filepath"

// Layout is the fixed set of project paths derived from a working directory.
// All paths are computed once by NewLayout and never change.
type Layout struct {
	root    string
	build   string
	src     string
	install string
	dist    string
}

// NewLayout derives the project layout from the given working directory.
func NewLayout(root string) Layout {
	build := filepath.Join(root, "build")
	install := filepath.Join(root, "thirdparty")
	return Layout{
		root:    root,
		build:   build,
		src:     build,
		install: install,
		dist:    filepath.Join(root, "dist"),
	}
}

// Root returns the working directory the layout was derived from.
func (l Layout) Root() string { return l.root }

// Build returns the build root.
func (l Layout) Build() string { return l.build }

// Src returns the root under which dependency sources are fetched.
func (l Layout) Src() string { return l.src }

// Install returns the third-party install root.
func (l Layout) Install() string { return l.install }

// Dist returns the distribution root.
func (l Layout) Dist() string { return l.dist }

// Path joins elem onto the working directory.
func (l Layout) Path(elem ...string) string {
	return filepath.Join(append([]string{l.root}, elem...)...)
}

// SetupDirs returns the directories created by the setup phase.
func (l Layout) SetupDirs() []string {
	return []string{l.build, l.src, l.install}
}
