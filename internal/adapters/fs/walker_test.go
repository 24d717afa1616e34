package fs_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/manage/internal/adapters/fs"
)

func TestWalker_Walk(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "a")
	writeFile(t, filepath.Join(root, "sub", "b.txt"), "b")
	writeFile(t, filepath.Join(root, ".git", "HEAD"), "ref")

	var visited []string
	match := func(string, bool) bool { return true }
	action := func(path string) error {
		rel, err := filepath.Rel(root, path)
		require.NoError(t, err)
		visited = append(visited, rel)
		return nil
	}

	require.NoError(t, fs.NewWalker().Walk(root, match, action, []string{".git"}))
	assert.Equal(t, []string{"a.txt", "sub", filepath.Join("sub", "b.txt")}, visited)
}

func TestWalker_Walk_ActionError(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "a")

	boom := errors.New("boom")
	err := fs.NewWalker().Walk(root,
		func(string, bool) bool { return true },
		func(string) error { return boom },
		nil,
	)
	require.ErrorIs(t, err, boom)
}

func TestResolver_Resolve(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.ck"), "a")
	writeFile(t, filepath.Join(root, "b.ck"), "b")
	writeFile(t, filepath.Join(root, "c.cpp"), "c")

	got, err := fs.NewResolver().Resolve(root, []string{"*.ck", "a.*", "*.none"})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "a.ck"), filepath.Join(root, "b.ck")}, got)
}
