package treetest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// OsFsTestTree represents a root directory on the OS filesystem, inside a tempdir
type OsFsTestTree struct {
	Fs       afero.Fs
	BasePath string
	Root     string
}

// CreateOsFsTestTree creates a new OsFsTestTree. The root directory itself is not created.
func CreateOsFsTestTree(t *testing.T) *OsFsTestTree {
	tempdir, err := os.MkdirTemp("", "directory-tree-creator-test")
	require.Nil(t, err)

	return &OsFsTestTree{afero.NewOsFs(), tempdir, filepath.Join(tempdir, "root")}
}

// Close cleans up an OsFsTestTree after the tests have finished
func (tt *OsFsTestTree) Close(t *testing.T) {
	err := os.RemoveAll(tt.BasePath)
	require.Nil(t, err)
}

// WriteFile writes a regular file at a path relative to the root, creating its parent directories
func (tt *OsFsTestTree) WriteFile(t *testing.T, relativePath, contents string) {
	filePath := filepath.Join(tt.Root, filepath.FromSlash(relativePath))
	err := os.MkdirAll(filepath.Dir(filePath), 0700)
	require.Nil(t, err)

	err = os.WriteFile(filePath, []byte(contents), 0600)
	require.Nil(t, err)
}
