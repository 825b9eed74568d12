package treetest

import (
	"io"

	"github.com/jamesrr39/goutil/logpkg"
	"github.com/spf13/afero"
)

// InMemoryTree is a root path on an in-memory filesystem. The root is not created.
type InMemoryTree struct {
	Fs   afero.Fs
	Root string
}

// NewInMemoryTree creates an empty in-memory filesystem with the root /test-tree
func NewInMemoryTree() *InMemoryTree {
	return &InMemoryTree{afero.NewMemMapFs(), "/test-tree"}
}

// NewDiscardLogger creates a logger that throws away everything written to it
func NewDiscardLogger() *logpkg.Logger {
	return logpkg.NewLogger(io.Discard, logpkg.LogLevelDebug)
}
