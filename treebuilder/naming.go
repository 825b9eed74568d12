package treebuilder

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DirName is the name of the index-th (0-based) directory at a nesting level (1-based).
// Existing consumers of generated trees rely on this exact format.
func DirName(level, index int) string {
	return fmt.Sprintf("testDir-%d-%d", level, index)
}

// RelativePath is a slash-separated path of a generated directory, relative to the root of the tree
type RelativePath string

const RelativePathSep = '/'

// NewRelativePath makes path relative to rootPath and normalises the separators.
func NewRelativePath(rootPath, path string) (RelativePath, error) {
	rel, err := filepath.Rel(rootPath, path)
	if nil != err {
		return "", err
	}

	if filepath.Separator != RelativePathSep {
		rel = strings.Replace(rel, string(filepath.Separator), string(RelativePathSep), -1)
	}

	return RelativePath(rel), nil
}
