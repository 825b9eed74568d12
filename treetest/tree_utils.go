package treetest

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// ListDirs returns the slash-separated paths, relative to root, of every directory below root, sorted.
// A root that does not exist yields an empty listing.
func ListDirs(t *testing.T, fs afero.Fs, root string) []string {
	dirs := []string{}

	_, err := fs.Stat(root)
	if os.IsNotExist(err) {
		return dirs
	}
	require.Nil(t, err)

	err = afero.Walk(fs, root, func(path string, fileInfo os.FileInfo, err error) error {
		if nil != err {
			return err
		}

		if !fileInfo.IsDir() || path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if nil != err {
			return err
		}

		dirs = append(dirs, filepath.ToSlash(rel))
		return nil
	})
	require.Nil(t, err)

	sort.Strings(dirs)
	return dirs
}

// ListDirsAtDepth returns the entries of ListDirs that are exactly depth levels below root
func ListDirsAtDepth(t *testing.T, fs afero.Fs, root string, depth int) []string {
	var dirs []string
	for _, dir := range ListDirs(t, fs, root) {
		if strings.Count(dir, "/")+1 == depth {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// RecordingFs records the path of every MkdirAll call, in order, before handing it to the wrapped filesystem
type RecordingFs struct {
	afero.Fs
	MkdirAllCalls []string
}

func NewRecordingFs(fs afero.Fs) *RecordingFs {
	return &RecordingFs{Fs: fs}
}

func (fs *RecordingFs) MkdirAll(path string, perm os.FileMode) error {
	fs.MkdirAllCalls = append(fs.MkdirAllCalls, path)
	return fs.Fs.MkdirAll(path, perm)
}
