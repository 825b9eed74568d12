package treebuilder

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_DirName(t *testing.T) {
	assert.Equal(t, "testDir-1-0", DirName(1, 0))
	assert.Equal(t, "testDir-12-345", DirName(12, 345))
}

func Test_WalkLeaves(t *testing.T) {
	var leaves []string
	err := WalkLeaves(NewConfig("a", []int{2, 1, 2}), func(leafPath string) error {
		leaves = append(leaves, leafPath)
		return nil
	})
	require.Nil(t, err)

	assert.Equal(t, []string{
		"a/testDir-1-0/testDir-2-0/testDir-3-0",
		"a/testDir-1-0/testDir-2-0/testDir-3-1",
		"a/testDir-1-1/testDir-2-0/testDir-3-0",
		"a/testDir-1-1/testDir-2-0/testDir-3-1",
	}, leaves)
}

func Test_WalkLeaves_StopsOnError(t *testing.T) {
	errStop := errors.New("stop")

	var leaves []string
	err := WalkLeaves(NewConfig("/a", []int{3, 3}), func(leafPath string) error {
		leaves = append(leaves, leafPath)
		if len(leaves) == 2 {
			return errStop
		}
		return nil
	})
	assert.Equal(t, errStop, err)
	assert.Equal(t, []string{"/a/testDir-1-0/testDir-2-0", "/a/testDir-1-0/testDir-2-1"}, leaves)
}

func Test_WalkLeaves_DeepTree(t *testing.T) {
	fanout := make([]int, MaxSupportedDepth)
	for i := range fanout {
		fanout[i] = 1
	}

	leafCount := 0
	err := WalkLeaves(NewConfig("/a", fanout), func(leafPath string) error {
		leafCount++
		return nil
	})
	require.Nil(t, err)
	assert.Equal(t, 1, leafCount)
}

func Test_WalkLeaves_InvalidConfiguration(t *testing.T) {
	err := WalkLeaves(Config{RootPath: "/a"}, func(leafPath string) error {
		t.Fatal("should not be called")
		return nil
	})
	assert.True(t, errors.Is(err, ErrDepthTooSmall))
}

func Test_CountDirectories(t *testing.T) {
	counts, ok := CountDirectories([]int{2, 3, 4})
	require.True(t, ok)
	assert.Equal(t, []uint64{2, 6, 24}, counts.PerLevel)
	assert.Equal(t, uint64(24), counts.Leaves)
	assert.Equal(t, uint64(32), counts.Total)

	counts, ok = CountDirectories([]int{2, 0, 4})
	require.True(t, ok)
	assert.Equal(t, []uint64{2, 0, 0}, counts.PerLevel)
	assert.Equal(t, uint64(2), counts.Total)

	_, ok = CountDirectories([]int{1 << 32, 1 << 32})
	assert.False(t, ok)
}

func Test_NewRelativePath(t *testing.T) {
	relativePath, err := NewRelativePath("/a", "/a/testDir-1-0/testDir-2-1")
	require.Nil(t, err)
	assert.Equal(t, RelativePath("testDir-1-0/testDir-2-1"), relativePath)
}
