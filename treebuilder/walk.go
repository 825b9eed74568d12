package treebuilder

import (
	"path/filepath"
)

// LeafFunc is called with the path of every leaf directory, in creation order.
// Returning an error stops the walk and the error is returned unchanged.
type LeafFunc func(leafPath string) error

type walkFrame struct {
	level      int
	motherPath string
	nextIndex  int
}

// WalkLeaves visits the leaf paths of the tree described by conf depth-first,
// siblings in ascending index order. Intermediate levels only compose paths.
//
// The stack holds at most conf.MaxDepth frames.
func WalkLeaves(conf Config, fn LeafFunc) error {
	err := conf.Validate()
	if nil != err {
		return err
	}

	stack := make([]walkFrame, 0, conf.MaxDepth)
	stack = append(stack, walkFrame{level: 1, motherPath: conf.RootPath})

	for len(stack) > 0 {
		frame := &stack[len(stack)-1]
		if frame.nextIndex >= conf.Fanout[frame.level-1] {
			stack = stack[:len(stack)-1]
			continue
		}

		index := frame.nextIndex
		frame.nextIndex++

		childPath := filepath.Join(frame.motherPath, DirName(frame.level, index))
		if frame.level == conf.MaxDepth {
			err = fn(childPath)
			if nil != err {
				return err
			}
			continue
		}

		stack = append(stack, walkFrame{level: frame.level + 1, motherPath: childPath})
	}

	return nil
}
