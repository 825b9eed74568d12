package treebuilder

import (
	"math/bits"
)

// Counts is the number of directories a fan-out schedule produces. The root is not counted.
type Counts struct {
	// PerLevel[i] is the number of directories at nesting level i+1
	PerLevel []uint64
	Leaves   uint64
	Total    uint64
}

// CountDirectories works out how many directories a build with this fan-out creates.
// It returns false if any of the counts does not fit into a uint64.
func CountDirectories(fanout []int) (Counts, bool) {
	counts := Counts{
		PerLevel: make([]uint64, len(fanout)),
	}

	levelCount := uint64(1)
	for i, count := range fanout {
		if count < 0 {
			return Counts{}, false
		}

		hi, lo := bits.Mul64(levelCount, uint64(count))
		if hi != 0 {
			return Counts{}, false
		}
		levelCount = lo

		total, carry := bits.Add64(counts.Total, levelCount, 0)
		if carry != 0 {
			return Counts{}, false
		}
		counts.Total = total
		counts.PerLevel[i] = levelCount
	}

	if len(fanout) > 0 {
		counts.Leaves = levelCount
	}

	return counts, true
}
