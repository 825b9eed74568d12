package treebuilder

import (
	"fmt"
)

// MaxSupportedDepth is the deepest tree a Config may describe.
// Paths this deep are already far past the path length limits of common filesystems.
const MaxSupportedDepth = 1024

// Config describes one build. It is not modified by the builder.
type Config struct {
	RootPath string
	MaxDepth int
	// Fanout[i] is the number of child directories every directory at nesting level i+1 receives
	Fanout []int
}

// NewConfig creates a Config whose depth is the length of the fan-out schedule.
// The schedule is copied, so later changes to the caller's slice do not leak into a build.
func NewConfig(rootPath string, fanout []int) Config {
	fanoutCopy := make([]int, len(fanout))
	copy(fanoutCopy, fanout)

	return Config{
		RootPath: rootPath,
		MaxDepth: len(fanoutCopy),
		Fanout:   fanoutCopy,
	}
}

// Validate returns a *BuildError of kind ErrorKindInvalidConfiguration if the Config cannot be built.
// A fan-out of 0 is valid and yields an empty subtree.
func (c Config) Validate() error {
	if c.RootPath == "" {
		return newInvalidConfigurationError(ErrEmptyRootPath)
	}

	if c.MaxDepth < 1 {
		return newInvalidConfigurationError(ErrDepthTooSmall)
	}

	if c.MaxDepth > MaxSupportedDepth {
		return newInvalidConfigurationError(ErrDepthTooLarge)
	}

	if len(c.Fanout) != c.MaxDepth {
		return newInvalidConfigurationError(
			fmt.Errorf("%w: got %d entries for max depth %d", ErrFanoutLengthMismatch, len(c.Fanout), c.MaxDepth))
	}

	for i, count := range c.Fanout {
		if count < 0 {
			return newInvalidConfigurationError(
				fmt.Errorf("%w: nesting level %d has fan-out %d", ErrNegativeFanout, i+1, count))
		}
	}

	return nil
}
