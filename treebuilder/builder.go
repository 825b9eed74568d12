package treebuilder

import (
	"os"

	"github.com/jamesrr39/goutil/logpkg"
	"github.com/spf13/afero"
)

// DefaultDirMode is the mode leaf directories (and any missing ancestors) are created with
const DefaultDirMode os.FileMode = 0755

type TreeBuilder struct {
	DirMode os.FileMode
	fs      afero.Fs
	logger  *logpkg.Logger
}

// BuildResult summarises a successful build
type BuildResult struct {
	LeavesCreated uint64
}

func NewTreeBuilder(logger *logpkg.Logger) *TreeBuilder {
	return NewTreeBuilderWithFs(afero.NewOsFs(), logger)
}

func NewTreeBuilderWithFs(fs afero.Fs, logger *logpkg.Logger) *TreeBuilder {
	return &TreeBuilder{
		DirMode: DefaultDirMode,
		fs:      fs,
		logger:  logger,
	}
}

// Build creates every leaf directory of the tree described by conf, creating missing ancestors on the way.
// Directories that already exist are left as they are, so building the same tree twice is a no-op.
//
// The first failure aborts the build with a *BuildError of kind ErrorKindIOFailure.
// Directories created before the failure are not removed.
func (b *TreeBuilder) Build(conf Config) (*BuildResult, error) {
	err := conf.Validate()
	if nil != err {
		return nil, err
	}

	b.logger.Info("building directory tree at %q with fan-out %v", conf.RootPath, conf.Fanout)

	result := new(BuildResult)
	err = WalkLeaves(conf, func(leafPath string) error {
		err := b.fs.MkdirAll(leafPath, b.DirMode)
		if nil != err {
			return &BuildError{Kind: ErrorKindIOFailure, Path: leafPath, Err: err}
		}

		b.logger.Debug("created %q", leafPath)
		result.LeavesCreated++
		return nil
	})
	if nil != err {
		return nil, err
	}

	b.logger.Info("finished building directory tree at %q (%d leaf directories)", conf.RootPath, result.LeavesCreated)

	return result, nil
}
