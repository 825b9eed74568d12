package treebuilder

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a build did not complete.
type ErrorKind int

const (
	// ErrorKindInvalidConfiguration means the inputs were rejected before anything was created
	ErrorKindInvalidConfiguration ErrorKind = iota + 1
	// ErrorKindIOFailure means creating a directory failed part way through a build
	ErrorKindIOFailure
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindInvalidConfiguration:
		return "invalid configuration"
	case ErrorKindIOFailure:
		return "io failure"
	default:
		return fmt.Sprintf("unknown error kind (%d)", int(k))
	}
}

// BuildError is the terminal error of a build.
// Path is the directory that could not be created, and is empty for configuration errors.
type BuildError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *BuildError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s at %q: %s", e.Kind, e.Path, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

var (
	// ErrEmptyRootPath is an error signifying that no root directory was given
	ErrEmptyRootPath = errors.New("root path is empty")
	// ErrDepthTooSmall is an error signifying that the max depth is below 1
	ErrDepthTooSmall = errors.New("max depth must be at least 1")
	// ErrDepthTooLarge is an error signifying that the max depth is above MaxSupportedDepth
	ErrDepthTooLarge = fmt.Errorf("max depth must not be more than %d", MaxSupportedDepth)
	// ErrFanoutLengthMismatch is an error signifying that there is not exactly one fan-out per nesting level
	ErrFanoutLengthMismatch = errors.New("fan-out schedule length does not match max depth")
	// ErrNegativeFanout is an error signifying that a nesting level asks for a negative number of directories
	ErrNegativeFanout = errors.New("fan-out must not be negative")
)

func newInvalidConfigurationError(err error) *BuildError {
	return &BuildError{Kind: ErrorKindInvalidConfiguration, Err: err}
}

// IsKind reports whether err is a *BuildError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var buildErr *BuildError
	if !errors.As(err, &buildErr) {
		return false
	}
	return buildErr.Kind == kind
}
