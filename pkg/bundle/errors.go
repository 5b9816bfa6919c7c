package bundle

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSortOption is returned for sort keys other than "name" and "type".
	ErrInvalidSortOption = errors.New("invalid sort option")

	// ErrNoLanguages is returned when no language token was supplied.
	ErrNoLanguages = errors.New("at least one language is required")
)

// SourceNotFoundError reports a missing source root.
type SourceNotFoundError struct {
	Path string
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("source folder not found: %s", e.Path)
}

// SourceReadError reports a selected file that could not be read.
type SourceReadError struct {
	Path string
	Err  error
}

func (e *SourceReadError) Error() string {
	return fmt.Sprintf("failed to read source file %s: %v", e.Path, e.Err)
}

func (e *SourceReadError) Unwrap() error { return e.Err }

// OutputWriteError reports a failure creating, writing, or closing the bundle.
type OutputWriteError struct {
	Path string
	Err  error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("failed to write bundle %s: %v", e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() error { return e.Err }
