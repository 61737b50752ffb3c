package sniffkit

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrNotFound     = errors.New("file not found")
	ErrInvalidSize  = errors.New("invalid file size")
	ErrNotSupported = errors.New("operation not supported")
)

// PathError records an error and the operation and file path that caused it
type PathError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface
func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *PathError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether an error indicates that the input path does
// not reference an existing regular file
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidSize reports whether an error indicates that an input exceeded
// the configured size limit
func IsInvalidSize(err error) bool {
	return errors.Is(err, ErrInvalidSize)
}
