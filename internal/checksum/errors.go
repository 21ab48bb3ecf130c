package checksum

import (
	"errors"
	"fmt"
)

// ErrUnknownAlgorithm is returned when a digest algorithm name is neither
// sha256 nor md5.
var ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

// ErrPathNotFound is returned by path-based hashing when a dot-separated
// path cannot be resolved against the document.
var ErrPathNotFound = errors.New("path not found")

// LockError reports a lock document that exists but cannot be trusted.
// Corruption is surfaced, never silently treated as an empty lock.
type LockError struct {
	Path string
	Err  error
}

func (e *LockError) Error() string {
	return fmt.Sprintf("lock file %s: %v", e.Path, e.Err)
}

func (e *LockError) Unwrap() error {
	return e.Err
}
