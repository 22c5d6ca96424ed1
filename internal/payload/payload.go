// Package payload resolves skill payload sources: a bundled local
// directory, or a shallow clone of the distribution repository.
package payload

import (
	"github.com/cockroachdb/errors"
)

// DirName is the payload directory name inside the distribution repository.
const DirName = "skills"

// Sentinel errors for payload acquisition.
var (
	// ErrMissing indicates the payload source directory cannot be located.
	ErrMissing = errors.New("payload not found")

	// ErrFetchFailed indicates the remote payload snapshot could not be retrieved.
	ErrFetchFailed = errors.New("payload fetch failed")
)

// Source yields a resolved payload directory.
//
// Resolve returns the payload directory, a cleanup function, and an error.
// The cleanup function is non-nil even when Resolve fails, so callers can
// defer it unconditionally and any scratch space is released on every exit
// path.
type Source interface {
	// Describe returns a status line to print before acquisition starts,
	// or "" when acquisition needs no announcement.
	Describe() string

	// Resolve locates or fetches the payload and returns its directory.
	Resolve() (dir string, cleanup func() error, err error)
}

// nopCleanup is the cleanup for sources that hold no scratch space.
func nopCleanup() error { return nil }
