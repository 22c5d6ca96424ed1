package payload

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// LocalSource resolves a payload directory that already exists on disk.
type LocalSource struct {
	// Dir is the payload directory. When empty, Resolve falls back to the
	// default lookup order: ./skills, then skills/ next to the executable.
	Dir string
}

// NewLocalSource creates a LocalSource for an explicit directory.
// Pass "" to use the default lookup order.
func NewLocalSource(dir string) *LocalSource {
	return &LocalSource{Dir: dir}
}

// Describe returns "" — local acquisition needs no status line.
func (s *LocalSource) Describe() string { return "" }

// Resolve validates that the payload directory exists.
// The returned cleanup is a no-op.
func (s *LocalSource) Resolve() (string, func() error, error) {
	if s.Dir != "" {
		dir, err := requireDir(s.Dir)
		return dir, nopCleanup, err
	}

	for _, candidate := range defaultCandidates() {
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nopCleanup, nil
		}
	}

	return "", nopCleanup, errors.Wrapf(ErrMissing,
		"no %s directory found in the working directory or next to the executable", DirName)
}

// requireDir verifies that dir exists and is a directory.
func requireDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrapf(ErrMissing, "%s", abs)
		}
		return "", errors.Wrapf(err, "checking payload directory %s", abs)
	}
	if !info.IsDir() {
		return "", errors.Wrapf(ErrMissing, "%s is not a directory", abs)
	}
	return abs, nil
}

// defaultCandidates lists payload locations for the bundled installer:
// skills/ under the working directory, then skills/ beside the executable.
func defaultCandidates() []string {
	candidates := []string{DirName}
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), DirName))
	}
	return candidates
}
