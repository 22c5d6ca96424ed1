package payload

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/trellis-framework/skills/internal/git"
)

// DefaultRepoURL is the fixed distribution repository the standalone
// remote installer clones from.
const DefaultRepoURL = "https://github.com/trellis-framework/skills.git"

// GitSource fetches the payload by shallow-cloning a repository into a
// temporary directory and pointing at its skills/ subdirectory.
type GitSource struct {
	// URL is the repository to clone.
	URL string

	// Subdir is the payload subdirectory inside the checkout.
	// Defaults to DirName.
	Subdir string

	// TempRoot overrides the parent directory for the scratch checkout.
	// Empty means the system default. Used by tests.
	TempRoot string
}

// NewGitSource creates a GitSource for the given repository URL.
func NewGitSource(url string) *GitSource {
	return &GitSource{URL: url, Subdir: DirName}
}

// Describe returns the cloning status line.
func (s *GitSource) Describe() string {
	return fmt.Sprintf("Cloning %s (depth 1)...", s.URL)
}

// Resolve clones the repository shallowly and returns the payload
// subdirectory of the checkout. The cleanup removes the whole scratch
// tree and is returned on every path, including clone failure.
func (s *GitSource) Resolve() (string, func() error, error) {
	// Reject bad URLs before any scratch space exists.
	if err := git.ValidateURL(s.URL); err != nil {
		return "", nopCleanup, err
	}

	tempDir, err := os.MkdirTemp(s.TempRoot, "trellis-skills-*")
	if err != nil {
		return "", nopCleanup, errors.Wrap(err, "creating temp directory")
	}
	cleanup := func() error { return os.RemoveAll(tempDir) }

	checkout := filepath.Join(tempDir, "repo")
	if err := git.Clone(s.URL, checkout, 1); err != nil {
		return "", cleanup, errors.Wrapf(ErrFetchFailed, "%v", err)
	}

	subdir := s.Subdir
	if subdir == "" {
		subdir = DirName
	}
	payloadDir, err := requireDir(filepath.Join(checkout, subdir))
	if err != nil {
		return "", cleanup, err
	}
	return payloadDir, cleanup, nil
}
