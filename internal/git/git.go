// Package git provides the Git operation wrappers used to fetch skill payloads.
package git

import (
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
)

// allowedSchemes are the URL schemes git clone accepts for skill payloads.
var allowedSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ssh":   true,
	"git":   true,
	"file":  true,
}

// scpLikeRegex matches SCP-style remotes such as git@github.com:user/repo.git.
var scpLikeRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9._-]+:[a-zA-Z0-9./_-]+\.git$`)

// IsURL returns true if s looks like a git repository URL.
// It checks for:
//   - URLs containing "://" (e.g., https://, git://)
//   - URLs ending with ".git"
//   - SSH-style URLs starting with "git@"
func IsURL(s string) bool {
	if strings.Contains(s, "://") {
		return true
	}
	if strings.HasSuffix(s, ".git") {
		return true
	}
	if strings.HasPrefix(s, "git@") {
		return true
	}
	return false
}

// ValidateURL rejects remotes that git clone would misinterpret,
// in particular strings starting with "-" (argument injection) and
// unknown transport schemes.
func ValidateURL(url string) error {
	if url == "" {
		return errors.New("repository URL is empty")
	}
	if strings.HasPrefix(url, "-") {
		return errors.Newf("invalid repository URL: %s", url)
	}
	if !IsURL(url) {
		return errors.Newf("invalid repository URL: %s", url)
	}

	if scheme, _, ok := strings.Cut(url, "://"); ok {
		if !allowedSchemes[scheme] {
			return errors.Newf("unsupported URL scheme: %s", scheme)
		}
		return nil
	}

	if scpLikeRegex.MatchString(url) {
		return nil
	}

	return errors.Newf("invalid repository URL: %s", url)
}

// Clone performs a shallow, single-branch clone of url into dest.
// Command output is captured and folded into the returned error so
// failures surface the reason git reported.
func Clone(url, dest string, depth int) error {
	if err := ValidateURL(url); err != nil {
		return err
	}

	depthArg := fmt.Sprintf("--depth=%d", depth)
	cmd := exec.Command("git", "clone", depthArg, "--single-branch", "--", url, dest)

	if out, err := cmd.CombinedOutput(); err != nil {
		msg := strings.TrimSpace(string(out))
		if msg != "" {
			return errors.Wrapf(err, "git clone failed: %s", msg)
		}
		return errors.Wrap(err, "git clone failed")
	}
	return nil
}

// Available reports whether a git binary is on PATH.
func Available() bool {
	_, err := exec.LookPath("git")
	return err == nil
}
