// Package paths resolves installation destinations for trellis-skills.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// Scope selects between the project-local and user-global destination.
type Scope string

const (
	// ScopeProject installs under the current working directory.
	ScopeProject Scope = "project"

	// ScopeGlobal installs under the user's home directory.
	ScopeGlobal Scope = "global"
)

// skillsSubpath is the fixed destination subpath for both scopes.
// The assistant reads skills from <root>/.claude/skills.
var skillsSubpath = filepath.Join(".claude", "skills")

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")

	// ErrUnknownScope indicates a scope value outside project/global.
	ErrUnknownScope = errors.New("unknown scope")
)

// DefaultDirPerm is the default permission for newly created directories.
const DefaultDirPerm = 0o755

// ScopeFromGlobalFlag maps the --global flag to a Scope.
func ScopeFromGlobalFlag(global bool) Scope {
	if global {
		return ScopeGlobal
	}
	return ScopeProject
}

// String returns a human-readable scope name for banners and logs.
func (s Scope) String() string {
	return string(s)
}

// SkillsDir returns the destination root for the scope.
//
//	project: <cwd>/.claude/skills
//	global:  <home>/.claude/skills
//
// The directory is not created; see EnsureDir.
func SkillsDir(scope Scope) (string, error) {
	switch scope {
	case ScopeProject:
		cwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "resolving working directory")
		}
		return filepath.Join(cwd, skillsSubpath), nil
	case ScopeGlobal:
		home, err := ResolveHome()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, skillsSubpath), nil
	default:
		return "", errors.Wrapf(ErrUnknownScope, "%q", scope)
	}
}

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// BackupsDir returns the directory for pre-replace skill snapshots:
// <xdg data home>/trellis-skills/backups.
func BackupsDir() string {
	return filepath.Join(xdg.DataHome, "trellis-skills", "backups")
}
