// Package backup snapshots installed skills before they are replaced.
package backup

import (
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/trellis-framework/skills/internal/paths"
	"github.com/trellis-framework/skills/pkg/fileutil"
)

// Manager creates pre-replace snapshots of installed skills.
type Manager struct {
	rootDir string
	now     func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithRootDir overrides the snapshot root directory.
func WithRootDir(dir string) Option {
	return func(m *Manager) {
		m.rootDir = dir
	}
}

// WithClock overrides the timestamp source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// NewManager creates a backup Manager.
// Snapshots default to <XDG data home>/trellis-skills/backups/.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		rootDir: paths.BackupsDir(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Snapshot copies the installed skill at srcDir into a timestamped
// directory under the snapshot root and returns the snapshot path.
// Layout: <root>/<timestamp>/<name>/
func (m *Manager) Snapshot(name, srcDir string) (string, error) {
	if name == "" {
		return "", errors.New("skill name is required")
	}

	stamp := m.now().Format("20060102T150405")
	dest := filepath.Join(m.rootDir, stamp, name)

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", errors.Wrap(err, "creating snapshot directory")
	}
	if err := fileutil.CopyDir(srcDir, dest); err != nil {
		return "", errors.Wrapf(err, "snapshotting %s", name)
	}
	return dest, nil
}
