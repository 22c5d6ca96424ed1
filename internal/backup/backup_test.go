package backup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "SKILL.md"), []byte("original"), 0o644))

	root := t.TempDir()
	fixed := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	m := NewManager(WithRootDir(root), WithClock(func() time.Time { return fixed }))

	dest, err := m.Snapshot("alpha", src)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "20260314T092653", "alpha"), dest)
	data, err := os.ReadFile(filepath.Join(dest, "SKILL.md"))
	require.NoError(t, err)
	assert.Equal(t, "original", string(data))
}

func TestSnapshotRequiresName(t *testing.T) {
	m := NewManager(WithRootDir(t.TempDir()))
	_, err := m.Snapshot("", t.TempDir())
	assert.Error(t, err)
}

func TestSnapshotMissingSource(t *testing.T) {
	m := NewManager(WithRootDir(t.TempDir()))
	_, err := m.Snapshot("alpha", filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}
