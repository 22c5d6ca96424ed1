// Package installer implements the shared copy-and-report stage behind
// both the bundled and the remote skill installers.
package installer

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/trellis-framework/skills/internal/backup"
	skillserrors "github.com/trellis-framework/skills/internal/errors"
	"github.com/trellis-framework/skills/internal/manifest"
	"github.com/trellis-framework/skills/internal/paths"
	"github.com/trellis-framework/skills/internal/payload"
	"github.com/trellis-framework/skills/internal/skill"
	"github.com/trellis-framework/skills/internal/ui"
	"github.com/trellis-framework/skills/pkg/fileutil"
)

// Options configure a single installer run.
type Options struct {
	// Scope selects the project-local or user-global destination.
	Scope paths.Scope

	// DryRun reports what would be installed without touching the destination.
	DryRun bool

	// Backup snapshots each replaced skill before it is overwritten.
	Backup bool

	// BackupDir overrides the snapshot root. Empty means the default.
	BackupDir string

	// Quiet suppresses all progress output.
	Quiet bool
}

// Installer copies every payload skill into the destination root,
// reporting one progress line per skill and a final count.
type Installer struct {
	out  io.Writer
	opts Options
}

// New creates an Installer writing progress to out.
func New(out io.Writer, opts Options) *Installer {
	return &Installer{out: out, opts: opts}
}

// Run resolves the payload source and installs every skill it contains.
// Returns the number of skills installed.
//
// Ordering: the payload is resolved and enumerated before the destination
// root is created, so a missing or empty payload leaves the filesystem
// untouched. Copying is sequential in lexicographic skill order and aborts
// on the first failure with no rollback of skills already copied.
func (i *Installer) Run(src payload.Source) (int, error) {
	p := ui.NewPrinter(i.out, i.opts.Quiet)

	p.Blank()
	p.Bold("Installing Trellis Framework skills (%s scope)", i.opts.Scope)
	if desc := src.Describe(); desc != "" {
		p.Line("%s", desc)
	}

	dir, cleanup, err := src.Resolve()
	defer func() {
		if cleanupErr := cleanup(); cleanupErr != nil {
			slog.Warn("failed to clean up payload scratch space", "error", cleanupErr)
		}
	}()
	if err != nil {
		return 0, err
	}

	skills, err := skill.Discover(dir)
	if err != nil {
		return 0, err
	}

	destRoot, err := paths.SkillsDir(i.opts.Scope)
	if err != nil {
		return 0, err
	}
	p.Line("Destination: %s", destRoot)
	p.Blank()

	if !i.opts.DryRun {
		if err := paths.EnsureDir(destRoot, 0); err != nil {
			return 0, skillserrors.Wrapf(err, "creating destination root %s", destRoot)
		}
	}

	var snapshots *backup.Manager
	if i.opts.Backup {
		var backupOpts []backup.Option
		if i.opts.BackupDir != "" {
			backupOpts = append(backupOpts, backup.WithRootDir(i.opts.BackupDir))
		}
		snapshots = backup.NewManager(backupOpts...)
	}

	installed := 0
	for _, s := range skills {
		dest := filepath.Join(destRoot, s.Name)

		if i.opts.DryRun {
			p.Success("%s (dry run)", s.Name)
			installed++
			continue
		}

		if snapshots != nil {
			_, statErr := os.Stat(dest)
			switch {
			case statErr == nil:
				if _, err := snapshots.Snapshot(s.Name, dest); err != nil {
					return installed, err
				}
			case !os.IsNotExist(statErr):
				// Never replace a skill whose current state cannot be snapshotted.
				return installed, skillserrors.Wrapf(statErr, "inspecting existing skill %s", s.Name)
			}
		}

		// Replace semantics: remove any existing copy, then copy fresh.
		if err := os.RemoveAll(dest); err != nil {
			return installed, skillserrors.Wrapf(err, "removing existing skill %s", s.Name)
		}
		if err := fileutil.CopyDir(s.Dir, dest); err != nil {
			return installed, skillserrors.Wrapf(err, "installing skill %s", s.Name)
		}

		slog.Debug("installed skill", "name", s.Name, "dest", dest)
		p.Success("%s", s.Name)
		installed++
	}

	m, err := manifest.Load(dir)
	if err != nil {
		// A broken manifest never fails an install that already copied skills.
		slog.Debug("falling back to default manifest", "error", err)
		m = manifest.Default()
	}

	p.Blank()
	p.Line("Done! %d %s installed.", installed, pluralize(installed))
	p.Dim("Docs: %s", m.DocsURL)
	p.Dim("Restart your coding assistant to pick up new skills.")
	p.Blank()

	return installed, nil
}

func pluralize(n int) string {
	if n == 1 {
		return "skill"
	}
	return "skills"
}

// AsExitError classifies an installer failure into an ExitError:
// user-class for a missing or empty payload, system-class for fetch and
// filesystem failures. A nil error passes through.
func AsExitError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case skillserrors.Is(err, payload.ErrMissing):
		return skillserrors.NewUserError(err, "Pass --source or run from the repository root")
	case skillserrors.Is(err, skill.ErrNoSkills):
		return skillserrors.NewUserError(err, "The payload directory has no skill subdirectories")
	case skillserrors.Is(err, payload.ErrFetchFailed):
		return skillserrors.NewSystemError(err, "Check your network connection and that git is installed")
	default:
		return skillserrors.NewExitError(err, skillserrors.ExitSystem)
	}
}
