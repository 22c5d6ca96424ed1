package doctor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/trellis-framework/skills/internal/git"
	"github.com/trellis-framework/skills/internal/manifest"
	"github.com/trellis-framework/skills/internal/paths"
	"github.com/trellis-framework/skills/internal/skill"
)

// PayloadCheck verifies the payload directory exists and contains skills.
type PayloadCheck struct {
	// Dir is the payload directory to inspect.
	Dir string
}

var _ Check = (*PayloadCheck)(nil)

func (c *PayloadCheck) Name() string     { return "payload" }
func (c *PayloadCheck) Category() string { return "payload" }

func (c *PayloadCheck) Run() *CheckResult {
	result := &CheckResult{Name: c.Name(), Category: c.Category()}

	skills, err := skill.Discover(c.Dir)
	if err != nil {
		result.Status = SeverityError
		result.Message = fmt.Sprintf("payload at %s is unusable: %v", c.Dir, err)
		result.FixHint = "Run from the repository root, or pass --source"
		return result
	}

	result.Status = SeverityPass
	result.Message = fmt.Sprintf("payload at %s contains %d skill(s)", c.Dir, len(skills))
	return result
}

// ManifestCheck verifies skillset.toml parses when present.
type ManifestCheck struct {
	// Dir is the payload directory holding the manifest.
	Dir string
}

var _ Check = (*ManifestCheck)(nil)

func (c *ManifestCheck) Name() string     { return "manifest" }
func (c *ManifestCheck) Category() string { return "payload" }

func (c *ManifestCheck) Run() *CheckResult {
	result := &CheckResult{Name: c.Name(), Category: c.Category()}

	m, err := manifest.Load(c.Dir)
	if err != nil {
		result.Status = SeverityError
		result.Message = fmt.Sprintf("manifest is malformed: %v", err)
		result.FixHint = "Fix or remove " + filepath.Join(c.Dir, manifest.FileName)
		return result
	}

	if _, statErr := os.Stat(filepath.Join(c.Dir, manifest.FileName)); os.IsNotExist(statErr) {
		result.Status = SeverityInfo
		result.Message = "no manifest present, using defaults"
		return result
	}

	result.Status = SeverityPass
	result.Message = fmt.Sprintf("manifest ok: %s", m.Name)
	return result
}

// GitCheck verifies a git binary is available for the remote installer.
type GitCheck struct{}

var _ Check = (*GitCheck)(nil)

func (c *GitCheck) Name() string     { return "git" }
func (c *GitCheck) Category() string { return "environment" }

func (c *GitCheck) Run() *CheckResult {
	result := &CheckResult{Name: c.Name(), Category: c.Category()}

	if !git.Available() {
		result.Status = SeverityWarning
		result.Message = "git binary not found on PATH"
		result.FixHint = "Install git to use the remote installer"
		return result
	}

	result.Status = SeverityPass
	result.Message = "git binary found"
	return result
}

// HomeCheck verifies the home directory resolves for global installs.
type HomeCheck struct{}

var _ Check = (*HomeCheck)(nil)

func (c *HomeCheck) Name() string     { return "home-directory" }
func (c *HomeCheck) Category() string { return "environment" }

func (c *HomeCheck) Run() *CheckResult {
	result := &CheckResult{Name: c.Name(), Category: c.Category()}

	home, err := paths.ResolveHome()
	if err != nil {
		result.Status = SeverityError
		result.Message = "home directory could not be determined"
		result.FixHint = "Set the HOME environment variable"
		return result
	}

	result.Status = SeverityPass
	result.Message = "home directory is " + home
	return result
}

// DestWritableCheck verifies the destination root for a scope is writable.
type DestWritableCheck struct {
	// Scope selects the destination root to probe.
	Scope paths.Scope
}

var _ Check = (*DestWritableCheck)(nil)

func (c *DestWritableCheck) Name() string     { return "destination-" + string(c.Scope) }
func (c *DestWritableCheck) Category() string { return "destination" }

func (c *DestWritableCheck) Run() *CheckResult {
	result := &CheckResult{Name: c.Name(), Category: c.Category()}

	dest, err := paths.SkillsDir(c.Scope)
	if err != nil {
		result.Status = SeverityError
		result.Message = fmt.Sprintf("cannot resolve %s destination: %v", c.Scope, err)
		return result
	}

	// Probe by writing into the nearest existing ancestor; the destination
	// itself may not exist before the first install.
	probeDir := dest
	for {
		if _, err := os.Stat(probeDir); err == nil {
			break
		}
		parent := filepath.Dir(probeDir)
		if parent == probeDir {
			break
		}
		probeDir = parent
	}

	probe, err := os.CreateTemp(probeDir, ".trellis-doctor-*")
	if err != nil {
		result.Status = SeverityError
		result.Message = fmt.Sprintf("%s destination %s is not writable", c.Scope, dest)
		result.FixHint = "Check permissions on " + probeDir
		return result
	}
	probe.Close()
	os.Remove(probe.Name())

	result.Status = SeverityPass
	result.Message = fmt.Sprintf("%s destination %s is writable", c.Scope, dest)
	return result
}
