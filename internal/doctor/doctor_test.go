package doctor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/trellis-framework/skills/internal/paths"
)

// stubCheck returns a fixed result.
type stubCheck struct {
	name   string
	status Severity
}

func (s *stubCheck) Name() string     { return s.name }
func (s *stubCheck) Category() string { return "test" }
func (s *stubCheck) Run() *CheckResult {
	return &CheckResult{Name: s.name, Category: "test", Status: s.status}
}

func TestRunnerSummary(t *testing.T) {
	r := NewRunner()
	r.AddCheck(&stubCheck{"a", SeverityPass})
	r.AddCheck(&stubCheck{"b", SeverityPass})
	r.AddCheck(&stubCheck{"c", SeverityWarning})
	r.AddCheck(&stubCheck{"d", SeverityError})
	r.AddCheck(&stubCheck{"e", SeverityInfo})

	report := r.Run()

	if report.Summary.Passed != 2 || report.Summary.Warnings != 1 ||
		report.Summary.Errors != 1 || report.Summary.Info != 1 {
		t.Errorf("summary = %+v", report.Summary)
	}
	if !report.HasErrors() {
		t.Error("HasErrors should be true")
	}
	if len(report.Results) != 5 {
		t.Errorf("results = %d, want 5", len(report.Results))
	}
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		s    Severity
		want string
	}{
		{SeverityPass, "pass"},
		{SeverityInfo, "info"},
		{SeverityWarning, "warning"},
		{SeverityError, "error"},
		{Severity(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func newSkillPayload(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	skillDir := filepath.Join(dir, "alpha")
	if err := os.MkdirAll(skillDir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := "---\nname: alpha\ndescription: d\n---\nbody\n"
	if err := os.WriteFile(filepath.Join(skillDir, "SKILL.md"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestPayloadCheck(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		result := (&PayloadCheck{Dir: newSkillPayload(t)}).Run()
		if result.Status != SeverityPass {
			t.Errorf("status = %v: %s", result.Status, result.Message)
		}
	})

	t.Run("missing", func(t *testing.T) {
		result := (&PayloadCheck{Dir: filepath.Join(t.TempDir(), "absent")}).Run()
		if result.Status != SeverityError {
			t.Errorf("status = %v, want error", result.Status)
		}
		if result.FixHint == "" {
			t.Error("error result should carry a fix hint")
		}
	})

	t.Run("empty", func(t *testing.T) {
		result := (&PayloadCheck{Dir: t.TempDir()}).Run()
		if result.Status != SeverityError {
			t.Errorf("status = %v, want error", result.Status)
		}
	})
}

func TestManifestCheck(t *testing.T) {
	t.Run("absent uses defaults", func(t *testing.T) {
		result := (&ManifestCheck{Dir: t.TempDir()}).Run()
		if result.Status != SeverityInfo {
			t.Errorf("status = %v, want info", result.Status)
		}
	})

	t.Run("well-formed", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "skillset.toml"), []byte(`name = "X"`), 0o644); err != nil {
			t.Fatal(err)
		}
		result := (&ManifestCheck{Dir: dir}).Run()
		if result.Status != SeverityPass {
			t.Errorf("status = %v: %s", result.Status, result.Message)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "skillset.toml"), []byte("name = [broken"), 0o644); err != nil {
			t.Fatal(err)
		}
		result := (&ManifestCheck{Dir: dir}).Run()
		if result.Status != SeverityError {
			t.Errorf("status = %v, want error", result.Status)
		}
	})
}

func TestHomeCheck(t *testing.T) {
	result := (&HomeCheck{}).Run()
	if result.Status != SeverityPass {
		t.Skipf("no home directory in test environment: %s", result.Message)
	}
}

func TestDestWritableCheck(t *testing.T) {
	t.Chdir(t.TempDir())
	result := (&DestWritableCheck{Scope: paths.ScopeProject}).Run()
	if result.Status != SeverityPass {
		t.Errorf("status = %v: %s", result.Status, result.Message)
	}
}
