package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitScaffoldsSkill(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := executeCommand(t, "init", "error-handling", "-d", "Error handling patterns")
	if err != nil {
		t.Fatalf("init: %v\n%s", err, out)
	}

	content, err := os.ReadFile(filepath.Join("skills", "error-handling", "SKILL.md"))
	if err != nil {
		t.Fatalf("reading scaffold: %v", err)
	}
	for _, want := range []string{"name: error-handling", "description: Error handling patterns", "# Instructions"} {
		if !strings.Contains(string(content), want) {
			t.Errorf("scaffold missing %q:\n%s", want, content)
		}
	}
}

func TestInitDefaultDescription(t *testing.T) {
	t.Chdir(t.TempDir())

	if out, err := executeCommand(t, "init", "routing"); err != nil {
		t.Fatalf("init: %v\n%s", err, out)
	}

	content, _ := os.ReadFile(filepath.Join("skills", "routing", "SKILL.md"))
	if !strings.Contains(string(content), "description: Trellis routing patterns") {
		t.Errorf("expected default description:\n%s", content)
	}
}

func TestInitRejectsInvalidName(t *testing.T) {
	t.Chdir(t.TempDir())

	for _, name := range []string{"Bad_Name", "UPPER", "-leading", "trailing-", "has space"} {
		if _, err := executeCommand(t, "init", name); err == nil {
			t.Errorf("init %q should fail", name)
		}
	}
}

func TestInitRefusesOverwrite(t *testing.T) {
	t.Chdir(t.TempDir())

	if out, err := executeCommand(t, "init", "alpha"); err != nil {
		t.Fatalf("first init: %v\n%s", err, out)
	}
	if _, err := executeCommand(t, "init", "alpha"); err == nil {
		t.Error("second init without --force should fail")
	}
	if out, err := executeCommand(t, "init", "alpha", "--force"); err != nil {
		t.Errorf("init --force: %v\n%s", err, out)
	}
}

func TestInitCustomDir(t *testing.T) {
	t.Chdir(t.TempDir())

	if out, err := executeCommand(t, "init", "alpha", "--dir", "custom"); err != nil {
		t.Fatalf("init --dir: %v\n%s", err, out)
	}
	if _, err := os.Stat(filepath.Join("custom", "alpha", "SKILL.md")); err != nil {
		t.Errorf("scaffold not created in custom dir: %v", err)
	}
}
