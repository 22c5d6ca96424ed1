package commands

import (
	"strings"
	"testing"

	"github.com/trellis-framework/skills/cmd"
)

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, "version")
	if err != nil {
		t.Fatalf("version: %v\n%s", err, out)
	}
	for _, want := range []string{cmd.Version, "commit:", "built:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestVersionFlag(t *testing.T) {
	out, err := executeCommand(t, "--version")
	if err != nil {
		t.Fatalf("--version: %v\n%s", err, out)
	}
	if !strings.Contains(out, cmd.String()) {
		t.Errorf("--version should print the full build identification:\n%s", out)
	}
}
