package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// executeCommand runs the root command with args, capturing combined output.
// Package-level flag state is reset so tests stay independent.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	installGlobal, installSource, installDryRun, installBackup = false, "", false, false
	listGlobal, listJSON = false, false
	validateJSON = false
	doctorJSON = false
	initDescription, initDir, initForce = "", "skills", false
	removeGlobal, removeForce = false, false
	verbosity, quiet, logFormat, logFile = 0, false, "text", ""

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// newPayloadDir creates a payload with the named skills and returns its path.
func newPayloadDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		skillDir := filepath.Join(dir, name)
		if err := os.MkdirAll(skillDir, 0o755); err != nil {
			t.Fatal(err)
		}
		content := "---\nname: " + name + "\ndescription: docs for " + name + "\n---\n\n# " + name + "\n"
		if err := os.WriteFile(filepath.Join(skillDir, "SKILL.md"), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}
