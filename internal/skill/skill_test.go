package skill

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/trellis-framework/skills/pkg/fileutil"
)

// newSkillDir creates a payload skill directory with a SKILL.md.
func newSkillDir(t *testing.T, payload, name, description string) string {
	t.Helper()
	dir := filepath.Join(payload, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := "---\nname: " + name + "\ndescription: " + description + "\n---\n\n# " + name + "\n"
	if err := os.WriteFile(filepath.Join(dir, MetadataFile), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestDiscoverSorted(t *testing.T) {
	payload := t.TempDir()
	newSkillDir(t, payload, "zulu", "last")
	newSkillDir(t, payload, "alpha", "first")
	newSkillDir(t, payload, "mike", "middle")

	skills, err := Discover(payload)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	want := []string{"alpha", "mike", "zulu"}
	if len(skills) != len(want) {
		t.Fatalf("got %d skills, want %d", len(skills), len(want))
	}
	for i, name := range want {
		if skills[i].Name != name {
			t.Errorf("skills[%d].Name = %q, want %q", i, skills[i].Name, name)
		}
	}
	if skills[0].Description != "first" {
		t.Errorf("description = %q, want %q", skills[0].Description, "first")
	}
}

func TestDiscoverIgnoresFiles(t *testing.T) {
	payload := t.TempDir()
	newSkillDir(t, payload, "alpha", "a skill")
	if err := os.WriteFile(filepath.Join(payload, "skillset.toml"), []byte("name = \"x\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	skills, err := Discover(payload)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(skills) != 1 || skills[0].Name != "alpha" {
		t.Errorf("got %v, want only alpha", skills)
	}
}

func TestDiscoverEmptyPayload(t *testing.T) {
	_, err := Discover(t.TempDir())
	if !errors.Is(err, ErrNoSkills) {
		t.Errorf("expected ErrNoSkills, got %v", err)
	}
}

func TestDiscoverMissingPayload(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "absent"))
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
	if errors.Is(err, ErrNoSkills) {
		t.Error("missing directory should not map to ErrNoSkills")
	}
}

func TestDiscoverWithoutMetadata(t *testing.T) {
	payload := t.TempDir()
	// Bare directory, no SKILL.md: still a skill, empty description.
	if err := os.MkdirAll(filepath.Join(payload, "bare"), 0o755); err != nil {
		t.Fatal(err)
	}

	skills, err := Discover(payload)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if skills[0].Description != "" {
		t.Errorf("description = %q, want empty", skills[0].Description)
	}
}

// newOversizedSkillDir creates a skill whose SKILL.md exceeds the read limit.
func newOversizedSkillDir(t *testing.T, payload, name string) string {
	t.Helper()
	dir := newSkillDir(t, payload, name, "huge")
	f, err := os.OpenFile(filepath.Join(dir, MetadataFile), os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	padding := bytes.Repeat([]byte("x"), 64*1024)
	for written := 0; written <= fileutil.MaxFileSize; written += len(padding) {
		if _, err := f.Write(padding); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestDiscoverOversizedMetadata(t *testing.T) {
	payload := t.TempDir()
	newOversizedSkillDir(t, payload, "alpha")

	skills, err := Discover(payload)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	// Oversized SKILL.md is never loaded; the skill itself still counts.
	if len(skills) != 1 || skills[0].Description != "" {
		t.Errorf("got %v, want alpha with empty description", skills)
	}
}

func TestValidateDirOversizedMetadata(t *testing.T) {
	payload := t.TempDir()
	dir := newOversizedSkillDir(t, payload, "alpha")

	errs := ValidateDir(dir)
	if len(errs) == 0 {
		t.Fatal("expected a validation error for an oversized SKILL.md")
	}
	if !strings.Contains(errs[0].Error(), "exceeds") {
		t.Errorf("error should report the size limit, got: %v", errs[0])
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "alpha", false},
		{"hyphenated", "routing-conventions", false},
		{"digits", "http2-push", false},
		{"empty", "", true},
		{"uppercase", "Alpha", true},
		{"leading hyphen", "-alpha", true},
		{"trailing hyphen", "alpha-", true},
		{"consecutive hyphens", "a--b", true},
		{"underscore", "my_skill", true},
		{"too long", string(make([]byte, 70)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDir(t *testing.T) {
	payload := t.TempDir()

	t.Run("valid skill", func(t *testing.T) {
		dir := newSkillDir(t, payload, "good-skill", "a valid description")
		if errs := ValidateDir(dir); errs != nil {
			t.Errorf("expected no errors, got %v", errs)
		}
	})

	t.Run("missing SKILL.md", func(t *testing.T) {
		dir := filepath.Join(payload, "no-metadata")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		errs := ValidateDir(dir)
		if len(errs) == 0 {
			t.Fatal("expected errors for missing SKILL.md")
		}
	})

	t.Run("name mismatch", func(t *testing.T) {
		dir := filepath.Join(payload, "actual-name")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		content := "---\nname: other-name\ndescription: desc\n---\nbody\n"
		if err := os.WriteFile(filepath.Join(dir, MetadataFile), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		errs := ValidateDir(dir)
		if len(errs) == 0 {
			t.Fatal("expected name mismatch error")
		}
		var verr *ValidationError
		if !errors.As(errs[0], &verr) || verr.Field != "name" {
			t.Errorf("expected name field error, got %v", errs[0])
		}
	})

	t.Run("missing description", func(t *testing.T) {
		dir := filepath.Join(payload, "no-desc")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		content := "---\nname: no-desc\n---\nbody\n"
		if err := os.WriteFile(filepath.Join(dir, MetadataFile), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		if errs := ValidateDir(dir); len(errs) == 0 {
			t.Fatal("expected error for missing description")
		}
	})
}
