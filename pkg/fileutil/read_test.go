package fileutil

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestReadFileWithLimit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "small.md")
	if err := os.WriteFile(path, []byte("fits"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadFileWithLimit(path)
	if err != nil {
		t.Fatalf("ReadFileWithLimit: %v", err)
	}
	if string(got) != "fits" {
		t.Errorf("content = %q", got)
	}

	if _, err := ReadFileWithLimit(filepath.Join(dir, "absent")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReadFileWithLimitRejectsOversized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "huge.md")
	if err := os.WriteFile(path, bytes.Repeat([]byte("x"), MaxFileSize+1), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := ReadFileWithLimit(path)
	if !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("expected ErrFileTooLarge, got %v", err)
	}
}

func TestReadFileWithLimitAtBoundary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exact.md")
	if err := os.WriteFile(path, bytes.Repeat([]byte("x"), MaxFileSize), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadFileWithLimit(path)
	if err != nil {
		t.Fatalf("a file of exactly the limit must read cleanly: %v", err)
	}
	if len(got) != MaxFileSize {
		t.Errorf("read %d bytes, want %d", len(got), MaxFileSize)
	}
}
