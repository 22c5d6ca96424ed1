// Package fileutil provides file system utilities: recursive copy, atomic
// write, and bounded read operations.
package fileutil

import (
	"os"
	"path/filepath"

	"github.com/trellis-framework/skills/internal/errors"
)

// AtomicWriteFile writes data to path so readers never observe a partial
// file: the bytes land in a hidden sibling first and are renamed into
// place. The sibling lives in the same directory as path, keeping the
// rename on one filesystem. The parent directory must already exist.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".trellis-atomic-*.tmp")
	if err != nil {
		return errors.Wrapf(err, "staging write of %s", path)
	}
	tmpName := tmp.Name()

	replaced := false
	defer func() {
		if !replaced {
			os.Remove(tmpName)
		}
	}()

	_, err = tmp.Write(data)
	if err == nil {
		err = tmp.Chmod(perm)
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return errors.Wrapf(err, "staging write of %s", path)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrapf(err, "replacing %s", path)
	}
	replaced = true
	return nil
}
