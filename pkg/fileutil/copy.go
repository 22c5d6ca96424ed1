package fileutil

import (
	"io"
	"os"
	"path/filepath"

	"github.com/trellis-framework/skills/internal/errors"
)

// CopyDir recursively copies a directory tree from src to dst.
// dst is created if it does not exist. File names, nesting, contents,
// and permission bits are preserved.
func CopyDir(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return errors.Wrapf(err, "stat %s", src)
	}
	if !srcInfo.IsDir() {
		return errors.Newf("not a directory: %s", src)
	}

	if err := os.MkdirAll(dst, srcInfo.Mode().Perm()); err != nil {
		return errors.Wrapf(err, "creating directory %s", dst)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return errors.Wrapf(err, "reading directory %s", src)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := CopyDir(srcPath, dstPath); err != nil {
				return err
			}
		} else {
			if err := CopyFile(srcPath, dstPath); err != nil {
				return err
			}
		}
	}

	return nil
}

// CopyFile copies a single file from src to dst, preserving the source's
// permission bits. The destination is truncated if it already exists.
func CopyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, "opening %s", src)
	}
	defer srcFile.Close()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return errors.Wrapf(err, "stat %s", src)
	}

	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, srcInfo.Mode())
	if err != nil {
		return errors.Wrapf(err, "creating %s", dst)
	}
	defer dstFile.Close()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return errors.Wrapf(err, "copying %s to %s", src, dst)
	}

	return nil
}
