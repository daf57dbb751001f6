package fileutil

import (
	"fmt"
	"os"
)

// WriteFileMode writes data to path, truncating any existing file, and then
// sets mode explicitly. os.WriteFile only applies its mode when it creates the
// file and is subject to the process umask, so an overwritten file would keep
// whatever bits it had before.
func WriteFileMode(path string, data []byte, mode os.FileMode) error {
	out, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return Chmod(path, mode)
}

// Chmod sets the permission bits of path, wrapping failures with the path.
func Chmod(path string, mode os.FileMode) error {
	if err := os.Chmod(path, mode); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	return nil
}

// EnsureDir creates dir and any missing parents. Existing directories are
// left untouched.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	return nil
}
