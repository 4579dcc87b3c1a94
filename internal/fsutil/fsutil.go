// Package fsutil provides the filesystem primitives shared by the
// initialization workflows, most importantly the write-only-if-absent
// pattern used for generated config files.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/solforge/solforge/internal/debug"
)

// Exists checks if a file or directory exists at the given path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsureDir creates a directory and any necessary parent directories.
// It is a no-op if the directory already exists.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}

// IsEmptyDir reports whether path is an empty directory.
// A missing path counts as empty.
func IsEmptyDir(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, fmt.Errorf("failed to read directory %s: %w", path, err)
	}
	return len(entries) == 0, nil
}

// WriteFile writes content to a file unconditionally, creating parent
// directories as needed.
func WriteFile(path string, content []byte) error {
	debug.Debug("[fsutil] Writing file: %s (size: %d bytes)", path, len(content))

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := EnsureDir(dir); err != nil {
			return err
		}
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

// WriteIfAbsent writes content to path only if the path does not exist yet.
// An existing file is left untouched. Returns whether a write happened.
func WriteIfAbsent(path string, content []byte) (bool, error) {
	if Exists(path) {
		debug.Debug("[fsutil] Skipping existing file: %s", path)
		return false, nil
	}
	if err := WriteFile(path, content); err != nil {
		return false, err
	}
	return true, nil
}
