// Package files reads and writes source files, with backup creation before
// in-place modification.
package files

import (
	"fmt"
	"io/fs"
	"os"
)

// Read returns the file's content as a string.
func Read(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return string(raw), nil
}

// BackupPath returns the backup location for a file.
func BackupPath(path string) string {
	return path + ".bak"
}

// WriteWithBackup overwrites path with content, preserving the file's mode.
// When backup is true the original bytes are first written to
// BackupPath(path).
func WriteWithBackup(path, original, content string, backup bool) error {
	mode := fs.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}
	if backup {
		if err := os.WriteFile(BackupPath(path), []byte(original), mode); err != nil {
			return fmt.Errorf("failed to create backup file %s: %w", BackupPath(path), err)
		}
	}
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		return fmt.Errorf("failed to write modified file %s: %w", path, err)
	}
	return nil
}
