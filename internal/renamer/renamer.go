// Package renamer applies a generated name to a file on disk.
package renamer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	// ErrEmptyName means sanitization left nothing usable as a name.
	ErrEmptyName = errors.New("generated name is empty")

	// ErrTargetExists means a file with the generated name already exists.
	ErrTargetExists = errors.New("target filename already exists")
)

// Rename renames path to safeName plus the original extension, in the
// file's own directory. It fails rather than overwrite an existing file.
func Rename(path string, safeName string) (string, error) {
	if safeName == "" {
		return "", fmt.Errorf("rename %s: %w", path, ErrEmptyName)
	}

	target := filepath.Join(filepath.Dir(path), safeName+filepath.Ext(path))
	if target == path {
		return path, nil
	}

	if _, err := os.Stat(target); err == nil {
		return "", fmt.Errorf("rename %s to %s: %w", path, target, ErrTargetExists)
	}

	if err := os.Rename(path, target); err != nil {
		return "", fmt.Errorf("rename %s: %w", path, err)
	}

	return target, nil
}
