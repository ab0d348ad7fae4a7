// Package paths resolves the per-user directory layout shared by the
// arcade-tools packages.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// UserDir returns the per-user arcade-tools directory (~/.arcade-tools).
func UserDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve home directory: %w", err)
	}
	return filepath.Join(home, ".arcade-tools"), nil
}

// Expand replaces a leading ~ with the user's home directory. Paths without
// the prefix come back unchanged.
func Expand(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
