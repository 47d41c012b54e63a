// +build !windows

package user

import (
	"path/filepath"
)

// DocumentsDir returns the user's documents directory
func DocumentsDir() (string, error) {
	dir, err := HomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "Documents"), nil
}
