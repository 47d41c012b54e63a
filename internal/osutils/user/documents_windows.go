package user

import (
	"golang.org/x/sys/windows"
)

// DocumentsDir returns the user's documents directory as configured in the
// shell, which is not necessarily located inside the homedir.
func DocumentsDir() (string, error) {
	path, err := windows.KnownFolderPath(windows.FOLDERID_Documents, 0)
	if err != nil {
		return "", err
	}

	return path, nil
}
