package robloxinstall

import (
	"path/filepath"

	"github.com/jiwonz/roblox-install/internal/constants"
	"github.com/jiwonz/roblox-install/internal/errs"
)

// MacStrategy resolves installations from the fixed application bundle
// layout. There is no registry and no probing; every path is derived from the
// bundle root by construction.
type MacStrategy struct {
	dirs UserDirs
}

// NewMacStrategy returns a MacStrategy backed by the real user directories.
func NewMacStrategy() *MacStrategy {
	return &MacStrategy{dirs: StandardUserDirs()}
}

// DiscoverStudio resolves from the fixed /Applications bundle path.
func (s *MacStrategy) DiscoverStudio() (*StudioInstallation, error) {
	return s.LocateStudioFromDirectory(constants.StudioMacBundlePath)
}

// LocateStudioFromDirectory derives all paths from the given bundle root.
// None of the constructed paths are checked for existence; resolution only
// fails when the documents directory cannot be determined.
func (s *MacStrategy) LocateStudioFromDirectory(root string) (*StudioInstallation, error) {
	documents, err := s.dirs.DocumentsDir()
	if err != nil {
		return nil, errs.Pack(err, ErrDocumentsDirectoryNotFound)
	}

	contents := filepath.Join(root, "Contents")
	return &StudioInstallation{
		Content:        filepath.Join(contents, "Resources", constants.ContentDirName),
		Application:    filepath.Join(contents, "MacOS", "RobloxStudio"),
		BuiltInPlugins: filepath.Join(contents, "Resources", constants.BuiltInPluginsDirName),
		Plugins:        filepath.Join(documents, "Roblox", "Plugins"),
		Root:           root,
	}, nil
}

// DiscoverPlayer always fails, the Player keeps no install record on macOS.
func (s *MacStrategy) DiscoverPlayer() (*PlayerInstallation, error) {
	return nil, ErrPlatformNotSupported
}
