package robloxinstall

import (
	"io/ioutil"
	"path/filepath"

	"github.com/jiwonz/roblox-install/internal/constants"
	"github.com/jiwonz/roblox-install/internal/errs"
	"github.com/jiwonz/roblox-install/internal/fileutils"
	"github.com/jiwonz/roblox-install/internal/logging"
	"github.com/jiwonz/roblox-install/internal/osutils"
	"github.com/jiwonz/roblox-install/internal/rtutils"
)

// WindowsStrategy resolves installations through the registry records Roblox
// maintains under HKEY_CURRENT_USER, and through the versioned directory
// layout when given an explicit root.
type WindowsStrategy struct {
	openKey func(path string) (osutils.RegistryKey, error)
	dirs    UserDirs
}

// NewWindowsStrategy returns a WindowsStrategy backed by the real registry and
// user directories.
func NewWindowsStrategy() *WindowsStrategy {
	return &WindowsStrategy{
		openKey: osutils.OpenUserKey,
		dirs:    StandardUserDirs(),
	}
}

// DiscoverStudio reads the Studio install location from the registry. The
// content folder recorded there determines the install root; none of the
// derived paths are checked for existence.
func (s *WindowsStrategy) DiscoverStudio() (*StudioInstallation, error) {
	content, err := s.readRegistryValue(constants.StudioRegistryKey, constants.StudioContentFolderValueName)
	if err != nil {
		return nil, err
	}

	root := filepath.Dir(content)
	if root == content {
		return nil, errs.Wrap(ErrMalformedRegistry, "content folder %q has no parent directory", content)
	}

	plugins, err := s.pluginsDir()
	if err != nil {
		return nil, err
	}

	logging.Debug("Resolved Studio install root from registry: %s", root)
	return &StudioInstallation{
		Content:        content,
		Application:    filepath.Join(root, constants.StudioWindowsBinaryName),
		BuiltInPlugins: filepath.Join(root, constants.BuiltInPluginsDirName),
		Plugins:        plugins,
		Root:           root,
	}, nil
}

// LocateStudioFromDirectory resolves the installation rooted at the given
// directory. A root holding a content directory is itself the install dir;
// otherwise the root's Versions directory is scanned for the first entry that
// holds the Studio executable.
func (s *WindowsStrategy) LocateStudioFromDirectory(root string) (*StudioInstallation, error) {
	contentDir := filepath.Join(root, constants.ContentDirName)
	if fileutils.DirExists(contentDir) {
		logging.Debug("Treating %s as a non-versioned install dir", root)

		plugins, err := s.pluginsDir()
		if err != nil {
			return nil, err
		}

		return &StudioInstallation{
			Content:        contentDir,
			Application:    filepath.Join(root, constants.StudioWindowsBinaryName),
			BuiltInPlugins: filepath.Join(root, constants.BuiltInPluginsDirName),
			Plugins:        plugins,
			Root:           root,
		}, nil
	}

	versionsDir := filepath.Join(root, constants.VersionsDirName)
	entries, err := ioutil.ReadDir(versionsDir)
	if err != nil {
		return nil, errs.Pack(err, ErrNotInstalled)
	}

	// The first entry holding the Studio executable wins. Version names are
	// opaque to us and consumers rely on the current listing order, so no
	// attempt is made to pick the "newest" one.
	for _, entry := range entries {
		versionDir := filepath.Join(versionsDir, entry.Name())
		application := filepath.Join(versionDir, constants.StudioWindowsBinaryName)
		if !fileutils.FileExists(application) {
			continue
		}

		logging.Debug("Found Studio build %s under %s", entry.Name(), versionsDir)

		plugins, err := s.pluginsDir()
		if err != nil {
			return nil, err
		}

		return &StudioInstallation{
			Content:        filepath.Join(versionDir, constants.ContentDirName),
			Application:    application,
			BuiltInPlugins: filepath.Join(versionDir, constants.BuiltInPluginsDirName),
			Plugins:        plugins,
			Root:           versionDir,
		}, nil
	}

	return nil, errs.Wrap(ErrNotInstalled, "no entry under %s holds %s", versionsDir, constants.StudioWindowsBinaryName)
}

// DiscoverPlayer reads the Player install location from the registry record
// the Player bootstrapper maintains.
func (s *WindowsStrategy) DiscoverPlayer() (*PlayerInstallation, error) {
	clientExe, err := s.readRegistryValue(constants.PlayerRegistryKey, constants.PlayerClientExeValueName)
	if err != nil {
		return nil, err
	}

	root := filepath.Dir(clientExe)
	if root == clientExe {
		return nil, errs.Wrap(ErrMalformedRegistry, "player executable %q has no parent directory", clientExe)
	}

	logging.Debug("Resolved Player install root from registry: %s", root)
	return &PlayerInstallation{
		Content:     filepath.Join(root, constants.ContentDirName),
		Application: clientExe,
		Root:        root,
	}, nil
}

// pluginsDir derives the directory where the user's own plugins live.
func (s *WindowsStrategy) pluginsDir() (string, error) {
	home, err := s.dirs.HomeDir()
	if err != nil {
		return "", errs.Pack(err, ErrPluginsDirectoryNotFound)
	}

	return filepath.Join(home, "AppData", "Local", "Roblox", "Plugins"), nil
}

func (s *WindowsStrategy) readRegistryValue(keyPath, valueName string) (value string, rerr error) {
	key, err := s.openKey(keyPath)
	if err != nil {
		return "", NewRegistryError(err, keyPath, valueName)
	}
	defer rtutils.Closer(key.Close, &rerr)

	value, _, err = key.GetStringValue(valueName)
	if err != nil {
		return "", NewRegistryError(err, keyPath, valueName)
	}

	return value, nil
}
