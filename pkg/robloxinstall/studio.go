package robloxinstall

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jiwonz/roblox-install/internal/constants"
	"github.com/jiwonz/roblox-install/internal/errs"
	"github.com/jiwonz/roblox-install/internal/logging"
)

// StudioInstallation holds the resolved paths of a Roblox Studio
// installation. All paths are absolute and derive from a single resolution
// attempt; only the paths the resolution itself verified are guaranteed to
// exist on disk.
type StudioInstallation struct {
	// Content is the content directory of the installation
	Content string
	// Application is the path of the Studio executable
	Application string
	// BuiltInPlugins is the directory holding the plugins shipped with Studio
	BuiltInPlugins string
	// Plugins is the directory where the user's own plugins live
	Plugins string
	// Root is the install root the other paths derive from
	Root string
}

// StudioLocator resolves Roblox Studio installations for a fixed platform
// flavor. It holds no mutable state and is safe for concurrent use.
type StudioLocator struct {
	strategy PlatformStrategy
}

// NewStudioLocator returns a StudioLocator for the given platform.
func NewStudioLocator(platform Platform) *StudioLocator {
	return &StudioLocator{strategy: NewStrategy(platform)}
}

// Locate resolves the Studio installation. When the ROBLOX_STUDIO_PATH
// environment variable is set its value is used as the install root and no
// platform discovery happens; otherwise the platform's own discovery runs.
func (l *StudioLocator) Locate() (*StudioInstallation, error) {
	value, envSet := os.LookupEnv(constants.StudioPathEnvVarName)
	if envSet {
		root, err := parseOverridePath(value)
		if err != nil {
			return nil, NewEnvironmentVariableError(err, constants.StudioPathEnvVarName)
		}

		logging.Debug("Resolving Studio from %s override: %s", constants.StudioPathEnvVarName, root)
		return l.strategy.LocateStudioFromDirectory(root)
	}

	return l.strategy.DiscoverStudio()
}

// LocateFromDirectory resolves the Studio installation rooted at the given
// directory, bypassing both the override variable and platform discovery.
func (l *StudioLocator) LocateFromDirectory(root string) (*StudioInstallation, error) {
	return l.strategy.LocateStudioFromDirectory(root)
}

// parseOverridePath validates an override value. Only absolute paths are
// usable as install roots, a relative value would silently depend on the
// working directory of whatever process we run in.
func parseOverridePath(value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", errs.New("value is empty")
	}
	if !filepath.IsAbs(value) {
		return "", errs.New("%q is not an absolute path", value)
	}

	return filepath.Clean(value), nil
}

// LocateStudio resolves the Studio installation for the current host
// platform.
func LocateStudio() (*StudioInstallation, error) {
	return NewStudioLocator(HostPlatform()).Locate()
}

// LocateStudioFromDirectory resolves the Studio installation rooted at the
// given directory using the current host platform's layout rules.
func LocateStudioFromDirectory(root string) (*StudioInstallation, error) {
	return NewStudioLocator(HostPlatform()).LocateFromDirectory(root)
}
