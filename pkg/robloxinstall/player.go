package robloxinstall

// PlayerInstallation holds the resolved paths of a Roblox Player
// installation. All paths are absolute and derive from a single resolution
// attempt.
type PlayerInstallation struct {
	// Content is the content directory of the installation
	Content string
	// Application is the path of the Player executable as recorded by its bootstrapper
	Application string
	// Root is the install root the other paths derive from
	Root string
}

// PlayerLocator resolves Roblox Player installations for a fixed platform
// flavor. The Player only keeps an install record on Windows; there is no
// override variable and no resolve-from-directory variant.
type PlayerLocator struct {
	strategy PlatformStrategy
}

// NewPlayerLocator returns a PlayerLocator for the given platform.
func NewPlayerLocator(platform Platform) *PlayerLocator {
	return &PlayerLocator{strategy: NewStrategy(platform)}
}

// Locate resolves the Player installation.
func (l *PlayerLocator) Locate() (*PlayerInstallation, error) {
	return l.strategy.DiscoverPlayer()
}

// LocatePlayer resolves the Player installation for the current host
// platform.
func LocatePlayer() (*PlayerInstallation, error) {
	return NewPlayerLocator(HostPlatform()).Locate()
}
