package robloxinstall

// PlatformStrategy is the decision tree that resolves installations for one
// platform flavor. All implementations compile on every OS so the resolution
// logic can be exercised anywhere; only the collaborators they consult are
// platform specific.
type PlatformStrategy interface {
	// DiscoverStudio runs the platform's own Studio discovery: the registry
	// probe on Windows, the fixed bundle path on macOS, an unconditional
	// failure elsewhere.
	DiscoverStudio() (*StudioInstallation, error)

	// LocateStudioFromDirectory resolves the Studio installation rooted at the
	// given directory.
	LocateStudioFromDirectory(root string) (*StudioInstallation, error)

	// DiscoverPlayer runs the platform's own Player discovery. Only the
	// Windows flavor can succeed, no other platform keeps a Player record.
	DiscoverPlayer() (*PlayerInstallation, error)
}

// NewStrategy returns the PlatformStrategy for the given platform.
func NewStrategy(platform Platform) PlatformStrategy {
	switch platform {
	case PlatformWindows:
		return NewWindowsStrategy()
	case PlatformMac:
		return NewMacStrategy()
	default:
		return NewUnsupportedStrategy()
	}
}
