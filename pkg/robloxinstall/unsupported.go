package robloxinstall

import (
	"github.com/jiwonz/roblox-install/internal/errs"
	"github.com/jiwonz/roblox-install/internal/logging"
)

// UnsupportedStrategy is used on platforms without a native Roblox release.
// Discovery fails unconditionally, but resolving from an explicit directory
// still attempts the Windows directory layout: Wine installs on Linux are
// laid out that way and stay reachable through the override variable.
type UnsupportedStrategy struct {
	scan *WindowsStrategy
}

// NewUnsupportedStrategy returns an UnsupportedStrategy.
func NewUnsupportedStrategy() *UnsupportedStrategy {
	return &UnsupportedStrategy{scan: NewWindowsStrategy()}
}

// DiscoverStudio always fails, there is nowhere to discover an install from.
func (s *UnsupportedStrategy) DiscoverStudio() (*StudioInstallation, error) {
	return nil, ErrPlatformNotSupported
}

// LocateStudioFromDirectory attempts the Windows directory layout at the
// given root. Any failure of that attempt surfaces as
// ErrPlatformNotSupported, with the underlying cause retained in the message.
func (s *UnsupportedStrategy) LocateStudioFromDirectory(root string) (*StudioInstallation, error) {
	install, err := s.scan.LocateStudioFromDirectory(root)
	if err != nil {
		logging.Debug("Directory scan failed on unsupported platform: %v", err)
		return nil, errs.Wrap(ErrPlatformNotSupported, "no usable installation at %s: %s", root, errs.JoinMessage(err))
	}

	return install, nil
}

// DiscoverPlayer always fails, the Player keeps no install record here.
func (s *UnsupportedStrategy) DiscoverPlayer() (*PlayerInstallation, error) {
	return nil, ErrPlatformNotSupported
}
