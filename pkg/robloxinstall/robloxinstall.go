// Package robloxinstall locates Roblox Studio and Roblox Player installations
// on the local machine.
//
// Resolution is platform specific: on Windows the registry records Roblox
// maintains under HKEY_CURRENT_USER are consulted, on macOS the fixed
// /Applications bundle layout is used, and everywhere else discovery fails
// with ErrPlatformNotSupported. Setting the ROBLOX_STUDIO_PATH environment
// variable bypasses discovery entirely and resolves from the given root
// directory instead, which also makes Wine installs reachable on platforms
// without a native Studio release.
//
//	install, err := robloxinstall.LocateStudio()
//	if err != nil {
//		// handle the error
//	}
//	fmt.Println(install.Plugins)
package robloxinstall

import (
	"runtime"

	"github.com/jiwonz/roblox-install/internal/osutils/user"
)

// Platform represents the platform flavor whose installation layout is used
// during resolution.
type Platform int

const (
	// PlatformWindows locates installs via the registry and the versioned directory layout.
	PlatformWindows Platform = iota
	// PlatformMac locates installs via the fixed application bundle layout.
	PlatformMac
	// PlatformOther is any platform without a native Roblox Studio release.
	PlatformOther
)

func (p Platform) String() string {
	switch p {
	case PlatformWindows:
		return "Windows"
	case PlatformMac:
		return "MacOS"
	default:
		return "Other"
	}
}

// HostPlatform returns the Platform of the machine we are running on.
func HostPlatform() Platform {
	switch runtime.GOOS {
	case "windows":
		return PlatformWindows
	case "darwin":
		return PlatformMac
	default:
		return PlatformOther
	}
}

// UserDirs resolves the well-known user directories consulted while deriving
// plugin folders. Strategies take this as an interface so that tests can
// exercise the unavailable-directory failure modes on any machine.
type UserDirs interface {
	HomeDir() (string, error)
	DocumentsDir() (string, error)
}

type standardUserDirs struct{}

func (standardUserDirs) HomeDir() (string, error) {
	return user.HomeDir()
}

func (standardUserDirs) DocumentsDir() (string, error) {
	return user.DocumentsDir()
}

// StandardUserDirs resolves user directories through the operating system.
func StandardUserDirs() UserDirs {
	return standardUserDirs{}
}
