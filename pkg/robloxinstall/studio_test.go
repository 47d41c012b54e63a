package robloxinstall

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiwonz/roblox-install/internal/constants"
)

func TestStudioLocatorOverridePreemptsDiscovery(t *testing.T) {
	root, err := ioutil.TempDir("", "roblox-install-test")
	require.NoError(t, err)
	defer os.RemoveAll(root)

	require.NoError(t, os.Mkdir(filepath.Join(root, constants.ContentDirName), 0755))
	setEnvVar(t, constants.StudioPathEnvVarName, root)

	// The registry fake fails every lookup, so a successful resolve proves
	// discovery never ran.
	locator := &StudioLocator{strategy: &WindowsStrategy{
		openKey: fakeRegistry(nil),
		dirs:    fakeUserDirs{home: "home"},
	}}

	install, err := locator.Locate()
	require.NoError(t, err)
	assert.Equal(t, root, install.Root)
	assert.Equal(t, filepath.Join(root, constants.ContentDirName), install.Content)
}

func TestStudioLocatorOverrideInvalid(t *testing.T) {
	invalid := map[string]string{
		"relative path": filepath.Join("Roblox", "Install"),
		"empty":         "",
		"whitespace":    "   ",
	}

	for name, value := range invalid {
		t.Run(name, func(t *testing.T) {
			setEnvVar(t, constants.StudioPathEnvVarName, value)

			locator := &StudioLocator{strategy: &WindowsStrategy{
				openKey: fakeRegistry(nil),
				dirs:    fakeUserDirs{home: "home"},
			}}

			install, err := locator.Locate()
			require.Error(t, err)
			assert.Nil(t, install)

			var verr *EnvironmentVariableError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, constants.StudioPathEnvVarName, verr.Name)
			assert.Contains(t, err.Error(), constants.StudioPathEnvVarName)
		})
	}
}

func TestStudioLocatorOverrideCleansValue(t *testing.T) {
	root, err := ioutil.TempDir("", "roblox-install-test")
	require.NoError(t, err)
	defer os.RemoveAll(root)

	require.NoError(t, os.Mkdir(filepath.Join(root, constants.ContentDirName), 0755))

	// Redundant separators and dot segments must not leak into the resolved
	// paths.
	messy := root + string(filepath.Separator) + "." + string(filepath.Separator)
	setEnvVar(t, constants.StudioPathEnvVarName, messy)

	locator := &StudioLocator{strategy: &WindowsStrategy{dirs: fakeUserDirs{home: "home"}}}

	install, err := locator.Locate()
	require.NoError(t, err)
	assert.Equal(t, root, install.Root)
}

func TestStudioLocatorNoOverrideRunsDiscovery(t *testing.T) {
	unsetEnvVar(t, constants.StudioPathEnvVarName)

	content := filepath.Join("some", "install", "content")
	locator := &StudioLocator{strategy: &WindowsStrategy{
		openKey: studioRegistry(content),
		dirs:    fakeUserDirs{home: "home"},
	}}

	install, err := locator.Locate()
	require.NoError(t, err)
	assert.Equal(t, content, install.Content)
	assert.Equal(t, filepath.Join("some", "install"), install.Root)
}

func TestStudioLocatorLocateFromDirectoryIgnoresOverride(t *testing.T) {
	root, err := ioutil.TempDir("", "roblox-install-test")
	require.NoError(t, err)
	defer os.RemoveAll(root)

	require.NoError(t, os.Mkdir(filepath.Join(root, constants.ContentDirName), 0755))

	// An override value that would not even parse must not interfere with an
	// explicit root.
	setEnvVar(t, constants.StudioPathEnvVarName, "not-absolute")

	locator := &StudioLocator{strategy: &WindowsStrategy{dirs: fakeUserDirs{home: "home"}}}

	install, err := locator.LocateFromDirectory(root)
	require.NoError(t, err)
	assert.Equal(t, root, install.Root)
}

func TestStudioLocatorIdempotent(t *testing.T) {
	root, err := ioutil.TempDir("", "roblox-install-test")
	require.NoError(t, err)
	defer os.RemoveAll(root)

	makeVersionedInstall(t, root,
		[]string{"version-aaa", "version-bbb"},
		map[string]bool{"version-aaa": true, "version-bbb": true})
	setEnvVar(t, constants.StudioPathEnvVarName, root)

	locator := &StudioLocator{strategy: &WindowsStrategy{dirs: fakeUserDirs{home: "home"}}}

	first, err := locator.Locate()
	require.NoError(t, err)
	second, err := locator.Locate()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestLocateStudioWithOverride(t *testing.T) {
	// End to end through the host platform's own strategy. Every strategy can
	// resolve this layout from an override: Windows and unsupported platforms
	// scan it, macOS derives paths from it without probing.
	root, err := ioutil.TempDir("", "roblox-install-test")
	require.NoError(t, err)
	defer os.RemoveAll(root)

	makeVersionedInstall(t, root, []string{"version-abc"}, map[string]bool{"version-abc": true})
	setEnvVar(t, constants.StudioPathEnvVarName, root)

	install, err := LocateStudio()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(install.Root, root))
	assert.NotEmpty(t, install.Plugins)
}

func TestParseOverridePath(t *testing.T) {
	root := bareRoot()

	cleaned, err := parseOverridePath(filepath.Join(root, "roblox") + string(filepath.Separator))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "roblox"), cleaned)

	_, err = parseOverridePath("roblox")
	require.Error(t, err)

	_, err = parseOverridePath("")
	require.Error(t, err)
}
