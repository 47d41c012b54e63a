package robloxinstall

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiwonz/roblox-install/internal/constants"
)

func TestMacLocateStudioFromDirectory(t *testing.T) {
	// The bundle root deliberately does not exist; every path is derived by
	// construction and nothing is probed on disk.
	root := filepath.Join("/Users", "nobody", "Applications", "RobloxStudio.app")
	docs := filepath.Join("/Users", "nobody", "Documents")

	strategy := &MacStrategy{dirs: fakeUserDirs{docs: docs}}

	install, err := strategy.LocateStudioFromDirectory(root)
	require.NoError(t, err)

	contents := filepath.Join(root, "Contents")
	assert.Equal(t, root, install.Root)
	assert.Equal(t, filepath.Join(contents, "Resources", "content"), install.Content)
	assert.Equal(t, filepath.Join(contents, "MacOS", "RobloxStudio"), install.Application)
	assert.Equal(t, filepath.Join(contents, "Resources", "BuiltInPlugins"), install.BuiltInPlugins)
	assert.Equal(t, filepath.Join(docs, "Roblox", "Plugins"), install.Plugins)
}

func TestMacDiscoverStudioUsesFixedBundlePath(t *testing.T) {
	strategy := &MacStrategy{dirs: fakeUserDirs{docs: "/Users/nobody/Documents"}}

	install, err := strategy.DiscoverStudio()
	require.NoError(t, err)

	assert.Equal(t, constants.StudioMacBundlePath, install.Root)
	assert.Equal(t, filepath.Join(constants.StudioMacBundlePath, "Contents", "MacOS", "RobloxStudio"), install.Application)
}

func TestMacLocateStudioDocumentsUnavailable(t *testing.T) {
	cause := errors.New("no documents for you")
	strategy := &MacStrategy{dirs: fakeUserDirs{docsErr: cause}}

	install, err := strategy.LocateStudioFromDirectory("/Applications/RobloxStudio.app")
	require.Error(t, err)
	assert.Nil(t, install)
	assert.True(t, errors.Is(err, ErrDocumentsDirectoryNotFound))
	assert.True(t, errors.Is(err, cause))
}

func TestMacDiscoverPlayer(t *testing.T) {
	strategy := &MacStrategy{dirs: fakeUserDirs{docs: "unused"}}

	install, err := strategy.DiscoverPlayer()
	require.Error(t, err)
	assert.Nil(t, install)
	assert.True(t, errors.Is(err, ErrPlatformNotSupported))
}
