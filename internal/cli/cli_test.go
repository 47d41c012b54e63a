package cli

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiwonz/roblox-install/internal/config"
	"github.com/jiwonz/roblox-install/internal/constants"
	"github.com/jiwonz/roblox-install/internal/errs"
	"github.com/jiwonz/roblox-install/internal/testhelpers/osutil"
)

// execute runs the CLI with the given args and resets flag state afterwards,
// commands otherwise bleed parsed flag values into the next test.
func execute(args ...string) error {
	defer func() {
		rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
			f.Changed = false
		})
		outputFlag = ""
		noColorFlag = false
		verboseFlag = false
		rootCmd.SetArgs(nil)
	}()

	rootCmd.SetArgs(args)
	return Execute("0.0.0-test", "none", "none")
}

func setEnv(t *testing.T, key, value string) {
	orig, origSet := os.LookupEnv(key)
	require.NoError(t, os.Setenv(key, value))
	t.Cleanup(func() {
		if origSet {
			os.Setenv(key, orig)
		} else {
			os.Unsetenv(key)
		}
	})
}

// makeStudioLayout builds a versioned install dir that resolves on every
// platform via the override variable.
func makeStudioLayout(t *testing.T) string {
	root, err := ioutil.TempDir("", "roblox-locate-test")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(root) })

	versionDir := filepath.Join(root, constants.VersionsDirName, "version-test")
	require.NoError(t, os.MkdirAll(filepath.Join(versionDir, constants.ContentDirName), 0755))
	require.NoError(t, ioutil.WriteFile(filepath.Join(versionDir, constants.StudioWindowsBinaryName), []byte("binary"), 0755))
	return root
}

func TestStudioCommandJSON(t *testing.T) {
	root := makeStudioLayout(t)
	setEnv(t, constants.StudioPathEnvVarName, root)

	var execErr error
	stdout, err := osutil.CaptureStdout(func() {
		execErr = execute("studio", "--output", "json")
	})
	require.NoError(t, err)
	require.NoError(t, execErr)

	report := struct {
		Root        string `json:"root"`
		Application string `json:"application"`
		Content     string `json:"content"`
		Plugins     string `json:"plugins"`
	}{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.True(t, strings.HasPrefix(report.Root, root))
	assert.NotEmpty(t, report.Application)
	assert.NotEmpty(t, report.Plugins)
}

func TestRootDefaultsToStudio(t *testing.T) {
	root := makeStudioLayout(t)
	setEnv(t, constants.StudioPathEnvVarName, root)

	var execErr error
	stdout, err := osutil.CaptureStdout(func() {
		execErr = execute()
	})
	require.NoError(t, err)
	require.NoError(t, execErr)

	assert.Contains(t, stdout, "root: ")
	assert.Contains(t, stdout, root)
}

func TestOpenRejectsUnknownComponent(t *testing.T) {
	var execErr error
	stderr, err := osutil.CaptureStderr(func() {
		execErr = execute("open", "bogus")
	})
	require.NoError(t, err)
	require.Error(t, execErr)
	assert.Equal(t, 2, errs.UnwrapExitCode(execErr))
	assert.Contains(t, stderr, "Unknown component")
	assert.Contains(t, stderr, "Valid components:")
}

func TestConfigSetFormat(t *testing.T) {
	var execErr error
	_, err := osutil.CaptureStderr(func() {
		execErr = execute("config", "set-format", "json")
	})
	require.NoError(t, err)
	require.NoError(t, execErr)
	t.Cleanup(func() {
		if cfg != nil {
			cfg.Unset(constants.OutputFormatConfigKey)
		}
	})

	c, err := config.New()
	require.NoError(t, err)
	assert.Equal(t, "json", c.GetString(constants.OutputFormatConfigKey))
}

func TestConfigSetFormatRejectsUnknown(t *testing.T) {
	var execErr error
	stderr, err := osutil.CaptureStderr(func() {
		execErr = execute("config", "set-format", "xml")
	})
	require.NoError(t, err)
	require.Error(t, execErr)
	assert.Equal(t, 2, errs.UnwrapExitCode(execErr))
	assert.Contains(t, stderr, "Unknown format")
}

func TestDoctorCommand(t *testing.T) {
	root := makeStudioLayout(t)
	setEnv(t, constants.StudioPathEnvVarName, root)

	var execErr error
	stdout, err := osutil.CaptureStdout(func() {
		execErr = execute("doctor")
	})
	require.NoError(t, err)
	require.NoError(t, execErr)

	assert.Contains(t, stdout, "Roblox Studio:")
	assert.Contains(t, stdout, "application")
	assert.Contains(t, stdout, "plugins")
}

func TestVersionCommand(t *testing.T) {
	var execErr error
	stdout, err := osutil.CaptureStdout(func() {
		execErr = execute("version")
	})
	require.NoError(t, err)
	require.NoError(t, execErr)

	assert.Contains(t, stdout, "version: 0.0.0-test")
}
