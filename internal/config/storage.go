package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"runtime"

	"github.com/shibukawa/configdir"

	"github.com/jiwonz/roblox-install/internal/condition"
	"github.com/jiwonz/roblox-install/internal/constants"
)

// AppDataPath returns the directory in which we store our config
func AppDataPath() (string, error) {
	localPath, envSet := os.LookupEnv(constants.ConfigEnvVarName)
	if envSet {
		return AppDataPathWithParent(localPath)
	}

	if condition.InTest() {
		localPath, err := appDataPathInTest()
		if err != nil {
			// panic as this only happening in tests
			panic(err)
		}
		return AppDataPathWithParent(localPath)
	}

	// Account for HOME dir not being set, meaning querying global folders will fail
	// This is a workaround for docker envs that don't usually have $HOME set
	_, envSet = os.LookupEnv("HOME")
	if !envSet && runtime.GOOS != "windows" {
		localPath := filepath.Dir(os.Args[0])
		if localPath == "" {
			var err error
			localPath, err = ioutil.TempDir("", "roblox-locate-config")
			if err != nil {
				return "", fmt.Errorf("could not create temp dir: %w", err)
			}
		}

		return AppDataPathWithParent(localPath)
	}

	configDirs := configdir.New(constants.InternalConfigNamespace, constants.CommandName)
	return configDirs.QueryFolders(configdir.Global)[0].Path, nil
}

var _appDataPathInTest string

func appDataPathInTest() (string, error) {
	if _appDataPathInTest != "" {
		return _appDataPathInTest, nil
	}

	localPath, err := ioutil.TempDir("", "roblox-locate-config")
	if err != nil {
		return "", fmt.Errorf("Could not create temp dir: %w", err)
	}
	err = os.RemoveAll(localPath)
	if err != nil {
		return "", fmt.Errorf("Could not remove generated config dir for tests: %w", err)
	}

	_appDataPathInTest = localPath

	return localPath, nil
}

// AppDataPathWithParent returns the config dir nested under the given parent dir
func AppDataPathWithParent(parentDir string) (string, error) {
	configDirs := configdir.New(constants.InternalConfigNamespace, constants.CommandName)
	configDirs.LocalPath = parentDir
	return configDirs.QueryFolders(configdir.Local)[0].Path, nil
}
