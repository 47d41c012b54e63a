package osutils

import (
	"errors"

	"golang.org/x/sys/windows/registry"
)

func NotExistError() error {
	return registry.ErrNotExist
}

func IsNotExistError(err error) bool {
	return errors.Is(err, registry.ErrNotExist)
}

func OpenUserKey(path string) (RegistryKey, error) {
	return registry.OpenKey(registry.CURRENT_USER, path, registry.QUERY_VALUE)
}
