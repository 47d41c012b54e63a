// +build !windows

package osutils

import "errors"

var errNotExist = errors.New("registry key or value does not exist")

func NotExistError() error {
	return errNotExist
}

func IsNotExistError(err error) bool {
	return errors.Is(err, errNotExist)
}

// OpenUserKey always fails outside of Windows, there is no registry to open.
// It exists so that code paths consulting the registry compile and can be
// exercised with mocks on every platform.
func OpenUserKey(path string) (RegistryKey, error) {
	return nil, errors.New("registry is not supported on this platform")
}
