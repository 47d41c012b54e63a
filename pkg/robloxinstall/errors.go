package robloxinstall

import (
	"errors"
	"fmt"

	"github.com/jiwonz/roblox-install/internal/osutils/stacktrace"
)

var (
	// ErrNotInstalled indicates that no usable installation exists at the resolved location
	ErrNotInstalled = errors.New("Roblox Studio is not installed")

	// ErrPlatformNotSupported indicates that the platform has no native Roblox release to locate
	ErrPlatformNotSupported = errors.New("platform is not supported")

	// ErrMalformedRegistry indicates that the registry record exists but holds an unusable path
	ErrMalformedRegistry = errors.New("registry record is malformed")

	// ErrDocumentsDirectoryNotFound indicates that the user's documents directory could not be resolved
	ErrDocumentsDirectoryNotFound = errors.New("couldn't find documents directory")

	// ErrPluginsDirectoryNotFound indicates that the user's plugins directory could not be resolved
	ErrPluginsDirectoryNotFound = errors.New("couldn't find plugins directory")
)

// RegistryError communicates a failure to open or read one of the Roblox
// registry records.
type RegistryError struct {
	Key   string
	Value string
	err   error
	stack *stacktrace.Stacktrace
}

// NewRegistryError returns a new RegistryError.
func NewRegistryError(err error, key, value string) *RegistryError {
	return &RegistryError{key, value, err, stacktrace.Get()}
}

// Error implements the error interface.
func (e *RegistryError) Error() string {
	return fmt.Sprintf("could not read registry value %q under %q: %v", e.Value, e.Key, e.err)
}

// Unwrap allows the unwrapping of a causing error.
func (e *RegistryError) Unwrap() error {
	return e.err
}

// Stack implements the errs.Error interface.
func (e *RegistryError) Stack() *stacktrace.Stacktrace {
	return e.stack
}

// EnvironmentVariableError communicates that an override environment variable
// is set but its value cannot be used.
type EnvironmentVariableError struct {
	Name  string
	err   error
	stack *stacktrace.Stacktrace
}

// NewEnvironmentVariableError returns a new EnvironmentVariableError.
func NewEnvironmentVariableError(err error, name string) *EnvironmentVariableError {
	return &EnvironmentVariableError{name, err, stacktrace.Get()}
}

// Error implements the error interface.
func (e *EnvironmentVariableError) Error() string {
	return fmt.Sprintf("invalid %s value: %v", e.Name, e.err)
}

// Unwrap allows the unwrapping of a causing error.
func (e *EnvironmentVariableError) Unwrap() error {
	return e.err
}

// Stack implements the errs.Error interface.
func (e *EnvironmentVariableError) Stack() *stacktrace.Stacktrace {
	return e.stack
}
