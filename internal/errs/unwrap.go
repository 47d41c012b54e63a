package errs

import (
	"errors"
)

// UnwrapExitCode checks if the given error carries an exit code and returns
// it, defaulting to 1 for errors without one and 0 for nil.
func UnwrapExitCode(err error) int {
	if err == nil {
		return 0
	}

	var eerr ExitCodeable
	if errors.As(err, &eerr) {
		return eerr.ExitCode()
	}

	return 1
}
