package rtutils

import (
	"fmt"
	"runtime"
)

// CurrentFile returns the path of the Go source file that invoked it
func CurrentFile() string {
	pc := make([]uintptr, 2)
	n := runtime.Callers(1, pc)
	if n == 0 {
		return ""
	}

	pc = pc[:n]
	frames := runtime.CallersFrames(pc)

	frame, _ := frames.Next()
	frame, _ = frames.Next() // Skip rtutils.go

	return frame.File
}

// Closer runs the given close function from a defer and folds its error into
// the caller's named return error, keeping both messages when both fail.
func Closer(closer func() error, rerr *error) {
	if err := closer(); err != nil {
		if *rerr == nil {
			*rerr = err
		} else {
			*rerr = fmt.Errorf("%s: %w", err.Error(), *rerr)
		}
	}
}
