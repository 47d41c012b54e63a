package stacktrace

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// maxDepth is the maximum number of frames captured per stacktrace
const maxDepth = 32

// Frame is a single caller frame
type Frame struct {
	// Func is the fully qualified function name
	Func string
	// Path is the path of the source file
	Path string
	// Line is the line number inside the source file
	Line int
}

// Stacktrace reflects the call stack at the time it was captured
type Stacktrace struct {
	Frames []Frame
}

// String returns one "funcName\n  file:line" entry per frame
func (t *Stacktrace) String() string {
	result := []string{}
	for _, frame := range t.Frames {
		result = append(result, fmt.Sprintf("%s\n  %s:%d", frame.Func, frame.Path, frame.Line))
	}
	return strings.Join(result, "\n")
}

// Get returns a Stacktrace for the calling function and everything above it
func Get() *Stacktrace {
	return GetWithSkip(nil)
}

// GetWithSkip is like Get, but drops frames originating from any of the given
// source files. Used by error packages to keep themselves out of the trace.
func GetWithSkip(skipFiles []string) *Stacktrace {
	stacktrace := &Stacktrace{}
	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(2, pc) // skip runtime.Callers and GetWithSkip itself
	if n == 0 {
		return stacktrace
	}

	frames := runtime.CallersFrames(pc[:n])
	for {
		frame, more := frames.Next()
		if !skipFrame(frame, skipFiles) {
			stacktrace.Frames = append(stacktrace.Frames, Frame{
				Func: frame.Function,
				Path: frame.File,
				Line: frame.Line,
			})
		}
		if !more {
			break
		}
	}

	return stacktrace
}

func skipFrame(frame runtime.Frame, skipFiles []string) bool {
	if strings.HasSuffix(frame.Function, ".Get") || strings.HasSuffix(frame.Function, ".GetWithSkip") {
		if filepath.Base(frame.File) == "stacktrace.go" {
			return true
		}
	}
	for _, skipFile := range skipFiles {
		if frame.File == skipFile {
			return true
		}
	}
	return false
}
