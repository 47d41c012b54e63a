package errs

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/jiwonz/roblox-install/internal/osutils/stacktrace"
	"github.com/jiwonz/roblox-install/internal/rtutils"
)

// Error enforces errors that include a stacktrace
type Error interface {
	Unwrap() error
	Stack() *stacktrace.Stacktrace
}

// WrappedErr is what we use for errors created from this package, this does not mean every error returned from this
// package is wrapping something, it simply has the plumbing to.
type WrappedErr struct {
	msg     string
	wrapped error
	stack   *stacktrace.Stacktrace
}

// Error returns the error message
func (e *WrappedErr) Error() string {
	return e.msg
}

// Unwrap returns the parent error, if one exists
func (e *WrappedErr) Unwrap() error {
	return e.wrapped
}

// Stack returns the stacktrace for where this error was created
func (e *WrappedErr) Stack() *stacktrace.Stacktrace {
	return e.stack
}

func newError(err string, wrapTarget error) error {
	return &WrappedErr{
		err,
		wrapTarget,
		stacktrace.GetWithSkip([]string{rtutils.CurrentFile()}),
	}
}

// New creates a new error, similar to errors.New
func New(message string, args ...interface{}) error {
	return newError(fmt.Sprintf(message, args...), nil)
}

// Wrap creates a new error that wraps the given error
func Wrap(wrapTarget error, message string, args ...interface{}) error {
	return newError(fmt.Sprintf(message, args...), wrapTarget)
}

// Join all error messages in the Unwrap stack
func Join(err error, sep string) error {
	var message []string
	for err != nil {
		message = append(message, err.Error())
		err = errors.Unwrap(err)
	}
	return Wrap(err, strings.Join(message, sep))
}

// PackedErr represents a collection of errors that are packed into a single error
type PackedErr struct {
	errs []error
}

func (e *PackedErr) Error() string {
	var message []string
	for _, err := range e.errs {
		message = append(message, err.Error())
	}
	return strings.Join(message, ": ")
}

func (e *PackedErr) Unwrap() []error {
	return e.errs
}

// Pack creates a single error that holds all the given errors, so that each of
// them can still be asserted with errors.Is / errors.As
func Pack(err error, errs ...error) error {
	return &PackedErr{append([]error{err}, errs...)}
}

// Unpack returns each error in the Unwrap stack, outermost first
func Unpack(err error) []error {
	var result []error
	for err != nil {
		result = append(result, err)
		err = errors.Unwrap(err)
	}
	return result
}

// JoinMessage joins all error messages in the Unwrap stack with a colon, which
// is the format we use when surfacing the full error chain to the user.
func JoinMessage(err error) string {
	var message []string
	for _, err := range Unpack(err) {
		message = append(message, err.Error())
	}
	return strings.Join(message, ": ")
}

// Matches checks if the given error is of the same type as the target anywhere
// in its Unwrap stack. Use this rather than errors.As when you only care about
// the match and not the matched value.
func Matches(err error, target interface{}) bool {
	targetType := reflect.TypeOf(target)
	for _, err := range Unpack(err) {
		if reflect.TypeOf(err) == targetType {
			return true
		}
	}
	return false
}
