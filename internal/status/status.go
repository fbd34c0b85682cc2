// Package status defines the error kinds reported across Spindle package
// boundaries. All fallible operations return one of these sentinels, usually
// wrapped with context; callers match with errors.Is.
package status

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument reports malformed input: an empty operation name,
	// or a task whose argument count does not match its operation's arity.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotSupported reports a requested operation/type combination that
	// the registry does not provide.
	ErrNotSupported = errors.New("not supported")

	// ErrExecution reports a failure surfaced from an executor during
	// submit. It is opaque to the scheduling layer beyond relaying it.
	ErrExecution = errors.New("execution error")

	// ErrState reports a call on an object whose lifecycle forbids it,
	// e.g. appending steps to an already submitted schedule.
	ErrState = errors.New("invalid state")
)

// InvalidArgumentf returns ErrInvalidArgument wrapped with a formatted message.
func InvalidArgumentf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}

// NotSupportedf returns ErrNotSupported wrapped with a formatted message.
func NotSupportedf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrNotSupported, format, args...)
}

// Executionf returns ErrExecution wrapped with a formatted message.
func Executionf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrExecution, format, args...)
}

// Statef returns ErrState wrapped with a formatted message.
func Statef(format string, args ...interface{}) error {
	return errors.Wrapf(ErrState, format, args...)
}
