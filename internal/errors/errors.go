// Package errors wraps go-errors and go-multierror so that every error leaving a package
// carries a stack trace and several failures can travel as one value.
package errors

import (
	"fmt"

	goerrors "github.com/go-errors/errors"
	"github.com/urfave/cli/v2"
)

// New wraps the given value in an error carrying the caller's stack trace.
// Strings become new errors; errors are wrapped as is. A nil value returns nil.
func New(val any) error {
	if val == nil {
		return nil
	}

	if err, ok := val.(error); ok && ContainsStackTrace(err) {
		return err
	}

	return goerrors.Wrap(val, 1)
}

// Errorf formats a message the way fmt.Errorf does, `%w` included, and attaches a stack trace.
func Errorf(format string, args ...any) error {
	return goerrors.Wrap(fmt.Errorf(format, args...), 1)
}

// WithStackTrace attaches a stack trace to err unless it already has one.
func WithStackTrace(err error) error {
	if err == nil {
		return nil
	}

	if ContainsStackTrace(err) {
		return err
	}

	return goerrors.Wrap(err, 1)
}

// WithStackTraceAndPrefix is WithStackTrace with a formatted message prepended.
func WithStackTraceAndPrefix(err error, message string, args ...any) error {
	if err == nil {
		return nil
	}

	return goerrors.WrapPrefix(err, fmt.Sprintf(message, args...), 1)
}

// ErrorWithExitCode tells the entrypoint which exit code to use for the wrapped error.
type ErrorWithExitCode struct {
	Err      error
	ExitCode int
}

func (err ErrorWithExitCode) Error() string {
	return err.Err.Error()
}

func (err ErrorWithExitCode) Unwrap() error {
	return err.Err
}

// ExitCode returns the exit code attached to err, 0 for nil and 1 for anything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var withCode ErrorWithExitCode
	if As(err, &withCode) {
		return withCode.ExitCode
	}

	return 1
}

// WithPanicHandling turns a panic raised inside a cli action into a returned error.
func WithPanicHandling(action cli.ActionFunc) cli.ActionFunc {
	return func(ctx *cli.Context) (err error) {
		defer Recover(func(cause error) {
			err = cause
		})

		return action(ctx)
	}
}
