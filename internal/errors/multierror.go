package errors

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// MultiError collects several errors into one. The zero value and nil are both empty.
type MultiError struct {
	inner *multierror.Error
}

// Error renders the collected errors as a bulleted list.
func (errs *MultiError) Error() string {
	leaves := UnwrapMultiErrors(errs)

	items := make([]string, 0, len(leaves))
	for _, err := range leaves {
		items = append(items, bullet(err.Error()))
	}

	body := strings.Join(items, "\n\n")

	if len(leaves) == 1 {
		return fmt.Sprintf("error occurred:\n\n%s\n", body)
	}

	return fmt.Sprintf("%d errors occurred:\n\n%s\n", len(leaves), body)
}

// WrappedErrors returns the errors directly held by this MultiError.
func (errs *MultiError) WrappedErrors() []error {
	if errs == nil || errs.inner == nil {
		return nil
	}

	return errs.inner.WrappedErrors()
}

func (errs *MultiError) Unwrap() []error {
	return errs.WrappedErrors()
}

// ErrorOrNil returns errs as an error, or nil when nothing was collected.
func (errs *MultiError) ErrorOrNil() error {
	if errs == nil || errs.inner == nil {
		return nil
	}

	if err := errs.inner.ErrorOrNil(); err != nil {
		return errs
	}

	return nil
}

// Append returns a new MultiError holding the existing errors followed by appendErrs.
// Nil errors are skipped.
func (errs *MultiError) Append(appendErrs ...error) *MultiError {
	var inner *multierror.Error
	if errs != nil {
		inner = errs.inner
	}

	for _, err := range appendErrs {
		if err != nil {
			inner = multierror.Append(inner, err)
		}
	}

	return &MultiError{inner: inner}
}

// Len returns the number of directly held errors.
func (errs *MultiError) Len() int {
	return len(errs.WrappedErrors())
}

func bullet(str string) string {
	// for output on Windows OS
	str = strings.ReplaceAll(str, "\r\n", "\n")

	lines := strings.Split(str, "\n")
	for i, line := range lines {
		if i == 0 {
			lines[i] = "* " + line
		} else {
			lines[i] = "  " + line
		}
	}

	return strings.Join(lines, "\n")
}
