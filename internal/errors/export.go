package errors

import "errors"

// As is errors.As from the standard library.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Is is errors.Is from the standard library.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Unwrap is errors.Unwrap from the standard library.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}
