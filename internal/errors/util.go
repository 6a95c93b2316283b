package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrorStack returns the stack traces of every error in the tree, joined by newlines.
func ErrorStack(err error) string {
	var stacks []string

	for _, err := range UnwrapMultiErrors(err) {
		for ; err != nil; err = errors.Unwrap(err) {
			if withStack, ok := err.(interface{ ErrorStack() string }); ok {
				stacks = append(stacks, withStack.ErrorStack())
				break
			}
		}
	}

	return strings.Join(stacks, "\n")
}

// ContainsStackTrace reports whether err, or anything it wraps, already has a stack trace.
func ContainsStackTrace(err error) bool {
	for _, err := range UnwrapMultiErrors(err) {
		for ; err != nil; err = errors.Unwrap(err) {
			if _, ok := err.(interface{ ErrorStack() string }); ok {
				return true
			}
		}
	}

	return false
}

// IsContextCanceled reports whether err was caused by context cancellation.
func IsContextCanceled(err error) bool {
	return errors.Is(err, context.Canceled)
}

// Recover calls onPanic with an error describing the recovered panic.
// It must be called directly from a defer statement.
func Recover(onPanic func(cause error)) {
	if rec := recover(); rec != nil {
		err, isError := rec.(error)
		if !isError {
			err = fmt.Errorf("%v", rec) //nolint:err113
		}

		onPanic(New(err))
	}
}

// UnwrapMultiErrors flattens nested multi-errors into a slice of leaf errors.
func UnwrapMultiErrors(err error) []error {
	if err == nil {
		return nil
	}

	var (
		queue  = []error{err}
		leaves []error
	)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		multi := false

		for inner := cur; inner != nil; inner = errors.Unwrap(inner) {
			if joined, ok := inner.(interface{ Unwrap() []error }); ok {
				queue = append(queue, joined.Unwrap()...)
				multi = true

				break
			}
		}

		if !multi {
			leaves = append(leaves, cur)
		}
	}

	return leaves
}
