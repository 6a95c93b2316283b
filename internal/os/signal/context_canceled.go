package signal

import (
	"context"
	"os"
)

// ContextCanceledCause is the cancellation cause of a context ended by a signal.
type ContextCanceledCause struct {
	Signal os.Signal
}

func NewContextCanceledCause(sig os.Signal) *ContextCanceledCause {
	return &ContextCanceledCause{Signal: sig}
}

func (cause ContextCanceledCause) Error() string {
	if cause.Signal == nil {
		return context.Canceled.Error()
	}

	return "received signal " + cause.Signal.String()
}

// Unwrap makes the cause match context.Canceled.
func (ContextCanceledCause) Unwrap() error {
	return context.Canceled
}
