// Package signal turns process interrupts into context cancellation.
package signal

import (
	"context"
	"os"
	ossignal "os/signal"
	"sync"
)

// NotifyContext returns a copy of parent that is canceled with a *ContextCanceledCause as soon
// as one of InterruptSignals arrives. The returned stop function releases the signal handler and
// cancels the context; it may be called more than once.
func NotifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(parent)

	if len(InterruptSignals) == 0 {
		return ctx, func() { cancel(nil) }
	}

	signals := make(chan os.Signal, 1)
	ossignal.Notify(signals, InterruptSignals...)

	done := make(chan struct{})

	go func() {
		select {
		case sig := <-signals:
			cancel(NewContextCanceledCause(sig))
		case <-done:
		}
	}()

	var once sync.Once

	return ctx, func() {
		once.Do(func() {
			ossignal.Stop(signals)
			close(done)
			cancel(nil)
		})
	}
}
