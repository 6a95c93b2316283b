// Package telemetry collects traces and metrics from function execution with OpenTelemetry.
package telemetry

import (
	"context"
	"io"

	"github.com/gruntwork-io/text-tailor/internal/errors"
)

type ctxKey byte

const telemeterContextKey ctxKey = iota

type Telemeter struct {
	*Tracer
	*Meter
}

// NewTelemeter initializes the telemetry collector.
func NewTelemeter(ctx context.Context, appName, appVersion string, writer io.Writer, opts *Options) (*Telemeter, error) {
	tracer, err := NewTracer(ctx, appName, appVersion, writer, opts)
	if err != nil {
		return nil, err
	}

	meter, err := NewMeter(ctx, appName, appVersion, writer, opts)
	if err != nil {
		return nil, err
	}

	return &Telemeter{
		Tracer: tracer,
		Meter:  meter,
	}, nil
}

// Shutdown flushes and stops the providers. Safe to call on a nil or empty Telemeter.
func (tlm *Telemeter) Shutdown(ctx context.Context) error {
	if tlm == nil {
		return nil
	}

	if tlm.Tracer != nil && tlm.Tracer.provider != nil {
		if err := tlm.Tracer.provider.Shutdown(ctx); err != nil {
			return errors.New(err)
		}

		tlm.Tracer.provider = nil
		tlm.Tracer.hasExporter = false
	}

	if tlm.Meter != nil && tlm.Meter.provider != nil {
		if err := tlm.Meter.provider.Shutdown(ctx); err != nil {
			return errors.New(err)
		}

		tlm.Meter.provider = nil
	}

	return nil
}

// Collect wraps fn with a trace span and a duration metric.
func (tlm *Telemeter) Collect(ctx context.Context, name string, attrs map[string]any, fn func(childCtx context.Context) error) error {
	if tlm == nil {
		return fn(ctx)
	}

	return tlm.Trace(ctx, name, attrs, func(ctx context.Context) error {
		return tlm.Time(ctx, name, attrs, fn)
	})
}

// Count adds value to the named counter. Safe to call on a nil Telemeter.
func (tlm *Telemeter) Count(ctx context.Context, name string, value int64) {
	if tlm == nil {
		return
	}

	tlm.Meter.Count(ctx, name, value)
}

// ContextWithTelemeter returns a copy of ctx carrying tlm.
func ContextWithTelemeter(ctx context.Context, tlm *Telemeter) context.Context {
	return context.WithValue(ctx, telemeterContextKey, tlm)
}

// TelemeterFromContext returns the Telemeter stored in ctx, or an empty one that only runs functions.
func TelemeterFromContext(ctx context.Context) *Telemeter {
	if val, ok := ctx.Value(telemeterContextKey).(*Telemeter); ok && val != nil {
		return val
	}

	return new(Telemeter)
}
