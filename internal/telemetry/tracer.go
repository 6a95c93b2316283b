package telemetry

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/gruntwork-io/text-tailor/internal/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	noneTraceExporterType     traceExporterType = "none"
	consoleTraceExporterType  traceExporterType = "console"
	otlpHTTPTraceExporterType traceExporterType = "otlpHttp"
	otlpGrpcTraceExporterType traceExporterType = "otlpGrpc"
	httpTraceExporterType     traceExporterType = "http"

	traceParentParts = 4
)

type traceExporterType string

type Tracer struct {
	trace.Tracer
	provider    *sdktrace.TracerProvider
	parentSpan  *trace.SpanContext
	hasExporter bool
}

// NewTracer creates and configures the traces collection. It returns nil when no exporter is selected.
func NewTracer(ctx context.Context, appName, appVersion string, writer io.Writer, opts *Options) (*Tracer, error) {
	spanExporter, err := NewTraceExporter(ctx, writer, opts)
	if err != nil {
		return nil, errors.New(err)
	}

	if spanExporter == nil {
		return nil, nil
	}

	res, err := newResource(appName, appVersion)
	if err != nil {
		return nil, err
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(spanExporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(provider)

	tracer := &Tracer{
		Tracer:      provider.Tracer(appName),
		provider:    provider,
		hasExporter: true,
	}

	if opts.TraceParent != "" {
		parent, err := ParseTraceParent(opts.TraceParent)
		if err != nil {
			return nil, err
		}

		tracer.parentSpan = &parent
	}

	return tracer, nil
}

// NewTraceExporter creates a new exporter based on the telemetry options.
func NewTraceExporter(ctx context.Context, writer io.Writer, opts *Options) (sdktrace.SpanExporter, error) {
	exporterType := traceExporterType(opts.TraceExporter)
	if exporterType == "" {
		exporterType = noneTraceExporterType
	}

	switch exporterType {
	case httpTraceExporterType:
		if opts.TraceExporterHTTPEndpoint == "" {
			return nil, &ErrorMissingEnvVariable{
				Vars: []string{"TT_TELEMETRY_TRACE_EXPORTER_HTTP_ENDPOINT"},
			}
		}

		config := []otlptracehttp.Option{otlptracehttp.WithEndpoint(opts.TraceExporterHTTPEndpoint)}
		if opts.TraceExporterInsecureEndpoint {
			config = append(config, otlptracehttp.WithInsecure())
		}

		return otlptracehttp.New(ctx, config...)
	case otlpHTTPTraceExporterType:
		var config []otlptracehttp.Option
		if opts.TraceExporterInsecureEndpoint {
			config = append(config, otlptracehttp.WithInsecure())
		}

		return otlptracehttp.New(ctx, config...)
	case otlpGrpcTraceExporterType:
		var config []otlptracegrpc.Option
		if opts.TraceExporterInsecureEndpoint {
			config = append(config, otlptracegrpc.WithInsecure())
		}

		return otlptracegrpc.New(ctx, config...)
	case consoleTraceExporterType:
		return stdouttrace.New(stdouttrace.WithWriter(writer))
	case noneTraceExporterType:
	}

	return nil, nil
}

// ParseTraceParent parses a W3C `traceparent` header value into a remote span context.
func ParseTraceParent(value string) (trace.SpanContext, error) {
	parts := strings.Split(value, "-")
	if len(parts) != traceParentParts {
		return trace.SpanContext{}, errors.New(&ErrorInvalidTraceParent{Value: value})
	}

	traceID, err := trace.TraceIDFromHex(parts[1])
	if err != nil {
		return trace.SpanContext{}, errors.New(err)
	}

	spanID, err := trace.SpanIDFromHex(parts[2])
	if err != nil {
		return trace.SpanContext{}, errors.New(err)
	}

	flags, err := strconv.Atoi(parts[3])
	if err != nil {
		return trace.SpanContext{}, errors.Errorf("invalid trace flags: %w", err)
	}

	traceFlags := trace.FlagsSampled
	if flags == 0 {
		traceFlags = 0
	}

	return trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: traceFlags,
		Remote:     true,
	}), nil
}

// Trace runs fn inside a span named name. Without an exporter fn is called directly.
func (tracer *Tracer) Trace(ctx context.Context, name string, attrs map[string]any, fn func(childCtx context.Context) error) error {
	if tracer == nil || !tracer.hasExporter {
		return fn(ctx)
	}

	if tracer.parentSpan != nil && !trace.SpanContextFromContext(ctx).IsValid() {
		ctx = trace.ContextWithSpanContext(ctx, *tracer.parentSpan)
	}

	ctx, span := tracer.Start(ctx, name)
	defer span.End()

	span.SetAttributes(mapToAttributes(attrs)...)

	if err := fn(ctx); err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}

func newResource(appName, appVersion string) (*resource.Resource, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(appName),
			semconv.ServiceVersion(appVersion),
		),
	)
	if err != nil {
		return nil, errors.New(err)
	}

	return res, nil
}
