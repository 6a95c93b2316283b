package telemetry

import (
	"context"
	"io"
	"time"

	"github.com/gruntwork-io/text-tailor/internal/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

const (
	noneMetricExporterType     metricExporterType = "none"
	consoleMetricExporterType  metricExporterType = "console"
	otlpHTTPMetricExporterType metricExporterType = "otlpHttp"
	grpcHTTPMetricExporterType metricExporterType = "grpcHttp"

	readerInterval = time.Second
)

type metricExporterType string

type Meter struct {
	metric.Meter
	provider *sdkmetric.MeterProvider
}

// NewMeter creates and configures the metrics collection. It returns nil when no exporter is selected.
func NewMeter(ctx context.Context, appName, appVersion string, writer io.Writer, opts *Options) (*Meter, error) {
	exporter, err := NewMetricsExporter(ctx, writer, opts)
	if err != nil {
		return nil, errors.New(err)
	}

	if exporter == nil {
		return nil, nil
	}

	res, err := newResource(appName, appVersion)
	if err != nil {
		return nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(readerInterval))),
	)

	otel.SetMeterProvider(provider)

	return &Meter{
		Meter:    provider.Meter(appName),
		provider: provider,
	}, nil
}

// NewMetricsExporter creates a new exporter based on the telemetry options.
func NewMetricsExporter(ctx context.Context, writer io.Writer, opts *Options) (sdkmetric.Exporter, error) {
	exporterType := metricExporterType(opts.MetricExporter)
	if exporterType == "" {
		exporterType = noneMetricExporterType
	}

	switch exporterType {
	case otlpHTTPMetricExporterType:
		var config []otlpmetrichttp.Option
		if opts.MetricExporterInsecureEndpoint {
			config = append(config, otlpmetrichttp.WithInsecure())
		}

		return otlpmetrichttp.New(ctx, config...)
	case grpcHTTPMetricExporterType:
		var config []otlpmetricgrpc.Option
		if opts.MetricExporterInsecureEndpoint {
			config = append(config, otlpmetricgrpc.WithInsecure())
		}

		return otlpmetricgrpc.New(ctx, config...)
	case consoleMetricExporterType:
		return stdoutmetric.New(stdoutmetric.WithWriter(writer))
	case noneMetricExporterType:
	}

	return nil, nil
}

// Time records the run time of fn in a `<name>_duration` histogram, in milliseconds.
func (meter *Meter) Time(ctx context.Context, name string, attrs map[string]any, fn func(childCtx context.Context) error) error {
	if meter == nil || meter.provider == nil {
		return fn(ctx)
	}

	histogram, err := meter.Int64Histogram(CleanMetricName(name+"_duration"), metric.WithUnit("ms"))
	if err != nil {
		return errors.New(err)
	}

	started := time.Now()
	err = fn(ctx)

	histogram.Record(ctx, time.Since(started).Milliseconds(), metric.WithAttributes(mapToAttributes(attrs)...))

	return err
}

// Count adds value to a `<name>_count` counter.
func (meter *Meter) Count(ctx context.Context, name string, value int64) {
	if meter == nil || meter.provider == nil {
		return
	}

	counter, err := meter.Int64Counter(CleanMetricName(name + "_count"))
	if err != nil {
		return
	}

	counter.Add(ctx, value)
}
