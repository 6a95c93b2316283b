package telemetry_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/gruntwork-io/text-tailor/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
)

func TestNewTraceExporter(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	testCases := []struct {
		name         string
		opts         *telemetry.Options
		expectedType any
		expectNil    bool
		expectError  bool
	}{
		{
			name:      "no exporter",
			opts:      &telemetry.Options{},
			expectNil: true,
		},
		{
			name:      "explicit none",
			opts:      &telemetry.Options{TraceExporter: "none"},
			expectNil: true,
		},
		{
			name:         "console",
			opts:         &telemetry.Options{TraceExporter: "console"},
			expectedType: &stdouttrace.Exporter{},
		},
		{
			name: "otlp http",
			opts: &telemetry.Options{TraceExporter: "otlpHttp"},
		},
		{
			name: "custom http endpoint",
			opts: &telemetry.Options{
				TraceExporter:             "http",
				TraceExporterHTTPEndpoint: "localhost:4318",
			},
		},
		{
			name:        "http without endpoint",
			opts:        &telemetry.Options{TraceExporter: "http"},
			expectError: true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			exporter, err := telemetry.NewTraceExporter(ctx, io.Discard, testCase.opts)

			if testCase.expectError {
				var missing *telemetry.ErrorMissingEnvVariable
				require.ErrorAs(t, err, &missing)

				return
			}

			require.NoError(t, err)

			if testCase.expectNil {
				assert.Nil(t, exporter)
				return
			}

			require.NotNil(t, exporter)

			if testCase.expectedType != nil {
				assert.IsType(t, testCase.expectedType, exporter)
			}
		})
	}
}

func TestNewMetricsExporterNone(t *testing.T) {
	t.Parallel()

	exporter, err := telemetry.NewMetricsExporter(context.Background(), io.Discard, &telemetry.Options{})
	require.NoError(t, err)
	assert.Nil(t, exporter)
}

func TestParseTraceParent(t *testing.T) {
	t.Parallel()

	spanCtx, err := telemetry.ParseTraceParent("00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	require.NoError(t, err)
	assert.True(t, spanCtx.IsValid())
	assert.True(t, spanCtx.IsSampled())
	assert.True(t, spanCtx.IsRemote())

	_, err = telemetry.ParseTraceParent("00-abc")
	var invalid *telemetry.ErrorInvalidTraceParent
	require.ErrorAs(t, err, &invalid)
}

func TestCollectWithoutExporters(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	tlm, err := telemetry.NewTelemeter(ctx, "text-tailor", "test", io.Discard, &telemetry.Options{})
	require.NoError(t, err)

	called := false
	err = tlm.Collect(ctx, "walk", map[string]any{"target": "/tmp"}, func(context.Context) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)

	expected := errors.New("boom")
	err = tlm.Collect(ctx, "walk", nil, func(context.Context) error { return expected })
	require.ErrorIs(t, err, expected)

	tlm.Count(ctx, "files_trimmed", 1)
	require.NoError(t, tlm.Shutdown(ctx))

	var nilTelemeter *telemetry.Telemeter
	require.NoError(t, nilTelemeter.Collect(ctx, "noop", nil, func(context.Context) error { return nil }))
}

func TestCollectWithConsoleExporter(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	buf := new(bytes.Buffer)

	tlm, err := telemetry.NewTelemeter(ctx, "text-tailor", "test", buf, &telemetry.Options{TraceExporter: "console"})
	require.NoError(t, err)

	err = tlm.Collect(ctx, "run_all", map[string]any{"targets": 2}, func(context.Context) error { return nil })
	require.NoError(t, err)

	require.NoError(t, tlm.Shutdown(ctx))
	assert.Contains(t, buf.String(), "run_all")
}

func TestTelemeterFromContext(t *testing.T) {
	t.Parallel()

	tlm := new(telemetry.Telemeter)
	ctx := telemetry.ContextWithTelemeter(context.Background(), tlm)

	assert.Same(t, tlm, telemetry.TelemeterFromContext(ctx))
	assert.NotNil(t, telemetry.TelemeterFromContext(context.Background()))
}

func TestCleanMetricName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "walk_duration", telemetry.CleanMetricName("walk-duration"))
	assert.Equal(t, "a_b", telemetry.CleanMetricName("__a   b__"))
}
