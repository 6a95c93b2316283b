package cli

import (
	"strings"

	"github.com/gruntwork-io/text-tailor/options"
	"github.com/gruntwork-io/text-tailor/pkg/log"
	"github.com/gruntwork-io/text-tailor/pkg/log/format"
	"github.com/urfave/cli/v2"
)

const (
	EnvVarPrefix = "TT_"

	FlagNameRecursive    = "recursive"
	FlagNameExclude      = "exclude"
	FlagNameParallelism  = "parallelism"
	FlagNameLogLevel     = "log-level"
	FlagNameLogFormat    = "log-format"
	FlagNameNoColor      = "no-color"
	FlagNameWorkingDir   = "working-dir"
	FlagNameDisableColor = "disable-color"

	flagNameTraceExporter                  = "telemetry-trace-exporter"
	flagNameTraceExporterHTTPEndpoint      = "telemetry-trace-exporter-http-endpoint"
	flagNameTraceExporterInsecureEndpoint  = "telemetry-trace-exporter-insecure-endpoint"
	flagNameTraceParent                    = "telemetry-trace-parent"
	flagNameMetricExporter                 = "telemetry-metric-exporter"
	flagNameMetricExporterInsecureEndpoint = "telemetry-metric-exporter-insecure-endpoint"
)

// EnvVarName returns the environment variable bound to a flag, e.g. TT_LOG_LEVEL for log-level.
func EnvVarName(flagName string) string {
	return EnvVarPrefix + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}

// NewFlags returns the global flags. Values are written straight into opts, except the log
// level and the exclude list which are read in the Before hook.
func NewFlags(opts *options.TailorOptions) []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        FlagNameRecursive,
			Aliases:     []string{"r"},
			EnvVars:     []string{EnvVarName(FlagNameRecursive)},
			Usage:       "Also trim files in directories two or more levels below a target.",
			Destination: &opts.Recursive,
		},
		&cli.StringSliceFlag{
			Name:    FlagNameExclude,
			Aliases: []string{"e"},
			EnvVars: []string{EnvVarName(FlagNameExclude)},
			Usage:   "Glob pattern of files or directories to skip, relative to the target. May be repeated.",
		},
		&cli.IntFlag{
			Name:        FlagNameParallelism,
			Aliases:     []string{"p"},
			EnvVars:     []string{EnvVarName(FlagNameParallelism)},
			Usage:       "Maximum number of targets processed at once. 0 processes every target at once.",
			Value:       options.DefaultParallelism,
			Destination: &opts.Parallelism,
		},
		&cli.StringFlag{
			Name:        FlagNameWorkingDir,
			EnvVars:     []string{EnvVarName(FlagNameWorkingDir)},
			Usage:       "Directory relative targets are resolved against. Default is the current directory.",
			Destination: &opts.WorkingDir,
		},
		&cli.StringFlag{
			Name:    FlagNameLogLevel,
			EnvVars: []string{EnvVarName(FlagNameLogLevel)},
			Usage:   "Log level, one of: " + log.AllLevels.String() + ".",
			Value:   opts.LogLevel.String(),
		},
		&cli.StringFlag{
			Name:        FlagNameLogFormat,
			EnvVars:     []string{EnvVarName(FlagNameLogFormat)},
			Usage:       "Log format, one of: pretty, json.",
			Value:       format.PrettyFormatName,
			Destination: &opts.LogFormat,
		},
		&cli.BoolFlag{
			Name:        FlagNameNoColor,
			Aliases:     []string{FlagNameDisableColor},
			EnvVars:     []string{EnvVarName(FlagNameNoColor)},
			Usage:       "Disable color output.",
			Destination: &opts.DisableColor,
		},
		&cli.StringFlag{
			Name:        flagNameTraceExporter,
			EnvVars:     []string{EnvVarName(flagNameTraceExporter)},
			Hidden:      true,
			Destination: &opts.Telemetry.TraceExporter,
		},
		&cli.StringFlag{
			Name:        flagNameTraceExporterHTTPEndpoint,
			EnvVars:     []string{EnvVarName(flagNameTraceExporterHTTPEndpoint)},
			Hidden:      true,
			Destination: &opts.Telemetry.TraceExporterHTTPEndpoint,
		},
		&cli.BoolFlag{
			Name:        flagNameTraceExporterInsecureEndpoint,
			EnvVars:     []string{EnvVarName(flagNameTraceExporterInsecureEndpoint)},
			Hidden:      true,
			Destination: &opts.Telemetry.TraceExporterInsecureEndpoint,
		},
		&cli.StringFlag{
			Name:        flagNameTraceParent,
			EnvVars:     []string{EnvVarName(flagNameTraceParent), "TRACEPARENT"},
			Hidden:      true,
			Destination: &opts.Telemetry.TraceParent,
		},
		&cli.StringFlag{
			Name:        flagNameMetricExporter,
			EnvVars:     []string{EnvVarName(flagNameMetricExporter)},
			Hidden:      true,
			Destination: &opts.Telemetry.MetricExporter,
		},
		&cli.BoolFlag{
			Name:        flagNameMetricExporterInsecureEndpoint,
			EnvVars:     []string{EnvVarName(flagNameMetricExporterInsecureEndpoint)},
			Hidden:      true,
			Destination: &opts.Telemetry.MetricExporterInsecureEndpoint,
		},
	}
}