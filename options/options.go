// Package options provides a set of options that configure the behavior of the text-tailor program.
package options

import (
	"io"
	"os"

	"github.com/gruntwork-io/text-tailor/internal/errors"
	"github.com/gruntwork-io/text-tailor/internal/telemetry"
	"github.com/gruntwork-io/text-tailor/internal/vfs"
	"github.com/gruntwork-io/text-tailor/pkg/log"
	"github.com/gruntwork-io/text-tailor/pkg/log/format"
)

const (
	// DefaultParallelism of zero runs every target at once.
	DefaultParallelism = 0

	defaultLogLevel = log.InfoLevel
)

// TailorOptions represents options that configure the behavior of the text-tailor program.
type TailorOptions struct {
	// Writer receives the run summary.
	Writer io.Writer
	// ErrWriter receives log output.
	ErrWriter io.Writer
	Logger    log.Logger
	// FS is the filesystem every target is resolved on.
	FS        vfs.FS
	Telemetry *telemetry.Options
	// WorkingDir is the directory relative targets are resolved against.
	WorkingDir string
	LogFormat  string
	// Targets are the raw command line arguments.
	Targets []string
	// Excludes are glob patterns of entries to skip while walking a directory.
	Excludes []string
	LogLevel log.Level
	// Parallelism caps the number of targets processed at once. Zero or less means no cap.
	Parallelism int
	// Recursive makes files two or more levels below a target eligible.
	Recursive    bool
	DisableColor bool
}

// TailorOptionsFunc is a functional option for TailorOptions.
type TailorOptionsFunc func(*TailorOptions)

func WithFS(fs vfs.FS) TailorOptionsFunc {
	return func(opts *TailorOptions) {
		opts.FS = fs
	}
}

func WithRecursive(recursive bool) TailorOptionsFunc {
	return func(opts *TailorOptions) {
		opts.Recursive = recursive
	}
}

func WithParallelism(parallelism int) TailorOptionsFunc {
	return func(opts *TailorOptions) {
		opts.Parallelism = parallelism
	}
}

func WithExcludes(patterns ...string) TailorOptionsFunc {
	return func(opts *TailorOptions) {
		opts.Excludes = append(opts.Excludes, patterns...)
	}
}

// NewTailorOptions creates a new TailorOptions object with reasonable defaults for real usage.
func NewTailorOptions() *TailorOptions {
	return NewTailorOptionsWithWriters(os.Stdout, os.Stderr)
}

func NewTailorOptionsWithWriters(stdout, stderr io.Writer) *TailorOptions {
	logFormatter, _ := format.NewFormatter(format.PrettyFormatName, !format.IsTerminal(stderr))

	return &TailorOptions{
		Writer:      stdout,
		ErrWriter:   stderr,
		Logger:      log.New(log.WithOutput(stderr), log.WithLevel(defaultLogLevel), log.WithFormatter(logFormatter)),
		FS:          vfs.NewOSFS(),
		Telemetry:   &telemetry.Options{},
		LogLevel:    defaultLogLevel,
		LogFormat:   format.PrettyFormatName,
		Targets:     []string{},
		Excludes:    []string{},
		Parallelism: DefaultParallelism,
	}
}

// NewTailorOptionsForTest creates a new TailorOptions object with reasonable defaults for test usage.
// Output goes to io.Discard and logging is at debug level.
func NewTailorOptionsForTest(workingDir string, options ...TailorOptionsFunc) *TailorOptions {
	opts := NewTailorOptionsWithWriters(io.Discard, io.Discard)
	opts.WorkingDir = workingDir
	opts.LogLevel = log.DebugLevel
	opts.Logger.SetOptions(log.WithLevel(log.DebugLevel))

	for _, opt := range options {
		opt(opts)
	}

	return opts
}

// Clone returns a copy of opts that can be modified without affecting the original.
func (opts *TailorOptions) Clone() *TailorOptions {
	newOpts := *opts
	newOpts.Targets = append([]string(nil), opts.Targets...)
	newOpts.Excludes = append([]string(nil), opts.Excludes...)

	if opts.Logger != nil {
		newOpts.Logger = opts.Logger.Clone()
	}

	if opts.Telemetry != nil {
		telemetryOpts := *opts.Telemetry
		newOpts.Telemetry = &telemetryOpts
	}

	return &newOpts
}

// ConfigureLogger rebuilds the logger from LogLevel, LogFormat and DisableColor.
// Colors are also disabled when ErrWriter is not a terminal.
func (opts *TailorOptions) ConfigureLogger() error {
	formatter, err := format.NewFormatter(opts.LogFormat, opts.DisableColor || !format.IsTerminal(opts.ErrWriter))
	if err != nil {
		return err
	}

	opts.Logger.SetOptions(
		log.WithOutput(opts.ErrWriter),
		log.WithLevel(opts.LogLevel),
		log.WithFormatter(formatter),
	)

	return nil
}

// Validate reports option values that cannot start a run.
func (opts *TailorOptions) Validate() error {
	if opts.FS == nil {
		return errors.New(ErrNoFilesystem)
	}

	if opts.WorkingDir == "" {
		return errors.New(ErrNoWorkingDir)
	}

	return nil
}
