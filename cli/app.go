// Package cli wires the command line surface of text-tailor to the scheduler.
package cli

import (
	"context"
	"os"
	"time"

	"github.com/gruntwork-io/text-tailor/internal/errors"
	"github.com/gruntwork-io/text-tailor/internal/report"
	"github.com/gruntwork-io/text-tailor/internal/scheduler"
	"github.com/gruntwork-io/text-tailor/internal/telemetry"
	"github.com/gruntwork-io/text-tailor/options"
	"github.com/gruntwork-io/text-tailor/pkg/log"
	"github.com/gruntwork-io/text-tailor/pkg/log/format"
	"github.com/urfave/cli/v2"
)

const AppName = "text-tailor"

// Version is set at build time with -ldflags "-X github.com/gruntwork-io/text-tailor/cli.Version=...".
var Version = "dev"

// ErrRunFailed is returned when at least one path could not be processed.
var ErrRunFailed = errors.New("run completed with errors")

// NewApp creates the text-tailor CLI App.
func NewApp(opts *options.TailorOptions) *cli.App {
	return &cli.App{
		Name:      AppName,
		Usage:     "Strip trailing whitespace and leading or trailing blank lines from text files, in place.",
		UsageText: AppName + " [options] TARGET...",
		Description: `Every TARGET is a file or a directory. Files directly inside a directory target and inside
its immediate subdirectories are always processed; deeper files only with --recursive.
Glob targets such as "docs/**/*.md" are expanded. Symbolic links found inside directories
are never followed.`,
		Version:         Version,
		Writer:          opts.Writer,
		ErrWriter:       opts.ErrWriter,
		Flags:           NewFlags(opts),
		HideHelpCommand: true,
		Before:          beforeAction(opts),
		Action:          errors.WithPanicHandling(action(opts)),
		// exit codes are decided by the entrypoint
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func beforeAction(opts *options.TailorOptions) cli.BeforeFunc {
	return func(ctx *cli.Context) error {
		level, err := log.ParseLevel(ctx.String(FlagNameLogLevel))
		if err != nil {
			return err
		}

		opts.LogLevel = level

		if err := opts.ConfigureLogger(); err != nil {
			return err
		}

		if opts.WorkingDir == "" {
			workingDir, err := os.Getwd()
			if err != nil {
				return errors.New(err)
			}

			opts.WorkingDir = workingDir
		}

		opts.Excludes = append(opts.Excludes, ctx.StringSlice(FlagNameExclude)...)
		opts.Targets = ctx.Args().Slice()

		return nil
	}
}

func action(opts *options.TailorOptions) cli.ActionFunc {
	return func(cliCtx *cli.Context) error {
		if len(opts.Targets) == 0 {
			return noTargets(cliCtx)
		}

		telemeter, err := telemetry.NewTelemeter(cliCtx.Context, AppName, Version, opts.ErrWriter, opts.Telemetry)
		if err != nil {
			return err
		}

		defer func() {
			if err := telemeter.Shutdown(context.Background()); err != nil {
				opts.Logger.Warnf("Failed to flush telemetry: %v", err)
			}
		}()

		ctx := telemetry.ContextWithTelemeter(cliCtx.Context, telemeter)

		if err := Run(ctx, opts); err != nil {
			if errors.Is(err, scheduler.ErrNoTargets) {
				return noTargets(cliCtx)
			}

			return err
		}

		return nil
	}
}

// Run trims opts.Targets and writes the summary to opts.Writer. Failed paths are logged and
// turn into ErrRunFailed with exit code 1.
func Run(ctx context.Context, opts *options.TailorOptions) error {
	started := time.Now()
	ctx = log.ContextWithLogger(ctx, opts.Logger)

	summary, err := scheduler.New(opts).RunAll(ctx, opts.Targets, opts.Recursive)
	if summary == nil {
		return err
	}

	for _, fileErr := range summary.Errors {
		opts.Logger.WithField(log.FieldKeyPrefix, fileErr.Path).Error(fileErr.Error())
	}

	rep := report.NewReport(
		report.WithWorkingDir(opts.WorkingDir),
		report.WithColor(!opts.DisableColor && format.IsTerminal(opts.Writer)),
		report.WithDuration(time.Since(started)),
	)

	if writeErr := rep.WriteSummary(opts.Writer, summary); writeErr != nil {
		return errors.New(writeErr)
	}

	if err != nil {
		return err
	}

	// files already trimmed stay trimmed, the rest of the run was skipped
	if errors.IsContextCanceled(ctx.Err()) {
		return errors.ErrorWithExitCode{Err: errors.New(context.Cause(ctx)), ExitCode: 1}
	}

	if summary.HasErrors() {
		return errors.ErrorWithExitCode{Err: errors.New(ErrRunFailed), ExitCode: 1}
	}

	return nil
}

func noTargets(ctx *cli.Context) error {
	if err := cli.ShowAppHelp(ctx); err != nil {
		return errors.New(err)
	}

	return errors.ErrorWithExitCode{Err: errors.New(scheduler.ErrNoTargets), ExitCode: 1}
}