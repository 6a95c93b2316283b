// Package scheduler runs one walk per distinct target concurrently and aggregates the outcome.
package scheduler

import (
	"context"

	"github.com/gruntwork-io/text-tailor/internal/errors"
	"github.com/gruntwork-io/text-tailor/internal/target"
	"github.com/gruntwork-io/text-tailor/internal/telemetry"
	"github.com/gruntwork-io/text-tailor/internal/walker"
	"github.com/gruntwork-io/text-tailor/internal/worker"
	"github.com/gruntwork-io/text-tailor/options"
	"github.com/gruntwork-io/text-tailor/pkg/log"
	"github.com/puzpuzpuz/xsync/v3"
)

// ErrNoTargets is the only condition that aborts a run before any target is processed.
var ErrNoTargets = errors.New("no targets supplied")

type Scheduler struct {
	opts *options.TailorOptions
}

// New returns a Scheduler over a copy of opts, so later changes to opts do not reach its runs.
func New(opts *options.TailorOptions) *Scheduler {
	return &Scheduler{opts: opts.Clone()}
}

// RunAll trims every target and returns once all of them have been fully processed.
//
// Per-path failures never make RunAll fail; they are reported in the Summary. The returned
// error is ErrNoTargets, an invalid option, or a failure that is not tied to a path such as a
// recovered panic, in which case the Summary is still returned.
func (scheduler *Scheduler) RunAll(ctx context.Context, targets []string, recursive bool) (*Summary, error) {
	if err := scheduler.opts.Validate(); err != nil {
		return nil, err
	}

	paths := target.Normalize(scheduler.opts.FS, scheduler.opts.WorkingDir, targets)
	if len(paths) == 0 {
		return nil, errors.New(ErrNoTargets)
	}

	excludes, err := walker.CompileExcludes(scheduler.opts.Excludes...)
	if err != nil {
		return nil, err
	}

	walk := walker.New(scheduler.opts.FS,
		walker.WithRecursive(recursive),
		walker.WithExcludes(excludes),
	)

	var (
		summary *Summary
		runErr  error
	)

	attrs := map[string]any{
		"targets":   len(paths),
		"recursive": recursive,
	}

	err = telemetry.TelemeterFromContext(ctx).Collect(ctx, "run_all", attrs, func(ctx context.Context) error {
		summary, runErr = scheduler.run(ctx, walk, paths)
		return runErr
	})

	return runResult(summary, runErr, err)
}

// runResult picks what RunAll returns once the run is over. A failure of the run wins over one
// raised by the telemetry around it, and neither hides a summary that was produced.
func runResult(summary *Summary, runErr, collectErr error) (*Summary, error) {
	if summary == nil {
		return nil, collectErr
	}

	if runErr != nil {
		return summary, runErr
	}

	return summary, collectErr
}

func (scheduler *Scheduler) run(ctx context.Context, walk *walker.Walker, paths []string) (*Summary, error) {
	pool := worker.NewWorkerPool(scheduler.parallelism(len(paths)))
	trimmed := xsync.NewCounter()

	log.LoggerFromContext(ctx).Debugf("Processing %d target(s) with %d worker(s)", len(paths), pool.MaxWorkers())

	for _, path := range paths {
		pool.Submit(func() error {
			return scheduler.runTarget(ctx, walk, path, trimmed)
		})
	}

	return newSummary(len(paths), int(trimmed.Value()), pool.Wait())
}

// runTarget drains one walk. Every failure of the walk lands in the returned error.
func (scheduler *Scheduler) runTarget(ctx context.Context, walk *walker.Walker, path string, trimmed *xsync.Counter) error {
	logger := log.LoggerFromContext(ctx).WithField(log.FieldKeyPrefix, path)
	logger.Debugf("Walking target")

	attrs := map[string]any{
		"target":    path,
		"recursive": walk.Recursive(),
	}

	return telemetry.TelemeterFromContext(ctx).Collect(ctx, "walk", attrs, func(ctx context.Context) error {
		errs := &errors.MultiError{}

		for event := range walk.Walk(ctx, path) {
			switch event.Kind {
			case walker.FileTrimmed:
				trimmed.Inc()
			case walker.Failed:
				if fileErr, ok := event.FileError(); ok {
					logger.Tracef("Recorded %s error for %s", fileErr.Kind, fileErr.Path)
				}

				errs = errs.Append(event.Err)
			}
		}

		logger.Debugf("Finished target with %d error(s)", errs.Len())

		return errs.ErrorOrNil()
	})
}

func (scheduler *Scheduler) parallelism(targets int) int {
	if limit := scheduler.opts.Parallelism; limit > 0 && limit < targets {
		return limit
	}

	return targets
}
