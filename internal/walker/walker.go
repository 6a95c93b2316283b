// Package walker enumerates the files below one target and trims each of them.
//
// A walk reports its outcomes on a channel of events. The channel is closed once the walk is
// over, which is the only completion signal a caller needs. Failures never stop a walk: an
// unreadable file or an unlistable directory produces one Failed event and the walk moves on
// to the next entry.
package walker

import (
	"context"
	"os"
	"path/filepath"

	"github.com/gruntwork-io/text-tailor/internal/errors"
	"github.com/gruntwork-io/text-tailor/internal/telemetry"
	"github.com/gruntwork-io/text-tailor/internal/trim"
	"github.com/gruntwork-io/text-tailor/internal/vfs"
	"github.com/gruntwork-io/text-tailor/pkg/log"
)

// Walker trims the regular files reachable from a target.
type Walker struct {
	fs        vfs.FS
	logger    log.Logger
	excludes  Excludes
	recursive bool
}

// Option configures a Walker.
type Option func(*Walker)

// WithRecursive makes files in directories at depth two or more eligible.
func WithRecursive(recursive bool) Option {
	return func(walker *Walker) {
		walker.recursive = recursive
	}
}

// WithExcludes skips entries matching any of the given patterns. Excludes do not apply to a
// target that names a file directly.
func WithExcludes(excludes Excludes) Option {
	return func(walker *Walker) {
		walker.excludes = excludes
	}
}

// WithLogger sets the logger of every walk. Without it a walk logs to the logger carried by its context.
func WithLogger(logger log.Logger) Option {
	return func(walker *Walker) {
		walker.logger = logger
	}
}

// New returns a Walker over fs.
func New(fs vfs.FS, opts ...Option) *Walker {
	walker := &Walker{fs: fs}

	for _, opt := range opts {
		opt(walker)
	}

	return walker
}

// Recursive reports whether nested directories are walked.
func (walker *Walker) Recursive() bool {
	return walker.recursive
}

// Walk starts walking target in a new goroutine. The caller must drain the returned channel
// until it is closed. Cancelling ctx ends the walk early; files already written stay written.
func (walker *Walker) Walk(ctx context.Context, target string) <-chan Event {
	events := make(chan Event)

	go func() {
		defer close(events)

		walker.walk(ctx, target, events)
	}()

	return events
}

func (walker *Walker) walk(ctx context.Context, target string, events chan<- Event) {
	info, err := vfs.Stat(walker.fs, target)
	if err != nil {
		if os.IsNotExist(err) {
			walker.fail(ctx, events, trim.NewFileError(target, trim.NotFound, nil))
		} else {
			walker.fail(ctx, events, trim.NewFileError(target, trim.ListError, errors.New(err)))
		}

		return
	}

	switch vfs.KindOf(info) {
	case vfs.KindFile:
		walker.trimFile(ctx, target, events)
	case vfs.KindDir:
		walker.walkDir(ctx, target, events)
	default:
		walker.loggerFrom(ctx).WithField(log.FieldKeyPrefix, target).Debugf("Skipping %s target", vfs.KindOf(info))
	}
}

// walkDir visits the tree below root with an explicit stack, so the depth of every directory
// is known when it is listed.
func (walker *Walker) walkDir(ctx context.Context, root string, events chan<- Event) {
	frontier := NewFrontier(root)
	stack := []item{{path: root, depth: 0}}

	for len(stack) > 0 {
		if ctx.Err() != nil {
			return
		}

		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := vfs.ReadDir(walker.fs, current.path)
		if err != nil {
			walker.fail(ctx, events, trim.NewFileError(current.path, trim.ListError, errors.New(err)))
			continue
		}

		eligible := walker.recursive || !frontier.IsNested(current.path)

		var subdirs []item

		for _, entry := range entries {
			path := filepath.Join(current.path, entry.Name())
			logger := walker.loggerFrom(ctx).WithField(log.FieldKeyPrefix, path)

			if walker.excluded(root, path) {
				logger.Debugf("Excluded")
				continue
			}

			switch kind := vfs.KindOf(entry); kind {
			case vfs.KindDir:
				child := item{path: path, depth: current.depth + 1}
				frontier.Visit(child.path, child.depth)

				if !walker.recursive && frontier.IsNested(child.path) {
					logger.Tracef("Skipping nested directory")
					continue
				}

				subdirs = append(subdirs, child)
			case vfs.KindFile:
				if !eligible {
					continue
				}

				if ctx.Err() != nil {
					return
				}

				walker.trimFile(ctx, path, events)
			default:
				logger.Debugf("Skipping %s", kind)
			}
		}

		// reversed so directories are popped in listing order
		for i := len(subdirs) - 1; i >= 0; i-- {
			stack = append(stack, subdirs[i])
		}
	}
}

func (walker *Walker) trimFile(ctx context.Context, path string, events chan<- Event) {
	err := trim.TrimFile(ctx, walker.fs, path)

	switch {
	case err == nil:
		walker.loggerFrom(ctx).WithField(log.FieldKeyPrefix, path).Debugf("Trimmed")
		telemetry.TelemeterFromContext(ctx).Count(ctx, "files_trimmed", 1)
		events <- Event{Kind: FileTrimmed, Path: path}
	case ctx.Err() != nil && errors.Is(err, ctx.Err()):
		return
	default:
		walker.fail(ctx, events, err)
	}
}

func (walker *Walker) fail(ctx context.Context, events chan<- Event, err error) {
	fileErr, ok := trim.AsFileError(err)
	if !ok {
		walker.loggerFrom(ctx).WithError(err).Errorf("Unexpected walk failure")
		return
	}

	walker.loggerFrom(ctx).WithField(log.FieldKeyPrefix, fileErr.Path).WithError(err).Debugf("Failed with %s error", fileErr.Kind)
	telemetry.TelemeterFromContext(ctx).Count(ctx, "trim_errors", 1)

	events <- Event{Kind: Failed, Path: fileErr.Path, Err: err}
}

func (walker *Walker) loggerFrom(ctx context.Context) log.Logger {
	if walker.logger != nil {
		return walker.logger
	}

	return log.LoggerFromContext(ctx)
}

func (walker *Walker) excluded(root, path string) bool {
	if len(walker.excludes) == 0 {
		return false
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}

	return walker.excludes.Match(filepath.ToSlash(rel))
}
