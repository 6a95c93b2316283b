package log

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus so the rest of the code depends on a small interface that is easy
// to clone, reconfigure and replace in tests.
type Logger interface {
	// Clone creates a new Logger instance with a copy of the fields from the current one.
	Clone() Logger

	// SetOptions sets the given options to the instance.
	SetOptions(opts ...Option)

	// WithOptions clones the logger and applies opts to the copy.
	WithOptions(opts ...Option) Logger

	// Level returns log level.
	Level() Level

	// SetLevel parses and sets log level.
	SetLevel(str string) error

	// SetFormatter sets the logger formatter.
	SetFormatter(formatter Formatter)

	// WithField adds a single field to the returned instance only.
	WithField(key string, value any) Logger

	// WithFields adds a set of fields to the returned instance only.
	WithFields(fields Fields) Logger

	// WithError adds an error as a field to the returned instance only.
	WithError(err error) Logger

	// WithContext adds a context to the returned instance only.
	WithContext(ctx context.Context) Logger

	Logf(level Level, format string, args ...any)
	Tracef(format string, args ...any)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)

	Log(level Level, args ...any)
	Trace(args ...any)
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
}

type logger struct {
	*logrus.Entry
}

// New returns a new Logger instance.
func New(opts ...Option) Logger {
	logger := &logger{
		Entry: logrus.NewEntry(logrus.New()),
	}
	logger.Logger.SetLevel(DefaultLevel.ToLogrusLevel())
	logger.SetOptions(opts...)

	return logger
}

// Clone implements the Logger interface method.
func (logger *logger) Clone() Logger {
	return logger.clone()
}

// SetOptions implements the Logger interface method.
func (logger *logger) SetOptions(opts ...Option) {
	for _, opt := range opts {
		opt(logger)
	}
}

// WithOptions implements the Logger interface method.
func (logger *logger) WithOptions(opts ...Option) Logger {
	if len(opts) == 0 {
		return logger
	}

	logger = logger.clone()
	logger.SetOptions(opts...)

	return logger
}

// Level implements the Logger interface method.
func (logger *logger) Level() Level {
	return FromLogrusLevel(logger.Logger.Level)
}

// SetLevel implements the Logger interface method.
func (logger *logger) SetLevel(str string) error {
	level, err := ParseLevel(str)
	if err != nil {
		return err
	}

	logger.Logger.SetLevel(level.ToLogrusLevel())

	return nil
}

// SetFormatter implements the Logger interface method.
func (logger *logger) SetFormatter(formatter Formatter) {
	logger.Logger.SetFormatter(&fromLogrusFormatter{Formatter: formatter})
}

// WithField implements the Logger interface method.
func (logger *logger) WithField(key string, value any) Logger {
	return logger.WithFields(Fields{key: value})
}

// WithFields implements the Logger interface method.
func (logger *logger) WithFields(fields Fields) Logger {
	return logger.setEntry(logger.Entry.WithFields(logrus.Fields(fields)))
}

// WithError implements the Logger interface method.
func (logger *logger) WithError(err error) Logger {
	return logger.setEntry(logger.Entry.WithError(err))
}

// WithContext implements the Logger interface method.
func (logger *logger) WithContext(ctx context.Context) Logger {
	return logger.setEntry(logger.Entry.WithContext(ctx))
}

// Logf implements the Logger interface method.
func (logger *logger) Logf(level Level, format string, args ...any) {
	logger.Entry.Logf(level.ToLogrusLevel(), format, args...)
}

// Log implements the Logger interface method.
func (logger *logger) Log(level Level, args ...any) {
	logger.Entry.Log(level.ToLogrusLevel(), args...)
}

func (logger *logger) Tracef(format string, args ...any) { logger.Logf(TraceLevel, format, args...) }
func (logger *logger) Debugf(format string, args ...any) { logger.Logf(DebugLevel, format, args...) }
func (logger *logger) Infof(format string, args ...any)  { logger.Logf(InfoLevel, format, args...) }
func (logger *logger) Warnf(format string, args ...any)  { logger.Logf(WarnLevel, format, args...) }
func (logger *logger) Errorf(format string, args ...any) { logger.Logf(ErrorLevel, format, args...) }

func (logger *logger) Trace(args ...any) { logger.Log(TraceLevel, args...) }
func (logger *logger) Debug(args ...any) { logger.Log(DebugLevel, args...) }
func (logger *logger) Info(args ...any)  { logger.Log(InfoLevel, args...) }
func (logger *logger) Warn(args ...any)  { logger.Log(WarnLevel, args...) }
func (logger *logger) Error(args ...any) { logger.Log(ErrorLevel, args...) }

func (logger *logger) setEntry(entry *logrus.Entry) *logger {
	newLogger := *logger
	newLogger.Entry = entry

	return &newLogger
}

func (parent *logger) clone() *logger {
	entry := parent.Dup()
	parentLogger := entry.Logger

	entry.Logger = logrus.New()
	entry.Logger.SetOutput(parentLogger.Out)
	entry.Logger.SetLevel(parentLogger.Level)
	entry.Logger.SetFormatter(parentLogger.Formatter)
	entry.Logger.ReplaceHooks(parentLogger.Hooks)

	return &logger{Entry: entry}
}
