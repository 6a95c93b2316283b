package log

import (
	"io"
)

type Option func(logger *logger)

func WithLevel(level Level) Option {
	return func(logger *logger) {
		logger.Logger.SetLevel(level.ToLogrusLevel())
	}
}

func WithOutput(output io.Writer) Option {
	return func(logger *logger) {
		logger.Logger.SetOutput(output)
	}
}

func WithFormatter(formatter Formatter) Option {
	return func(logger *logger) {
		logger.SetFormatter(formatter)
	}
}
