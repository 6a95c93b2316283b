package options

import "github.com/gruntwork-io/text-tailor/internal/errors"

var (
	ErrNoFilesystem = errors.New("no filesystem configured")
	ErrNoWorkingDir = errors.New("no working directory configured")
)
