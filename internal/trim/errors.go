package trim

import (
	"fmt"

	"github.com/gruntwork-io/text-tailor/internal/errors"
)

// Kind classifies what went wrong with a path. None of the kinds abort a run.
type Kind int

const (
	// ReadError: the file could not be read or its content is not valid UTF-8.
	ReadError Kind = iota + 1
	// WriteError: the normalized content could not be written back.
	WriteError
	// ListError: a directory could not be enumerated.
	ListError
	// NotFound: a target does not exist.
	NotFound
)

var kindNames = map[Kind]string{
	ReadError:  "read",
	WriteError: "write",
	ListError:  "list",
	NotFound:   "not-found",
}

func (kind Kind) String() string {
	if name, ok := kindNames[kind]; ok {
		return name
	}

	return "unknown"
}

// ErrInvalidEncoding is the cause of a ReadError for content that is not valid UTF-8.
var ErrInvalidEncoding = errors.New("content is not valid UTF-8")

// FileError records a failure against one path.
type FileError struct {
	Err  error
	Path string
	Kind Kind
}

// NewFileError wraps err for path with the given kind and a stack trace.
func NewFileError(path string, kind Kind, err error) error {
	return errors.New(&FileError{Path: path, Kind: kind, Err: err})
}

func (err *FileError) Error() string {
	switch err.Kind {
	case ReadError:
		return fmt.Sprintf("failed to read %s: %v", err.Path, err.Err)
	case WriteError:
		return fmt.Sprintf("failed to write %s: %v", err.Path, err.Err)
	case ListError:
		return fmt.Sprintf("failed to list directory %s: %v", err.Path, err.Err)
	case NotFound:
		return "no such file or directory: " + err.Path
	}

	return fmt.Sprintf("%s: %v", err.Path, err.Err)
}

func (err *FileError) Unwrap() error {
	return err.Err
}

// AsFileError returns the FileError inside err, if any.
func AsFileError(err error) (*FileError, bool) {
	var fileErr *FileError
	if errors.As(err, &fileErr) {
		return fileErr, true
	}

	return nil, false
}
