package walker

import "github.com/gruntwork-io/text-tailor/internal/trim"

// EventKind tells a successful trim from a failure.
type EventKind int

const (
	// FileTrimmed is sent after a successful trim pass.
	FileTrimmed EventKind = iota
	// Failed carries a *trim.FileError for a path whose processing was abandoned.
	Failed
)

// Event is one outcome of a walk. Err is only set for Failed events.
type Event struct {
	Err  error
	Path string
	Kind EventKind
}

// FileError returns the failure carried by a Failed event.
func (event Event) FileError() (*trim.FileError, bool) {
	if event.Kind != Failed {
		return nil, false
	}

	return trim.AsFileError(event.Err)
}
