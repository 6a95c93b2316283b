package scheduler

import (
	"fmt"
	"sort"

	"github.com/gruntwork-io/text-tailor/internal/errors"
	"github.com/gruntwork-io/text-tailor/internal/trim"
)

// Summary is the outcome of a run.
type Summary struct {
	// Errors are sorted by path, then by kind.
	Errors       []*trim.FileError
	Targets      int
	FilesTrimmed int
}

// newSummary splits err into per-path failures and everything else.
func newSummary(targets, filesTrimmed int, err error) (*Summary, error) {
	summary := &Summary{Targets: targets, FilesTrimmed: filesTrimmed}
	unexpected := &errors.MultiError{}

	for _, leaf := range errors.UnwrapMultiErrors(err) {
		if fileErr, ok := trim.AsFileError(leaf); ok {
			summary.Errors = append(summary.Errors, fileErr)
		} else {
			unexpected = unexpected.Append(leaf)
		}
	}

	sort.SliceStable(summary.Errors, func(i, j int) bool {
		if summary.Errors[i].Path != summary.Errors[j].Path {
			return summary.Errors[i].Path < summary.Errors[j].Path
		}

		return summary.Errors[i].Kind < summary.Errors[j].Kind
	})

	return summary, unexpected.ErrorOrNil()
}

func (summary *Summary) ErrorCount() int {
	return len(summary.Errors)
}

func (summary *Summary) HasErrors() bool {
	return len(summary.Errors) > 0
}

func (summary *Summary) String() string {
	if !summary.HasErrors() {
		return "completed successfully"
	}

	return fmt.Sprintf("completed with %d error(s)", summary.ErrorCount())
}
