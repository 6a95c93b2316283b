// Package report renders the summary of a run for the console.
package report

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gruntwork-io/text-tailor/internal/scheduler"
	"github.com/gruntwork-io/text-tailor/internal/trim"
)

const (
	prefix              = "   "
	runSummaryHeader    = "❯❯ Run Summary"
	trimmedLabel        = "Trimmed"
	failureLabel        = "Failed"
	separatorLineLength = 28
	labelColumnWidth    = 14
	padder              = "."
)

// Report writes a scheduler.Summary in human readable form.
type Report struct {
	workingDir  string
	duration    time.Duration
	shouldColor bool
}

type Option func(*Report)

// WithWorkingDir makes failure paths below dir relative to it.
func WithWorkingDir(dir string) Option {
	return func(r *Report) {
		r.workingDir = dir
	}
}

func WithColor(shouldColor bool) Option {
	return func(r *Report) {
		r.shouldColor = shouldColor
	}
}

// WithDuration records how long the run took.
func WithDuration(duration time.Duration) Option {
	return func(r *Report) {
		r.duration = duration
	}
}

func NewReport(opts ...Option) *Report {
	report := &Report{duration: -1}

	for _, opt := range opts {
		opt(report)
	}

	return report
}

// WriteSummary writes the summary to a writer.
func (r *Report) WriteSummary(w io.Writer, summary *scheduler.Summary) error {
	colorizer := NewColorizer(r.shouldColor)

	header := fmt.Sprintf("%s  %s  %s",
		colorizer.headingTitleColorizer(runSummaryHeader),
		colorizer.headingUnitColorizer(fmt.Sprintf("%d target(s)", summary.Targets)),
		colorizer.colorDuration(r.duration),
	)

	lines := []string{
		"",
		header,
		prefix + strings.Repeat("─", separatorLineLength),
		r.entry(colorizer.successColorizer(trimmedLabel), trimmedLabel, strconv.Itoa(summary.FilesTrimmed)),
	}

	if summary.HasErrors() {
		lines = append(lines, r.entry(colorizer.failureColorizer(failureLabel), failureLabel, strconv.Itoa(summary.ErrorCount())))

		for _, fileErr := range summary.Errors {
			lines = append(lines, fmt.Sprintf("%s%s  %s  %s",
				strings.Repeat(prefix, 2),
				colorizer.pathColorizer(r.relPath(fileErr.Path)),
				colorizer.kindColorizer(fileErr.Kind.String()),
				describe(fileErr),
			))
		}
	}

	status := colorizer.successColorizer(summary.String())
	if summary.HasErrors() {
		status = colorizer.failureColorizer(summary.String())
	}

	lines = append(lines, "", prefix+status, "")

	_, err := fmt.Fprint(w, strings.Join(lines, "\n"))

	return err
}

// entry pads label with dots so the values line up. plain is the label without color codes.
func (r *Report) entry(label, plain, value string) string {
	padding := max(labelColumnWidth-len(plain), 2)

	return fmt.Sprintf("%s%s %s %s", prefix, label, strings.Repeat(padder, padding), value)
}

func (r *Report) relPath(path string) string {
	if r.workingDir == "" {
		return path
	}

	if rel := strings.TrimPrefix(path, r.workingDir+string(os.PathSeparator)); rel != "" {
		return rel
	}

	return path
}

func describe(fileErr *trim.FileError) string {
	if fileErr.Err == nil {
		return "no such file or directory"
	}

	return fileErr.Err.Error()
}
