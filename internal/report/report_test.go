package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gruntwork-io/text-tailor/internal/scheduler"
	"github.com/gruntwork-io/text-tailor/internal/trim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSummarySuccess(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	report := NewReport(WithDuration(1500 * time.Millisecond))
	require.NoError(t, report.WriteSummary(&buf, &scheduler.Summary{Targets: 2, FilesTrimmed: 3}))

	expected := strings.Join([]string{
		"",
		"❯❯ Run Summary  2 target(s)  1s",
		"   " + strings.Repeat("─", separatorLineLength),
		"   Trimmed ....... 3",
		"",
		"   completed successfully",
		"",
	}, "\n")

	assert.Equal(t, expected, buf.String())
}

func TestWriteSummaryWithErrors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	summary := &scheduler.Summary{
		Targets:      1,
		FilesTrimmed: 1,
		Errors: []*trim.FileError{
			{Path: "/work/missing", Kind: trim.NotFound},
			{Path: "/work/sub1", Kind: trim.ListError, Err: errors.New("permission denied")},
		},
	}

	report := NewReport(WithWorkingDir("/work"), WithDuration(20*time.Millisecond))
	require.NoError(t, report.WriteSummary(&buf, summary))

	output := buf.String()

	assert.Contains(t, output, "❯❯ Run Summary  1 target(s)  20ms\n")
	assert.Contains(t, output, "   Trimmed ....... 1\n")
	assert.Contains(t, output, "   Failed ........ 2\n")
	assert.Contains(t, output, "      missing  not-found  no such file or directory\n")
	assert.Contains(t, output, "      sub1  list  permission denied\n")
	assert.Contains(t, output, "   completed with 2 error(s)\n")
	assert.NotContains(t, output, "\x1b[")
}

func TestWriteSummaryColors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	report := NewReport(WithColor(true))
	require.NoError(t, report.WriteSummary(&buf, &scheduler.Summary{}))

	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "N/A")
}

func TestColorDuration(t *testing.T) {
	t.Parallel()

	colorizer := NewColorizer(false)

	testCases := []struct {
		expected string
		duration time.Duration
	}{
		{"N/A", -1},
		{"0ms", 0},
		{"250ms", 250 * time.Millisecond},
		{"42s", 42 * time.Second},
		{"3m", 3*time.Minute + 10*time.Second},
	}

	for _, testCase := range testCases {
		assert.Equal(t, testCase.expected, colorizer.colorDuration(testCase.duration))
	}
}
