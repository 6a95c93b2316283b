package scheduler

import (
	"testing"

	"github.com/gruntwork-io/text-tailor/internal/errors"
	"github.com/gruntwork-io/text-tailor/internal/trim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSummarySeparatesUnexpectedErrors(t *testing.T) {
	t.Parallel()

	unit := &errors.MultiError{}
	unit = unit.Append(
		trim.NewFileError("/b", trim.WriteError, errors.New("read-only")),
		trim.NewFileError("/b", trim.ReadError, errors.New("denied")),
	)

	all := &errors.MultiError{}
	all = all.Append(unit, errors.New("worker panicked"), trim.NewFileError("/a", trim.NotFound, nil))

	summary, err := newSummary(2, 4, all)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "worker panicked")

	assert.Equal(t, 2, summary.Targets)
	assert.Equal(t, 4, summary.FilesTrimmed)
	require.Len(t, summary.Errors, 3)
	assert.Equal(t, "/a", summary.Errors[0].Path)
	assert.Equal(t, trim.ReadError, summary.Errors[1].Kind)
	assert.Equal(t, trim.WriteError, summary.Errors[2].Kind)
}

func TestNewSummaryWithoutErrors(t *testing.T) {
	t.Parallel()

	summary, err := newSummary(1, 0, nil)

	require.NoError(t, err)
	assert.Equal(t, 0, summary.ErrorCount())
	assert.Equal(t, "completed successfully", summary.String())
}

func TestRunResult(t *testing.T) {
	t.Parallel()

	summary := &Summary{Targets: 1}
	runErr := errors.New("walk panicked")
	collectErr := errors.New("histogram unavailable")

	testCases := []struct {
		name            string
		summary         *Summary
		runErr          error
		collectErr      error
		expectedSummary *Summary
		expectedErr     error
	}{
		{"clean run", summary, nil, nil, summary, nil},
		{"run failure wins", summary, runErr, collectErr, summary, runErr},
		{"telemetry failure is kept", summary, nil, collectErr, summary, collectErr},
		{"no summary", nil, nil, collectErr, nil, collectErr},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got, err := runResult(testCase.summary, testCase.runErr, testCase.collectErr)
			assert.Equal(t, testCase.expectedSummary, got)
			assert.Equal(t, testCase.expectedErr, err)
		})
	}
}
