package options_test

import (
	"bytes"
	"testing"

	"github.com/gruntwork-io/text-tailor/internal/vfs"
	"github.com/gruntwork-io/text-tailor/options"
	"github.com/gruntwork-io/text-tailor/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTailorOptionsForTest(t *testing.T) {
	t.Parallel()

	fs := vfs.NewMemMapFS()
	opts := options.NewTailorOptionsForTest("/work",
		options.WithFS(fs),
		options.WithRecursive(true),
		options.WithParallelism(3),
		options.WithExcludes("*.md", "vendor"),
	)

	assert.Equal(t, "/work", opts.WorkingDir)
	assert.Equal(t, fs, opts.FS)
	assert.True(t, opts.Recursive)
	assert.Equal(t, 3, opts.Parallelism)
	assert.Equal(t, []string{"*.md", "vendor"}, opts.Excludes)
	assert.Equal(t, log.DebugLevel, opts.LogLevel)
	assert.Equal(t, log.DebugLevel, opts.Logger.Level())
	require.NoError(t, opts.Validate())
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()

	opts := options.NewTailorOptionsForTest("/work", options.WithExcludes("a"))
	opts.Targets = []string{"x"}
	opts.Telemetry.TraceExporter = "console"

	clone := opts.Clone()
	clone.Excludes[0] = "b"
	clone.Targets = append(clone.Targets, "y")
	clone.Telemetry.TraceExporter = "none"

	assert.Equal(t, []string{"a"}, opts.Excludes)
	assert.Equal(t, []string{"x"}, opts.Targets)
	assert.Equal(t, "console", opts.Telemetry.TraceExporter)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	opts := options.NewTailorOptionsForTest("")
	require.ErrorIs(t, opts.Validate(), options.ErrNoWorkingDir)

	opts = options.NewTailorOptionsForTest("/work")
	opts.FS = nil
	require.ErrorIs(t, opts.Validate(), options.ErrNoFilesystem)
}

func TestConfigureLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	opts := options.NewTailorOptionsForTest("/work")
	opts.ErrWriter = &buf
	opts.LogFormat = "json"
	opts.LogLevel = log.WarnLevel

	require.NoError(t, opts.ConfigureLogger())

	opts.Logger.Info("hidden")
	opts.Logger.WithField(log.FieldKeyPrefix, "/work/a.txt").Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"prefix":"/work/a.txt"`)

	opts.LogFormat = "xml"
	require.Error(t, opts.ConfigureLogger())
}
