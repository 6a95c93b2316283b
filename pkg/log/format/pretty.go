package format

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gruntwork-io/text-tailor/internal/errors"
	"github.com/gruntwork-io/text-tailor/pkg/log"
)

const defaultTimestampFormat = "15:04:05.000"

var _ log.Formatter = new(PrettyFormatter)

// PrettyFormatter renders `TIME LEVEL [prefix] message key=value...` lines.
type PrettyFormatter struct {
	// Timestamp format to use for display. Empty disables timestamps.
	TimestampFormat string

	// Force disabling colors.
	DisableColors bool

	colorScheme log.CompiledColorScheme
}

// NewPrettyFormatter returns a new PrettyFormatter instance with default values.
func NewPrettyFormatter() *PrettyFormatter {
	return &PrettyFormatter{
		TimestampFormat: defaultTimestampFormat,
		colorScheme:     log.DefaultColorScheme.Compile(),
	}
}

// Format implements log.Formatter.
func (formatter *PrettyFormatter) Format(entry *log.Entry) ([]byte, error) {
	buf := entry.Buffer
	if buf == nil {
		buf = new(bytes.Buffer)
	}

	var (
		level     = strings.ToUpper(fmt.Sprintf("%-6s", entry.Level))
		prefix    string
		timestamp string
	)

	if val, ok := entry.Fields[log.FieldKeyPrefix].(string); ok && val != "" {
		prefix = "[" + val + "] "
	}

	if formatter.TimestampFormat != "" {
		timestamp = entry.Time.Format(formatter.TimestampFormat) + " "
	}

	if !formatter.DisableColors {
		level = formatter.colorScheme.LevelColorFunc(entry.Level)(level)
		prefix = formatter.colorScheme.ColorFunc(log.PrefixStyle)(prefix)
		timestamp = formatter.colorScheme.ColorFunc(log.TimestampStyle)(timestamp)
	}

	if _, err := fmt.Fprintf(buf, "%s%s %s%s", timestamp, level, prefix, entry.Message); err != nil {
		return nil, errors.WithStackTrace(err)
	}

	for _, key := range entry.Fields.Keys(log.FieldKeyPrefix) {
		if _, err := fmt.Fprintf(buf, " %s=%v", key, entry.Fields[key]); err != nil {
			return nil, errors.WithStackTrace(err)
		}
	}

	if err := buf.WriteByte('\n'); err != nil {
		return nil, errors.WithStackTrace(err)
	}

	return buf.Bytes(), nil
}
