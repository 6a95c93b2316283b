// Package format holds the log formatters selectable with --log-format.
package format

import (
	"io"
	"os"
	"strings"

	"github.com/gruntwork-io/text-tailor/internal/errors"
	"github.com/gruntwork-io/text-tailor/pkg/log"
	"github.com/mattn/go-isatty"
)

const (
	PrettyFormatName = "pretty"
	JSONFormatName   = "json"
)

// AllFormatNames lists the accepted --log-format values.
var AllFormatNames = []string{PrettyFormatName, JSONFormatName}

// NewFormatter returns the formatter registered under name.
// Colors are only produced by the pretty formatter, and only when disableColors is false.
func NewFormatter(name string, disableColors bool) (log.Formatter, error) {
	switch strings.ToLower(name) {
	case "", PrettyFormatName:
		formatter := NewPrettyFormatter()
		formatter.DisableColors = disableColors

		return formatter, nil
	case JSONFormatName:
		return NewJSONFormatter(), nil
	}

	return nil, errors.Errorf("invalid log format %q, supported formats: %s", name, strings.Join(AllFormatNames, ", "))
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
