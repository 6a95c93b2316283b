package log

import (
	"github.com/mgutz/ansi"
)

const (
	None ColorStyleName = iota
	ErrorLevelStyle
	WarnLevelStyle
	InfoLevelStyle
	DebugLevelStyle
	TraceLevelStyle
	PrefixStyle
	TimestampStyle
)

// DefaultColorScheme is used by the pretty formatter unless replaced.
var DefaultColorScheme = ColorScheme{
	ErrorLevelStyle: "red",
	WarnLevelStyle:  "yellow",
	InfoLevelStyle:  "green",
	DebugLevelStyle: "blue+h",
	TraceLevelStyle: "white",
	PrefixStyle:     "cyan",
	TimestampStyle:  "black+h",
}

type ColorStyleName byte

type ColorFunc func(string) string

type ColorStyle string

func (style ColorStyle) ColorFunc() ColorFunc {
	return ansi.ColorFunc(string(style))
}

type ColorScheme map[ColorStyleName]ColorStyle

// Compile resolves every style into a ready-to-use color function.
func (scheme ColorScheme) Compile() CompiledColorScheme {
	compiled := make(CompiledColorScheme, len(scheme))

	for name, style := range scheme {
		compiled[name] = style.ColorFunc()
	}

	return compiled
}

type CompiledColorScheme map[ColorStyleName]ColorFunc

func (scheme CompiledColorScheme) LevelColorFunc(level Level) ColorFunc {
	switch level {
	case ErrorLevel:
		return scheme.ColorFunc(ErrorLevelStyle)
	case WarnLevel:
		return scheme.ColorFunc(WarnLevelStyle)
	case InfoLevel:
		return scheme.ColorFunc(InfoLevelStyle)
	case DebugLevel:
		return scheme.ColorFunc(DebugLevelStyle)
	case TraceLevel:
		return scheme.ColorFunc(TraceLevelStyle)
	}

	return scheme.ColorFunc(None)
}

func (scheme CompiledColorScheme) ColorFunc(name ColorStyleName) ColorFunc {
	if colorFunc, ok := scheme[name]; ok {
		return colorFunc
	}

	return func(s string) string { return s }
}
