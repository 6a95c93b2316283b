// Package trim normalizes the whitespace of a line sequence: trailing spaces and tabs are
// cut from every line and blank lines are dropped from both ends of the sequence.
package trim

import (
	"strings"
)

// horizontalSpace is the set stripped from line ends. Other whitespace, '\r' included, is payload.
const horizontalSpace = " \t"

// Normalize returns the normalized copy of lines. The input is not modified.
//
// Trailing spaces and tabs are removed from each line first. Then the leading run of empty
// lines is dropped, then the trailing one, so an all-blank input yields an empty result.
func Normalize(lines []string) []string {
	trimmed := make([]string, len(lines))
	for i, line := range lines {
		trimmed[i] = strings.TrimRight(line, horizontalSpace)
	}

	start := 0
	for start < len(trimmed) && trimmed[start] == "" {
		start++
	}

	end := len(trimmed)
	for end > start && trimmed[end-1] == "" {
		end--
	}

	return trimmed[start:end]
}

// Join renders lines as file content: lines separated by '\n', no newline after the last one.
func Join(lines []string) []byte {
	return []byte(strings.Join(lines, "\n"))
}
