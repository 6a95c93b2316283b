package trim

import (
	"bufio"
	"bytes"
	"context"
	"unicode/utf8"

	"github.com/gruntwork-io/text-tailor/internal/errors"
	"github.com/gruntwork-io/text-tailor/internal/vfs"
)

// ReadLines reads path and splits it into lines. A '\n' or "\r\n" terminator is not part of
// the line, and a final terminator does not start an extra line. Empty content has no lines.
// A '\r' that does not precede '\n' stays in the line, at the end of the content too.
func ReadLines(fs vfs.FS, path string) ([]string, error) {
	content, err := vfs.ReadFile(fs, path)
	if err != nil {
		return nil, errors.New(err)
	}

	return SplitLines(content)
}

// SplitLines is ReadLines for content already in memory.
func SplitLines(content []byte) ([]string, error) {
	if !utf8.Valid(content) {
		return nil, errors.New(ErrInvalidEncoding)
	}

	var lines []string

	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), len(content)+1)
	scanner.Split(scanLines)

	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.New(err)
	}

	return lines, nil
}

// TrimFile runs one trim pass over path: read, normalize, write back.
//
// A file with no lines is left alone. Otherwise the file is always rewritten, even when the
// result equals the original content. Failures come back as a *FileError of kind ReadError or
// WriteError. Nothing is retried.
func TrimFile(ctx context.Context, fs vfs.FS, path string) error {
	if err := ctx.Err(); err != nil {
		return errors.New(err)
	}

	lines, err := ReadLines(fs, path)
	if err != nil {
		return NewFileError(path, ReadError, err)
	}

	if len(lines) == 0 {
		return nil
	}

	if err := vfs.ReplaceFile(fs, path, Join(Normalize(lines))); err != nil {
		return NewFileError(path, WriteError, errors.New(err))
	}

	return nil
}

// scanLines is bufio.ScanLines without the '\r' removal on a final line that has no '\n'.
func scanLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, bytes.TrimSuffix(data[:i], []byte{'\r'}), nil
	}

	if atEOF {
		return len(data), data, nil
	}

	return 0, nil, nil
}
