package walker

import (
	"path"

	"github.com/gobwas/glob"
	"github.com/gruntwork-io/text-tailor/internal/errors"
)

// Excludes is a set of compiled exclude patterns.
type Excludes []glob.Glob

// CompileExcludes compiles glob patterns using '/' as the separator, so `*` stays within one
// path segment and `**` crosses segments.
func CompileExcludes(patterns ...string) (Excludes, error) {
	excludes := make(Excludes, 0, len(patterns))

	for _, pattern := range patterns {
		compiled, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, errors.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		excludes = append(excludes, compiled)
	}

	return excludes, nil
}

// Match reports whether relPath, slash separated and relative to the target root, or its
// base name matches any pattern.
func (excludes Excludes) Match(relPath string) bool {
	base := path.Base(relPath)

	for _, pattern := range excludes {
		if pattern.Match(relPath) || pattern.Match(base) {
			return true
		}
	}

	return false
}
