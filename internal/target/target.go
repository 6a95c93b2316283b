// Package target turns raw command line arguments into the distinct paths a run processes.
package target

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/gruntwork-io/text-tailor/internal/vfs"
	"github.com/mattn/go-zglob"
	"github.com/mitchellh/go-homedir"
)

const globChars = "*?["

// Normalize canonicalizes every argument against workingDir, expands glob arguments and drops
// duplicates, keeping the first-seen order. Blank arguments are ignored.
//
// A glob that matches nothing is kept as a plain path so the walk reports it as not found.
func Normalize(fs vfs.FS, workingDir string, args []string) []string {
	var (
		targets []string
		seen    = make(map[string]struct{}, len(args))
	)

	for _, arg := range args {
		if strings.TrimSpace(arg) == "" {
			continue
		}

		path := Canonical(workingDir, arg)

		for _, match := range Expand(fs, path) {
			match = filepath.Clean(match)

			if _, ok := seen[match]; ok {
				continue
			}

			seen[match] = struct{}{}
			targets = append(targets, match)
		}
	}

	return targets
}

// Canonical returns path with a leading `~` expanded, made absolute against workingDir and
// cleaned, so "dir", "./dir" and "dir/" all compare equal.
func Canonical(workingDir, path string) string {
	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}

	if !filepath.IsAbs(path) {
		path = filepath.Join(workingDir, path)
	}

	return filepath.Clean(path)
}

// IsGlob reports whether path contains glob metacharacters.
func IsGlob(path string) bool {
	return strings.ContainsAny(path, globChars)
}

// Expand returns the matches of a glob path in lexical order, or the path itself when it is not
// a glob, matches nothing, or names an existing file such as "n[1].txt".
func Expand(fs vfs.FS, path string) []string {
	if !IsGlob(path) {
		return []string{path}
	}

	if _, err := vfs.Lstat(fs, path); err == nil {
		return []string{path}
	}

	matches, err := zglob.Glob(path)
	if err != nil || len(matches) == 0 {
		return []string{path}
	}

	sort.Strings(matches)

	return matches
}
