// Package vfs provides the filesystem abstraction the trimmer works against.
// It wraps afero so the same code runs on the real disk and on an in-memory tree in tests.
package vfs

import (
	"os"

	"github.com/spf13/afero"
)

// FS is the filesystem interface used throughout the codebase.
type FS = afero.Fs

// Kind classifies a directory entry or a path.
type Kind int

const (
	KindOther Kind = iota
	KindFile
	KindDir
	KindSymlink
)

func (kind Kind) String() string {
	switch kind {
	case KindFile:
		return "file"
	case KindDir:
		return "directory"
	case KindSymlink:
		return "symlink"
	case KindOther:
	}

	return "other"
}

// KindOf classifies a FileInfo. Symlinks are only reported when info came from an lstat.
func KindOf(info os.FileInfo) Kind {
	mode := info.Mode()

	switch {
	case mode&os.ModeSymlink != 0:
		return KindSymlink
	case mode.IsDir():
		return KindDir
	case mode.IsRegular():
		return KindFile
	}

	return KindOther
}

// NewOSFS returns a filesystem backed by the real operating system filesystem.
func NewOSFS() FS {
	return afero.NewOsFs()
}

// NewMemMapFS returns an in-memory filesystem for testing purposes.
func NewMemMapFS() FS {
	return afero.NewMemMapFs()
}

// Stat classifies path, following symlinks.
func Stat(fs FS, path string) (os.FileInfo, error) {
	return fs.Stat(path)
}

// Lstat classifies path without following a final symlink. Filesystems without
// lstat support fall back to Stat.
func Lstat(fs FS, path string) (os.FileInfo, error) {
	if lstater, ok := fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(path)
		return info, err
	}

	return fs.Stat(path)
}

// ReadDir lists the entries of dir sorted by name. On the OS filesystem the entries
// come from lstat, so symlinks keep their own mode.
func ReadDir(fs FS, dir string) ([]os.FileInfo, error) {
	return afero.ReadDir(fs, dir)
}

// ReadFile reads the contents of a file from the given filesystem.
func ReadFile(fs FS, filename string) ([]byte, error) {
	return afero.ReadFile(fs, filename)
}

// WriteFile writes data to a file on the given filesystem.
func WriteFile(fs FS, filename string, data []byte, perm os.FileMode) error {
	return afero.WriteFile(fs, filename, data, perm)
}

// ReplaceFile truncates an existing file and writes data in its place, keeping its mode.
func ReplaceFile(fs FS, filename string, data []byte) error {
	info, err := fs.Stat(filename)
	if err != nil {
		return err
	}

	return afero.WriteFile(fs, filename, data, info.Mode().Perm())
}

// Symlink creates a symbolic link on filesystems that support it.
func Symlink(fs FS, oldname, newname string) error {
	linker, ok := fs.(afero.Linker)
	if !ok {
		return &os.LinkError{Op: "symlink", Old: oldname, New: newname, Err: afero.ErrNoSymlink}
	}

	return linker.SymlinkIfPossible(oldname, newname)
}
