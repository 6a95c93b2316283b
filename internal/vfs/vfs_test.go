package vfs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gruntwork-io/text-tailor/internal/vfs"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	fs := vfs.NewOSFS()
	tempDir := t.TempDir()

	filePath := filepath.Join(tempDir, "file.txt")
	dirPath := filepath.Join(tempDir, "dir")
	linkPath := filepath.Join(tempDir, "link")

	require.NoError(t, vfs.WriteFile(fs, filePath, []byte("x"), 0644))
	require.NoError(t, fs.Mkdir(dirPath, 0755))
	require.NoError(t, vfs.Symlink(fs, dirPath, linkPath))

	testCases := []struct {
		path     string
		expected vfs.Kind
	}{
		{filePath, vfs.KindFile},
		{dirPath, vfs.KindDir},
		{linkPath, vfs.KindSymlink},
	}

	for _, testCase := range testCases {
		info, err := vfs.Lstat(fs, testCase.path)
		require.NoError(t, err)
		assert.Equal(t, testCase.expected, vfs.KindOf(info), testCase.path)
	}

	info, err := vfs.Stat(fs, linkPath)
	require.NoError(t, err)
	assert.Equal(t, vfs.KindDir, vfs.KindOf(info), "stat follows the link")
}

func TestReadDirReportsSymlinks(t *testing.T) {
	t.Parallel()

	fs := vfs.NewOSFS()
	tempDir := t.TempDir()

	require.NoError(t, vfs.WriteFile(fs, filepath.Join(tempDir, "b.txt"), []byte("x"), 0644))
	require.NoError(t, vfs.Symlink(fs, filepath.Join(tempDir, "b.txt"), filepath.Join(tempDir, "a.txt")))

	entries, err := vfs.ReadDir(fs, tempDir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "a.txt", entries[0].Name())
	assert.Equal(t, vfs.KindSymlink, vfs.KindOf(entries[0]))
	assert.Equal(t, vfs.KindFile, vfs.KindOf(entries[1]))
}

func TestReplaceFileKeepsMode(t *testing.T) {
	t.Parallel()

	fs := vfs.NewOSFS()
	path := filepath.Join(t.TempDir(), "script.sh")

	require.NoError(t, vfs.WriteFile(fs, path, []byte("echo hi   \n"), 0755))
	require.NoError(t, vfs.ReplaceFile(fs, path, []byte("echo hi")))

	data, err := vfs.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Equal(t, "echo hi", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

func TestReplaceFileErrors(t *testing.T) {
	t.Parallel()

	memFS := vfs.NewMemMapFS()
	require.NoError(t, vfs.WriteFile(memFS, "/file.txt", []byte("x"), 0644))

	err := vfs.ReplaceFile(afero.NewReadOnlyFs(memFS), "/file.txt", []byte("y"))
	require.Error(t, err)

	err = vfs.ReplaceFile(memFS, "/missing.txt", []byte("y"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestSymlinkUnsupported(t *testing.T) {
	t.Parallel()

	fs := afero.NewReadOnlyFs(vfs.NewMemMapFS())

	err := vfs.Symlink(fs, "target", "link")
	require.Error(t, err)

	var linkErr *os.LinkError
	assert.ErrorAs(t, err, &linkErr)
}
