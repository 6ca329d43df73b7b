package fileutils_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/currency-csv/internal/fileutils"
	"fjacquet/currency-csv/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()

	testFile := filepath.Join(tmpDir, "prices.csv")
	require.NoError(t, os.WriteFile(testFile, []byte("Price\n"), 0600))

	assert.True(t, fileutils.FileExists(testFile))
	assert.False(t, fileutils.FileExists(filepath.Join(tmpDir, "missing.csv")))
	assert.False(t, fileutils.FileExists(tmpDir))
}

func TestDirectoryExists(t *testing.T) {
	tmpDir := t.TempDir()
	assert.True(t, fileutils.DirectoryExists(tmpDir))
	assert.False(t, fileutils.DirectoryExists(filepath.Join(tmpDir, "nope")))
}

func TestEnsureDirectoryExists(t *testing.T) {
	tmpDir := t.TempDir()
	newDir := filepath.Join(tmpDir, "a", "b")

	require.NoError(t, fileutils.EnsureDirectoryExists(newDir))
	assert.True(t, fileutils.DirectoryExists(newDir))
	require.NoError(t, fileutils.EnsureDirectoryExists(newDir))
	require.NoError(t, fileutils.EnsureDirectoryExists(""))
}

func TestReadFile(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "prices.csv")
	require.NoError(t, os.WriteFile(testFile, []byte("Name|Price\n"), 0600))

	data, err := fileutils.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, "Name|Price\n", string(data))

	_, err = fileutils.ReadFile(filepath.Join(tmpDir, "missing.csv"))
	require.Error(t, err)
	assert.Equal(t, parsererror.KindIO, parsererror.KindOf(err))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestWriteFileAtomic(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "out", "data-EUR.csv")

	require.NoError(t, fileutils.WriteFileAtomic(target, []byte("Name|Price\n"), 0644))
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "Name|Price\n", string(data))

	require.NoError(t, fileutils.WriteFileAtomic(target, []byte("replaced\n"), 0644))
	data, err = os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "replaced\n", string(data))

	entries, err := os.ReadDir(filepath.Dir(target))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}

func TestWriteFileAtomic_FailureLeavesNothing(t *testing.T) {
	tmpDir := t.TempDir()
	// The target is an existing directory, so the final rename fails.
	target := filepath.Join(tmpDir, "taken")
	require.NoError(t, os.Mkdir(target, 0750))
	require.NoError(t, os.WriteFile(filepath.Join(target, "keep"), []byte("x"), 0600))

	err := fileutils.WriteFileAtomic(target, []byte("data"), 0644)
	require.Error(t, err)
	assert.Equal(t, parsererror.KindIO, parsererror.KindOf(err))

	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestResolvePath(t *testing.T) {
	assert.Equal(t, filepath.Join("data", "prices.csv"), fileutils.ResolvePath("data", "prices.csv"))
	assert.Equal(t, "prices.csv", fileutils.ResolvePath("", "prices.csv"))
	assert.Equal(t, filepath.Join("sub", "prices.csv"), fileutils.ResolvePath("data", filepath.Join("sub", "prices.csv")))
	assert.Equal(t, "/abs/prices.csv", fileutils.ResolvePath("data", "/abs/prices.csv"))
}
