// Package fileutils provides the file operations used by the conversion pipeline.
package fileutils

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/currency-csv/internal/parsererror"
)

// FileExists checks if a file exists and is not a directory
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirectoryExists checks if a directory exists
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDirectoryExists creates a directory if it doesn't exist
func EnsureDirectoryExists(dirPath string) error {
	if dirPath == "" || DirectoryExists(dirPath) {
		return nil
	}
	if err := os.MkdirAll(dirPath, 0750); err != nil {
		return &parsererror.IOError{Op: "create directory", Path: dirPath, Err: err}
	}
	return nil
}

// ReadFile reads the whole file. Missing files and directories are IOErrors.
func ReadFile(filePath string) ([]byte, error) {
	if !FileExists(filePath) {
		return nil, &parsererror.IOError{Op: "read", Path: filePath, Err: os.ErrNotExist}
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, &parsererror.IOError{Op: "read", Path: filePath, Err: err}
	}
	return data, nil
}

// WriteFileAtomic writes data to a temporary file next to filePath and
// renames it into place, so a failed write never leaves a partial file.
func WriteFileAtomic(filePath string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(filePath)
	if err := EnsureDirectoryExists(dir); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(filePath)+".*.tmp")
	if err != nil {
		return &parsererror.IOError{Op: "create", Path: filePath, Err: err}
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return &parsererror.IOError{Op: "write", Path: filePath, Err: err}
	}
	if err = tmp.Chmod(perm); err != nil {
		return &parsererror.IOError{Op: "chmod", Path: filePath, Err: err}
	}
	if err = tmp.Close(); err != nil {
		return &parsererror.IOError{Op: "close", Path: filePath, Err: err}
	}
	if err = os.Rename(tmpName, filePath); err != nil {
		return &parsererror.IOError{Op: "rename", Path: filePath, Err: fmt.Errorf("moving %s into place: %w", tmpName, err)}
	}
	return nil
}

// ResolvePath joins a bare file name with the data directory. Absolute
// paths and paths with a directory part are returned unchanged.
func ResolvePath(dataDir, name string) string {
	if dataDir == "" || filepath.IsAbs(name) || filepath.Dir(name) != "." {
		return name
	}
	return filepath.Join(dataDir, name)
}
