package fsutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DirPerm is the mode used for directories created by kindlab.
	DirPerm = 0o750
	// FilePerm is the mode used for files written by kindlab.
	FilePerm = 0o600
)

// TryWriteFile writes content to output, creating parent directories as needed.
//
// When force is false and output already exists the file is left untouched and
// written is false. Directories are created with DirPerm and files with FilePerm.
func TryWriteFile(content string, output string, force bool) (bool, error) {
	if output == "" {
		return false, ErrEmptyOutputPath
	}

	output = filepath.Clean(output)

	if !force {
		exists, err := FileExists(output)
		if err != nil {
			return false, err
		}

		if exists {
			return false, nil
		}
	}

	dir := filepath.Dir(output)

	err := os.MkdirAll(dir, DirPerm)
	if err != nil {
		return false, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	err = os.WriteFile(output, []byte(content), FilePerm)
	if err != nil {
		return false, fmt.Errorf("failed to write file %s: %w", output, err)
	}

	return true, nil
}

// FileExists reports whether path exists. Errors other than "not exist" are returned.
func FileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}

	return false, fmt.Errorf("failed to check file %s: %w", path, err)
}

// DirExists reports whether path exists and is a directory.
func DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}

		return false, fmt.Errorf("failed to check directory %s: %w", path, err)
	}

	return info.IsDir(), nil
}
