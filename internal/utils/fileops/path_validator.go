package fileops

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// PathValidator provides centralized path validation and cleaning functionality
type PathValidator struct {
	fs afero.Fs
}

// NewPathValidator creates a new PathValidator on the given filesystem
func NewPathValidator(fs afero.Fs) *PathValidator {
	return &PathValidator{fs: fs}
}

// ValidateAndClean validates and cleans a file path, ensuring it exists
func (pv *PathValidator) ValidateAndClean(filePath string) (string, error) {
	cleanPath, err := pv.ValidateAndCleanOptional(filePath)
	if err != nil {
		return "", err
	}

	exists, err := afero.Exists(pv.fs, cleanPath)
	if err != nil {
		return "", fmt.Errorf("cannot stat %s: %w", cleanPath, err)
	}
	if !exists {
		return "", fmt.Errorf("file does not exist: %s", cleanPath)
	}

	return cleanPath, nil
}

// ValidateAndCleanOptional validates and cleans a path but doesn't require it to exist
func (pv *PathValidator) ValidateAndCleanOptional(filePath string) (string, error) {
	if strings.TrimSpace(filePath) == "" {
		return "", fmt.Errorf("file path cannot be empty")
	}
	if strings.ContainsRune(filePath, 0) {
		return "", fmt.Errorf("file path contains a NUL byte: %q", filePath)
	}

	return filepath.Clean(filePath), nil
}

// Exists checks if a path exists
func (pv *PathValidator) Exists(path string) bool {
	exists, err := afero.Exists(pv.fs, path)
	return err == nil && exists
}

// IsDir checks if a path exists and is a directory
func (pv *PathValidator) IsDir(path string) bool {
	isDir, err := afero.IsDir(pv.fs, path)
	return err == nil && isDir
}

// IsFile checks if a path exists and is a regular file
func (pv *PathValidator) IsFile(path string) bool {
	info, err := pv.fs.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
