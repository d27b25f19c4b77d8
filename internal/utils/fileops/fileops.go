package fileops

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	// FilePerm is the mode of written files
	FilePerm os.FileMode = 0o644
	// DirPerm is the mode of created directories
	DirPerm os.FileMode = 0o755
)

// FileOps provides a unified interface for common file operations
// combining path validation and error handling over an afero filesystem
type FileOps struct {
	fs            afero.Fs
	pathValidator *PathValidator
	errorWrapper  *ErrorWrapper
}

// NewFileOps creates a new FileOps instance on the given filesystem
func NewFileOps(fs afero.Fs) *FileOps {
	return &FileOps{
		fs:            fs,
		pathValidator: NewPathValidator(fs),
		errorWrapper:  NewErrorWrapper(),
	}
}

// NewOsFileOps creates a FileOps instance on the real filesystem
func NewOsFileOps() *FileOps {
	return NewFileOps(afero.NewOsFs())
}

// Fs returns the underlying filesystem
func (fo *FileOps) Fs() afero.Fs {
	return fo.fs
}

// PathValidator returns the path validator instance
func (fo *FileOps) PathValidator() *PathValidator {
	return fo.pathValidator
}

// ReadFile reads a file with path validation and error handling
func (fo *FileOps) ReadFile(filePath string) ([]byte, error) {
	cleanPath, err := fo.pathValidator.ValidateAndClean(filePath)
	if err != nil {
		return nil, fo.errorWrapper.WrapFileReadError(filePath, err)
	}

	content, err := afero.ReadFile(fo.fs, cleanPath)
	if err != nil {
		return nil, fo.errorWrapper.WrapFileReadError(cleanPath, err)
	}

	return content, nil
}

// WriteFile writes content to a file, replacing any existing file
func (fo *FileOps) WriteFile(filePath string, content []byte) error {
	cleanPath, err := fo.pathValidator.ValidateAndCleanOptional(filePath)
	if err != nil {
		return fo.errorWrapper.WrapFileWriteError(filePath, err)
	}

	if err := afero.WriteFile(fo.fs, cleanPath, content, FilePerm); err != nil {
		return fo.errorWrapper.WrapFileWriteError(cleanPath, err)
	}

	return nil
}

// EnsureDir creates dirPath and any missing parents. Existing directories
// are left untouched.
func (fo *FileOps) EnsureDir(dirPath string) error {
	cleanPath, err := fo.pathValidator.ValidateAndCleanOptional(dirPath)
	if err != nil {
		return fo.errorWrapper.WrapDirectoryCreateError(dirPath, err)
	}

	if err := fo.fs.MkdirAll(cleanPath, DirPerm); err != nil {
		return fo.errorWrapper.WrapDirectoryCreateError(cleanPath, err)
	}

	return nil
}

// Walk walks the tree rooted at root in lexical order
func (fo *FileOps) Walk(root string, fn filepath.WalkFunc) error {
	cleanPath, err := fo.pathValidator.ValidateAndClean(root)
	if err != nil {
		return fo.errorWrapper.WrapFileReadError(root, err)
	}
	return afero.Walk(fo.fs, cleanPath, fn)
}

// Exists checks if a path exists using the path validator
func (fo *FileOps) Exists(path string) bool {
	return fo.pathValidator.Exists(path)
}

// IsDir checks if a path is a directory using the path validator
func (fo *FileOps) IsDir(path string) bool {
	return fo.pathValidator.IsDir(path)
}

// IsFile checks if a path is a regular file using the path validator
func (fo *FileOps) IsFile(path string) bool {
	return fo.pathValidator.IsFile(path)
}
