package cli

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/toyz/scaffold/internal/errors"
	"github.com/toyz/scaffold/internal/utils/fileops"
)

// recursiveSuffix marks a path to be scanned with all its subdirectories
const recursiveSuffix = "/..."

// skippedDirs are build output and tooling directories never scanned for sources
var skippedDirs = map[string]bool{
	"bin":          true,
	"obj":          true,
	"node_modules": true,
	"packages":     true,
}

// InputScanner expands command-line paths into the source files to process
type InputScanner struct {
	ops       *fileops.FileOps
	extension string
}

// NewInputScanner creates a scanner over fs that collects files with the given
// extension (without the leading dot)
func NewInputScanner(fs afero.Fs, extension string) *InputScanner {
	return &InputScanner{
		ops:       fileops.NewFileOps(fs),
		extension: "." + strings.TrimPrefix(extension, "."),
	}
}

// Expand resolves paths in order:
//   - "dir/..." yields every source file below dir, skipping hidden and build directories
//   - a directory yields the source files directly inside it
//   - anything else is passed through as an explicit input, even if it does not exist
//
// Files found by scanning are sorted per argument. Duplicates are dropped.
func (s *InputScanner) Expand(paths []string) ([]string, error) {
	seen := make(map[string]bool)
	inputs := make([]string, 0, len(paths))
	add := func(files ...string) {
		for _, f := range files {
			if !seen[f] {
				seen[f] = true
				inputs = append(inputs, f)
			}
		}
	}

	for _, path := range paths {
		if base, ok := strings.CutSuffix(filepath.ToSlash(path), recursiveSuffix); ok {
			if base == "" {
				base = "."
			}
			files, err := s.scan(filepath.FromSlash(base), true)
			if err != nil {
				return nil, err
			}
			add(files...)
			continue
		}

		clean, err := s.ops.PathValidator().ValidateAndCleanOptional(path)
		if err != nil {
			return nil, errors.WrapFileReadError(path, err)
		}
		if s.ops.IsDir(clean) {
			files, err := s.scan(clean, false)
			if err != nil {
				return nil, err
			}
			add(files...)
			continue
		}
		add(clean)
	}

	return inputs, nil
}

// Dirs returns the directories to watch for the given paths: scanned roots and
// their subdirectories, and the parent directory of every explicit file
func (s *InputScanner) Dirs(paths []string) ([]string, error) {
	seen := make(map[string]bool)
	dirs := make([]string, 0)
	add := func(dir string) {
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}

	for _, path := range paths {
		if base, ok := strings.CutSuffix(filepath.ToSlash(path), recursiveSuffix); ok {
			if base == "" {
				base = "."
			}
			err := s.ops.Walk(filepath.FromSlash(base), func(p string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}
				if !info.IsDir() {
					return nil
				}
				if p != filepath.FromSlash(base) && skipDir(info.Name()) {
					return filepath.SkipDir
				}
				add(p)
				return nil
			})
			if err != nil {
				return nil, wrapScanError(base, err)
			}
			continue
		}

		clean := filepath.Clean(path)
		if s.ops.IsDir(clean) {
			add(clean)
		} else {
			add(filepath.Dir(clean))
		}
	}

	sort.Strings(dirs)
	return dirs, nil
}

// Matches reports whether path has the scanned extension
func (s *InputScanner) Matches(path string) bool {
	return strings.EqualFold(filepath.Ext(path), s.extension)
}

func (s *InputScanner) scan(root string, recursive bool) ([]string, error) {
	files := make([]string, 0)
	err := s.ops.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path == root {
				return nil
			}
			if !recursive || skipDir(info.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if s.Matches(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, wrapScanError(root, err)
	}

	sort.Strings(files)
	return files, nil
}

func skipDir(name string) bool {
	return skippedDirs[name] || (strings.HasPrefix(name, ".") && name != "." && name != "..")
}

// wrapScanError keeps errors that already carry a code
func wrapScanError(root string, err error) error {
	if errors.CodeOf(err) != errors.UnknownErrorCode {
		return err
	}
	return errors.WrapFileReadError(root, err)
}
