// Package scanner enumerates the mod files waiting to be classified.
package scanner

import (
	"errors"
	"os"
	"path/filepath"
)

// ScanErrorType represents the type of scanning error.
type ScanErrorType string

const (
	// DirectoryNotFound indicates the directory does not exist.
	DirectoryNotFound ScanErrorType = "DIRECTORY_NOT_FOUND"
	// NotADirectory indicates the path exists but is not a directory.
	NotADirectory ScanErrorType = "NOT_A_DIRECTORY"
	// PermissionDenied indicates insufficient permissions to read the directory.
	PermissionDenied ScanErrorType = "PERMISSION_DENIED"
)

// ScanError represents an error that occurred during directory scanning.
type ScanError struct {
	Type ScanErrorType
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	return string(e.Type) + ": " + e.Path
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// FileEntry represents a file found during scanning.
type FileEntry struct {
	Name     string // Filename only
	FullPath string // Absolute path
}

// Scan enumerates the immediate entries of a directory and returns the
// regular files among them. Subdirectories are never entered. Symlinks are
// followed: a link whose target is a regular file is included under the
// link's own name, anything else is skipped.
func Scan(directory string) ([]FileEntry, error) {
	info, err := os.Stat(directory)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ScanError{Type: DirectoryNotFound, Path: directory, Err: err}
		}
		if os.IsPermission(err) {
			return nil, &ScanError{Type: PermissionDenied, Path: directory, Err: err}
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, &ScanError{
			Type: NotADirectory,
			Path: directory,
			Err:  errors.New("path is not a directory"),
		}
	}

	entries, err := os.ReadDir(directory)
	if err != nil {
		if os.IsPermission(err) {
			return nil, &ScanError{Type: PermissionDenied, Path: directory, Err: err}
		}
		return nil, err
	}

	files := make([]FileEntry, 0, len(entries))
	for _, entry := range entries {
		fullPath := filepath.Join(directory, entry.Name())

		// Stat follows symlinks, so a link to a regular file counts
		// while broken links and links to directories are skipped.
		info, err := os.Stat(fullPath)
		if err != nil {
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}

		absPath, err := filepath.Abs(fullPath)
		if err != nil {
			absPath = fullPath
		}

		files = append(files, FileEntry{
			Name:     entry.Name(),
			FullPath: absPath,
		})
	}

	return files, nil
}
