// Package organizer places classified mod files into the output layout.
package organizer

import (
	"fmt"
	"os"
	"path/filepath"

	"modsort/internal/category"
	"modsort/internal/scanner"
)

// CopyErrorType represents the type of copy error.
type CopyErrorType string

const (
	// SourceNotFound indicates the source file does not exist.
	SourceNotFound CopyErrorType = "SOURCE_NOT_FOUND"
	// PermissionDenied indicates insufficient permissions for the operation.
	PermissionDenied CopyErrorType = "PERMISSION_DENIED"
	// WriteFailed indicates the destination could not be written.
	WriteFailed CopyErrorType = "WRITE_FAILED"
)

// CopyError represents an error that occurred while placing a file.
type CopyError struct {
	Type CopyErrorType
	Path string
	Err  error
}

func (e *CopyError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Type, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Path)
}

func (e *CopyError) Unwrap() error {
	return e.Err
}

// PlaceResult represents the outcome of placing a single file.
type PlaceResult struct {
	SourcePath      string
	DestinationPath string
	Skipped         bool // destination already held a regular file
}

// EnsureLayout creates the output root and every category subdirectory.
// Existing directories are left alone.
func EnsureLayout(outputDir string) error {
	for _, cat := range category.All() {
		dir := filepath.Join(outputDir, cat.DirName())
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create category directory %s: %w", dir, err)
		}
	}
	return nil
}

// Place copies a mod file into its category subdirectory under its
// original filename. Sources are never moved, renamed or deleted.
//
// When the destination already exists as a regular file the copy is
// skipped; a non-regular entry occupying the destination path is replaced.
func Place(file scanner.FileEntry, cat category.Category, outputDir string) (*PlaceResult, error) {
	destDir := filepath.Join(outputDir, cat.DirName())
	if err := os.MkdirAll(destDir, 0755); err != nil {
		if os.IsPermission(err) {
			return nil, &CopyError{Type: PermissionDenied, Path: destDir, Err: err}
		}
		return nil, &CopyError{Type: WriteFailed, Path: destDir, Err: err}
	}

	destPath := filepath.Join(destDir, file.Name)
	if info, err := os.Stat(destPath); err == nil {
		if info.Mode().IsRegular() {
			return &PlaceResult{
				SourcePath:      file.FullPath,
				DestinationPath: destPath,
				Skipped:         true,
			}, nil
		}
		// Something other than a regular file is squatting on the
		// destination path; replace it.
		if err := os.RemoveAll(destPath); err != nil {
			return nil, &CopyError{Type: WriteFailed, Path: destPath, Err: err}
		}
	}

	if err := copyFile(file.FullPath, destPath); err != nil {
		return nil, err
	}

	return &PlaceResult{
		SourcePath:      file.FullPath,
		DestinationPath: destPath,
	}, nil
}

// copyFile copies src to dst within a single scoped operation, preserving
// the source file mode. A failed write removes the partial destination.
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		if os.IsNotExist(err) {
			return &CopyError{Type: SourceNotFound, Path: src, Err: err}
		}
		if os.IsPermission(err) {
			return &CopyError{Type: PermissionDenied, Path: src, Err: err}
		}
		return &CopyError{Type: WriteFailed, Path: src, Err: err}
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return &CopyError{Type: SourceNotFound, Path: src, Err: err}
	}

	if err := os.WriteFile(dst, data, srcInfo.Mode().Perm()); err != nil {
		os.Remove(dst)
		if os.IsPermission(err) {
			return &CopyError{Type: PermissionDenied, Path: dst, Err: err}
		}
		return &CopyError{Type: WriteFailed, Path: dst, Err: err}
	}

	return nil
}
