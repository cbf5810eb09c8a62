// Package watcher monitors the input directory and classifies mod files as
// they arrive.
package watcher

import (
	"path/filepath"
	"strings"
)

// DefaultIgnorePatterns returns the filename patterns for in-progress
// downloads and editor droppings that must never be classified.
func DefaultIgnorePatterns() []string {
	return []string{
		"*.tmp",
		"*.part",
		"*.partial",
		"*.download",
		"*.crdownload", // Chrome partial downloads
		".~*",          // hidden temp files
	}
}

// FileFilter decides which newly created files should be ignored.
type FileFilter struct {
	patterns []string
}

// NewFileFilter creates a FileFilter with the given glob patterns.
// Nil or empty patterns fall back to DefaultIgnorePatterns.
func NewFileFilter(patterns []string) *FileFilter {
	if len(patterns) == 0 {
		patterns = DefaultIgnorePatterns()
	}
	return &FileFilter{patterns: patterns}
}

// ShouldIgnore reports whether the file's base name matches any ignore
// pattern. Bare extension patterns like ".tmp" also match as a
// case-insensitive suffix.
func (f *FileFilter) ShouldIgnore(path string) bool {
	filename := filepath.Base(path)

	for _, pattern := range f.patterns {
		if matched, err := filepath.Match(pattern, filename); err == nil && matched {
			return true
		}
		if strings.HasPrefix(pattern, ".") && !strings.Contains(pattern, "*") {
			if strings.HasSuffix(strings.ToLower(filename), strings.ToLower(pattern)) {
				return true
			}
		}
	}
	return false
}
