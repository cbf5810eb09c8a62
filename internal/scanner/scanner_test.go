package scanner

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"testing"
)

func TestScanReturnsOnlyRegularFiles(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"a.jar", "b.jar", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("failed to create file: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "subdir"), 0755); err != nil {
		t.Fatalf("failed to create subdir: %v", err)
	}
	// A file inside a subdirectory must not be picked up.
	if err := os.WriteFile(filepath.Join(dir, "subdir", "nested.jar"), []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create nested file: %v", err)
	}

	files, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	var names []string
	for _, f := range files {
		names = append(names, f.Name)
	}
	sort.Strings(names)

	want := []string{"a.jar", "b.jar", "notes.txt"}
	if len(names) != len(want) {
		t.Fatalf("Scan returned %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Scan returned %v, want %v", names, want)
			break
		}
	}
}

func TestScanReturnsAbsolutePaths(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "mod.jar"), []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	files, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("got %d files, want 1", len(files))
	}
	if !filepath.IsAbs(files[0].FullPath) {
		t.Errorf("FullPath %q is not absolute", files[0].FullPath)
	}
}

func TestScanMissingDirectory(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "nope"))
	var scanErr *ScanError
	if !errors.As(err, &scanErr) || scanErr.Type != DirectoryNotFound {
		t.Errorf("got %v, want DirectoryNotFound ScanError", err)
	}
}

func TestScanPathIsNotADirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	_, err := Scan(path)
	var scanErr *ScanError
	if !errors.As(err, &scanErr) || scanErr.Type != NotADirectory {
		t.Errorf("got %v, want NotADirectory ScanError", err)
	}
}

func TestScanFollowsSymlinksToRegularFiles(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}

	dir := t.TempDir()
	targetDir := t.TempDir()

	target := filepath.Join(targetDir, "real.jar")
	if err := os.WriteFile(target, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create target: %v", err)
	}
	if err := os.Symlink(target, filepath.Join(dir, "link.jar")); err != nil {
		t.Fatalf("failed to create symlink: %v", err)
	}
	// Link to a directory and a dangling link are both skipped.
	if err := os.Symlink(targetDir, filepath.Join(dir, "dirlink")); err != nil {
		t.Fatalf("failed to create dir symlink: %v", err)
	}
	if err := os.Symlink(filepath.Join(targetDir, "gone"), filepath.Join(dir, "dangling")); err != nil {
		t.Fatalf("failed to create dangling symlink: %v", err)
	}

	files, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(files) != 1 || files[0].Name != "link.jar" {
		t.Errorf("Scan returned %v, want just link.jar", files)
	}
}

func TestScanEmptyDirectory(t *testing.T) {
	files, err := Scan(t.TempDir())
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("got %d files, want 0", len(files))
	}
}
