package watcher

import "testing"

func TestDefaultFilterIgnoresPartialDownloads(t *testing.T) {
	filter := NewFileFilter(nil)

	tests := []struct {
		path   string
		ignore bool
	}{
		{"/watch/Sodium-0.5.3.jar.part", true},
		{"/watch/jei.jar.crdownload", true},
		{"/watch/download.partial", true},
		{"/watch/mod.download", true},
		{"/watch/something.tmp", true},
		{"/watch/.~lock.mods.json#", true},
		{"/watch/JEI-1.16.5-7.7.1.152.jar", false},
		{"/watch/mods_data.json", false},
		{"/watch/partial-mod.jar", false},
		{"/watch/tmp-build.jar", false},
	}

	for _, tt := range tests {
		if got := filter.ShouldIgnore(tt.path); got != tt.ignore {
			t.Errorf("ShouldIgnore(%q) = %v, want %v", tt.path, got, tt.ignore)
		}
	}
}

func TestFilterBareExtensionMatchesCaseInsensitively(t *testing.T) {
	filter := NewFileFilter([]string{".tmp"})

	for _, path := range []string{"a.tmp", "a.TMP", "a.Tmp", "archive.jar.tmp"} {
		if !filter.ShouldIgnore(path) {
			t.Errorf("ShouldIgnore(%q) = false, want true", path)
		}
	}
	if filter.ShouldIgnore("a.jar") {
		t.Error("ShouldIgnore(a.jar) = true with a .tmp-only filter")
	}
}

func TestFilterCustomPatterns(t *testing.T) {
	filter := NewFileFilter([]string{"*.bak"})

	if !filter.ShouldIgnore("old.bak") {
		t.Error("custom pattern *.bak did not match old.bak")
	}
	// Custom patterns replace the defaults entirely.
	if filter.ShouldIgnore("download.part") {
		t.Error("default pattern applied despite a custom pattern list")
	}
}
