package config

import (
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "nope", "settings.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	defaults := DefaultSettings()
	if settings.AlbumRoot != defaults.AlbumRoot {
		t.Errorf("AlbumRoot = %q, want %q", settings.AlbumRoot, defaults.AlbumRoot)
	}
	if settings.HTTPTimeoutSeconds != defaults.HTTPTimeoutSeconds {
		t.Errorf("HTTPTimeoutSeconds = %d, want %d", settings.HTTPTimeoutSeconds, defaults.HTTPTimeoutSeconds)
	}
}

func TestSettings_SaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "settings.json")

	settings := DefaultSettings()
	settings.AlbumRoot = "MyMedia"
	settings.WriteImageThumbnails = true

	if err := settings.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.AlbumRoot != "MyMedia" {
		t.Errorf("AlbumRoot = %q, want %q", loaded.AlbumRoot, "MyMedia")
	}
	if !loaded.WriteImageThumbnails {
		t.Error("WriteImageThumbnails not persisted")
	}
}
