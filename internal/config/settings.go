package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds all configuration options.
type Settings struct {
	// Library settings
	LibraryPath string `json:"library_path"`
	AlbumRoot   string `json:"album_root"`

	// Download settings
	TempPath           string `json:"temp_path"`
	UserAgent          string `json:"user_agent"`
	HTTPTimeoutSeconds int    `json:"http_timeout_seconds"`

	// Extraction settings
	MaxConcurrentExtractions int `json:"max_concurrent_extractions"`

	// Asset post-processing
	TagAudioAssets       bool `json:"tag_audio_assets"`
	WriteImageThumbnails bool `json:"write_image_thumbnails"`
	ThumbnailMaxSize     int  `json:"thumbnail_max_size"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	return &Settings{
		LibraryPath: filepath.Join(homeDir, "Pluck"),
		AlbumRoot:   "Pluck",

		TempPath:           filepath.Join(os.TempDir(), "pluck"),
		UserAgent:          "Pluck/1.0",
		HTTPTimeoutSeconds: 60,

		MaxConcurrentExtractions: 4,

		TagAudioAssets:       true,
		WriteImageThumbnails: false,
		ThumbnailMaxSize:     256,
	}
}

// Load reads settings from a JSON file.
//
// A missing file is not an error: defaults are returned so a first run
// works without any configuration.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
