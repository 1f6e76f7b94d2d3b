package extract

import (
	"testing"

	"github.com/YSSF8/pluck/internal/model"
)

func TestClassifyURL(t *testing.T) {
	tests := []struct {
		url  string
		want model.Category
	}{
		{"https://x.com/a.jpg", model.CategoryImage},
		{"https://x.com/a.jpeg", model.CategoryImage},
		{"https://x.com/a.svg", model.CategoryImage},
		{"https://x.com/song.mp3", model.CategoryAudio},
		{"https://x.com/song.m4a", model.CategoryAudio},
		{"https://x.com/v/movie.MKV", model.CategoryVideo},
		{"https://x.com/v/clip.webm", model.CategoryVideo},
		{"https://x.com/v/movie.mp4?t=10", model.CategoryVideo},
		{"https://x.com/v/movie.mp4#frag", model.CategoryVideo},
		{"https://x.com/page.html", model.CategoryUnclassified},
		{"https://x.com/noext", model.CategoryUnclassified},
		{"https://x.com/dir.jpg/file", model.CategoryUnclassified},
		{"https://x.com/trailing.", model.CategoryUnclassified},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := ClassifyURL(tt.url); got != tt.want {
				t.Errorf("ClassifyURL(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestClassify_TagHintWins(t *testing.T) {
	tests := []struct {
		name string
		ref  model.MediaReference
		url  string
		want model.Category
	}{
		{
			name: "img hint beats missing extension",
			ref:  model.MediaReference{TagHint: "img"},
			url:  "https://x.com/photo",
			want: model.CategoryImage,
		},
		{
			name: "audio hint beats video extension",
			ref:  model.MediaReference{TagHint: "audio"},
			url:  "https://x.com/stream.mp4",
			want: model.CategoryAudio,
		},
		{
			name: "video hint",
			ref:  model.MediaReference{TagHint: "video"},
			url:  "https://x.com/stream",
			want: model.CategoryVideo,
		},
		{
			name: "source hint falls through to extension",
			ref:  model.MediaReference{TagHint: "source"},
			url:  "https://x.com/clip.webm",
			want: model.CategoryVideo,
		},
		{
			name: "no hint no extension",
			ref:  model.MediaReference{},
			url:  "https://x.com/thing",
			want: model.CategoryUnclassified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.ref, tt.url); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDirectMediaLink(t *testing.T) {
	tests := []struct {
		input string
		want  model.Category
		ok    bool
	}{
		{"https://x.com/song.mp3", model.CategoryAudio, true},
		{"http://x.com/a.png", model.CategoryImage, true},
		{"https://x.com/v/movie.MKV", model.CategoryVideo, true},
		{"https://x.com/gallery", model.CategoryUnclassified, false},
		{"ftp://x.com/a.png", model.CategoryUnclassified, false},
		{"song.mp3", model.CategoryUnclassified, false},
		{"", model.CategoryUnclassified, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := DirectMediaLink(tt.input)
			if got != tt.want || ok != tt.ok {
				t.Errorf("DirectMediaLink(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}
