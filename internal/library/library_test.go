package library

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/YSSF8/pluck/internal/model"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLibrary_RegisterAndFile(t *testing.T) {
	ctx := context.Background()
	tmp := t.TempDir()
	lib := New(filepath.Join(tmp, "lib"), Options{})

	src := writeTempFile(t, tmp, "photo.jpg", "jpeg bytes")

	asset, err := lib.Register(ctx, src, "https://x.com/photo.jpg", model.CategoryImage)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if asset.ID == "" {
		t.Error("asset has no ID")
	}
	if asset.Filename != "photo.jpg" {
		t.Errorf("Filename = %q, want %q", asset.Filename, "photo.jpg")
	}
	if _, err := os.Stat(asset.Path); err != nil {
		t.Errorf("stored asset missing: %v", err)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Error("temp file still present after registration")
	}

	if err := lib.AddToAlbum(ctx, asset, "Pluck/Images"); err != nil {
		t.Fatalf("AddToAlbum failed: %v", err)
	}

	filed := filepath.Join(lib.Root(), "Pluck", "Images", "photo.jpg")
	data, err := os.ReadFile(filed)
	if err != nil {
		t.Fatalf("filed asset missing: %v", err)
	}
	if string(data) != "jpeg bytes" {
		t.Errorf("filed content = %q", data)
	}
}

func TestLibrary_RegisterNameCollision(t *testing.T) {
	ctx := context.Background()
	tmp := t.TempDir()
	lib := New(filepath.Join(tmp, "lib"), Options{})

	first := writeTempFile(t, tmp, "x.png", "one")
	a1, err := lib.Register(ctx, first, "https://a.com/x.png", model.CategoryImage)
	if err != nil {
		t.Fatal(err)
	}

	// A second download that happens to share the name must not overwrite
	// the first asset.
	second := writeTempFile(t, tmp, "x.png", "two")
	a2, err := lib.Register(ctx, second, "https://b.com/x.png", model.CategoryImage)
	if err != nil {
		t.Fatal(err)
	}

	if a1.Filename == a2.Filename {
		t.Errorf("colliding registrations share filename %q", a1.Filename)
	}
	if a2.Filename != "x-2.png" {
		t.Errorf("second filename = %q, want %q", a2.Filename, "x-2.png")
	}

	data, err := os.ReadFile(a1.Path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "one" {
		t.Error("first asset was overwritten by colliding registration")
	}
}

func TestLibrary_TaggingFailureIsWarningOnly(t *testing.T) {
	ctx := context.Background()
	tmp := t.TempDir()

	var warnings []string
	lib := New(filepath.Join(tmp, "lib"), Options{
		TagAudio:  true,
		OnWarning: func(msg string) { warnings = append(warnings, msg) },
	})

	// Unreadable-as-MP3 content still registers; tagging may warn but the
	// asset is stored either way.
	src := writeTempFile(t, tmp, "track.mp3", "not actually mpeg frames")
	asset, err := lib.Register(ctx, src, "https://x.com/track.mp3", model.CategoryAudio)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if _, err := os.Stat(asset.Path); err != nil {
		t.Errorf("asset missing after tagging trouble: %v", err)
	}
}

func TestGates(t *testing.T) {
	ctx := context.Background()

	if got := Static(PermissionBlocked).Request(ctx); got != PermissionBlocked {
		t.Errorf("Static gate = %v, want blocked", got)
	}

	answers := []bool{false, true}
	gate := Ask(func() bool {
		answer := answers[0]
		answers = answers[1:]
		return answer
	})
	if got := gate.Request(ctx); got != PermissionDenied {
		t.Errorf("first ask = %v, want denied", got)
	}
	if got := gate.Request(ctx); got != PermissionGranted {
		t.Errorf("second ask = %v, want granted", got)
	}

	if got := Writable(filepath.Join(t.TempDir(), "lib")).Request(ctx); got != PermissionGranted {
		t.Errorf("Writable gate on temp dir = %v, want granted", got)
	}
}
