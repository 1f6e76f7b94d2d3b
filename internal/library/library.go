package library

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/YSSF8/pluck/internal/audio"
	ioutils "github.com/YSSF8/pluck/internal/io"
	"github.com/YSSF8/pluck/internal/model"
)

// Asset is a media file registered in the library.
type Asset struct {
	// ID is a unique identifier assigned at registration.
	ID string

	// Filename is the asset's name within the library, after sanitization
	// and collision handling.
	Filename string

	// Path is the absolute location of the stored file.
	Path string

	// Category is the asset's media category.
	Category model.Category

	// SourceURL is the URL the asset was downloaded from.
	SourceURL string
}

// Options configures optional post-processing during registration.
type Options struct {
	// TagAudio writes ID3 metadata to registered MP3 assets.
	TagAudio bool

	// WriteThumbnails renders a JPEG thumbnail for registered image assets
	// into the library's .thumbnails directory.
	WriteThumbnails bool

	// ThumbnailMaxSize bounds thumbnail width and height in pixels.
	ThumbnailMaxSize int

	// OnWarning receives non-fatal problems (failed tagging, failed
	// thumbnail, failed album filing). May be nil.
	OnWarning func(message string)
}

// Library is a filesystem-backed media library.
//
// Registered assets live directly under the root directory; albums are
// subdirectories holding a second link to (or copy of) the asset. This
// mirrors a platform photo library: the asset exists once, album membership
// is cheap.
//
// Example usage:
//
//	lib := library.New("/home/user/Pluck", library.Options{TagAudio: true})
//
//	asset, err := lib.Register(ctx, "/tmp/pluck/photo.jpg", srcURL, model.CategoryImage)
//	if err != nil {
//	    return err
//	}
//	err = lib.AddToAlbum(ctx, asset, "Pluck/Images")
type Library struct {
	root   string
	opts   Options
	tagger *audio.Tagger
	images *ioutils.ImageService
}

// New creates a Library rooted at the given directory. The directory is
// created lazily on first registration.
func New(root string, opts Options) *Library {
	if opts.ThumbnailMaxSize <= 0 {
		opts.ThumbnailMaxSize = 256
	}
	return &Library{
		root:   root,
		opts:   opts,
		tagger: audio.NewTagger(),
		images: ioutils.NewImageService(),
	}
}

// Root returns the library root directory.
func (l *Library) Root() string {
	return l.root
}

// Register moves a downloaded file into the library and returns the stored
// asset.
//
// The file is renamed into the root (copied when rename crosses
// filesystems), with a numbered suffix when the name is already taken.
// Post-processing (audio tagging, image thumbnails) runs after the move and
// never fails the registration; problems go to Options.OnWarning.
func (l *Library) Register(ctx context.Context, localPath, sourceURL string, cat model.Category) (Asset, error) {
	if err := ioutils.EnsureDir(l.root); err != nil {
		return Asset{}, fmt.Errorf("could not create library root: %w", err)
	}

	name := ioutils.SanitizeFileName(filepath.Base(localPath))
	dest := ioutils.UniquePath(filepath.Join(l.root, name))

	if err := os.Rename(localPath, dest); err != nil {
		// Rename fails across filesystems; fall back to copy+remove.
		if err := ioutils.CopyFile(ctx, localPath, dest); err != nil {
			return Asset{}, fmt.Errorf("could not store asset: %w", err)
		}
		os.Remove(localPath)
	}

	asset := Asset{
		ID:        uuid.NewString(),
		Filename:  filepath.Base(dest),
		Path:      dest,
		Category:  cat,
		SourceURL: sourceURL,
	}

	if cat == model.CategoryAudio && l.opts.TagAudio {
		if err := l.tagger.TagAsset(dest, sourceURL); err != nil {
			l.warn("could not tag %s: %v", asset.Filename, err)
		}
	}
	if cat == model.CategoryImage && l.opts.WriteThumbnails {
		if err := l.writeThumbnail(ctx, asset); err != nil {
			l.warn("could not thumbnail %s: %v", asset.Filename, err)
		}
	}

	return asset, nil
}

// AddToAlbum files an asset into the named album, creating the album if it
// does not exist. Album names use forward slashes ("Pluck/Images") and map
// to directories under the library root.
func (l *Library) AddToAlbum(ctx context.Context, asset Asset, album string) error {
	dir := filepath.Join(l.root, filepath.FromSlash(album))
	if err := ioutils.EnsureDir(dir); err != nil {
		return fmt.Errorf("could not create album %s: %w", album, err)
	}

	dest := ioutils.UniquePath(filepath.Join(dir, asset.Filename))
	if err := ioutils.LinkOrCopyFile(ctx, asset.Path, dest); err != nil {
		return fmt.Errorf("could not file %s into %s: %w", asset.Filename, album, err)
	}
	return nil
}

func (l *Library) writeThumbnail(ctx context.Context, asset Asset) error {
	data, err := os.ReadFile(asset.Path)
	if err != nil {
		return err
	}

	thumb, err := l.images.ResizeImage(ctx, data, l.opts.ThumbnailMaxSize, l.opts.ThumbnailMaxSize)
	if err != nil {
		return err
	}

	dir := filepath.Join(l.root, ".thumbnails")
	if err := ioutils.EnsureDir(dir); err != nil {
		return err
	}
	name := asset.Filename[:len(asset.Filename)-len(filepath.Ext(asset.Filename))] + ".jpg"
	return ioutils.WriteFile(ctx, filepath.Join(dir, name), thumb)
}

func (l *Library) warn(format string, args ...any) {
	if l.opts.OnWarning != nil {
		l.opts.OnWarning(fmt.Sprintf(format, args...))
	}
}
