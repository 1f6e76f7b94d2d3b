package model

import "strings"

// Category identifies the kind of media a URL points at.
//
// Categories are assigned by the classifier in internal/extract, either from
// the tag a reference was found in (an <img> src is an image no matter what
// its extension says) or from the URL's file extension.
//
// CategoryUnclassified exists only as an intermediate value: URLs that cannot
// be classified never appear in a CategorizedMediaSet.
type Category int

const (
	// CategoryUnclassified means no category could be determined.
	CategoryUnclassified Category = iota

	// CategoryImage covers still images (jpg, png, gif, ...).
	CategoryImage

	// CategoryAudio covers audio files (mp3, wav, ogg, ...).
	CategoryAudio

	// CategoryVideo covers video files (mp4, webm, mkv, ...).
	CategoryVideo
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case CategoryImage:
		return "Image"
	case CategoryAudio:
		return "Audio"
	case CategoryVideo:
		return "Video"
	default:
		return "Unclassified"
	}
}

// FolderName returns the album folder name used when filing assets,
// e.g. "Images" for CategoryImage. The full album name is the album root
// joined with this, typically "Pluck/Images".
func (c Category) FolderName() string {
	switch c {
	case CategoryImage:
		return "Images"
	case CategoryAudio:
		return "Audio"
	case CategoryVideo:
		return "Videos"
	default:
		return "Other"
	}
}

// ParseCategory converts a user-supplied name like "image" or "Video" to a
// Category. Unknown names return CategoryUnclassified.
func ParseCategory(name string) Category {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "image", "images", "img":
		return CategoryImage
	case "audio", "audios":
		return CategoryAudio
	case "video", "videos":
		return CategoryVideo
	default:
		return CategoryUnclassified
	}
}
