package extract

import (
	"net/url"
	"strings"

	"github.com/YSSF8/pluck/internal/model"
)

// Recognized media file extensions, lowercased, without the dot.
var (
	imageExtensions = map[string]struct{}{
		"jpg": {}, "jpeg": {}, "png": {}, "gif": {}, "bmp": {}, "webp": {}, "svg": {},
	}
	audioExtensions = map[string]struct{}{
		"mp3": {}, "wav": {}, "ogg": {}, "aac": {}, "m4a": {},
	}
	videoExtensions = map[string]struct{}{
		"mp4": {}, "mov": {}, "avi": {}, "webm": {}, "mkv": {}, "flv": {},
	}
)

// pathExtension returns the lowercased extension of the path portion of a
// reference, without the dot. Query string and fragment are ignored, so
// "movie.MP4?t=10" yields "mp4".
func pathExtension(ref string) string {
	if i := strings.IndexAny(ref, "?#"); i >= 0 {
		ref = ref[:i]
	}
	segment := ref[strings.LastIndexByte(ref, '/')+1:]
	dot := strings.LastIndexByte(segment, '.')
	if dot < 0 || dot == len(segment)-1 {
		return ""
	}
	return strings.ToLower(segment[dot+1:])
}

func categoryForExtension(ext string) model.Category {
	if _, ok := imageExtensions[ext]; ok {
		return model.CategoryImage
	}
	if _, ok := audioExtensions[ext]; ok {
		return model.CategoryAudio
	}
	if _, ok := videoExtensions[ext]; ok {
		return model.CategoryVideo
	}
	return model.CategoryUnclassified
}

// ClassifyURL assigns a category from a URL's file extension alone.
func ClassifyURL(rawURL string) model.Category {
	if u, err := url.Parse(rawURL); err == nil && u.Path != "" {
		return categoryForExtension(pathExtension(u.Path))
	}
	return categoryForExtension(pathExtension(rawURL))
}

// Classify assigns a category to a resolved reference.
//
// A tag hint wins when it maps directly to a category: an <img> src is an
// image even when its URL has no recognizable extension. Otherwise the
// resolved URL's extension decides. References that match neither are
// CategoryUnclassified and never reach the final media set.
func Classify(ref model.MediaReference, resolvedURL string) model.Category {
	switch ref.TagHint {
	case "img":
		return model.CategoryImage
	case "audio":
		return model.CategoryAudio
	case "video":
		return model.CategoryVideo
	}
	return ClassifyURL(resolvedURL)
}

// DirectMediaLink reports whether the user-supplied input is itself an
// absolute URL to a recognized media file. When it is, the extractor places
// it directly and performs no page fetch at all.
func DirectMediaLink(input string) (model.Category, bool) {
	u, err := url.Parse(strings.TrimSpace(input))
	if err != nil {
		return model.CategoryUnclassified, false
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return model.CategoryUnclassified, false
	}
	cat := categoryForExtension(pathExtension(u.Path))
	if cat == model.CategoryUnclassified {
		return model.CategoryUnclassified, false
	}
	return cat, true
}

// hasMediaExtension reports whether a raw, possibly relative reference ends
// in any recognized media extension. Used by the scanner for anchor hrefs.
func hasMediaExtension(ref string) bool {
	return categoryForExtension(pathExtension(ref)) != model.CategoryUnclassified
}

// hasImageExtension is the image-only variant, for inline style backgrounds.
func hasImageExtension(ref string) bool {
	_, ok := imageExtensions[pathExtension(ref)]
	return ok
}
