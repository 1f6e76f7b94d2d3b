package audio

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2"
)

// Tagger writes ID3 tags to downloaded audio assets.
//
// Tagger fills in the title frame when the file has none (derived from the
// filename) and records the source page URL in a comment frame so an asset
// can always be traced back to where it was plucked from.
//
// Example:
//
//	tagger := NewTagger()
//	if err := tagger.TagAsset(asset.Path, sourceURL); err != nil {
//	    log.Printf("tagging %s: %v", asset.Filename, err)
//	}
type Tagger struct{}

// NewTagger creates a new Tagger.
func NewTagger() *Tagger {
	return &Tagger{}
}

// TagAsset tags the MP3 file at path.
//
// Only ".mp3" files are touched; other audio formats are returned unchanged
// since ID3 frames are an MP3 convention. An existing title is preserved.
func (t *Tagger) TagAsset(path, sourceURL string) error {
	if strings.ToLower(filepath.Ext(path)) != ".mp3" {
		return nil
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("could not open %s for tagging: %w", path, err)
	}
	defer tag.Close()

	if tag.Title() == "" {
		tag.SetTitle(titleFromFilename(path))
	}

	tag.AddCommentFrame(id3v2.CommentFrame{
		Encoding:    id3v2.EncodingUTF8,
		Language:    "eng",
		Description: "Source",
		Text:        sourceURL,
	})

	return tag.Save()
}

// titleFromFilename derives a display title from an asset filename:
// extension stripped, separators turned into spaces.
func titleFromFilename(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.NewReplacer("_", " ", "-", " ").Replace(name)
	return strings.Join(strings.Fields(name), " ")
}
