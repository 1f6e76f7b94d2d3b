package model

// CategorizedMediaSet holds the absolute media URLs discovered on a page,
// grouped by category.
//
// Each slice is unique (no URL appears twice within a category) and ordered
// by first discovery during the scan. The set is plain data: once returned by
// the extractor it is owned by the caller and the extractor keeps no copy.
// Unclassified URLs are dropped before the set is built.
type CategorizedMediaSet struct {
	Images []string
	Audios []string
	Videos []string
}

// URLs returns the slice for the given category, or nil for
// CategoryUnclassified.
func (s *CategorizedMediaSet) URLs(c Category) []string {
	switch c {
	case CategoryImage:
		return s.Images
	case CategoryAudio:
		return s.Audios
	case CategoryVideo:
		return s.Videos
	default:
		return nil
	}
}

// Count returns the total number of URLs across all categories.
func (s *CategorizedMediaSet) Count() int {
	return len(s.Images) + len(s.Audios) + len(s.Videos)
}

// IsEmpty reports whether no media was found.
func (s *CategorizedMediaSet) IsEmpty() bool {
	return s.Count() == 0
}
