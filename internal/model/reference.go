package model

// Provenance records the structural context a media reference was found in.
//
// It is carried alongside the raw value so the classifier can apply
// shape-specific rules (srcset values need decomposing, style values are
// always images) and so callers can report where a URL came from.
type Provenance int

const (
	// ProvenanceTagAttribute is a src/data-src/poster/data-lazy-src attribute
	// on an img, video, audio or source tag.
	ProvenanceTagAttribute Provenance = iota

	// ProvenanceSrcset is a srcset or data-srcset attribute value, emitted
	// whole; the decomposer splits it into individual candidates.
	ProvenanceSrcset

	// ProvenanceAnchorHref is an <a href="..."> whose path ends in a
	// recognized media extension.
	ProvenanceAnchorHref

	// ProvenanceInlineStyle is a background-image: url(...) inside an inline
	// style attribute.
	ProvenanceInlineStyle
)

// String returns a short name for the provenance, for logging.
func (p Provenance) String() string {
	switch p {
	case ProvenanceTagAttribute:
		return "tag-attribute"
	case ProvenanceSrcset:
		return "srcset"
	case ProvenanceAnchorHref:
		return "anchor-href"
	case ProvenanceInlineStyle:
		return "inline-style"
	default:
		return "unknown"
	}
}

// MediaReference is one raw media reference found during a markup scan.
//
// RawValue is the attribute value exactly as written (trimmed, not
// unescaped); it may be relative, protocol-relative or empty. TagHint is the
// lowercased name of the tag the reference was found in, for shapes where the
// tag itself declares the category ("img", "audio", "video"); it is empty for
// anchors, styles and srcset values.
//
// References are transient: they exist between the scanner and the resolver
// and are discarded once resolved into absolute URLs.
type MediaReference struct {
	RawValue   string
	Provenance Provenance
	TagHint    string
}
