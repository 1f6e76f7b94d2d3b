package extract

import (
	"strings"

	"github.com/YSSF8/pluck/internal/model"
)

// Tags whose src-like attributes declare media directly. The tag name is
// recorded as the reference's hint.
var mediaTags = map[string]struct{}{
	"img": {}, "video": {}, "audio": {}, "source": {},
}

// Attributes treated as a media source on the tags above.
var srcAttributes = map[string]struct{}{
	"src": {}, "data-src": {}, "poster": {}, "data-lazy-src": {},
}

// Scan performs a single linear pass over markup text and returns the raw
// media references it contains, in document order.
//
// Four reference shapes are recognized, case-insensitively and with either
// quote style:
//
//   - src/data-src/poster/data-lazy-src on img, video, audio and source tags
//   - srcset/data-srcset values (emitted whole, for DecomposeSrcset)
//   - anchor hrefs whose path ends in a recognized media extension
//   - inline style attributes with background-image: url(...) image references
//
// Scan is a pure function: re-running it over identical markup yields
// identical output. Malformed or unterminated tags are skipped without
// failing the scan, and attribute values are taken verbatim (trimmed, not
// unescaped).
func Scan(markup string) []model.MediaReference {
	var refs []model.MediaReference
	n := len(markup)
	i := 0

	for i < n {
		lt := strings.IndexByte(markup[i:], '<')
		if lt < 0 {
			break
		}
		i += lt + 1
		if i >= n {
			break
		}

		switch markup[i] {
		case '!':
			if strings.HasPrefix(markup[i:], "!--") {
				end := strings.Index(markup[i+3:], "-->")
				if end < 0 {
					// Unterminated comment swallows the rest of the document.
					return refs
				}
				i += 3 + end + 3
				continue
			}
			i = skipPast(markup, i, '>')
			continue
		case '/', '?':
			i = skipPast(markup, i, '>')
			continue
		}

		start := i
		for i < n && isNameByte(markup[i]) {
			i++
		}
		if i == start {
			// Stray '<' that does not open a tag.
			continue
		}
		tag := strings.ToLower(markup[start:i])

		tagRefs, next, ok := scanTagAttributes(markup, i, tag)
		i = next
		if ok {
			refs = append(refs, tagRefs...)
		}
	}

	return refs
}

// scanTagAttributes parses the attributes of one opening tag starting at i
// (just past the tag name). It returns the references found, the index to
// resume scanning at, and whether the tag was properly terminated. Refs from
// unterminated tags are discarded.
func scanTagAttributes(markup string, i int, tag string) ([]model.MediaReference, int, bool) {
	var refs []model.MediaReference
	n := len(markup)

	for i < n {
		for i < n && (isSpace(markup[i]) || markup[i] == '/') {
			i++
		}
		if i >= n {
			return nil, n, false
		}
		if markup[i] == '>' {
			return refs, i + 1, true
		}

		start := i
		for i < n && markup[i] != '=' && markup[i] != '>' && markup[i] != '/' && !isSpace(markup[i]) {
			i++
		}
		name := strings.ToLower(markup[start:i])

		for i < n && isSpace(markup[i]) {
			i++
		}
		if i >= n || markup[i] != '=' {
			// Boolean attribute, nothing to extract.
			continue
		}
		i++
		for i < n && isSpace(markup[i]) {
			i++
		}
		if i >= n {
			return nil, n, false
		}

		var value string
		if q := markup[i]; q == '"' || q == '\'' {
			i++
			end := strings.IndexByte(markup[i:], q)
			if end < 0 {
				// Unterminated quoted value: drop the whole tag.
				return nil, n, false
			}
			value = markup[i : i+end]
			i += end + 1
		} else {
			start := i
			for i < n && !isSpace(markup[i]) && markup[i] != '>' {
				i++
			}
			value = markup[start:i]
		}

		if ref, ok := referenceFor(tag, name, strings.TrimSpace(value)); ok {
			refs = append(refs, ref)
		}
	}

	return nil, n, false
}

// referenceFor maps one attribute to a media reference, if the (tag, attr,
// value) combination matches one of the recognized shapes.
func referenceFor(tag, attr, value string) (model.MediaReference, bool) {
	switch {
	case attr == "srcset" || attr == "data-srcset":
		return model.MediaReference{
			RawValue:   value,
			Provenance: model.ProvenanceSrcset,
		}, true

	case hasKey(mediaTags, tag) && hasKey(srcAttributes, attr):
		return model.MediaReference{
			RawValue:   value,
			Provenance: model.ProvenanceTagAttribute,
			TagHint:    tag,
		}, true

	case tag == "a" && attr == "href" && hasMediaExtension(value):
		return model.MediaReference{
			RawValue:   value,
			Provenance: model.ProvenanceAnchorHref,
		}, true

	case attr == "style":
		if u, ok := styleBackgroundURL(value); ok {
			return model.MediaReference{
				RawValue:   u,
				Provenance: model.ProvenanceInlineStyle,
			}, true
		}
	}

	return model.MediaReference{}, false
}

// styleBackgroundURL extracts the url(...) argument of a background-image
// declaration when it references an image extension.
func styleBackgroundURL(style string) (string, bool) {
	lower := strings.ToLower(style)
	bi := strings.Index(lower, "background-image")
	if bi < 0 {
		return "", false
	}
	open := strings.Index(lower[bi:], "url(")
	if open < 0 {
		return "", false
	}
	start := bi + open + len("url(")
	end := strings.IndexByte(style[start:], ')')
	if end < 0 {
		return "", false
	}
	u := strings.Trim(strings.TrimSpace(style[start:start+end]), `"'`)
	if !hasImageExtension(u) {
		return "", false
	}
	return u, true
}

func skipPast(markup string, i int, b byte) int {
	end := strings.IndexByte(markup[i:], b)
	if end < 0 {
		return len(markup)
	}
	return i + end + 1
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f'
}

func isNameByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '-'
}

func hasKey(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}
