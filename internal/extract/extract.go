package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/YSSF8/pluck/internal/model"
)

// PageFetcher fetches a page on behalf of the extractor.
//
// GetPage returns the final URL after any redirects together with the body
// text. The extractor performs no network I/O of its own; internal/http's
// Client satisfies this interface, and tests substitute stubs.
type PageFetcher interface {
	GetPage(ctx context.Context, url string) (finalURL, body string, err error)
}

// Extractor turns a user-supplied input string into a categorized media set.
//
// Example usage:
//
//	extractor := extract.NewExtractor(httpClient)
//	set, err := extractor.Extract(ctx, "https://site.com/gallery")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, u := range set.Images {
//	    fmt.Println(u)
//	}
type Extractor struct {
	fetcher PageFetcher
}

// NewExtractor creates an Extractor using the given fetch collaborator.
func NewExtractor(fetcher PageFetcher) *Extractor {
	return &Extractor{fetcher: fetcher}
}

// Extract runs the full extraction for one input string.
//
// When the input itself is an absolute URL to a recognized media file, it is
// classified and placed immediately and no fetch happens at all (the
// direct-link fast path). Otherwise the page is fetched and scanned; a fetch
// failure aborts the whole extraction with a single error and no partial
// result.
func (e *Extractor) Extract(ctx context.Context, input string) (*model.CategorizedMediaSet, error) {
	input = strings.TrimSpace(input)

	if cat, ok := DirectMediaLink(input); ok {
		a := newAssembler()
		a.add(cat, input)
		return a.result(), nil
	}

	finalURL, body, err := e.fetcher.GetPage(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("could not fetch %s: %w", input, err)
	}

	return FromMarkup(finalURL, body), nil
}

// FromMarkup scans markup text and returns the categorized media set.
//
// finalURL is the page's address after redirects and is the base for
// resolving relative references. FromMarkup is pure, synchronous computation
// over in-memory text: it holds no shared state and may run repeatedly or in
// parallel with itself.
func FromMarkup(finalURL, markup string) *model.CategorizedMediaSet {
	a := newAssembler()

	for _, ref := range Scan(markup) {
		if ref.Provenance == model.ProvenanceSrcset {
			for _, candidate := range DecomposeSrcset(ref.RawValue) {
				a.addResolved(model.MediaReference{
					RawValue:   candidate,
					Provenance: model.ProvenanceSrcset,
				}, finalURL)
			}
			continue
		}
		a.addResolved(ref, finalURL)
	}

	return a.result()
}

// assembler builds the three ordered, unique-per-category collections. A URL
// discovered through several provenances collapses to a single entry at its
// first discovery position.
type assembler struct {
	set  model.CategorizedMediaSet
	seen map[model.Category]map[string]struct{}
}

func newAssembler() *assembler {
	return &assembler{
		seen: map[model.Category]map[string]struct{}{
			model.CategoryImage: {},
			model.CategoryAudio: {},
			model.CategoryVideo: {},
		},
	}
}

// addResolved resolves and classifies one reference, dropping it when it is
// unresolvable or unclassified.
func (a *assembler) addResolved(ref model.MediaReference, baseURL string) {
	resolved, ok := Resolve(ref.RawValue, baseURL)
	if !ok {
		return
	}
	cat := Classify(ref, resolved)
	if cat == model.CategoryUnclassified {
		return
	}
	a.add(cat, resolved)
}

func (a *assembler) add(cat model.Category, url string) {
	seen := a.seen[cat]
	if _, dup := seen[url]; dup {
		return
	}
	seen[url] = struct{}{}

	switch cat {
	case model.CategoryImage:
		a.set.Images = append(a.set.Images, url)
	case model.CategoryAudio:
		a.set.Audios = append(a.set.Audios, url)
	case model.CategoryVideo:
		a.set.Videos = append(a.set.Videos, url)
	}
}

func (a *assembler) result() *model.CategorizedMediaSet {
	return &a.set
}
