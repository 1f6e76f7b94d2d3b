// Package extract finds media resource locations in webpage markup.
//
// The pipeline is scan → decompose → resolve → classify → assemble:
//
//  1. Scan makes one linear pass over the markup and yields raw references
//     with their provenance (tag attribute, srcset, anchor href, inline
//     style background).
//  2. DecomposeSrcset expands srcset values into individual candidates.
//  3. Resolve normalizes each raw value against the page's final URL into an
//     absolute http/https URL, dropping unresolvable ones.
//  4. Classify assigns Image/Audio/Video from the tag hint or the URL's file
//     extension; unclassified URLs are dropped.
//  5. The assembler merges everything into three ordered, duplicate-free
//     collections.
//
// The whole pipeline is pure computation over an in-memory string. Network
// access happens only through the PageFetcher collaborator, and only when
// the input is not itself a direct media link:
//
//	extractor := extract.NewExtractor(httpClient)
//	set, err := extractor.Extract(ctx, "https://site.com/gallery")
//
// Scanning is built from explicit index-based scanning functions in the
// manner of a hand-rolled tokenizer: no regular expressions run over the
// untrusted page body, so scan time stays linear in the input size.
package extract
