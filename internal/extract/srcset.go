package extract

import "strings"

// DecomposeSrcset expands a srcset attribute value into its candidate URLs.
//
// A srcset is a comma-separated candidate list where each candidate is a URL
// optionally followed by a width or density descriptor:
//
//	DecomposeSrcset("a.jpg 1x, b.jpg 2x")
//	// ["a.jpg", "b.jpg"]
//
// Descriptors are discarded, empty candidates are ignored, and duplicates
// collapse to their first appearance.
func DecomposeSrcset(value string) []string {
	var urls []string
	seen := make(map[string]struct{})

	for _, candidate := range strings.Split(value, ",") {
		fields := strings.Fields(candidate)
		if len(fields) == 0 {
			continue
		}
		u := fields[0]
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}
		urls = append(urls, u)
	}

	return urls
}
