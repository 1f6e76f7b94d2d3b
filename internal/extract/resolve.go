package extract

import (
	"net/url"
	"strings"
)

// Resolve normalizes a raw reference against the page's base URL (the final
// address of the fetched page, after any redirects).
//
// Resolution rules, in order:
//
//  1. Empty value → unresolvable
//  2. Absolute http/https URL → unchanged
//  3. Protocol-relative ("//host/path") → "https:" prefixed
//  4. Anything else → joined against base per standard URL semantics
//
// Unresolvable references are dropped, never errors: the second return value
// is false and extraction continues with the remaining references.
func Resolve(raw, baseURL string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	lower := strings.ToLower(raw)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		if _, err := url.Parse(raw); err != nil {
			return "", false
		}
		return raw, true
	}
	if strings.HasPrefix(raw, "//") {
		return "https:" + raw, true
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return "", false
	}
	ref, err := url.Parse(raw)
	if err != nil {
		return "", false
	}

	resolved := base.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		// javascript:, data:, mailto: and friends are never media locations.
		return "", false
	}
	return resolved.String(), true
}
