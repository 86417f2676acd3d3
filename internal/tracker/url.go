package tracker

import (
	"regexp"
	"strings"
)

// schemeRe matches an explicit URI scheme prefix.
var schemeRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)

// urlRe finds the first URL-looking token in free text: either an explicit
// http(s) URL or a bare domain with a path. Bulk paste is expected to
// contain noise around it.
var urlRe = regexp.MustCompile(`https?://[^\s|]+|www\.[^\s|]+|\b[a-zA-Z0-9][a-zA-Z0-9.-]*\.[a-zA-Z]{2,}(?:/[^\s|]*)?`)

// WithScheme returns the URL with a scheme defaulted to https:// when none
// is present. The original casing is preserved; this is what gets stored.
func WithScheme(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if schemeRe.MatchString(raw) {
		return raw
	}
	return "https://" + raw
}

// NormalizeURL produces the canonical form used for equality comparison:
// scheme defaulted, lowercased, trailing slashes stripped. Never stored in
// place of the original.
func NormalizeURL(raw string) string {
	u := WithScheme(raw)
	if u == "" {
		return ""
	}
	return strings.TrimRight(strings.ToLower(u), "/")
}

// parseEntry extracts a title and URL from one raw ingestion entry. The
// entry is either "Title|URL" or freeform text containing a URL; text
// preceding the URL becomes the title when no explicit title was given.
// Returns ok=false when no URL can be found; such entries are skipped, not
// failed.
func parseEntry(raw string) (title, url string, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "", false
	}

	if before, after, found := strings.Cut(raw, "|"); found {
		title = strings.TrimSpace(before)
		raw = strings.TrimSpace(after)
	}

	loc := urlRe.FindStringIndex(raw)
	if loc == nil {
		return "", "", false
	}
	url = strings.TrimRight(raw[loc[0]:loc[1]], ".,;)")
	if title == "" {
		title = strings.TrimSpace(strings.Trim(raw[:loc[0]], " -–:"))
	}
	return title, url, true
}
