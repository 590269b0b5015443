// Package media resolves backend-relative media paths into absolute URLs
// the console can print or open.
package media

import (
	"net/url"
	"strings"
)

const placeholderBase = "https://ui-avatars.com/api/"

// StorageURL resolves a stored media path against the API base URL. The
// backend serves uploads from /storage at the host root, next to the /api
// prefix, so that prefix is stripped first. Empty paths fall back to a
// generated avatar placeholder.
func StorageURL(apiBaseURL, path, fallbackName string) string {
	if path == "" {
		return PlaceholderImageURL(fallbackName)
	}
	base := strings.TrimSuffix(strings.TrimRight(apiBaseURL, "/"), "/api")
	return base + "/storage/" + strings.TrimLeft(path, "/")
}

// PlaceholderImageURL returns a generated avatar URL for records without an
// uploaded photo, keyed on the person's name.
func PlaceholderImageURL(name string) string {
	if name == "" {
		name = "CastPro"
	}
	v := url.Values{}
	v.Set("name", name)
	v.Set("background", "c9a227")
	v.Set("color", "0f0f12")
	return placeholderBase + "?" + v.Encode()
}
