package storage

import "strings"

// PublicIDFromURL recovers a deletable public ID from a stored image URL.
// Gallery posts keep only URLs, so deletion has to work backwards from them.
//
// CDN URLs look like
// https://res.cloudinary.com/<cloud>/image/upload/v123/<folder>/<id>.<ext>;
// the public ID is everything after the version segment, extension stripped.
// Local URLs are /uploads/<folder>/<file> and the public ID is
// <folder>/<file>. Returns "" when the URL matches neither shape.
func PublicIDFromURL(url string) string {
	if strings.Contains(url, "cloudinary.com") {
		parts := strings.Split(url, "/")
		for i, p := range parts {
			if p != "upload" || i+2 >= len(parts) {
				continue
			}
			// Skip the version segment after "upload".
			path := strings.Join(parts[i+2:], "/")
			if dot := strings.LastIndex(path, "."); dot > strings.LastIndex(path, "/") {
				path = path[:dot]
			}
			return path
		}
		return ""
	}

	if rest, ok := strings.CutPrefix(url, "/uploads/"); ok {
		return rest
	}
	return ""
}
