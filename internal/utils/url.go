package utils

import (
	"net/url"
	"strings"
)

// EnsureTrailingSlash normalizes a base location to end with a path
// separator. Applying it twice yields the same result.
func EnsureTrailingSlash(base string) string {
	if strings.HasSuffix(base, "/") {
		return base
	}
	return base + "/"
}

// JoinURL joins a base location with path segments, inserting single
// separators between them.
func JoinURL(base string, segments ...string) string {
	result := strings.TrimSuffix(base, "/")
	for _, seg := range segments {
		result += "/" + strings.Trim(seg, "/")
	}
	return result
}

// IsHTTPURL checks if a URL uses HTTP or HTTPS scheme
func IsHTTPURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// GetDomain extracts the domain from a URL
func GetDomain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
