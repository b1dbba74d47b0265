package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestEnsureTrailingSlash tests base location normalization
func TestEnsureTrailingSlash(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"adds slash", "https://example.com/ext", "https://example.com/ext/"},
		{"keeps slash", "https://example.com/ext/", "https://example.com/ext/"},
		{"bare host", "https://example.com", "https://example.com/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EnsureTrailingSlash(tt.in))
		})
	}
}

// TestEnsureTrailingSlash_Idempotent tests that applying the
// normalization twice yields the same result
func TestEnsureTrailingSlash_Idempotent(t *testing.T) {
	for _, in := range []string{"https://example.com/ext", "https://example.com/ext/"} {
		once := EnsureTrailingSlash(in)
		assert.Equal(t, once, EnsureTrailingSlash(once))
	}
}

// TestJoinURL tests URL segment joining
func TestJoinURL(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		segments []string
		want     string
	}{
		{"simple", "https://host", []string{"a", "b"}, "https://host/a/b"},
		{"trailing slash on base", "https://host/", []string{"a"}, "https://host/a"},
		{"slashes on segments", "https://host", []string{"/a/", "b/"}, "https://host/a/b"},
		{"no segments", "https://host/x", nil, "https://host/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JoinURL(tt.base, tt.segments...))
		})
	}
}

// TestIsHTTPURL tests scheme detection
func TestIsHTTPURL(t *testing.T) {
	assert.True(t, IsHTTPURL("https://example.com"))
	assert.True(t, IsHTTPURL("http://example.com"))
	assert.False(t, IsHTTPURL("ftp://example.com"))
	assert.False(t, IsHTTPURL("not a url"))
}

// TestGetDomain tests host extraction
func TestGetDomain(t *testing.T) {
	assert.Equal(t, "github.com", GetDomain("https://github.com/Acme/ext-foo"))
	assert.Equal(t, "", GetDomain("://bad"))
}
