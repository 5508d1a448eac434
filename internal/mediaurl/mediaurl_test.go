package mediaurl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewrite(t *testing.T) {
	tests := []struct {
		name     string
		origin   string
		raw      string
		expected string
	}{
		{
			name:     "blank input",
			raw:      "",
			expected: "",
		},
		{
			name:     "whitespace only",
			raw:      "   ",
			expected: "",
		},
		{
			name:     "already normalized passes through",
			raw:      "/media/post_images/a.png",
			expected: "/media/post_images/a.png",
		},
		{
			name:     "bare filename",
			raw:      "a.png",
			expected: "/media/a.png",
		},
		{
			name:     "relative path without leading slash",
			raw:      "post_videos/clip.mp4",
			expected: "/media/post_videos/clip.mp4",
		},
		{
			name:     "root-relative outside media",
			raw:      "/uploads/a.png",
			expected: "/media/uploads/a.png",
		},
		{
			name:     "root-relative with doubled slashes",
			raw:      "//uploads/a.png",
			expected: "/media/uploads/a.png",
		},
		{
			name:     "same-origin absolute passes through",
			origin:   "https://pyo-glory.com",
			raw:      "https://pyo-glory.com/media/a.png",
			expected: "https://pyo-glory.com/media/a.png",
		},
		{
			name:     "cross-origin media path collapses to relative",
			origin:   "https://pyo-glory.com",
			raw:      "https://www.pyo-glory.com/media/a.png?v=2#frame",
			expected: "/media/a.png?v=2#frame",
		},
		{
			name:     "internal container hostname rewrite",
			raw:      "http://backend:8000/post_images/a.png",
			expected: "/media/post_images/a.png",
		},
		{
			name:     "localhost rewrite",
			raw:      "http://localhost:8000/uploads/x.png",
			expected: "/media/uploads/x.png",
		},
		{
			name:     "loopback rewrite",
			raw:      "http://127.0.0.1/media/a.png",
			expected: "/media/a.png",
		},
		{
			name:     "external CDN untouched",
			raw:      "https://cdn.example.com/x.png",
			expected: "https://cdn.example.com/x.png",
		},
		{
			name:     "malformed absolute URL fails open",
			raw:      "http://bad host/a.png",
			expected: "http://bad host/a.png",
		},
		{
			name:     "leading and trailing whitespace trimmed",
			raw:      "  /media/a.png  ",
			expected: "/media/a.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(tt.origin)
			assert.Equal(t, tt.expected, r.Rewrite(tt.raw))
		})
	}
}

func TestRewriteNeverPanicsOnGarbage(t *testing.T) {
	r := New("not a url at all")
	for _, raw := range []string{"http://", "https://%zz", "////", "\x00", "http://:0"} {
		assert.NotPanics(t, func() { r.Rewrite(raw) })
	}
}
