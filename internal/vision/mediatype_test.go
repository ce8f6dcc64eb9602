package vision

import "testing"

func TestDetectMediaType(t *testing.T) {
	tests := []struct {
		name string
		b64  string
		want string
	}{
		{name: "JPEG", b64: "/9j/4AAQSkZJRg", want: "image/jpeg"},
		{name: "JPEG uppercase", b64: "/9J/4AAQSkZJRg", want: "image/jpeg"},
		{name: "PNG", b64: "iVBORw0KGgoAAAANSUhEUg", want: "image/png"},
		{name: "GIF", b64: "R0lGODlhAQAB", want: "image/gif"},
		{name: "WebP", b64: "UklGRh4AAABXRUJQ", want: "image/webp"},
		{name: "unknown defaults to JPEG", b64: "AAAAHGZ0eXBpc29t", want: "image/jpeg"},
		{name: "empty defaults to JPEG", b64: "", want: "image/jpeg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectMediaType(tt.b64); got != tt.want {
				t.Errorf("DetectMediaType(%q) = %q, want %q", tt.b64, got, tt.want)
			}
		})
	}
}
