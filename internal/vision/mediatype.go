package vision

import "strings"

// DetectMediaType infers an image MIME type from the leading characters of
// its base64 payload. The magic bytes of each format encode to a stable
// prefix, so the payload never needs decoding. Unrecognized data falls back
// to JPEG, the most universally accepted type.
func DetectMediaType(b64 string) string {
	switch {
	case strings.HasPrefix(b64, "/9j/"), strings.HasPrefix(b64, "/9J/"):
		return "image/jpeg"
	case strings.HasPrefix(b64, "iVBORw0KGgo"):
		return "image/png"
	case strings.HasPrefix(b64, "R0lGOD"):
		return "image/gif"
	case strings.HasPrefix(b64, "UklGR"):
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
