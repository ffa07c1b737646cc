package walker

import (
	"mime"
	"path/filepath"
	"strings"
)

// mediaTypes covers the image and document formats certificates ship in.
var mediaTypes = map[string]string{
	".avif": "image/avif",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
	".pdf":  "application/pdf",
}

// MediaType returns the MIME type for filename, falling back to the
// system table and then to application/octet-stream.
func MediaType(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if t, ok := mediaTypes[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return "application/octet-stream"
}
