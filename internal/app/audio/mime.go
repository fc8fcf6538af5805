package audio

import (
	"mime"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// ResolveMIMEType returns the declared type when present. Otherwise the type
// is sniffed from content, so local files and bare upload parts still carry one.
func ResolveMIMEType(declared string, content []byte) string {
	if declared = strings.TrimSpace(declared); declared != "" {
		if mediaType, _, err := mime.ParseMediaType(declared); err == nil {
			return mediaType
		}
		return declared
	}
	return mimetype.Detect(content).String()
}

// Extension returns the usual file extension (with dot) for a MIME type, or "".
func Extension(mimeType string) string {
	if m := mimetype.Lookup(mimeType); m != nil {
		return m.Extension()
	}
	return ""
}
