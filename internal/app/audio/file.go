package audio

import (
	"bytes"
	"io"
)

// File is an audio file held in memory for the lifetime of one session.
type File struct {
	Name     string
	MIMEType string
	Size     int64
	content  []byte
}

// NewFile wraps already-read content. Size is taken from the content.
func NewFile(name, mimeType string, content []byte) *File {
	return &File{
		Name:     name,
		MIMEType: mimeType,
		Size:     int64(len(content)),
		content:  content,
	}
}

// Open returns a reader over the file content.
func (f *File) Open() io.Reader {
	return bytes.NewReader(f.content)
}

// SizeMB returns the size in megabytes, as shown next to the file name in the uploader.
func (f *File) SizeMB() float64 {
	return float64(f.Size) / 1024 / 1024
}
