package services

import (
	"io"
	"mime/multipart"

	"speaker-scribe/internal/app/audio"
	"speaker-scribe/internal/app/session"
)

// sniffLength is how much of an upload is read to guess a missing type
const sniffLength = 3072

// CandidateFromFile wraps an uploaded file. The browser supplied type is used
// when present, otherwise it is sniffed from the first bytes.
func CandidateFromFile(fh *multipart.FileHeader) session.Candidate {
	return session.Candidate{
		Name:     fh.Filename,
		MIMEType: uploadMIMEType(fh),
		Size:     fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}

// OversizedCandidate stands in for an upload whose body exceeded the server cap.
// It is always rejected as too large and is never opened.
func OversizedCandidate(contentLength int64) session.Candidate {
	size := contentLength
	if size <= audio.MaxFileSizeBytes {
		size = audio.MaxFileSizeBytes + 1
	}
	return session.Candidate{Size: size}
}

func uploadMIMEType(fh *multipart.FileHeader) string {
	if declared := fh.Header.Get("Content-Type"); declared != "" {
		return audio.ResolveMIMEType(declared, nil)
	}

	f, err := fh.Open()
	if err != nil {
		return ""
	}
	defer f.Close()

	head := make([]byte, sniffLength)
	n, _ := io.ReadFull(f, head)
	return audio.ResolveMIMEType("", head[:n])
}
