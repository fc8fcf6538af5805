package testutil

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"testing"
)

// SampleTranscript is a transcript as the remote model would format it.
const SampleTranscript = "Speaker 1 (00:00): Hello.\n\nSpeaker 2 (00:04): Hi, thanks for joining."

// UploadPart describes one file in a multipart upload.
type UploadPart struct {
	FileName string
	MIMEType string
	Content  []byte
}

// SampleMP3 returns size bytes that start with an ID3 tag.
func SampleMP3(size int) []byte {
	data := make([]byte, size)
	copy(data, "ID3\x03\x00\x00\x00\x00\x00\x00")
	return data
}

// MultipartBody builds a multipart/form-data body with every part under field.
// A part with an empty MIMEType is written without a Content-Type header.
func MultipartBody(t *testing.T, field string, parts ...UploadPart) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for _, part := range parts {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name=%q; filename=%q`, field, part.FileName))
		if part.MIMEType != "" {
			header.Set("Content-Type", part.MIMEType)
		}

		w, err := writer.CreatePart(header)
		if err != nil {
			t.Fatalf("failed to create multipart part: %v", err)
		}
		if _, err := w.Write(part.Content); err != nil {
			t.Fatalf("failed to write multipart part: %v", err)
		}
	}

	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}
	return body, writer.FormDataContentType()
}
