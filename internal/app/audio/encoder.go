package audio

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
)

// ErrRead is returned when file content cannot be turned into a transport payload.
var ErrRead = errors.New("file could not be read")

// Encode reads r to the end and returns the standard base64 encoding of its bytes.
func Encode(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRead, err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// EncodeFile is Encode over a held file.
func EncodeFile(f *File) (string, error) {
	if f == nil {
		return "", ErrRead
	}
	return Encode(f.Open())
}
