package audio

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk gone")
}

func TestEncode(t *testing.T) {
	raw := []byte{0x49, 0x44, 0x33, 0x00, 0xff, 0x10}

	encoded, err := Encode(strings.NewReader(string(raw)))
	require.NoError(t, err)

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	assert.Equal(t, raw, decoded)
}

func TestEncode_Empty(t *testing.T) {
	encoded, err := Encode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, encoded)
}

func TestEncode_ReadFailure(t *testing.T) {
	_, err := Encode(failingReader{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRead)
	assert.Contains(t, err.Error(), "disk gone")
}

func TestEncodeFile(t *testing.T) {
	f := NewFile("clip.mp3", "audio/mpeg", []byte("hello"))

	encoded, err := EncodeFile(f)
	require.NoError(t, err)
	assert.Equal(t, "aGVsbG8=", encoded)
	assert.Equal(t, int64(5), f.Size)

	_, err = EncodeFile(nil)
	assert.ErrorIs(t, err, ErrRead)
}

func TestResolveMIMEType(t *testing.T) {
	id3 := []byte("ID3\x03\x00\x00\x00\x00\x00\x00")

	assert.Equal(t, "audio/mpeg", ResolveMIMEType("audio/mpeg", nil))
	assert.Equal(t, "audio/ogg", ResolveMIMEType(" audio/ogg; codecs=opus ", nil))
	assert.Equal(t, "audio/mpeg", ResolveMIMEType("", id3))
	assert.Equal(t, "text/plain", ResolveMIMEType("text/plain", id3), "declared type is never overridden")
}

func TestExtension(t *testing.T) {
	assert.Equal(t, ".mp3", Extension("audio/mpeg"))
	assert.Equal(t, "", Extension("audio/x-not-a-real-type"))
}
