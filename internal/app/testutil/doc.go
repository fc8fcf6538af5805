// Package testutil provides testing utilities shared across speaker-scribe packages.
//
// It contains:
//
// 1. Mock transcription backend (mock_transcriber.go):
//   - MockTranscriber: testify mock implementing provider.Transcriber,
//     with request tracking and a Hold gate to keep a request in flight
//
// 2. Test data fixtures (fixtures.go):
//   - Sample audio bytes and transcript text
//   - Multipart upload bodies with per-part Content-Type headers
//
// # Usage Examples
//
//	func TestTranscribe(t *testing.T) {
//	    backend := testutil.NewMockTranscriber(t)
//	    backend.On("Submit", mock.Anything, mock.Anything).Return(testutil.SampleTranscript, nil)
//
//	    client := transcribe.NewClient(backend, "gemini-2.5-flash", nil, zap.NewNop())
//	    text, err := client.Transcribe(ctx, "audio/mpeg", payload)
//	    ...
//	    assert.Equal(t, 1, backend.CallCount())
//	}
package testutil
