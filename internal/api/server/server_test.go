package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"speaker-scribe/internal/api/middleware"
	"speaker-scribe/internal/api/v1/services"
	"speaker-scribe/internal/app/metrics"
	"speaker-scribe/internal/app/session"
	"speaker-scribe/internal/app/testutil"
	"speaker-scribe/internal/app/transcribe"
)

func newTestServer(t *testing.T, port string) (*Server, *testutil.MockTranscriber) {
	t.Helper()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	backend := testutil.NewMockTranscriber(t)
	client := transcribe.NewClient(backend, "gemini-2.5-flash", m, zap.NewNop())
	store := session.NewStore(client, session.Config{TTL: time.Minute}, m, zap.NewNop())

	srv, err := NewServer(Config{
		Host:         "127.0.0.1",
		Port:         port,
		Environment:  "test",
		MaxBodyBytes: 4 * 20 * 1024 * 1024,
	}, store, services.NewTranscriptionService(client, m, zap.NewNop()), reg, zap.NewNop())
	require.NoError(t, err)
	return srv, backend
}

func TestServer_Routes(t *testing.T) {
	srv, backend := newTestServer(t, "0")
	backend.On("Submit", mock.Anything, mock.Anything).Return(testutil.SampleTranscript, nil)

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("one-shot transcription shows up in metrics", func(t *testing.T) {
		body, contentType := testutil.MultipartBody(t, "file",
			testutil.UploadPart{FileName: "a.mp3", MIMEType: "audio/mpeg", Content: []byte("ID3a")})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/transcriptions", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(middleware.HeaderRequestID))

		rec = httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `scribe_transcriptions_total{outcome="success",provider="mock"} 1`)
	})

	t.Run("page", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	})

	t.Run("swagger", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "/sessions/{id}/transcribe")
	})
}

func TestServer_StartShutdown(t *testing.T) {
	srv, _ := newTestServer(t, "0")

	errCh, err := srv.Start()
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	_, open := <-errCh
	assert.False(t, open, "no listener error after a clean shutdown")
}
