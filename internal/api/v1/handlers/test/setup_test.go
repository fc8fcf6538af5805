package test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"speaker-scribe/internal/api/middleware"
	"speaker-scribe/internal/api/v1/routes"
	"speaker-scribe/internal/api/v1/services"
	"speaker-scribe/internal/app/session"
	"speaker-scribe/internal/app/testutil"
	"speaker-scribe/internal/app/transcribe"
)

type testAPI struct {
	router  *gin.Engine
	backend *testutil.MockTranscriber
	store   *session.Store
}

func setupTestRouter(t *testing.T, maxBodyBytes int64) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	backend := testutil.NewMockTranscriber(t)
	client := transcribe.NewClient(backend, "gemini-2.5-flash", nil, nil)
	store := session.NewStore(client, session.Config{}, nil, nil)

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(zap.NewNop()))
	routes.RegisterRoutes(router.Group("/api/v1"), &routes.ServiceContainer{
		SessionService:       services.NewSessionService(store, nil),
		TranscriptionService: services.NewTranscriptionService(client, nil, nil),
		MaxBodyBytes:         maxBodyBytes,
	})

	return &testAPI{router: router, backend: backend, store: store}
}

func (a *testAPI) do(t *testing.T, method, path string, body io.Reader, contentType string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)

	if rec.Body.Len() == 0 {
		return rec, nil
	}
	var responseBody map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &responseBody))
	return rec, responseBody
}

func (a *testAPI) createSession(t *testing.T) string {
	t.Helper()
	rec, body := a.do(t, http.MethodPost, "/api/v1/sessions", nil, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	return body["id"].(string)
}

func (a *testAPI) upload(t *testing.T, id string, parts ...testutil.UploadPart) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	body, contentType := testutil.MultipartBody(t, "file", parts...)
	return a.do(t, http.MethodPut, "/api/v1/sessions/"+id+"/file", body, contentType)
}
