package web_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"speaker-scribe/internal/api/v1/services"
	"speaker-scribe/internal/app/session"
	"speaker-scribe/internal/app/testutil"
	"speaker-scribe/internal/app/transcribe"
	"speaker-scribe/web"
	"speaker-scribe/web/handlers"
)

type browser struct {
	t       *testing.T
	router  *gin.Engine
	backend *testutil.MockTranscriber
	cookie  *http.Cookie
}

func newBrowser(t *testing.T) *browser {
	t.Helper()
	gin.SetMode(gin.TestMode)

	backend := testutil.NewMockTranscriber(t)
	client := transcribe.NewClient(backend, "gemini-2.5-flash", nil, nil)
	store := session.NewStore(client, session.Config{}, nil, nil)

	router := gin.New()
	require.NoError(t, web.Register(router, services.NewSessionService(store, nil), 4*20*1024*1024, nil))

	return &browser{t: t, router: router, backend: backend}
}

func (b *browser) send(req *http.Request) *httptest.ResponseRecorder {
	if b.cookie != nil {
		req.AddCookie(b.cookie)
	}
	rec := httptest.NewRecorder()
	b.router.ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		if c.Name == handlers.SessionCookie {
			b.cookie = c
		}
	}
	return rec
}

func (b *browser) page() *goquery.Document {
	b.t.Helper()
	rec := b.send(httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(b.t, http.StatusOK, rec.Code)
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(b.t, err)
	return doc
}

func (b *browser) post(path string) {
	b.t.Helper()
	rec := b.send(httptest.NewRequest(http.MethodPost, path, nil))
	require.Equal(b.t, http.StatusSeeOther, rec.Code)
	assert.Equal(b.t, "/", rec.Header().Get("Location"))
}

func (b *browser) upload(part testutil.UploadPart) {
	b.t.Helper()
	body, contentType := testutil.MultipartBody(b.t, "file", part)
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := b.send(req)
	require.Equal(b.t, http.StatusSeeOther, rec.Code)
}

func disabled(doc *goquery.Document, selector string) bool {
	_, ok := doc.Find(selector).Attr("disabled")
	return ok
}

func TestPage_Idle(t *testing.T) {
	b := newBrowser(t)
	doc := b.page()

	require.NotNil(t, b.cookie, "a session cookie is issued")
	assert.True(t, b.cookie.HttpOnly)
	assert.Equal(t, "idle", doc.Find("main").AttrOr("data-state", ""))
	assert.Equal(t, 1, doc.Find("#uploader").Length())
	assert.Contains(t, doc.Find("#uploader .limit").Text(), "Audio files up to 20MB")
	assert.Equal(t, 0, doc.Find(".alert").Length())
	assert.Equal(t, 0, doc.Find(".loader").Length())
	assert.Equal(t, 0, doc.Find("#clear").Length())
	assert.True(t, disabled(doc, "#transcribe"))
	assert.Equal(t, 0, doc.Find(`meta[http-equiv="refresh"]`).Length())

	firstID := b.cookie.Value
	b.page()
	assert.Equal(t, firstID, b.cookie.Value, "the session is kept across requests")
}

func TestPage_FullCycle(t *testing.T) {
	b := newBrowser(t)
	b.backend.On("Submit", mock.Anything, mock.Anything).Return("Speaker 1 (00:00): Hello.", nil)
	b.page()

	b.upload(testutil.UploadPart{FileName: "meeting.mp3", MIMEType: "audio/mpeg", Content: testutil.SampleMP3(5 * 1000 * 1000)})
	doc := b.page()
	assert.Equal(t, "file_selected", doc.Find("main").AttrOr("data-state", ""))
	assert.Equal(t, "meeting.mp3", doc.Find(".file-name").Text())
	assert.Equal(t, "(4.77 MB)", doc.Find(".file-size").Text())
	assert.False(t, disabled(doc, "#transcribe"))
	assert.False(t, disabled(doc, "#clear"))

	release := b.backend.Hold()
	b.post("/transcribe")

	doc = b.page()
	assert.Equal(t, "loading", doc.Find("main").AttrOr("data-state", ""))
	assert.Equal(t, 1, doc.Find(".loader").Length())
	assert.Equal(t, 0, doc.Find("#uploader").Length())
	assert.Equal(t, 1, doc.Find(`meta[http-equiv="refresh"]`).Length())
	assert.True(t, disabled(doc, "#transcribe"))
	assert.Equal(t, "Transcribing...", strings.TrimSpace(doc.Find("#transcribe").Text()))
	assert.True(t, disabled(doc, "#clear"))

	release()
	require.Eventually(t, func() bool {
		return b.page().Find("#transcription").Length() == 1
	}, time.Second, 10*time.Millisecond)

	doc = b.page()
	assert.Equal(t, "Speaker 1 (00:00): Hello.", doc.Find("#transcription").Text())
	assert.Equal(t, 0, doc.Find("#uploader").Length())
	assert.Equal(t, 0, doc.Find(".loader").Length())
	assert.False(t, disabled(doc, "#clear"))

	b.post("/clear")
	doc = b.page()
	assert.Equal(t, "idle", doc.Find("main").AttrOr("data-state", ""))
	assert.Equal(t, 0, doc.Find("#transcription").Length())
	assert.Equal(t, 0, doc.Find("#clear").Length())
}

func TestPage_RejectedFileShowsAlert(t *testing.T) {
	b := newBrowser(t)
	b.page()

	b.upload(testutil.UploadPart{FileName: "clip.mp4", MIMEType: "video/mp4", Content: []byte("not audio")})
	doc := b.page()

	assert.Equal(t, "Invalid file type. Please upload an audio file.", doc.Find(".alert").Text())
	assert.True(t, doc.Find("#uploader").HasClass("has-error"))
	assert.Equal(t, 0, doc.Find(".file-name").Length())
	assert.True(t, disabled(doc, "#transcribe"))
}

func TestPage_TranscribeWithoutFile(t *testing.T) {
	b := newBrowser(t)
	b.page()

	b.post("/transcribe")
	doc := b.page()
	assert.Equal(t, "Please select a file first.", doc.Find(".alert").Text())
	assert.Equal(t, 0, b.backend.CallCount())
}

func TestPage_FailureKeepsFileAndHidesAlert(t *testing.T) {
	b := newBrowser(t)
	b.backend.On("Submit", mock.Anything, mock.Anything).Return("", errors.New("model overloaded"))
	b.page()

	b.upload(testutil.UploadPart{FileName: "a.mp3", MIMEType: "audio/mpeg", Content: []byte("ID3a")})
	b.post("/transcribe")

	var doc *goquery.Document
	require.Eventually(t, func() bool {
		doc = b.page()
		return doc.Find("main").AttrOr("data-state", "") != "loading"
	}, time.Second, 10*time.Millisecond)

	assert.Equal(t, 0, doc.Find(".alert").Length(), "alert is hidden while a file is held")
	assert.True(t, doc.Find("#uploader").HasClass("has-error"))
	assert.Equal(t, "a.mp3", doc.Find(".file-name").Text())
	assert.False(t, disabled(doc, "#transcribe"))
}

func TestPage_UploadWithoutFileIsIgnored(t *testing.T) {
	b := newBrowser(t)
	b.page()

	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := b.send(req)
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	doc := b.page()
	assert.Equal(t, "idle", doc.Find("main").AttrOr("data-state", ""))
	assert.Equal(t, 0, doc.Find(".alert").Length())
}

func TestStaticAssets(t *testing.T) {
	b := newBrowser(t)

	for _, path := range []string{"/static/style.css", "/static/upload.js"} {
		rec := b.send(httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
		body, _ := io.ReadAll(rec.Body)
		assert.NotEmpty(t, body)
	}
}
