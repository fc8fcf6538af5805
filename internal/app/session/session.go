package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"

	"speaker-scribe/internal/app/audio"
	"speaker-scribe/internal/app/metrics"
)

// User-facing messages.
const (
	NoFileMessage  = "Please select a file first."
	ReadMessage    = "File could not be read."
	FailurePrefix  = "Transcription failed: "
	UnknownFailure = "An unknown error occurred."
)

var (
	// ErrNoFile is returned when transcription is triggered without a file.
	ErrNoFile = errors.New("no file selected")
	// ErrBusy is returned when transcription is triggered while one is in flight.
	ErrBusy = errors.New("transcription already in progress")
	// ErrDiscarded is returned when the session was cleared while the request was in flight.
	ErrDiscarded = errors.New("session was cleared before the transcription finished")
)

// Client is the transcription capability a session drives.
type Client interface {
	Transcribe(ctx context.Context, mimeType, payload string) (string, error)
}

// Candidate is a file offered by the user. Open is only called for files that
// pass validation, so oversized uploads are never read into memory.
type Candidate struct {
	Name     string
	MIMEType string
	Size     int64
	Open     func() (io.ReadCloser, error)
}

// Job is a transcription that has moved the session to loading.
type Job struct {
	generation uint64
	file       *audio.File
}

// Session holds the state of one user's upload/transcribe cycle.
// All state changes happen under mu; the remote call runs outside it.
type Session struct {
	ID string

	mu            sync.Mutex
	file          *audio.File
	transcription string
	hasResult     bool
	loading       bool
	errMsg        string
	generation    uint64
	lastActive    time.Time

	client  Client
	metrics *metrics.Metrics
	logger  *zap.Logger
	now     func() time.Time
}

func newSession(id string, client Client, m *metrics.Metrics, logger *zap.Logger, now func() time.Time) *Session {
	return &Session{
		ID:         id,
		client:     client,
		metrics:    m,
		logger:     logger.With(zap.String("session_id", id)),
		now:        now,
		lastActive: now(),
	}
}

// SelectFile validates c. An accepted file replaces the held one and clears any
// prior error and result; a rejected file leaves no file held and sets the error.
func (s *Session) SelectFile(c Candidate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if err := audio.Validate(c.Size, c.MIMEType); err != nil {
		var vErr *audio.ValidationError
		if errors.As(err, &vErr) {
			s.metrics.RecordRejection(vErr.Reason)
		}
		s.file = nil
		s.errMsg = err.Error()
		s.logger.Info("file rejected",
			zap.String("file_name", c.Name),
			zap.String("mime_type", c.MIMEType),
			zap.Int64("size", c.Size),
			zap.Error(err),
		)
		return err
	}

	content, err := readCandidate(c)
	if err != nil {
		s.file = nil
		s.errMsg = ReadMessage
		s.logger.Warn("failed to read selected file", zap.String("file_name", c.Name), zap.Error(err))
		return err
	}
	if int64(len(content)) > audio.MaxFileSizeBytes {
		s.metrics.RecordRejection(audio.ReasonTooLarge)
		s.file = nil
		tooLarge := audio.ErrTooLarge()
		s.errMsg = tooLarge.Error()
		return tooLarge
	}

	s.file = audio.NewFile(c.Name, c.MIMEType, content)
	s.errMsg = ""
	s.clearResult()
	s.logger.Debug("file selected",
		zap.String("file_name", c.Name),
		zap.String("mime_type", c.MIMEType),
		zap.Int64("size", s.file.Size),
	)
	return nil
}

// Begin checks that a transcription may start and moves the session to loading.
func (s *Session) Begin() (*Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.file == nil {
		s.errMsg = NoFileMessage
		return nil, ErrNoFile
	}
	if s.loading {
		return nil, ErrBusy
	}

	s.loading = true
	s.errMsg = ""
	s.clearResult()
	return &Job{generation: s.generation, file: s.file}, nil
}

// Run encodes the job's file, performs the single remote call and records the
// outcome. A result for a session cleared in the meantime is dropped.
func (s *Session) Run(ctx context.Context, job *Job) (string, error) {
	text, err := s.execute(ctx, job.file)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if job.generation != s.generation {
		s.logger.Info("discarding transcription for cleared session")
		return "", ErrDiscarded
	}

	s.loading = false
	if err != nil {
		s.errMsg = failureMessage(err)
		s.clearResult()
		return "", err
	}

	s.transcription = text
	s.hasResult = true
	return text, nil
}

// Transcribe is Begin followed by Run.
func (s *Session) Transcribe(ctx context.Context) (string, error) {
	job, err := s.Begin()
	if err != nil {
		return "", err
	}
	return s.Run(ctx, job)
}

// Clear resets file, result, error and loading from any state. A transcription
// still in flight will be discarded when it returns.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	s.file = nil
	s.clearResult()
	s.errMsg = ""
	s.loading = false
	s.generation++
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:            s.ID,
		Transcription: s.transcription,
		HasResult:     s.hasResult,
		Loading:       s.loading,
		Error:         s.errMsg,
	}
	if s.file != nil {
		snap.File = &FileInfo{
			Name:     s.file.Name,
			MIMEType: s.file.MIMEType,
			Size:     s.file.Size,
			SizeMB:   s.file.SizeMB(),
		}
	}
	snap.State = snap.deriveState()
	return snap
}

func (s *Session) execute(ctx context.Context, file *audio.File) (string, error) {
	payload, err := audio.EncodeFile(file)
	if err != nil {
		return "", err
	}
	return s.client.Transcribe(ctx, file.MIMEType, payload)
}

func (s *Session) expired(now time.Time, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.loading && now.Sub(s.lastActive) > ttl
}

func (s *Session) clearResult() {
	s.transcription = ""
	s.hasResult = false
}

func (s *Session) touch() {
	s.lastActive = s.now()
}

func failureMessage(err error) string {
	if msg := err.Error(); msg != "" {
		return FailurePrefix + msg
	}
	return UnknownFailure
}

func readCandidate(c Candidate) ([]byte, error) {
	if c.Open == nil {
		return nil, audio.ErrRead
	}
	rc, err := c.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", audio.ErrRead, err)
	}
	defer rc.Close()

	content, err := io.ReadAll(io.LimitReader(rc, audio.MaxFileSizeBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", audio.ErrRead, err)
	}
	return content, nil
}
