package services

import (
	"context"
	stderrors "errors"

	"go.uber.org/zap"

	"speaker-scribe/internal/api/errors"
	"speaker-scribe/internal/api/v1/dto"
	"speaker-scribe/internal/app/session"
)

// SessionServiceImpl implements SessionService on top of the in-memory store
type SessionServiceImpl struct {
	store  *session.Store
	logger *zap.Logger
}

// NewSessionService creates a new session service
func NewSessionService(store *session.Store, logger *zap.Logger) SessionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionServiceImpl{
		store:  store,
		logger: logger,
	}
}

// CreateSession starts a new idle session
func (s *SessionServiceImpl) CreateSession(ctx context.Context) (*dto.SessionResponse, error) {
	sess := s.store.Create()
	return dto.NewSessionResponse(sess.Snapshot()), nil
}

// EnsureSession returns the session for id or a fresh one
func (s *SessionServiceImpl) EnsureSession(ctx context.Context, id string) (*dto.SessionResponse, bool) {
	sess, created := s.store.GetOrCreate(id)
	return dto.NewSessionResponse(sess.Snapshot()), created
}

// GetSession returns the current snapshot of a session
func (s *SessionServiceImpl) GetSession(ctx context.Context, id string) (*dto.SessionResponse, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	return dto.NewSessionResponse(sess.Snapshot()), nil
}

// SelectFile offers a file to the session
func (s *SessionServiceImpl) SelectFile(ctx context.Context, id string, candidate session.Candidate) (*dto.SessionResponse, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	if err := sess.SelectFile(candidate); err != nil {
		return nil, toAPIError(err)
	}
	return dto.NewSessionResponse(sess.Snapshot()), nil
}

// Transcribe runs the transcription to completion
func (s *SessionServiceImpl) Transcribe(ctx context.Context, id string) (*dto.SessionResponse, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	if _, err := sess.Transcribe(ctx); err != nil {
		return nil, toAPIError(err)
	}
	return dto.NewSessionResponse(sess.Snapshot()), nil
}

// StartTranscription begins a transcription that outlives the request
func (s *SessionServiceImpl) StartTranscription(ctx context.Context, id string) (*dto.SessionResponse, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	job, err := sess.Begin()
	if err != nil {
		return dto.NewSessionResponse(sess.Snapshot()), toAPIError(err)
	}

	runCtx := context.WithoutCancel(ctx)
	go func() {
		if _, err := sess.Run(runCtx, job); err != nil && !stderrors.Is(err, session.ErrDiscarded) {
			s.logger.Debug("background transcription finished with error",
				zap.String("session_id", sess.ID), zap.Error(err))
		}
	}()

	return dto.NewSessionResponse(sess.Snapshot()), nil
}

// ClearSession resets a session
func (s *SessionServiceImpl) ClearSession(ctx context.Context, id string) (*dto.SessionResponse, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	sess.Clear()
	return dto.NewSessionResponse(sess.Snapshot()), nil
}

// DeleteSession removes a session
func (s *SessionServiceImpl) DeleteSession(ctx context.Context, id string) error {
	if !s.store.Delete(id) {
		return errors.NewNotFoundError("Session")
	}
	return nil
}

func (s *SessionServiceImpl) lookup(id string) (*session.Session, error) {
	sess, ok := s.store.Get(id)
	if !ok {
		return nil, errors.NewNotFoundError("Session")
	}
	return sess, nil
}
