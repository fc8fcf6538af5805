package services

import (
	stderrors "errors"

	"speaker-scribe/internal/api/errors"
	"speaker-scribe/internal/app/api/provider"
	"speaker-scribe/internal/app/audio"
	"speaker-scribe/internal/app/session"
	"speaker-scribe/internal/app/transcribe"
)

// toAPIError maps domain errors onto the API error kinds
func toAPIError(err error) *errors.APIError {
	var apiErr *errors.APIError
	if stderrors.As(err, &apiErr) {
		return apiErr
	}

	var vErr *audio.ValidationError
	if stderrors.As(err, &vErr) {
		e := errors.NewValidationError(vErr.Message, map[string]string{"file": vErr.Reason})
		e.Code = vErr.Reason
		return e
	}

	var tErr *transcribe.Error
	if stderrors.As(err, &tErr) {
		code := ""
		var serviceErr *provider.ServiceError
		if stderrors.As(err, &serviceErr) {
			code = serviceErr.Code
		}
		return errors.NewUpstreamError(session.FailurePrefix+tErr.Message, code)
	}

	switch {
	case stderrors.Is(err, session.ErrNoFile):
		return errors.NewValidationError(session.NoFileMessage, map[string]string{"file": "is required"})
	case stderrors.Is(err, session.ErrBusy):
		return errors.NewConflictError("A transcription is already in progress.")
	case stderrors.Is(err, session.ErrDiscarded):
		return errors.NewConflictError("The session was cleared before the transcription finished.")
	case stderrors.Is(err, audio.ErrRead):
		return errors.WrapError(err, errors.KindInternal, session.ReadMessage)
	}

	return errors.WrapError(err, errors.KindInternal, "Internal server error")
}
