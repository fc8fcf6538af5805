package dto

import (
	"speaker-scribe/internal/app/session"
)

// SessionResponse represents a session in API responses
type SessionResponse struct {
	ID            string        `json:"id"`
	State         string        `json:"state" enums:"idle,file_selected,loading,result_ready"`
	File          *FileResponse `json:"file,omitempty"`
	Transcription string        `json:"transcription,omitempty"`
	HasResult     bool          `json:"has_result"`
	Loading       bool          `json:"loading"`
	Error         string        `json:"error,omitempty"`
	View          ViewResponse  `json:"view"`
}

// FileResponse describes the file held by a session
type FileResponse struct {
	Name     string  `json:"name"`
	MIMEType string  `json:"mime_type"`
	Size     int64   `json:"size"`
	SizeMB   float64 `json:"size_mb"`
}

// ViewResponse tells a client which parts of the interface to render
type ViewResponse struct {
	ShowUploader   bool `json:"show_uploader"`
	ShowErrorAlert bool `json:"show_error_alert"`
	ShowResult     bool `json:"show_result"`
	CanTranscribe  bool `json:"can_transcribe"`
	ShowClear      bool `json:"show_clear"`
	CanClear       bool `json:"can_clear"`
}

// NewSessionResponse converts a session snapshot
func NewSessionResponse(snap session.Snapshot) *SessionResponse {
	resp := &SessionResponse{
		ID:            snap.ID,
		State:         string(snap.State),
		Transcription: snap.Transcription,
		HasResult:     snap.HasResult,
		Loading:       snap.Loading,
		Error:         snap.Error,
		View: ViewResponse{
			ShowUploader:   snap.ShowUploader(),
			ShowErrorAlert: snap.ShowErrorAlert(),
			ShowResult:     snap.ShowResult(),
			CanTranscribe:  snap.CanTranscribe(),
			ShowClear:      snap.ShowClear(),
			CanClear:       snap.CanClear(),
		},
	}
	if snap.File != nil {
		resp.File = &FileResponse{
			Name:     snap.File.Name,
			MIMEType: snap.File.MIMEType,
			Size:     snap.File.Size,
			SizeMB:   snap.File.SizeMB,
		}
	}
	return resp
}
