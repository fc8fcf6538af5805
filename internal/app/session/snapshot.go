package session

// State is the primary state of a session. An error message is an overlay
// that can accompany StateIdle or StateFileSelected.
type State string

const (
	StateIdle         State = "idle"
	StateFileSelected State = "file_selected"
	StateLoading      State = "loading"
	StateResultReady  State = "result_ready"
)

// FileInfo describes the held file without its content.
type FileInfo struct {
	Name     string  `json:"name"`
	MIMEType string  `json:"mime_type"`
	Size     int64   `json:"size"`
	SizeMB   float64 `json:"size_mb"`
}

// Snapshot is an immutable copy of a session's state.
type Snapshot struct {
	ID            string    `json:"id"`
	State         State     `json:"state"`
	File          *FileInfo `json:"file,omitempty"`
	Transcription string    `json:"transcription,omitempty"`
	HasResult     bool      `json:"has_result"`
	Loading       bool      `json:"loading"`
	Error         string    `json:"error,omitempty"`
}

func (s Snapshot) deriveState() State {
	switch {
	case s.Loading:
		return StateLoading
	case s.HasResult:
		return StateResultReady
	case s.File != nil:
		return StateFileSelected
	default:
		return StateIdle
	}
}

// ShowUploader reports whether the upload area is rendered.
func (s Snapshot) ShowUploader() bool {
	return !s.HasResult && !s.Loading
}

// ShowErrorAlert reports whether the standalone error alert is rendered.
// With a file held, the error only tints the uploader.
func (s Snapshot) ShowErrorAlert() bool {
	return s.Error != "" && s.File == nil
}

// ShowResult reports whether the transcript is rendered.
func (s Snapshot) ShowResult() bool {
	return s.HasResult && !s.Loading
}

// CanTranscribe reports whether the transcribe control is enabled.
func (s Snapshot) CanTranscribe() bool {
	return s.File != nil && !s.Loading
}

// ShowClear reports whether the clear control is rendered.
func (s Snapshot) ShowClear() bool {
	return s.File != nil || s.HasResult
}

// CanClear reports whether the clear control is enabled.
func (s Snapshot) CanClear() bool {
	return !s.Loading
}
