package dto

// TranscriptionResponse is the result of a one-shot transcription
type TranscriptionResponse struct {
	Text     string `json:"text" example:"Speaker 1 (00:00): Hello."`
	Provider string `json:"provider" example:"gemini"`
	Model    string `json:"model" example:"gemini-2.5-flash"`
	MIMEType string `json:"mime_type" example:"audio/mpeg"`
	Size     int64  `json:"size" example:"5000000"`
}
