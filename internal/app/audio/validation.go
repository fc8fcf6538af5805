package audio

import (
	"fmt"
	"strings"
)

const (
	// MaxFileSizeMB is the largest upload accepted, in MiB.
	MaxFileSizeMB = 20
	// MaxFileSizeBytes is MaxFileSizeMB expressed in bytes.
	MaxFileSizeBytes int64 = MaxFileSizeMB * 1024 * 1024

	mimePrefix = "audio/"
)

// Rejection reasons, also used as metric labels.
const (
	ReasonTooLarge    = "too_large"
	ReasonInvalidType = "invalid_type"
)

// ValidationError is returned when a candidate file is rejected.
type ValidationError struct {
	Reason  string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ErrTooLarge builds the rejection for files above the size limit.
func ErrTooLarge() *ValidationError {
	return &ValidationError{
		Reason:  ReasonTooLarge,
		Message: fmt.Sprintf("File is too large. Maximum size is %d MB.", MaxFileSizeMB),
	}
}

// ErrInvalidType builds the rejection for non-audio files.
func ErrInvalidType() *ValidationError {
	return &ValidationError{
		Reason:  ReasonInvalidType,
		Message: "Invalid file type. Please upload an audio file.",
	}
}

// Validate checks a candidate file against the size and type constraints.
// The size check runs first, so an oversized non-audio file reports its size.
func Validate(size int64, mimeType string) error {
	if size > MaxFileSizeBytes {
		return ErrTooLarge()
	}
	if !strings.HasPrefix(mimeType, mimePrefix) {
		return ErrInvalidType()
	}
	return nil
}
