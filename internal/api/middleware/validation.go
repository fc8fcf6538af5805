package middleware

import (
	stderrors "errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"speaker-scribe/internal/api/errors"
)

// UploadField is the multipart field that carries the audio file
const UploadField = "file"

// UploadForm binds the first file of the upload field
type UploadForm struct {
	File *multipart.FileHeader `form:"file" binding:"required"`
}

// ErrBodyTooLarge is returned by BindUpload when the request body exceeds the cap
var ErrBodyTooLarge = stderrors.New("request body too large")

// BindUpload caps the request body at maxBytes and binds the upload form.
// Only the first file of the field is used. ErrBodyTooLarge is returned as-is
// so callers can turn it into the usual size rejection.
func BindUpload(c *gin.Context, maxBytes int64) (*multipart.FileHeader, error) {
	if maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
	}

	var form UploadForm
	if err := c.ShouldBind(&form); err != nil {
		var maxErr *http.MaxBytesError
		if stderrors.As(err, &maxErr) {
			return nil, ErrBodyTooLarge
		}

		var validationErrs validator.ValidationErrors
		if stderrors.As(err, &validationErrs) {
			details := make(map[string]string, len(validationErrs))
			for _, fieldError := range validationErrs {
				details[strings.ToLower(fieldError.Field())] = describeTag(fieldError.Tag())
			}
			return nil, errors.NewValidationError("Please select a file first.", details)
		}

		return nil, errors.NewBadRequestError("Invalid multipart form")
	}

	return form.File, nil
}

func describeTag(tag string) string {
	switch tag {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of the allowed values"
	default:
		return "is invalid"
	}
}
