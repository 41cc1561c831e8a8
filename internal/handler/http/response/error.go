package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-overtime-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/hris-overtime-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch apperror.KindOf(err) {
	case apperror.KindValidation:
		ValidationMessage(w, apperror.Message(err))
	case apperror.KindNotFound:
		NotFound(w, apperror.Message(err))
	case apperror.KindForbidden:
		Forbidden(w, err.Error())
	case apperror.KindInvalidTransition:
		InvalidTransition(w, apperror.Message(err))
	case apperror.KindStorage:
		slog.Error("storage failure", "error", err)
		StorageError(w, "A storage error occurred")

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
