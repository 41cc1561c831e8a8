package department

import (
	"errors"

	"github.com/cmlabs-hris/hris-overtime-go/internal/pkg/apperror"
)

var (
	ErrSupervisorNotFound = apperror.New(apperror.KindNotFound, "supervisor not found")
	ErrDepartmentNotFound = apperror.New(apperror.KindNotFound, "department not found")
	ErrNotAuthorized      = apperror.New(apperror.KindForbidden, "supervisor not authorized for employee")
)

// ForbiddenError converts a denied authorization into an error carrying the
// reason.
func ForbiddenError(a Authorization) error {
	return apperror.Wrap(apperror.KindForbidden, ErrNotAuthorized.Message, errors.New(string(a.Reason)))
}
