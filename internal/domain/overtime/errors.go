package overtime

import "github.com/cmlabs-hris/hris-overtime-go/internal/pkg/apperror"

var (
	ErrOvertimeRequestNotFound = apperror.New(apperror.KindNotFound, "overtime request not found")
	ErrRequestAlreadyDecided   = apperror.New(apperror.KindInvalidTransition, "overtime request already decided")
	ErrInvalidDecision         = apperror.New(apperror.KindValidation, "decision must be approved or rejected")
	ErrNotRequestOwner         = apperror.New(apperror.KindForbidden, "overtime request belongs to another employee")
)
