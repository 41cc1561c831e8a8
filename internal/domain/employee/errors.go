package employee

import "github.com/cmlabs-hris/hris-overtime-go/internal/pkg/apperror"

var (
	ErrEmployeeNotFound = apperror.New(apperror.KindNotFound, "employee not found")
	ErrEmployeeInactive = apperror.New(apperror.KindValidation, "employee is not active")
)
