package user

import "github.com/cmlabs-hris/hris-overtime-go/internal/pkg/apperror"

var (
	ErrManagerAccessRequired  = apperror.New(apperror.KindForbidden, "manager access required")
	ErrEmployeeAccessRequired = apperror.New(apperror.KindForbidden, "employee access required")
)
