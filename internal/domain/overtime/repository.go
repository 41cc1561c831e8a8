package overtime

import (
	"context"
	"time"
)

// OvertimeRequestRepository - interface for overtime_requests table
type OvertimeRequestRepository interface {
	Create(ctx context.Context, request OvertimeRequest) (OvertimeRequest, error)
	GetByID(ctx context.Context, id string) (OvertimeRequest, error)
	ListByEmployeeID(ctx context.Context, employeeID string) ([]OvertimeRequest, error)
	// ListByDepartmentID returns requests of the department's active members.
	ListByDepartmentID(ctx context.Context, departmentID string) ([]OvertimeRequest, error)
	// ApplyDecision moves a pending request to a terminal status. It returns
	// ErrRequestAlreadyDecided when the row is no longer pending at write time.
	ApplyDecision(ctx context.Context, id string, status Status, approverID string, remarks *string, decidedAt time.Time) (OvertimeRequest, error)
}
