package overtime

import (
	"context"
	"io"
)

type OvertimeService interface {
	Create(ctx context.Context, req CreateOvertimeRequestRequest) (string, error)
	ListForEmployee(ctx context.Context, employeeID string) ([]OvertimeRequest, error)
	ListForSupervisorScope(ctx context.Context, supervisorRef string) ([]OvertimeRequest, error)
	Get(ctx context.Context, id string) (OvertimeRequest, error)
	// GetVisible returns the request when the viewer owns it or supervises
	// its employee.
	GetVisible(ctx context.Context, id string, viewerEmployeeID *string, supervisorRef string) (OvertimeRequest, error)
	ExportTeamRequests(ctx context.Context, supervisorRef string, w io.Writer) error
}

// Workflow drives a pending request to a terminal status.
type Workflow interface {
	Decide(ctx context.Context, req DecideRequest) (DecisionResult, error)
}

// Reconciler writes an approved request onto the employee's open attendance
// record.
type Reconciler interface {
	Reconcile(ctx context.Context, request OvertimeRequest) (ReconciliationOutcome, error)
}
