package overtime

import (
	"time"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type OvertimeRequest struct {
	ID             string
	EmployeeID     string
	FilingDate     time.Time
	EmployeeNumber string
	EmployeeName   string

	ProjectNumber *string
	ProjectName   *string
	ProjectPhase  *string

	DurationMinutes  int
	RequestedEndTime ClockTime

	TaskDescription     *string
	EarlyBoundaryReason *string
	LateBoundaryReason  *string
	IsUrgent            bool
	UrgencyReason       *string

	Status     Status
	ApprovedBy *string
	ApprovedAt *time.Time
	Remarks    *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO / Join
	DepartmentID *string
}

// DurationParts splits the canonical minute count into whole hours and the
// remaining minutes.
func (r OvertimeRequest) DurationParts() (hours int, minutes int) {
	return r.DurationMinutes / 60, r.DurationMinutes % 60
}

// IsPending checks if the request still awaits a decision
func (r OvertimeRequest) IsPending() bool {
	return r.Status == StatusPending
}

// DecisionResult is the outcome of a supervisor decision. Reconciliation is
// nil for rejections.
type DecisionResult struct {
	Request        OvertimeRequest
	Reconciliation *ReconciliationOutcome
}

// ReconciliationOutcome reports whether an approval reached the attendance
// record. Warning is set when the attempt failed on storage.
type ReconciliationOutcome struct {
	Applied      bool
	Reason       string
	Warning      string
	AttendanceID *string
}

const (
	ReasonApplied              = "authorized checkout recorded"
	ReasonNotClockedIn         = "employee not clocked in"
	ReasonMultipleOpenShifts   = "multiple open attendance records"
	ReasonReconciliationFailed = "reconciliation failed"
)
