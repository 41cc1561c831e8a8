package overtime

import (
	"time"

	"github.com/cmlabs-hris/hris-overtime-go/internal/pkg/validator"
)

// maxDurationMinutes caps a single request at one calendar day.
const maxDurationMinutes = 24 * 60

type CreateOvertimeRequestRequest struct {
	EmployeeID          string  `json:"-"`
	FilingDate          string  `json:"filing_date" validate:"required,isodate"`
	ProjectNumber       *string `json:"project_number,omitempty" validate:"omitempty,max=100"`
	ProjectName         *string `json:"project_name,omitempty" validate:"omitempty,max=255"`
	ProjectPhase        *string `json:"project_phase,omitempty" validate:"omitempty,max=100"`
	RequestedHours      *int    `json:"requested_hours,omitempty" validate:"omitempty,min=0,max=24"`
	RequestedMinutes    *int    `json:"requested_minutes,omitempty" validate:"omitempty,min=0,max=1440"`
	RequestedEndTime    string  `json:"requested_end_time" validate:"required,clock"`
	TaskDescription     *string `json:"task_description,omitempty" validate:"omitempty,max=2000"`
	EarlyBoundaryReason *string `json:"early_boundary_reason,omitempty" validate:"omitempty,max=1000"`
	LateBoundaryReason  *string `json:"late_boundary_reason,omitempty" validate:"omitempty,max=1000"`
	IsUrgent            bool    `json:"is_urgent"`
	UrgencyReason       *string `json:"urgency_reason,omitempty" validate:"omitempty,max=1000"`
}

func (r *CreateOvertimeRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if err := validator.Struct(r); err != nil {
		fieldErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		errs = append(errs, fieldErrs...)
	}

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	// Requested duration
	if r.RequestedHours == nil && r.RequestedMinutes == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "requested_hours",
			Message: "requested duration is required",
		})
	} else if !errs.Has("requested_hours") && !errs.Has("requested_minutes") {
		total := r.DurationMinutes()
		if total <= 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "requested_hours",
				Message: "requested duration must be greater than zero",
			})
		}
		if total > maxDurationMinutes {
			errs = append(errs, validator.ValidationError{
				Field:   "requested_hours",
				Message: "requested duration must not exceed 24 hours",
			})
		}
	}

	if r.IsUrgent && (r.UrgencyReason == nil || validator.IsEmpty(*r.UrgencyReason)) {
		errs = append(errs, validator.ValidationError{
			Field:   "urgency_reason",
			Message: "urgency_reason is required for urgent requests",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DurationMinutes normalizes the requested hours and minutes into one minute
// count.
func (r *CreateOvertimeRequestRequest) DurationMinutes() int {
	total := 0
	if r.RequestedHours != nil {
		total += *r.RequestedHours * 60
	}
	if r.RequestedMinutes != nil {
		total += *r.RequestedMinutes
	}
	return total
}

type DecideRequest struct {
	RequestID     string  `json:"-"`
	SupervisorRef string  `json:"-"`
	Decision      string  `json:"decision" validate:"required,oneof=approved rejected"`
	Remarks       *string `json:"remarks,omitempty" validate:"omitempty,max=1000"`
}

func (r *DecideRequest) Validate() error {
	var errs validator.ValidationErrors

	if err := validator.Struct(r); err != nil {
		fieldErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		errs = append(errs, fieldErrs...)
	}

	if validator.IsEmpty(r.RequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "request_id",
			Message: "request_id is required",
		})
	}
	if validator.IsEmpty(r.SupervisorRef) {
		errs = append(errs, validator.ValidationError{
			Field:   "supervisor_id",
			Message: "supervisor_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Status maps the decision to the terminal status it produces.
func (r *DecideRequest) Status() (Status, error) {
	switch Status(r.Decision) {
	case StatusApproved:
		return StatusApproved, nil
	case StatusRejected:
		return StatusRejected, nil
	default:
		return "", ErrInvalidDecision
	}
}

type OvertimeRequestResponse struct {
	ID                  string  `json:"id"`
	EmployeeID          string  `json:"employee_id"`
	EmployeeNumber      string  `json:"employee_number"`
	EmployeeName        string  `json:"employee_name"`
	FilingDate          string  `json:"filing_date"`
	ProjectNumber       *string `json:"project_number,omitempty"`
	ProjectName         *string `json:"project_name,omitempty"`
	ProjectPhase        *string `json:"project_phase,omitempty"`
	DurationMinutes     int     `json:"duration_minutes"`
	RequestedHours      int     `json:"requested_hours"`
	RequestedMinutes    int     `json:"requested_minutes"`
	RequestedEndTime    string  `json:"requested_end_time"`
	TaskDescription     *string `json:"task_description,omitempty"`
	EarlyBoundaryReason *string `json:"early_boundary_reason,omitempty"`
	LateBoundaryReason  *string `json:"late_boundary_reason,omitempty"`
	IsUrgent            bool    `json:"is_urgent"`
	UrgencyReason       *string `json:"urgency_reason,omitempty"`
	Status              string  `json:"status"`
	ApprovedBy          *string `json:"approved_by,omitempty"`
	ApprovedAt          *string `json:"approved_at,omitempty"`
	Remarks             *string `json:"remarks,omitempty"`
	CreatedAt           string  `json:"created_at"`
	UpdatedAt           string  `json:"updated_at"`
}

type ListOvertimeRequestResponse struct {
	TotalCount int64                     `json:"total_count"`
	Requests   []OvertimeRequestResponse `json:"requests"`
}

type CreateOvertimeRequestResponse struct {
	ID string `json:"id"`
}

type ReconciliationResponse struct {
	Applied      bool    `json:"applied"`
	Reason       string  `json:"reason"`
	Warning      string  `json:"warning,omitempty"`
	AttendanceID *string `json:"attendance_id,omitempty"`
}

type DecisionResponse struct {
	Request        OvertimeRequestResponse `json:"request"`
	Reconciliation *ReconciliationResponse `json:"reconciliation,omitempty"`
}

func NewOvertimeRequestResponse(r OvertimeRequest) OvertimeRequestResponse {
	hours, minutes := r.DurationParts()
	resp := OvertimeRequestResponse{
		ID:                  r.ID,
		EmployeeID:          r.EmployeeID,
		EmployeeNumber:      r.EmployeeNumber,
		EmployeeName:        r.EmployeeName,
		FilingDate:          r.FilingDate.Format("2006-01-02"),
		ProjectNumber:       r.ProjectNumber,
		ProjectName:         r.ProjectName,
		ProjectPhase:        r.ProjectPhase,
		DurationMinutes:     r.DurationMinutes,
		RequestedHours:      hours,
		RequestedMinutes:    minutes,
		RequestedEndTime:    r.RequestedEndTime.String(),
		TaskDescription:     r.TaskDescription,
		EarlyBoundaryReason: r.EarlyBoundaryReason,
		LateBoundaryReason:  r.LateBoundaryReason,
		IsUrgent:            r.IsUrgent,
		UrgencyReason:       r.UrgencyReason,
		Status:              string(r.Status),
		ApprovedBy:          r.ApprovedBy,
		Remarks:             r.Remarks,
		CreatedAt:           r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           r.UpdatedAt.Format(time.RFC3339),
	}
	if r.ApprovedAt != nil {
		approvedAt := r.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &approvedAt
	}
	return resp
}

func NewListOvertimeRequestResponse(requests []OvertimeRequest) ListOvertimeRequestResponse {
	items := make([]OvertimeRequestResponse, 0, len(requests))
	for _, r := range requests {
		items = append(items, NewOvertimeRequestResponse(r))
	}
	return ListOvertimeRequestResponse{
		TotalCount: int64(len(items)),
		Requests:   items,
	}
}

func NewDecisionResponse(result DecisionResult) DecisionResponse {
	resp := DecisionResponse{Request: NewOvertimeRequestResponse(result.Request)}
	if result.Reconciliation != nil {
		resp.Reconciliation = &ReconciliationResponse{
			Applied:      result.Reconciliation.Applied,
			Reason:       result.Reconciliation.Reason,
			Warning:      result.Reconciliation.Warning,
			AttendanceID: result.Reconciliation.AttendanceID,
		}
	}
	return resp
}
