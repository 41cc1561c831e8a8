package overtime

import (
	"context"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/audit"
	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/department"
	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/overtime"
	"github.com/cmlabs-hris/hris-overtime-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-overtime-go/internal/pkg/validator"
)

type requestService struct {
	tx        database.Transactor
	requests  overtime.OvertimeRequestRepository
	employees employee.EmployeeRepository
	gate      department.Gate
	recorder  audit.Recorder
	now       func() time.Time
}

func NewOvertimeService(
	tx database.Transactor,
	requests overtime.OvertimeRequestRepository,
	employees employee.EmployeeRepository,
	gate department.Gate,
	recorder audit.Recorder,
) overtime.OvertimeService {
	if recorder == nil {
		recorder = audit.NopRecorder{}
	}
	return &requestService{
		tx:        tx,
		requests:  requests,
		employees: employees,
		gate:      gate,
		recorder:  recorder,
		now:       time.Now,
	}
}

// Create implements overtime.OvertimeService.
func (s *requestService) Create(ctx context.Context, req overtime.CreateOvertimeRequestRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	filingDate, _ := validator.IsValidDate(req.FilingDate)
	endTime, err := overtime.ParseClockTime(req.RequestedEndTime)
	if err != nil {
		return "", validator.ValidationErrors{{Field: "requested_end_time", Message: err.Error()}}
	}

	var created overtime.OvertimeRequest
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		emp, err := s.employees.GetByID(ctx, req.EmployeeID)
		if err != nil {
			return err
		}
		if !emp.IsActive() {
			return employee.ErrEmployeeInactive
		}

		created, err = s.requests.Create(ctx, overtime.OvertimeRequest{
			EmployeeID:          emp.ID,
			FilingDate:          filingDate,
			EmployeeNumber:      emp.EmployeeNumber,
			EmployeeName:        emp.FullName,
			ProjectNumber:       req.ProjectNumber,
			ProjectName:         req.ProjectName,
			ProjectPhase:        req.ProjectPhase,
			DurationMinutes:     req.DurationMinutes(),
			RequestedEndTime:    endTime,
			TaskDescription:     req.TaskDescription,
			EarlyBoundaryReason: req.EarlyBoundaryReason,
			LateBoundaryReason:  req.LateBoundaryReason,
			IsUrgent:            req.IsUrgent,
			UrgencyReason:       req.UrgencyReason,
			Status:              overtime.StatusPending,
		})
		return err
	})
	if err != nil {
		return "", err
	}

	slog.Info("overtime request created", "request_id", created.ID, "employee_id", created.EmployeeID)
	s.recorder.Record(ctx, audit.Event{
		Action:     audit.ActionOvertimeRequested,
		ActorRef:   created.EmployeeID,
		RequestID:  created.ID,
		EmployeeID: created.EmployeeID,
		CreatedAt:  s.now(),
	})

	return created.ID, nil
}

// ListForEmployee implements overtime.OvertimeService.
func (s *requestService) ListForEmployee(ctx context.Context, employeeID string) ([]overtime.OvertimeRequest, error) {
	if validator.IsEmpty(employeeID) {
		return nil, validator.ValidationErrors{{Field: "employee_id", Message: "employee_id is required"}}
	}
	return s.requests.ListByEmployeeID(ctx, employeeID)
}

// ListForSupervisorScope implements overtime.OvertimeService.
func (s *requestService) ListForSupervisorScope(ctx context.Context, supervisorRef string) ([]overtime.OvertimeRequest, error) {
	auth, err := s.gate.Scope(ctx, supervisorRef)
	if err != nil {
		return nil, err
	}
	if !auth.Authorized {
		slog.Debug("supervisor scope denied", "reason", auth.Reason)
		return []overtime.OvertimeRequest{}, nil
	}
	return s.requests.ListByDepartmentID(ctx, auth.DepartmentID)
}

// Get implements overtime.OvertimeService.
func (s *requestService) Get(ctx context.Context, id string) (overtime.OvertimeRequest, error) {
	if validator.IsEmpty(id) {
		return overtime.OvertimeRequest{}, overtime.ErrOvertimeRequestNotFound
	}
	return s.requests.GetByID(ctx, id)
}

// GetVisible implements overtime.OvertimeService.
func (s *requestService) GetVisible(ctx context.Context, id string, viewerEmployeeID *string, supervisorRef string) (overtime.OvertimeRequest, error) {
	req, err := s.Get(ctx, id)
	if err != nil {
		return overtime.OvertimeRequest{}, err
	}

	if viewerEmployeeID != nil && *viewerEmployeeID == req.EmployeeID {
		return req, nil
	}
	if validator.IsEmpty(supervisorRef) {
		return overtime.OvertimeRequest{}, overtime.ErrNotRequestOwner
	}

	auth, err := s.gate.Authorize(ctx, supervisorRef, req.EmployeeID)
	if err != nil {
		return overtime.OvertimeRequest{}, err
	}
	if !auth.Authorized {
		return overtime.OvertimeRequest{}, department.ForbiddenError(auth)
	}
	return req, nil
}
