package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/overtime"
	"github.com/cmlabs-hris/hris-overtime-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/hris-overtime-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const overtimeRequestColumns = `
	r.id, r.employee_id, r.filing_date, r.employee_number, r.employee_name,
	r.project_number, r.project_name, r.project_phase,
	r.duration_minutes, r.requested_end_time,
	r.task_description, r.early_boundary_reason, r.late_boundary_reason,
	r.is_urgent, r.urgency_reason,
	r.status, r.approved_by, r.approved_at, r.remarks,
	r.created_at, r.updated_at`

type overtimeRequestRepository struct {
	db *database.DB
}

func NewOvertimeRequestRepository(db *database.DB) overtime.OvertimeRequestRepository {
	return &overtimeRequestRepository{db: db}
}

func scanOvertimeRequest(row pgx.Row) (overtime.OvertimeRequest, error) {
	var (
		req     overtime.OvertimeRequest
		endTime pgtype.Time
		status  string
	)
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.FilingDate, &req.EmployeeNumber, &req.EmployeeName,
		&req.ProjectNumber, &req.ProjectName, &req.ProjectPhase,
		&req.DurationMinutes, &endTime,
		&req.TaskDescription, &req.EarlyBoundaryReason, &req.LateBoundaryReason,
		&req.IsUrgent, &req.UrgencyReason,
		&status, &req.ApprovedBy, &req.ApprovedAt, &req.Remarks,
		&req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		return overtime.OvertimeRequest{}, err
	}
	req.Status = overtime.Status(status)
	req.RequestedEndTime = clockFromPgTime(endTime)
	return req, nil
}

func clockFromPgTime(t pgtype.Time) overtime.ClockTime {
	if !t.Valid {
		return overtime.ClockTime{}
	}
	total := time.Duration(t.Microseconds) * time.Microsecond
	return overtime.ClockTime{
		Hour:   int(total / time.Hour),
		Minute: int((total % time.Hour) / time.Minute),
	}
}

func pgTimeFromClock(c overtime.ClockTime) pgtype.Time {
	return pgtype.Time{
		Microseconds: c.SinceMidnight().Microseconds(),
		Valid:        true,
	}
}

// Create implements overtime.OvertimeRequestRepository.
func (r *overtimeRequestRepository) Create(ctx context.Context, request overtime.OvertimeRequest) (overtime.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return overtime.OvertimeRequest{}, apperror.Storage("failed to generate overtime request id", err)
	}
	request.ID = id.String()

	query := `
		INSERT INTO overtime_requests (
			id, employee_id, filing_date, employee_number, employee_name,
			project_number, project_name, project_phase,
			duration_minutes, requested_end_time,
			task_description, early_boundary_reason, late_boundary_reason,
			is_urgent, urgency_reason,
			status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8,
			$9, $10,
			$11, $12, $13,
			$14, $15,
			$16, NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		request.ID, request.EmployeeID, request.FilingDate, request.EmployeeNumber, request.EmployeeName,
		request.ProjectNumber, request.ProjectName, request.ProjectPhase,
		request.DurationMinutes, pgTimeFromClock(request.RequestedEndTime),
		request.TaskDescription, request.EarlyBoundaryReason, request.LateBoundaryReason,
		request.IsUrgent, request.UrgencyReason,
		string(request.Status),
	).Scan(&request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return overtime.OvertimeRequest{}, apperror.Storage("failed to create overtime request", err)
	}

	return request, nil
}

// GetByID implements overtime.OvertimeRequestRepository.
func (r *overtimeRequestRepository) GetByID(ctx context.Context, id string) (overtime.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + overtimeRequestColumns + `
		FROM overtime_requests r
		WHERE r.id = $1
	`

	req, err := scanOvertimeRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return overtime.OvertimeRequest{}, overtime.ErrOvertimeRequestNotFound
		}
		return overtime.OvertimeRequest{}, apperror.Storage("failed to get overtime request", err)
	}

	return req, nil
}

// ListByEmployeeID implements overtime.OvertimeRequestRepository.
func (r *overtimeRequestRepository) ListByEmployeeID(ctx context.Context, employeeID string) ([]overtime.OvertimeRequest, error) {
	query := `SELECT ` + overtimeRequestColumns + `
		FROM overtime_requests r
		WHERE r.employee_id = $1
		ORDER BY r.filing_date DESC, r.created_at DESC
	`
	return r.list(ctx, query, employeeID)
}

// ListByDepartmentID implements overtime.OvertimeRequestRepository.
func (r *overtimeRequestRepository) ListByDepartmentID(ctx context.Context, departmentID string) ([]overtime.OvertimeRequest, error) {
	query := `SELECT ` + overtimeRequestColumns + `
		FROM overtime_requests r
		INNER JOIN employees e ON e.id = r.employee_id
		WHERE e.department_id = $1
		  AND e.status = 'active'
		ORDER BY r.filing_date DESC, r.created_at DESC
	`
	return r.list(ctx, query, departmentID)
}

func (r *overtimeRequestRepository) list(ctx context.Context, query string, args ...interface{}) ([]overtime.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.Storage("failed to list overtime requests", err)
	}
	defer rows.Close()

	requests := make([]overtime.OvertimeRequest, 0)
	for rows.Next() {
		req, err := scanOvertimeRequest(rows)
		if err != nil {
			return nil, apperror.Storage("failed to scan overtime request", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Storage("failed to iterate overtime requests", err)
	}

	return requests, nil
}

// ApplyDecision implements overtime.OvertimeRequestRepository.
func (r *overtimeRequestRepository) ApplyDecision(ctx context.Context, id string, status overtime.Status, approverID string, remarks *string, decidedAt time.Time) (overtime.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE overtime_requests r
		SET status = $2, approved_by = $3, approved_at = $4, remarks = $5, updated_at = NOW()
		WHERE r.id = $1
		  AND r.status = 'pending'
		RETURNING ` + overtimeRequestColumns

	req, err := scanOvertimeRequest(q.QueryRow(ctx, query, id, string(status), approverID, decidedAt, remarks))
	if err == nil {
		return req, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return overtime.OvertimeRequest{}, apperror.Storage("failed to apply overtime decision", err)
	}

	// Zero rows: either the id is unknown or another decision won.
	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM overtime_requests WHERE id = $1)`, id).Scan(&exists); err != nil {
		return overtime.OvertimeRequest{}, apperror.Storage("failed to check overtime request", err)
	}
	if !exists {
		return overtime.OvertimeRequest{}, overtime.ErrOvertimeRequestNotFound
	}
	return overtime.OvertimeRequest{}, overtime.ErrRequestAlreadyDecided
}
