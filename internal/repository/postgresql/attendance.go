package postgresql

import (
	"context"
	"time"

	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-overtime-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/hris-overtime-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.date, a.clock_in, a.clock_out,
	a.authorized_checkout, a.approved_overtime_minutes,
	a.work_hours_in_minutes, a.late_minutes, a.is_holiday,
	a.created_at, a.updated_at`

func scanAttendance(row pgx.Row, extra ...interface{}) (attendance.Attendance, error) {
	var att attendance.Attendance
	dest := []interface{}{
		&att.ID, &att.EmployeeID, &att.Date, &att.ClockIn, &att.ClockOut,
		&att.AuthorizedCheckout, &att.ApprovedOvertimeMinutes,
		&att.WorkHoursInMinutes, &att.LateMinutes, &att.IsHoliday,
		&att.CreatedAt, &att.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return attendance.Attendance{}, err
	}
	return att, nil
}

// ListOpenByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListOpenByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1
		  AND a.date = $2
		  AND a.clock_out IS NULL
		ORDER BY a.clock_in DESC NULLS LAST
	`

	rows, err := q.Query(ctx, query, employeeID, date)
	if err != nil {
		return nil, apperror.Storage("failed to get open attendance", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, apperror.Storage("failed to scan attendance", err)
		}
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Storage("failed to iterate attendance", err)
	}

	return records, nil
}

// ApplyAuthorizedCheckout implements attendance.AttendanceRepository.
func (a *attendanceRepository) ApplyAuthorizedCheckout(ctx context.Context, checkout attendance.AuthorizedCheckout) (bool, error) {
	q := GetQuerier(ctx, a.db)

	// GREATEST keeps an earlier, longer approval on the same shift intact.
	query := `
		UPDATE attendances
		SET authorized_checkout = GREATEST(authorized_checkout, $4::timestamp),
		    approved_overtime_minutes = GREATEST(approved_overtime_minutes, $5::integer),
		    updated_at = NOW()
		WHERE id = $1
		  AND employee_id = $2
		  AND date = $3
		  AND clock_out IS NULL
	`

	commandTag, err := q.Exec(ctx, query,
		checkout.AttendanceID,
		checkout.EmployeeID,
		checkout.Date,
		checkout.Checkout,
		checkout.OvertimeMinutes,
	)
	if err != nil {
		return false, apperror.Storage("failed to apply authorized checkout", err)
	}

	return commandTag.RowsAffected() == 1, nil
}

// CloseOpenShift implements attendance.AttendanceRepository.
func (a *attendanceRepository) CloseOpenShift(ctx context.Context, id string, clockOut time.Time) (bool, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET clock_out = $2, updated_at = NOW()
		WHERE id = $1
		  AND clock_out IS NULL
	`

	commandTag, err := q.Exec(ctx, query, id, clockOut)
	if err != nil {
		return false, apperror.Storage("failed to close attendance", err)
	}

	return commandTag.RowsAffected() == 1, nil
}

// ListByDepartmentAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByDepartmentAndDate(ctx context.Context, departmentID string, date time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + `, e.employee_number, e.full_name
		FROM attendances a
		INNER JOIN employees e ON e.id = a.employee_id
		WHERE e.department_id = $1
		  AND e.status = 'active'
		  AND a.date = $2
		ORDER BY e.full_name ASC, a.clock_in ASC
	`

	rows, err := q.Query(ctx, query, departmentID, date)
	if err != nil {
		return nil, apperror.Storage("failed to list team attendance", err)
	}
	defer rows.Close()

	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		var number, name string
		att, err := scanAttendance(rows, &number, &name)
		if err != nil {
			return nil, apperror.Storage("failed to scan attendance", err)
		}
		att.EmployeeNumber = &number
		att.EmployeeName = &name
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Storage("failed to iterate attendance", err)
	}

	return records, nil
}
