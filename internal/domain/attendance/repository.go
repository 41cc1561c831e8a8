package attendance

import (
	"context"
	"time"
)

// AttendanceRepository is the attendance storage port of the overtime core.
// Records are created by the attendance-capture subsystem; this core only
// reads them and writes authorized checkouts onto open rows.
type AttendanceRepository interface {
	// ListOpenByEmployeeAndDate returns rows for the employee and date whose
	// clock-out is still unset.
	ListOpenByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]Attendance, error)

	// ApplyAuthorizedCheckout writes the checkout only if the row is still
	// open. It reports whether exactly one row was updated.
	ApplyAuthorizedCheckout(ctx context.Context, checkout AuthorizedCheckout) (bool, error)

	// CloseOpenShift sets clock-out on a row that is still open. It is the
	// attendance-capture side of the same race.
	CloseOpenShift(ctx context.Context, id string, clockOut time.Time) (bool, error)

	// ListByDepartmentAndDate returns the attendance of the department's
	// active members on date.
	ListByDepartmentAndDate(ctx context.Context, departmentID string, date time.Time) ([]Attendance, error)
}
