package attendance

import (
	"time"
)

type Attendance struct {
	ID                      string
	EmployeeID              string
	Date                    time.Time
	ClockIn                 *time.Time
	ClockOut                *time.Time
	AuthorizedCheckout      *time.Time
	ApprovedOvertimeMinutes *int
	WorkHoursInMinutes      *int
	LateMinutes             *int
	IsHoliday               bool
	CreatedAt               time.Time
	UpdatedAt               time.Time

	// DTO
	EmployeeNumber *string
	EmployeeName   *string
}

// IsOpen reports whether the shift has not been closed yet.
func (a Attendance) IsOpen() bool {
	return a.ClockOut == nil
}

// AuthorizedCheckout is the conditional write issued for an approved overtime
// request. The row is only touched while it still matches EmployeeID, Date and
// an unset clock-out.
type AuthorizedCheckout struct {
	AttendanceID    string
	EmployeeID      string
	Date            time.Time
	Checkout        time.Time
	OvertimeMinutes int
}
