package attendance

import "time"

type AttendanceResponse struct {
	ID                      string  `json:"id"`
	EmployeeID              string  `json:"employee_id"`
	EmployeeNumber          *string `json:"employee_number,omitempty"`
	EmployeeName            *string `json:"employee_name,omitempty"`
	Date                    string  `json:"date"`
	ClockIn                 *string `json:"clock_in,omitempty"`
	ClockOut                *string `json:"clock_out,omitempty"`
	AuthorizedCheckout      *string `json:"authorized_checkout,omitempty"`
	ApprovedOvertimeMinutes *int    `json:"approved_overtime_minutes,omitempty"`
	WorkHoursInMinutes      *int    `json:"work_hours_in_minutes,omitempty"`
	LateMinutes             *int    `json:"late_minutes,omitempty"`
	IsHoliday               bool    `json:"is_holiday"`
}

func NewAttendanceResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:                      a.ID,
		EmployeeID:              a.EmployeeID,
		EmployeeNumber:          a.EmployeeNumber,
		EmployeeName:            a.EmployeeName,
		Date:                    a.Date.Format("2006-01-02"),
		ClockIn:                 formatTime(a.ClockIn, time.RFC3339),
		ClockOut:                formatTime(a.ClockOut, time.RFC3339),
		AuthorizedCheckout:      formatTime(a.AuthorizedCheckout, "2006-01-02T15:04:05"),
		ApprovedOvertimeMinutes: a.ApprovedOvertimeMinutes,
		WorkHoursInMinutes:      a.WorkHoursInMinutes,
		LateMinutes:             a.LateMinutes,
		IsHoliday:               a.IsHoliday,
	}
}

func formatTime(t *time.Time, layout string) *string {
	if t == nil {
		return nil
	}
	s := t.Format(layout)
	return &s
}
