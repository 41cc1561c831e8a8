package department

import (
	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/employee"
)

type TeamMembersResponse struct {
	TotalCount int64                       `json:"total_count"`
	Members    []employee.EmployeeResponse `json:"members"`
}

type TeamAttendanceResponse struct {
	Date       string                          `json:"date"`
	TotalCount int64                           `json:"total_count"`
	Records    []attendance.AttendanceResponse `json:"records"`
}
