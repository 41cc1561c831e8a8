package department

import (
	"context"
	"time"

	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/department"
	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/employee"
)

type teamService struct {
	gate       department.Gate
	employees  employee.EmployeeRepository
	attendance attendance.AttendanceRepository
}

func NewTeamService(gate department.Gate, employees employee.EmployeeRepository, attendanceRepo attendance.AttendanceRepository) department.TeamService {
	return &teamService{
		gate:       gate,
		employees:  employees,
		attendance: attendanceRepo,
	}
}

// ListMembers implements department.TeamService.
func (s *teamService) ListMembers(ctx context.Context, supervisorRef string) ([]employee.Employee, error) {
	departmentID, err := s.resolveDepartment(ctx, supervisorRef)
	if err != nil {
		return nil, err
	}
	return s.employees.GetActiveByDepartmentID(ctx, departmentID)
}

// ListAttendance implements department.TeamService.
func (s *teamService) ListAttendance(ctx context.Context, supervisorRef string, date time.Time) ([]attendance.Attendance, error) {
	departmentID, err := s.resolveDepartment(ctx, supervisorRef)
	if err != nil {
		return nil, err
	}
	return s.attendance.ListByDepartmentAndDate(ctx, departmentID, date)
}

func (s *teamService) resolveDepartment(ctx context.Context, supervisorRef string) (string, error) {
	auth, err := s.gate.Scope(ctx, supervisorRef)
	if err != nil {
		return "", err
	}
	if !auth.Authorized {
		return "", department.ForbiddenError(auth)
	}
	return auth.DepartmentID, nil
}
