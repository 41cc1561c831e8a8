package department

import (
	"context"
	"time"

	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/employee"
)

// Gate decides whether a supervisor may act on an employee.
type Gate interface {
	Authorize(ctx context.Context, supervisorRef string, employeeID string) (Authorization, error)
	// Scope resolves the supervisor's active department without an employee.
	Scope(ctx context.Context, supervisorRef string) (Authorization, error)
}

type TeamService interface {
	ListMembers(ctx context.Context, supervisorRef string) ([]employee.Employee, error)
	ListAttendance(ctx context.Context, supervisorRef string, date time.Time) ([]attendance.Attendance, error)
}
