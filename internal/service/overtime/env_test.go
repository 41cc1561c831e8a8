package overtime

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/department"
	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/overtime"
	departmentService "github.com/cmlabs-hris/hris-overtime-go/internal/service/department"
	"github.com/stretchr/testify/require"
)

const (
	supervisorEng     = "sup-eng"
	supervisorEngUser = "user-sup-eng"
	supervisorOps     = "sup-ops"
	supervisorOpsUser = "user-sup-ops"
	deptEng           = "dept-eng"
	deptOps           = "dept-ops"
	employeeEng       = "emp-42"
	employeeOps       = "emp-77"
)

var march1 = time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

type testEnv struct {
	directory  *fakeDirectory
	employees  *fakeEmployees
	requests   *fakeRequests
	attendance *fakeAttendance
	recorder   *recordingRecorder
	service    overtime.OvertimeService
	workflow   overtime.Workflow
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

// newTestEnv builds two departments, each led by an active supervisor with
// one active employee.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	directory := newFakeDirectory()
	directory.addSupervisor(department.Supervisor{ID: supervisorEng, UserID: strPtr(supervisorEngUser), FullName: "Sari", Status: department.StatusActive})
	directory.addSupervisor(department.Supervisor{ID: supervisorOps, UserID: strPtr(supervisorOpsUser), FullName: "Oki", Status: department.StatusActive})
	directory.addDepartment(department.Department{ID: deptEng, Name: "Engineering", SupervisorID: strPtr(supervisorEng), Status: department.StatusActive})
	directory.addDepartment(department.Department{ID: deptOps, Name: "Operations", SupervisorID: strPtr(supervisorOps), Status: department.StatusActive})

	employees := newFakeEmployees(
		employee.Employee{ID: employeeEng, EmployeeNumber: "EMP-042", FullName: "Eko", DepartmentID: strPtr(deptEng), EmploymentStatus: employee.EmploymentStatusActive},
		employee.Employee{ID: employeeOps, EmployeeNumber: "EMP-077", FullName: "Ayu", DepartmentID: strPtr(deptOps), EmploymentStatus: employee.EmploymentStatusActive},
	)

	requests := newFakeRequests(employees)
	attendanceRepo := newFakeAttendance()
	recorder := &recordingRecorder{}
	gate := departmentService.NewGate(directory, employees)

	return &testEnv{
		directory:  directory,
		employees:  employees,
		requests:   requests,
		attendance: attendanceRepo,
		recorder:   recorder,
		service:    NewOvertimeService(fakeTransactor{}, requests, employees, gate, recorder),
		workflow:   NewWorkflow(requests, gate, NewReconciler(attendanceRepo, time.UTC), recorder),
	}
}

// openShift adds an open attendance row clocked in at 09:00 UTC on date.
func (e *testEnv) openShift(id, employeeID string, date time.Time) {
	clockIn := date.Add(9 * time.Hour)
	e.attendance.mu.Lock()
	defer e.attendance.mu.Unlock()
	e.attendance.rows[id] = attendance.Attendance{
		ID:         id,
		EmployeeID: employeeID,
		Date:       date,
		ClockIn:    &clockIn,
	}
}

// file submits a request for employeeID on 2024-03-01 and returns its id.
func (e *testEnv) file(t *testing.T, employeeID string, hours, minutes *int, endTime string) string {
	t.Helper()
	id, err := e.service.Create(context.Background(), overtime.CreateOvertimeRequestRequest{
		EmployeeID:       employeeID,
		FilingDate:       "2024-03-01",
		RequestedHours:   hours,
		RequestedMinutes: minutes,
		RequestedEndTime: endTime,
		TaskDescription:  strPtr("release preparation"),
	})
	require.NoError(t, err)
	return id
}

func (e *testEnv) status(t *testing.T, id string) overtime.Status {
	t.Helper()
	r, err := e.requests.GetByID(context.Background(), id)
	require.NoError(t, err)
	return r.Status
}
