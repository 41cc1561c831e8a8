package overtime

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/audit"
	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/department"
	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/overtime"
)

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// fakeEmployees is an in-memory employee.EmployeeRepository.
type fakeEmployees struct {
	mu   sync.Mutex
	rows map[string]employee.Employee
}

func newFakeEmployees(rows ...employee.Employee) *fakeEmployees {
	f := &fakeEmployees{rows: map[string]employee.Employee{}}
	for _, e := range rows {
		f.rows[e.ID] = e
	}
	return f
}

func (f *fakeEmployees) put(e employee.Employee) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[e.ID] = e
}

func (f *fakeEmployees) GetByID(_ context.Context, id string) (employee.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.rows[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployees) GetActiveByDepartmentID(_ context.Context, departmentID string) ([]employee.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]employee.Employee, 0)
	for _, e := range f.rows {
		if e.IsActiveMemberOf(departmentID) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FullName < out[j].FullName })
	return out, nil
}

// fakeDirectory is an in-memory department.DirectoryRepository.
type fakeDirectory struct {
	mu          sync.Mutex
	supervisors map[string]department.Supervisor
	departments map[string]department.Department
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{
		supervisors: map[string]department.Supervisor{},
		departments: map[string]department.Department{},
	}
}

func (f *fakeDirectory) addSupervisor(s department.Supervisor) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.supervisors[s.ID] = s
}

func (f *fakeDirectory) addDepartment(d department.Department) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.departments[d.ID] = d
}

func (f *fakeDirectory) FindSupervisor(_ context.Context, ref string) (department.Supervisor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.supervisors[ref]; ok {
		return s, nil
	}
	for _, s := range f.supervisors {
		if s.UserID != nil && *s.UserID == ref {
			return s, nil
		}
	}
	return department.Supervisor{}, department.ErrSupervisorNotFound
}

func (f *fakeDirectory) GetBySupervisorID(_ context.Context, supervisorID string) (department.Department, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var found *department.Department
	for _, d := range f.departments {
		if d.SupervisorID == nil || *d.SupervisorID != supervisorID {
			continue
		}
		d := d
		if found == nil || (d.IsActive() && !found.IsActive()) {
			found = &d
		}
	}
	if found == nil {
		return department.Department{}, department.ErrDepartmentNotFound
	}
	return *found, nil
}

// fakeRequests is an in-memory overtime.OvertimeRequestRepository with the
// same conditional-update semantics as the PostgreSQL implementation.
type fakeRequests struct {
	mu        sync.Mutex
	rows      map[string]overtime.OvertimeRequest
	seq       int
	employees *fakeEmployees

	// getErr and decisionErr simulate storage failures on the decision path.
	getErr      error
	decisionErr error
}

func newFakeRequests(employees *fakeEmployees) *fakeRequests {
	return &fakeRequests{rows: map[string]overtime.OvertimeRequest{}, employees: employees}
}

func (f *fakeRequests) Create(_ context.Context, r overtime.OvertimeRequest) (overtime.OvertimeRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	r.ID = fmt.Sprintf("req-%d", f.seq)
	r.CreatedAt = time.Now()
	r.UpdatedAt = r.CreatedAt
	f.rows[r.ID] = r
	return r, nil
}

func (f *fakeRequests) GetByID(_ context.Context, id string) (overtime.OvertimeRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return overtime.OvertimeRequest{}, f.getErr
	}
	r, ok := f.rows[id]
	if !ok {
		return overtime.OvertimeRequest{}, overtime.ErrOvertimeRequestNotFound
	}
	return r, nil
}

func (f *fakeRequests) ListByEmployeeID(_ context.Context, employeeID string) ([]overtime.OvertimeRequest, error) {
	return f.filter(func(r overtime.OvertimeRequest) bool { return r.EmployeeID == employeeID }), nil
}

func (f *fakeRequests) ListByDepartmentID(ctx context.Context, departmentID string) ([]overtime.OvertimeRequest, error) {
	return f.filter(func(r overtime.OvertimeRequest) bool {
		e, err := f.employees.GetByID(ctx, r.EmployeeID)
		return err == nil && e.IsActiveMemberOf(departmentID)
	}), nil
}

func (f *fakeRequests) filter(keep func(overtime.OvertimeRequest) bool) []overtime.OvertimeRequest {
	f.mu.Lock()
	rows := make([]overtime.OvertimeRequest, 0, len(f.rows))
	for _, r := range f.rows {
		rows = append(rows, r)
	}
	f.mu.Unlock()

	out := make([]overtime.OvertimeRequest, 0)
	for _, r := range rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeRequests) ApplyDecision(_ context.Context, id string, status overtime.Status, approverID string, remarks *string, decidedAt time.Time) (overtime.OvertimeRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.decisionErr != nil {
		return overtime.OvertimeRequest{}, f.decisionErr
	}
	r, ok := f.rows[id]
	if !ok {
		return overtime.OvertimeRequest{}, overtime.ErrOvertimeRequestNotFound
	}
	if r.Status != overtime.StatusPending {
		return overtime.OvertimeRequest{}, overtime.ErrRequestAlreadyDecided
	}
	r.Status = status
	r.ApprovedBy = &approverID
	r.ApprovedAt = &decidedAt
	r.Remarks = remarks
	r.UpdatedAt = decidedAt
	f.rows[id] = r
	return r, nil
}

// fakeAttendance is an in-memory attendance.AttendanceRepository.
type fakeAttendance struct {
	mu       sync.Mutex
	rows     map[string]attendance.Attendance
	listErr  error
	applyErr error
	// beforeApply runs inside ApplyAuthorizedCheckout before the row is
	// checked, to simulate a concurrent clock-out.
	beforeApply func()
}

func newFakeAttendance(rows ...attendance.Attendance) *fakeAttendance {
	f := &fakeAttendance{rows: map[string]attendance.Attendance{}}
	for _, a := range rows {
		f.rows[a.ID] = a
	}
	return f
}

func (f *fakeAttendance) get(id string) attendance.Attendance {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rows[id]
}

func (f *fakeAttendance) ListOpenByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) ([]attendance.Attendance, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []attendance.Attendance
	for _, a := range f.rows {
		if a.EmployeeID == employeeID && sameDay(a.Date, date) && a.IsOpen() {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAttendance) ApplyAuthorizedCheckout(_ context.Context, c attendance.AuthorizedCheckout) (bool, error) {
	if f.applyErr != nil {
		return false, f.applyErr
	}
	if f.beforeApply != nil {
		f.beforeApply()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.rows[c.AttendanceID]
	if !ok || a.EmployeeID != c.EmployeeID || !sameDay(a.Date, c.Date) || !a.IsOpen() {
		return false, nil
	}
	if a.AuthorizedCheckout == nil || c.Checkout.After(*a.AuthorizedCheckout) {
		checkout := c.Checkout
		a.AuthorizedCheckout = &checkout
	}
	if a.ApprovedOvertimeMinutes == nil || c.OvertimeMinutes > *a.ApprovedOvertimeMinutes {
		minutes := c.OvertimeMinutes
		a.ApprovedOvertimeMinutes = &minutes
	}
	f.rows[a.ID] = a
	return true, nil
}

func (f *fakeAttendance) CloseOpenShift(_ context.Context, id string, clockOut time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.rows[id]
	if !ok || !a.IsOpen() {
		return false, nil
	}
	a.ClockOut = &clockOut
	f.rows[id] = a
	return true, nil
}

func (f *fakeAttendance) ListByDepartmentAndDate(context.Context, string, time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}

// fakeTransactor runs fn without a transaction.
type fakeTransactor struct{}

func (fakeTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// recordingRecorder captures audit events synchronously.
type recordingRecorder struct {
	mu     sync.Mutex
	events []audit.Event
}

func (r *recordingRecorder) Record(_ context.Context, e audit.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingRecorder) snapshot() []audit.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]audit.Event(nil), r.events...)
}
