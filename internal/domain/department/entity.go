package department

import "time"

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type Department struct {
	ID           string
	Name         string
	SupervisorID *string
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (d Department) IsActive() bool {
	return d.Status == StatusActive
}

type Supervisor struct {
	ID        string
	UserID    *string
	FullName  string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s Supervisor) IsActive() bool {
	return s.Status == StatusActive
}

// Reason explains a denied authorization.
type Reason string

const (
	ReasonNone                   Reason = ""
	ReasonSupervisorNotFound     Reason = "supervisor_not_found"
	ReasonSupervisorInactive     Reason = "supervisor_inactive"
	ReasonSupervisorNoDepartment Reason = "supervisor_has_no_department"
	ReasonDepartmentInactive     Reason = "department_inactive"
	ReasonEmployeeNotInDept      Reason = "employee_not_in_department"
)

// Authorization is the result of walking the supervisor -> department ->
// employee chain. DepartmentID is set whenever the supervisor resolved to a
// department, even if the walk was denied further down.
type Authorization struct {
	Authorized   bool
	SupervisorID string
	DepartmentID string
	Reason       Reason
}

// Denied builds a not-authorized result for reason.
func Denied(reason Reason) Authorization {
	return Authorization{Reason: reason}
}
