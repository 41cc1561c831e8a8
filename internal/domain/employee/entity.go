package employee

import (
	"time"
)

// Employee is the directory view of an employee used by the overtime core.
type Employee struct {
	ID               string
	UserID           *string
	EmployeeNumber   string
	FullName         string
	DepartmentID     *string
	EmploymentStatus EmploymentStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusInactive   EmploymentStatus = "inactive"
	EmploymentStatusResigned   EmploymentStatus = "resigned"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)

func (e Employee) IsActive() bool {
	return e.EmploymentStatus == EmploymentStatusActive
}

// IsActiveMemberOf reports whether the employee is active and assigned to
// departmentID.
func (e Employee) IsActiveMemberOf(departmentID string) bool {
	return e.IsActive() && e.DepartmentID != nil && *e.DepartmentID == departmentID
}
