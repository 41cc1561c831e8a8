package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetActiveByDepartmentID(ctx context.Context, departmentID string) ([]Employee, error)
}
