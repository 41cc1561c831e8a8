package employee

type EmployeeResponse struct {
	ID             string  `json:"id"`
	EmployeeNumber string  `json:"employee_number"`
	FullName       string  `json:"full_name"`
	DepartmentID   *string `json:"department_id,omitempty"`
	Status         string  `json:"status"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		EmployeeNumber: e.EmployeeNumber,
		FullName:       e.FullName,
		DepartmentID:   e.DepartmentID,
		Status:         string(e.EmploymentStatus),
	}
}
