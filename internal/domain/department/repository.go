package department

import "context"

// DirectoryRepository reads the supervisor and department directory.
type DirectoryRepository interface {
	// FindSupervisor matches ref against the supervisor id or its account
	// user id.
	FindSupervisor(ctx context.Context, ref string) (Supervisor, error)
	// GetBySupervisorID returns the department led by the supervisor,
	// preferring an active one.
	GetBySupervisorID(ctx context.Context, supervisorID string) (Department, error)
}
