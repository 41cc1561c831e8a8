package postgresql

import (
	"context"
	"errors"

	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/department"
	"github.com/cmlabs-hris/hris-overtime-go/internal/pkg/apperror"
	"github.com/cmlabs-hris/hris-overtime-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type directoryRepository struct {
	db *database.DB
}

func NewDirectoryRepository(db *database.DB) department.DirectoryRepository {
	return &directoryRepository{db: db}
}

// FindSupervisor implements department.DirectoryRepository.
func (r *directoryRepository) FindSupervisor(ctx context.Context, ref string) (department.Supervisor, error) {
	q := GetQuerier(ctx, r.db)

	// A directory id match wins over an account id match.
	query := `
		SELECT id, user_id, full_name, status, created_at, updated_at
		FROM supervisors
		WHERE id = $1 OR user_id = $1
		ORDER BY (id = $1) DESC
		LIMIT 1
	`

	var (
		sup    department.Supervisor
		status string
	)
	err := q.QueryRow(ctx, query, ref).Scan(
		&sup.ID, &sup.UserID, &sup.FullName, &status, &sup.CreatedAt, &sup.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Supervisor{}, department.ErrSupervisorNotFound
		}
		return department.Supervisor{}, apperror.Storage("failed to get supervisor", err)
	}
	sup.Status = department.Status(status)

	return sup, nil
}

// GetBySupervisorID implements department.DirectoryRepository.
func (r *directoryRepository) GetBySupervisorID(ctx context.Context, supervisorID string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, supervisor_id, status, created_at, updated_at
		FROM departments
		WHERE supervisor_id = $1
		ORDER BY (status = 'active') DESC, updated_at DESC
		LIMIT 1
	`

	var (
		dept   department.Department
		status string
	)
	err := q.QueryRow(ctx, query, supervisorID).Scan(
		&dept.ID, &dept.Name, &dept.SupervisorID, &status, &dept.CreatedAt, &dept.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, apperror.Storage("failed to get department", err)
	}
	dept.Status = department.Status(status)

	return dept, nil
}
