package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-overtime-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TestDatabaseSetup holds a migrated test database
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to TEST_DATABASE_URL and applies migrations. Tests
// are skipped when the variable is unset.
func NewTestDatabase(t *testing.T) *TestDatabaseSetup {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, dsn, database.PoolOptions{MaxConns: 10, MinConns: 1})
	require.NoError(t, err, "failed to connect to test database")

	require.NoError(t, database.Migrate(ctx, db))

	setup := &TestDatabaseSetup{DB: db}
	require.NoError(t, setup.TruncateAllTables(ctx))
	t.Cleanup(setup.Close)

	return setup
}

// TruncateAllTables removes all rows from every table
func (s *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	tx, err := s.DB.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tables := []string{
		"overtime_audit_logs",
		"overtime_requests",
		"attendances",
		"employees",
		"departments",
		"supervisors",
	}

	for _, table := range tables {
		_, err := tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit(ctx)
}

// Close closes the database connection
func (s *TestDatabaseSetup) Close() {
	s.DB.Close()
}

type directoryFixture struct {
	SupervisorID     string
	SupervisorUserID string
	DepartmentID     string
	EmployeeID       string
}

// seedDirectory inserts one active supervisor leading one active department
// with one active employee.
func (s *TestDatabaseSetup) seedDirectory(t *testing.T) directoryFixture {
	t.Helper()
	ctx := context.Background()

	f := directoryFixture{
		SupervisorID:     uuid.NewString(),
		SupervisorUserID: uuid.NewString(),
		DepartmentID:     uuid.NewString(),
		EmployeeID:       uuid.NewString(),
	}

	_, err := s.DB.Exec(ctx,
		`INSERT INTO supervisors (id, user_id, full_name) VALUES ($1, $2, 'Sari Supervisor')`,
		f.SupervisorID, f.SupervisorUserID)
	require.NoError(t, err)

	_, err = s.DB.Exec(ctx,
		`INSERT INTO departments (id, name, supervisor_id) VALUES ($1, 'Engineering', $2)`,
		f.DepartmentID, f.SupervisorID)
	require.NoError(t, err)

	_, err = s.DB.Exec(ctx,
		`INSERT INTO employees (id, employee_number, full_name, department_id) VALUES ($1, $2, 'Eko Employee', $3)`,
		f.EmployeeID, "EMP-"+f.EmployeeID[:8], f.DepartmentID)
	require.NoError(t, err)

	return f
}

// seedOpenShift inserts an attendance record without a clock-out.
func (s *TestDatabaseSetup) seedOpenShift(t *testing.T, employeeID string, date time.Time, clockIn time.Time) string {
	t.Helper()

	id := uuid.NewString()
	_, err := s.DB.Exec(context.Background(),
		`INSERT INTO attendances (id, employee_id, date, clock_in) VALUES ($1, $2, $3, $4)`,
		id, employeeID, date, clockIn)
	require.NoError(t, err)
	return id
}
