package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-overtime-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceRepository_ApplyAuthorizedCheckout(t *testing.T) {
	setup := NewTestDatabase(t)
	fixture := setup.seedDirectory(t)
	repo := postgresql.NewAttendanceRepository(setup.DB)
	ctx := context.Background()

	attID := setup.seedOpenShift(t, fixture.EmployeeID, march1, march1.Add(9*time.Hour))

	open, err := repo.ListOpenByEmployeeAndDate(ctx, fixture.EmployeeID, march1)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, attID, open[0].ID)

	applied, err := repo.ApplyAuthorizedCheckout(ctx, attendance.AuthorizedCheckout{
		AttendanceID:    attID,
		EmployeeID:      fixture.EmployeeID,
		Date:            march1,
		Checkout:        time.Date(2024, time.March, 1, 20, 0, 0, 0, time.UTC),
		OvertimeMinutes: 180,
	})
	require.NoError(t, err)
	assert.True(t, applied)

	// A shorter overlapping approval does not shrink the record.
	applied, err = repo.ApplyAuthorizedCheckout(ctx, attendance.AuthorizedCheckout{
		AttendanceID:    attID,
		EmployeeID:      fixture.EmployeeID,
		Date:            march1,
		Checkout:        time.Date(2024, time.March, 1, 18, 0, 0, 0, time.UTC),
		OvertimeMinutes: 60,
	})
	require.NoError(t, err)
	assert.True(t, applied)

	open, err = repo.ListOpenByEmployeeAndDate(ctx, fixture.EmployeeID, march1)
	require.NoError(t, err)
	require.Len(t, open, 1)
	require.NotNil(t, open[0].AuthorizedCheckout)
	assert.Equal(t, "2024-03-01 20:00", open[0].AuthorizedCheckout.Format("2006-01-02 15:04"))
	require.NotNil(t, open[0].ApprovedOvertimeMinutes)
	assert.Equal(t, 180, *open[0].ApprovedOvertimeMinutes)
}

func TestAttendanceRepository_ClosedShiftIsNotUpdated(t *testing.T) {
	setup := NewTestDatabase(t)
	fixture := setup.seedDirectory(t)
	repo := postgresql.NewAttendanceRepository(setup.DB)
	ctx := context.Background()

	attID := setup.seedOpenShift(t, fixture.EmployeeID, march1, march1.Add(9*time.Hour))

	closed, err := repo.CloseOpenShift(ctx, attID, march1.Add(17*time.Hour))
	require.NoError(t, err)
	assert.True(t, closed)

	closed, err = repo.CloseOpenShift(ctx, attID, march1.Add(18*time.Hour))
	require.NoError(t, err)
	assert.False(t, closed)

	applied, err := repo.ApplyAuthorizedCheckout(ctx, attendance.AuthorizedCheckout{
		AttendanceID:    attID,
		EmployeeID:      fixture.EmployeeID,
		Date:            march1,
		Checkout:        march1.Add(19 * time.Hour),
		OvertimeMinutes: 60,
	})
	require.NoError(t, err)
	assert.False(t, applied)

	open, err := repo.ListOpenByEmployeeAndDate(ctx, fixture.EmployeeID, march1)
	require.NoError(t, err)
	assert.Empty(t, open)
}

func TestAttendanceRepository_MismatchedRowIsNotUpdated(t *testing.T) {
	setup := NewTestDatabase(t)
	fixture := setup.seedDirectory(t)
	repo := postgresql.NewAttendanceRepository(setup.DB)

	attID := setup.seedOpenShift(t, fixture.EmployeeID, march1, march1.Add(9*time.Hour))

	applied, err := repo.ApplyAuthorizedCheckout(context.Background(), attendance.AuthorizedCheckout{
		AttendanceID:    attID,
		EmployeeID:      fixture.EmployeeID,
		Date:            march1.AddDate(0, 0, 1),
		Checkout:        march1.Add(19 * time.Hour),
		OvertimeMinutes: 60,
	})
	require.NoError(t, err)
	assert.False(t, applied)
}

func TestAttendanceRepository_ListByDepartmentAndDate(t *testing.T) {
	setup := NewTestDatabase(t)
	fixture := setup.seedDirectory(t)
	repo := postgresql.NewAttendanceRepository(setup.DB)

	attID := setup.seedOpenShift(t, fixture.EmployeeID, march1, march1.Add(9*time.Hour))
	setup.seedOpenShift(t, fixture.EmployeeID, march1.AddDate(0, 0, 1), march1.Add(33*time.Hour))

	records, err := repo.ListByDepartmentAndDate(context.Background(), fixture.DepartmentID, march1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, attID, records[0].ID)
	require.NotNil(t, records[0].EmployeeName)
	assert.Equal(t, "Eko Employee", *records[0].EmployeeName)
}
