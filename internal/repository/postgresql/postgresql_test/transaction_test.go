package postgresql_test

import (
	"context"
	"errors"
	"testing"

	"github.com/cmlabs-hris/hris-overtime-go/internal/domain/overtime"
	"github.com/cmlabs-hris/hris-overtime-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactor_RollsBackOnError(t *testing.T) {
	setup := NewTestDatabase(t)
	fixture := setup.seedDirectory(t)
	repo := postgresql.NewOvertimeRequestRepository(setup.DB)
	transactor := postgresql.NewTransactor(setup.DB)
	ctx := context.Background()

	boom := errors.New("boom")
	var createdID string
	err := transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		created, err := repo.Create(ctx, newPendingRequest(fixture.EmployeeID))
		if err != nil {
			return err
		}
		createdID = created.ID
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.NotEmpty(t, createdID)

	_, err = repo.GetByID(ctx, createdID)
	assert.True(t, errors.Is(err, overtime.ErrOvertimeRequestNotFound))
}

func TestTransactor_Commits(t *testing.T) {
	setup := NewTestDatabase(t)
	fixture := setup.seedDirectory(t)
	repo := postgresql.NewOvertimeRequestRepository(setup.DB)
	transactor := postgresql.NewTransactor(setup.DB)
	ctx := context.Background()

	var createdID string
	err := transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		created, err := repo.Create(ctx, newPendingRequest(fixture.EmployeeID))
		createdID = created.ID
		return err
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, createdID)
	require.NoError(t, err)
	assert.Equal(t, overtime.StatusPending, got.Status)
}
