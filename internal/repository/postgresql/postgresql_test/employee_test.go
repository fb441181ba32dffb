package postgresql_test

import (
	"context"
	"errors"
	"testing"

	"github.com/cmlabs-hris/employee-entry/internal/domain/employee"
	"github.com/cmlabs-hris/employee-entry/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEmployee(t *testing.T, employeeID string) employee.Employee {
	id, err := uuid.NewV7()
	require.NoError(t, err)
	return employee.Employee{
		RecordID:     id.String(),
		Name:         "Test " + employeeID,
		EmployeeID:   employeeID,
		Gender:       employee.GenderFemale,
		Department:   employee.DepartmentPacking,
		Shift:        employee.ShiftMorning,
		EmployeeType: employee.EmployeeTypePermanent,
	}
}

func TestEmployeeRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	setup := NewTestDatabase(t)
	repo := postgresql.NewEmployeeRepository(setup.DB)

	created, err := repo.Create(ctx, newTestEmployee(t, "PG-001"))
	require.NoError(t, err)
	assert.Equal(t, "PG-001", created.EmployeeID)
	assert.False(t, created.CreatedAt.IsZero())

	found, err := repo.GetByRecordID(ctx, created.RecordID)
	require.NoError(t, err)
	assert.Equal(t, created.RecordID, found.RecordID)
	assert.Equal(t, employee.ShiftMorning, found.Shift)

	exists, err := repo.ExistsByEmployeeID(ctx, "PG-001")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestEmployeeRepository_Create_DuplicateEmployeeID(t *testing.T) {
	ctx := context.Background()
	setup := NewTestDatabase(t)
	repo := postgresql.NewEmployeeRepository(setup.DB)

	_, err := repo.Create(ctx, newTestEmployee(t, "PG-DUP"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newTestEmployee(t, "PG-DUP"))
	assert.ErrorIs(t, err, employee.ErrEmployeeIDExists)
}

func TestEmployeeRepository_UpdateListDelete(t *testing.T) {
	ctx := context.Background()
	setup := NewTestDatabase(t)
	repo := postgresql.NewEmployeeRepository(setup.DB)

	first, err := repo.Create(ctx, newTestEmployee(t, "PG-A"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newTestEmployee(t, "PG-B"))
	require.NoError(t, err)

	first.Name = "Renamed"
	first.Shift = employee.ShiftNight
	updated, err := repo.Update(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, employee.ShiftNight, updated.Shift)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "PG-A", list[0].EmployeeID)

	require.NoError(t, repo.Delete(ctx, first.RecordID))
	assert.ErrorIs(t, repo.Delete(ctx, first.RecordID), employee.ErrEmployeeNotFound)

	_, err = repo.GetByRecordID(ctx, first.RecordID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestTransactor_RollbackOnError(t *testing.T) {
	ctx := context.Background()
	setup := NewTestDatabase(t)
	repo := postgresql.NewEmployeeRepository(setup.DB)
	tx := postgresql.NewTransactor(setup.DB)

	boom := errors.New("boom")
	err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := repo.Create(ctx, newTestEmployee(t, "PG-TX")); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	exists, err := repo.ExistsByEmployeeID(ctx, "PG-TX")
	require.NoError(t, err)
	assert.False(t, exists)
}
