package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/employee-entry/internal/domain/employee"
	"github.com/cmlabs-hris/employee-entry/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*SqliteEmployeeRepo, employee.Transactor) {
	t.Helper()
	ctx := context.Background()

	db, err := database.NewSQLiteDB(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, Migrate(ctx, db))

	return NewSqliteEmployeeRepo(db), NewTransactor(db)
}

func newTestEmployee(t *testing.T, employeeID string) employee.Employee {
	id, err := uuid.NewV7()
	require.NoError(t, err)
	return employee.Employee{
		RecordID:     id.String(),
		Name:         "Test " + employeeID,
		EmployeeID:   employeeID,
		Gender:       employee.GenderMale,
		Department:   employee.DepartmentProduction,
		Shift:        employee.ShiftMid,
		EmployeeType: employee.EmployeeTypeContract,
	}
}

func TestSqliteEmployeeRepo_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	input := newTestEmployee(t, "E001")
	created, err := repo.Create(ctx, input)
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())

	found, err := repo.GetByRecordID(ctx, input.RecordID)
	require.NoError(t, err)
	assert.Equal(t, input.RecordID, found.RecordID)
	assert.Equal(t, "Test E001", found.Name)
	assert.Equal(t, employee.DepartmentProduction, found.Department)
	assert.Equal(t, employee.ShiftMid, found.Shift)
	assert.Equal(t, employee.EmployeeTypeContract, found.EmployeeType)
	assert.WithinDuration(t, created.CreatedAt, found.CreatedAt, time.Millisecond)
}

func TestSqliteEmployeeRepo_GetByRecordID_NotFound(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.GetByRecordID(context.Background(), "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestSqliteEmployeeRepo_Create_DuplicateEmployeeID(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	_, err := repo.Create(ctx, newTestEmployee(t, "E001"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newTestEmployee(t, "E001"))
	assert.ErrorIs(t, err, employee.ErrEmployeeIDExists)

	exists, err := repo.ExistsByEmployeeID(ctx, "E001")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmployeeID(ctx, "E404")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSqliteEmployeeRepo_List_CreationOrder(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	for _, id := range []string{"E003", "E001", "E002"} {
		_, err := repo.Create(ctx, newTestEmployee(t, id))
		require.NoError(t, err)
	}

	list, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "E003", list[0].EmployeeID)
	assert.Equal(t, "E001", list[1].EmployeeID)
	assert.Equal(t, "E002", list[2].EmployeeID)
}

func TestSqliteEmployeeRepo_Update_KeepsEmployeeID(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	created, err := repo.Create(ctx, newTestEmployee(t, "E001"))
	require.NoError(t, err)

	changed := created
	changed.Name = "Renamed"
	changed.EmployeeID = "E999"
	changed.Gender = employee.GenderTransgender

	updated, err := repo.Update(ctx, changed)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "E001", updated.EmployeeID)
	assert.Equal(t, employee.GenderTransgender, updated.Gender)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestSqliteEmployeeRepo_Update_NotFound(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.Update(context.Background(), newTestEmployee(t, "E001"))
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestSqliteEmployeeRepo_Delete(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	created, err := repo.Create(ctx, newTestEmployee(t, "E001"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.RecordID))
	assert.ErrorIs(t, repo.Delete(ctx, created.RecordID), employee.ErrEmployeeNotFound)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestTransactor_CommitAndRollback(t *testing.T) {
	ctx := context.Background()
	repo, tx := newTestRepo(t)

	err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
		_, err := repo.Create(ctx, newTestEmployee(t, "KEEP"))
		return err
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := repo.Create(ctx, newTestEmployee(t, "DROP")); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	kept, err := repo.ExistsByEmployeeID(ctx, "KEEP")
	require.NoError(t, err)
	assert.True(t, kept)

	dropped, err := repo.ExistsByEmployeeID(ctx, "DROP")
	require.NoError(t, err)
	assert.False(t, dropped)
}
