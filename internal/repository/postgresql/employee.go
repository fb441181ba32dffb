package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/employee-entry/internal/domain/employee"
	"github.com/cmlabs-hris/employee-entry/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const employeeColumns = `record_id, name, employee_id, gender, department, shift, employee_type, created_at, updated_at`

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (record_id, name, employee_id, gender, department, shift, employee_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.RecordID, newEmployee.Name, newEmployee.EmployeeID, newEmployee.Gender,
		newEmployee.Department, newEmployee.Shift, newEmployee.EmployeeType,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return employee.Employee{}, employee.ErrEmployeeIDExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

// GetByRecordID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByRecordID(ctx context.Context, recordID string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE record_id = $1`

	found, err := scanEmployee(q.QueryRow(ctx, query, recordID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee with record id %s: %w", recordID, err)
	}
	return found, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY created_at ASC, record_id ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := []employee.Employee{}
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return employees, nil
}

// ExistsByEmployeeID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE employee_id = $1)`, employeeID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Update implements employee.EmployeeRepository. The employee id column is never written.
func (e *employeeRepositoryImpl) Update(ctx context.Context, updated employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET name = $1, gender = $2, department = $3, shift = $4, employee_type = $5, updated_at = NOW()
		WHERE record_id = $6
		RETURNING ` + employeeColumns

	result, err := scanEmployee(q.QueryRow(ctx, query,
		updated.Name, updated.Gender, updated.Department, updated.Shift, updated.EmployeeType, updated.RecordID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee with record id %s: %w", updated.RecordID, err)
	}
	return result, nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, recordID string) error {
	q := GetQuerier(ctx, e.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM employees WHERE record_id = $1`, recordID)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.RecordID, &emp.Name, &emp.EmployeeID, &emp.Gender, &emp.Department,
		&emp.Shift, &emp.EmployeeType, &emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
