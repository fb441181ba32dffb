package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/employee-entry/internal/domain/employee"
	"github.com/mattn/go-sqlite3"
)

const employeeColumns = `record_id, name, employee_id, gender, department, shift, employee_type, created_at, updated_at`

type SqliteEmployeeRepo struct {
	db  *sql.DB
	now func() time.Time
}

func NewSqliteEmployeeRepo(db *sql.DB) *SqliteEmployeeRepo {
	return &SqliteEmployeeRepo{db: db, now: func() time.Time { return time.Now().UTC() }}
}

var _ employee.EmployeeRepository = (*SqliteEmployeeRepo)(nil)

func (r *SqliteEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	now := r.now()
	_, err := getQuerier(ctx, r.db).ExecContext(ctx,
		`INSERT INTO employees (`+employeeColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.RecordID, e.Name, e.EmployeeID, string(e.Gender), string(e.Department),
		string(e.Shift), string(e.EmployeeType), now, now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return employee.Employee{}, employee.ErrEmployeeIDExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	e.CreatedAt = now
	e.UpdatedAt = now
	return e, nil
}

func (r *SqliteEmployeeRepo) GetByRecordID(ctx context.Context, recordID string) (employee.Employee, error) {
	row := getQuerier(ctx, r.db).QueryRowContext(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE record_id = ?`, recordID)

	e, err := scanEmployee(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee with record id %s: %w", recordID, err)
	}
	return e, nil
}

func (r *SqliteEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	rows, err := getQuerier(ctx, r.db).QueryContext(ctx,
		`SELECT `+employeeColumns+` FROM employees ORDER BY created_at ASC, rowid ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := []employee.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return employees, nil
}

func (r *SqliteEmployeeRepo) ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	var exists bool
	err := getQuerier(ctx, r.db).QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM employees WHERE employee_id = ?)`, employeeID).Scan(&exists)
	return exists, err
}

// Update rewrites everything but the employee id and creation time.
func (r *SqliteEmployeeRepo) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := getQuerier(ctx, r.db)
	res, err := q.ExecContext(ctx,
		`UPDATE employees SET name = ?, gender = ?, department = ?, shift = ?, employee_type = ?, updated_at = ? WHERE record_id = ?`,
		e.Name, string(e.Gender), string(e.Department), string(e.Shift), string(e.EmployeeType), r.now(), e.RecordID,
	)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to update employee with record id %s: %w", e.RecordID, err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return r.GetByRecordID(ctx, e.RecordID)
}

func (r *SqliteEmployeeRepo) Delete(ctx context.Context, recordID string) error {
	res, err := getQuerier(ctx, r.db).ExecContext(ctx, `DELETE FROM employees WHERE record_id = ?`, recordID)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEmployee(row rowScanner) (employee.Employee, error) {
	var e employee.Employee
	var gender, department, shift, employeeType string
	err := row.Scan(&e.RecordID, &e.Name, &e.EmployeeID, &gender, &department, &shift, &employeeType, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return employee.Employee{}, err
	}
	e.Gender = employee.Gender(gender)
	e.Department = employee.Department(department)
	e.Shift = employee.Shift(shift)
	e.EmployeeType = employee.EmployeeType(employeeType)
	return e, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
