package sqlite

import (
	"context"
	"database/sql"
)

const createEmployeesTable = `
CREATE TABLE IF NOT EXISTS employees (
    record_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    employee_id TEXT NOT NULL UNIQUE,
    gender TEXT NOT NULL,
    department TEXT NOT NULL,
    shift TEXT NOT NULL,
    employee_type TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);
`

func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, createEmployeesTable); err != nil {
		return err
	}
	return nil
}
