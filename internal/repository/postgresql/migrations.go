package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/employee-entry/internal/pkg/database"
)

const createEmployeesTable = `
CREATE TABLE IF NOT EXISTS employees (
	record_id     UUID PRIMARY KEY,
	name          VARCHAR(100) NOT NULL,
	employee_id   VARCHAR(32)  NOT NULL UNIQUE,
	gender        VARCHAR(20)  NOT NULL,
	department    VARCHAR(20)  NOT NULL,
	shift         VARCHAR(20)  NOT NULL,
	employee_type VARCHAR(20)  NOT NULL,
	created_at    TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ  NOT NULL DEFAULT NOW()
)
`

const createEmployeesCreatedAtIndex = `
CREATE INDEX IF NOT EXISTS idx_employees_created_at ON employees (created_at)
`

// Migrate creates the schema when it does not exist yet.
func Migrate(ctx context.Context, db *database.DB) error {
	for _, stmt := range []string{createEmployeesTable, createEmployeesCreatedAtIndex} {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate employees: %w", err)
		}
	}
	return nil
}
