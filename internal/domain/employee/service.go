package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// ListEmployees returns every record, oldest first
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// GetEmployee retrieves a single record by its record id
	GetEmployee(ctx context.Context, recordID string) (EmployeeResponse, error)

	// CreateEmployee creates a new record
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// UpdateEmployee replaces the business fields of an existing record
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee hard deletes a record
	DeleteEmployee(ctx context.Context, recordID string) error

	// Options returns the fixed option sets
	Options(ctx context.Context) OptionsResponse
}
