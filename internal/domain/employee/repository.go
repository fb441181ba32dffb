package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByRecordID(ctx context.Context, recordID string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error)
	Update(ctx context.Context, updated Employee) (Employee, error)
	Delete(ctx context.Context, recordID string) error
}

// Transactor runs fn inside a storage transaction. Repositories called with the
// ctx passed to fn join that transaction.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
