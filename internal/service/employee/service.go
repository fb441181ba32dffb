package employee

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/employee-entry/internal/domain/employee"
	"github.com/cmlabs-hris/employee-entry/internal/pkg/validator"
	"github.com/google/uuid"
)

type EmployeeServiceImpl struct {
	transactor   employee.Transactor
	employeeRepo employee.EmployeeRepository
	newRecordID  func() (string, error)
}

func NewEmployeeService(
	transactor employee.Transactor,
	employeeRepo employee.EmployeeRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		transactor:   transactor,
		employeeRepo: employeeRepo,
		newRecordID:  newUUIDv7,
	}
}

func newUUIDv7() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.NewEmployeeResponse(e))
	}
	return responses, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, recordID string) (employee.EmployeeResponse, error) {
	if !validator.IsValidUUID(recordID) {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}

	found, err := s.employeeRepo.GetByRecordID(ctx, recordID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(found), nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	exists, err := s.employeeRepo.ExistsByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee id: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrEmployeeIDExists
	}

	recordID, err := s.newRecordID()
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to generate record id: %w", err)
	}

	entity := req.ToEntity()
	entity.RecordID = recordID

	// The unique index still guards the race between the check and the insert.
	created, err := s.employeeRepo.Create(ctx, entity)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	slog.Info("Employee created", "record_id", created.RecordID, "employee_id", created.EmployeeID)
	return employee.NewEmployeeResponse(created), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if !validator.IsValidUUID(req.RecordID) {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}

	var updated employee.Employee
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		current, err := s.employeeRepo.GetByRecordID(ctx, req.RecordID)
		if err != nil {
			return err
		}
		if current.EmployeeID != req.EmployeeID {
			return employee.ErrEmployeeIDImmutable
		}

		current.Name = req.Name
		current.Gender = employee.Gender(req.Gender)
		current.Department = employee.Department(req.Department)
		current.Shift = employee.Shift(req.Shift)
		current.EmployeeType = employee.EmployeeType(req.EmployeeType)

		updated, err = s.employeeRepo.Update(ctx, current)
		return err
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	slog.Info("Employee updated", "record_id", updated.RecordID, "employee_id", updated.EmployeeID)
	return employee.NewEmployeeResponse(updated), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, recordID string) error {
	if !validator.IsValidUUID(recordID) {
		return employee.ErrEmployeeNotFound
	}

	if err := s.employeeRepo.Delete(ctx, recordID); err != nil {
		return err
	}

	slog.Info("Employee deleted", "record_id", recordID)
	return nil
}

// Options implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Options(ctx context.Context) employee.OptionsResponse {
	return employee.OptionsResponse{
		Gender:       employee.GenderOptions,
		Department:   employee.DepartmentOptions,
		Shift:        employee.ShiftOptions,
		EmployeeType: employee.EmployeeTypeOptions,
	}
}
