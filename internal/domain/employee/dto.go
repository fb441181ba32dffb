package employee

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/employee-entry/internal/pkg/validator"
)

// EmployeeResponse is the wire shape of one record.
type EmployeeResponse struct {
	RecordID     string    `json:"_id"`
	Name         string    `json:"name"`
	EmployeeID   string    `json:"id"`
	Gender       string    `json:"gender"`
	Department   string    `json:"department"`
	Shift        string    `json:"shift"`
	EmployeeType string    `json:"employeetype"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		RecordID:     e.RecordID,
		Name:         e.Name,
		EmployeeID:   e.EmployeeID,
		Gender:       string(e.Gender),
		Department:   string(e.Department),
		Shift:        string(e.Shift),
		EmployeeType: string(e.EmployeeType),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

type OptionsResponse struct {
	Gender       []string `json:"gender"`
	Department   []string `json:"department"`
	Shift        []string `json:"shift"`
	EmployeeType []string `json:"employeetype"`
}

// CreateEmployeeRequest carries the six business fields of a new record.
type CreateEmployeeRequest struct {
	Name         string `json:"name"`
	EmployeeID   string `json:"id"`
	Gender       string `json:"gender"`
	Department   string `json:"department"`
	Shift        string `json:"shift"`
	EmployeeType string `json:"employeetype"`
}

func (r *CreateEmployeeRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	r.Gender = strings.TrimSpace(r.Gender)
	r.Department = strings.TrimSpace(r.Department)
	r.Shift = strings.TrimSpace(r.Shift)
	r.EmployeeType = strings.TrimSpace(r.EmployeeType)
}

func (r *CreateEmployeeRequest) Validate() error {
	errs := validateFields(r.Name, r.EmployeeID, r.Gender, r.Department, r.Shift, r.EmployeeType)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *CreateEmployeeRequest) ToEntity() Employee {
	return Employee{
		Name:         r.Name,
		EmployeeID:   r.EmployeeID,
		Gender:       Gender(r.Gender),
		Department:   Department(r.Department),
		Shift:        Shift(r.Shift),
		EmployeeType: EmployeeType(r.EmployeeType),
	}
}

// UpdateEmployeeRequest replaces the business fields of the record at RecordID.
// EmployeeID must match the stored value.
type UpdateEmployeeRequest struct {
	RecordID     string `json:"-"` // From URL
	Name         string `json:"name"`
	EmployeeID   string `json:"id"`
	Gender       string `json:"gender"`
	Department   string `json:"department"`
	Shift        string `json:"shift"`
	EmployeeType string `json:"employeetype"`
}

func (r *UpdateEmployeeRequest) Normalize() {
	r.RecordID = strings.TrimSpace(r.RecordID)
	r.Name = strings.TrimSpace(r.Name)
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	r.Gender = strings.TrimSpace(r.Gender)
	r.Department = strings.TrimSpace(r.Department)
	r.Shift = strings.TrimSpace(r.Shift)
	r.EmployeeType = strings.TrimSpace(r.EmployeeType)
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RecordID) {
		errs = append(errs, validator.ValidationError{
			Field:   "_id",
			Message: "_id is required",
		})
	}

	errs = append(errs, validateFields(r.Name, r.EmployeeID, r.Gender, r.Department, r.Shift, r.EmployeeType)...)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateFields(name, employeeID, gender, department, shift, employeeType string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	// Name
	if validator.IsEmpty(name) {
		errs = append(errs, validator.ValidationError{
			Field:   FieldName,
			Message: "name is required",
		})
	} else if validator.ExceedsLength(name, 100) {
		errs = append(errs, validator.ValidationError{
			Field:   FieldName,
			Message: "name must not exceed 100 characters",
		})
	}

	// Employee ID
	if validator.IsEmpty(employeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   FieldEmployeeID,
			Message: "id is required",
		})
	} else if !validator.IsValidEmployeeID(employeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   FieldEmployeeID,
			Message: "id must be 1-32 letters, digits or . _ / -",
		})
	}

	errs = append(errs, validateOption(FieldGender, gender, GenderOptions)...)
	errs = append(errs, validateOption(FieldDepartment, department, DepartmentOptions)...)
	errs = append(errs, validateOption(FieldShift, shift, ShiftOptions)...)
	errs = append(errs, validateOption(FieldEmployeeType, employeeType, EmployeeTypeOptions)...)

	return errs
}

func validateOption(field, value string, options []string) validator.ValidationErrors {
	if validator.IsEmpty(value) {
		return validator.ValidationErrors{{
			Field:   field,
			Message: field + " is required",
		}}
	}
	if !validator.IsInSlice(value, options) {
		return validator.ValidationErrors{{
			Field:   field,
			Message: field + " must be one of: " + strings.Join(options, ", "),
		}}
	}
	return nil
}
