package employee

import "errors"

var (
	ErrEmployeeNotFound       = errors.New("employee not found")
	ErrEmployeeIDExists       = errors.New("employee id already exists")
	ErrEmployeeIDImmutable    = errors.New("employee id cannot be changed")
	ErrMandatoryFieldsMissing = errors.New("all fields are mandatory")
)
