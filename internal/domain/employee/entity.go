package employee

import "time"

type Employee struct {
	RecordID     string
	Name         string
	EmployeeID   string
	Gender       Gender
	Department   Department
	Shift        Shift
	EmployeeType EmployeeType
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Gender string

const (
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
	GenderTransgender Gender = "transgender"
)

type Department string

const (
	DepartmentProduction  Department = "Production"
	DepartmentMaintenance Department = "Maintenance"
	DepartmentQuality     Department = "Quality"
	DepartmentPacking     Department = "Packing"
	DepartmentHR          Department = "HR"
	DepartmentSecurity    Department = "Security"
)

type Shift string

const (
	ShiftMorning Shift = "morning shift"
	ShiftMid     Shift = "mid shift"
	ShiftNight   Shift = "night shift"
)

type EmployeeType string

const (
	EmployeeTypePermanent EmployeeType = "Permanent"
	EmployeeTypeContract  EmployeeType = "Contract"
	EmployeeTypeDailyWage EmployeeType = "Daily Wage"
)

// Option sets in display order.
var (
	GenderOptions       = []string{string(GenderMale), string(GenderFemale), string(GenderTransgender)}
	DepartmentOptions   = []string{string(DepartmentProduction), string(DepartmentMaintenance), string(DepartmentQuality), string(DepartmentPacking), string(DepartmentHR), string(DepartmentSecurity)}
	ShiftOptions        = []string{string(ShiftMorning), string(ShiftMid), string(ShiftNight)}
	EmployeeTypeOptions = []string{string(EmployeeTypePermanent), string(EmployeeTypeContract), string(EmployeeTypeDailyWage)}
)

// Wire names of the six business fields, in form order.
const (
	FieldName         = "name"
	FieldEmployeeID   = "id"
	FieldGender       = "gender"
	FieldDepartment   = "department"
	FieldShift        = "shift"
	FieldEmployeeType = "employeetype"
)

var Fields = []string{FieldName, FieldEmployeeID, FieldGender, FieldDepartment, FieldShift, FieldEmployeeType}

// OptionsFor returns the fixed option set of an enum field, or nil for free-text fields.
func OptionsFor(field string) []string {
	switch field {
	case FieldGender:
		return GenderOptions
	case FieldDepartment:
		return DepartmentOptions
	case FieldShift:
		return ShiftOptions
	case FieldEmployeeType:
		return EmployeeTypeOptions
	}
	return nil
}
