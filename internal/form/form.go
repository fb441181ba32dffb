// Package form holds the state of the employee entry form: the six field
// values, the record being edited, the loaded list and the visible error.
// It drives the employee API the same way the browser page does.
package form

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/cmlabs-hris/employee-entry/internal/domain/employee"
	"github.com/cmlabs-hris/employee-entry/internal/pkg/empclient"
)

const (
	MandatoryFieldsWarning = "⚠️ All fields are mandatory"
	FallbackError          = "Something went wrong"
)

var (
	ErrUnknownField     = errors.New("unknown field")
	ErrEmployeeIDLocked = errors.New("employee id cannot be edited while updating a record")
	ErrInvalidOption    = errors.New("value is not one of the field's options")
)

// API is the subset of the employee REST client the form needs.
type API interface {
	List(ctx context.Context) ([]empclient.Employee, error)
	Create(ctx context.Context, values empclient.Values) (empclient.Employee, error)
	Update(ctx context.Context, recordID string, values empclient.Values) (empclient.Employee, error)
	Delete(ctx context.Context, recordID string) error
}

// State is a copy of everything the page renders.
type State struct {
	Values    empclient.Values
	EditID    string
	Employees []empclient.Employee
	Error     string
}

// Editing reports whether submit will update an existing record.
func (s State) Editing() bool {
	return s.EditID != ""
}

type Form struct {
	api    API
	logger *slog.Logger

	mu    sync.Mutex
	state State
}

func New(api API, logger *slog.Logger) *Form {
	if logger == nil {
		logger = slog.Default()
	}
	return &Form{
		api:    api,
		logger: logger,
		state:  State{Employees: []empclient.Employee{}},
	}
}

// Snapshot returns a copy of the current state.
func (f *Form) Snapshot() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	s := f.state
	s.Employees = append([]empclient.Employee(nil), f.state.Employees...)
	return s
}

// IDEditable is false while an edit target is set.
func (f *Form) IDEditable() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.EditID == ""
}

func (f *Form) SubmitLabel() string {
	if f.IDEditable() {
		return "Add Employee"
	}
	return "Update Employee"
}

// Options returns the dropdown choices for an enum field, nil for free text.
func Options(field string) []string {
	return employee.OptionsFor(field)
}

// Load fetches every record into the list. Failures are logged and otherwise
// leave the state untouched.
func (f *Form) Load(ctx context.Context) error {
	employees, err := f.api.List(ctx)
	if err != nil {
		if msg, ok := empclient.ServerMessage(err); ok {
			f.logger.Error("Failed to load employees", "message", msg)
		} else {
			f.logger.Error("Failed to load employees", "error", err)
		}
		return err
	}
	if employees == nil {
		employees = []empclient.Employee{}
	}

	f.mu.Lock()
	f.state.Employees = employees
	f.mu.Unlock()
	return nil
}

// Change sets one field and clears the visible error.
func (f *Form) Change(field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if field == employee.FieldEmployeeID && f.state.EditID != "" {
		return ErrEmployeeIDLocked
	}

	target := fieldRef(&f.state.Values, field)
	if target == nil {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	// Enum fields behave like a select: a listed option or the empty placeholder.
	if opts := employee.OptionsFor(field); opts != nil && value != "" && !slices.Contains(opts, value) {
		return fmt.Errorf("%w: %q", ErrInvalidOption, value)
	}
	*target = value
	f.state.Error = ""
	return nil
}

// Edit copies a record into the form and makes it the edit target.
func (f *Form) Edit(record empclient.Employee) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state.EditID = record.RecordID
	f.state.Values = empclient.Values{
		Name:         record.Name,
		EmployeeID:   record.EmployeeID,
		Gender:       record.Gender,
		Department:   record.Department,
		Shift:        record.Shift,
		EmployeeType: record.EmployeeType,
	}
}

// EditByID looks the record up in the loaded list and edits it.
func (f *Form) EditByID(recordID string) bool {
	f.mu.Lock()
	var found *empclient.Employee
	for i := range f.state.Employees {
		if f.state.Employees[i].RecordID == recordID {
			rec := f.state.Employees[i]
			found = &rec
			break
		}
	}
	f.mu.Unlock()

	if found == nil {
		return false
	}
	f.Edit(*found)
	return true
}

// Submit validates the form and creates or updates the record. On success the
// form is reset and the list reloaded; on failure the error is shown and the
// form keeps its values.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	values := f.state.Values
	editID := f.state.EditID
	if missing(values) {
		f.state.Error = MandatoryFieldsWarning
		f.mu.Unlock()
		return employee.ErrMandatoryFieldsMissing
	}
	f.state.Error = ""
	f.mu.Unlock()

	var err error
	if editID != "" {
		_, err = f.api.Update(ctx, editID, values)
	} else {
		_, err = f.api.Create(ctx, values)
	}
	if err != nil {
		f.mu.Lock()
		f.state.Error = ErrorMessage(err)
		f.mu.Unlock()
		return err
	}

	f.Reset()
	_ = f.Load(ctx)
	return nil
}

// Delete removes a record, reloads the list and clears the form. A failed
// delete is not shown to the user.
func (f *Form) Delete(ctx context.Context, recordID string) error {
	if err := f.api.Delete(ctx, recordID); err != nil {
		f.logger.Debug("Failed to delete employee", "record_id", recordID, "error", err)
		return err
	}

	_ = f.Load(ctx)
	f.Reset()
	return nil
}

// Reset clears the field values and the edit target.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state.Values = empclient.Values{}
	f.state.EditID = ""
}

// ErrorMessage is what the page shows for a failed write: the server's message
// verbatim when it sent one, otherwise a generic fallback.
func ErrorMessage(err error) string {
	if msg, ok := empclient.ServerMessage(err); ok {
		return msg
	}
	return FallbackError
}

func missing(v empclient.Values) bool {
	for _, field := range employee.Fields {
		if strings.TrimSpace(*fieldRef(&v, field)) == "" {
			return true
		}
	}
	return false
}

func fieldRef(v *empclient.Values, field string) *string {
	switch field {
	case employee.FieldName:
		return &v.Name
	case employee.FieldEmployeeID:
		return &v.EmployeeID
	case employee.FieldGender:
		return &v.Gender
	case employee.FieldDepartment:
		return &v.Department
	case employee.FieldShift:
		return &v.Shift
	case employee.FieldEmployeeType:
		return &v.EmployeeType
	}
	return nil
}
