package form

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/cmlabs-hris/employee-entry/internal/domain/employee"
	"github.com/cmlabs-hris/employee-entry/internal/pkg/empclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uniqueAPI rejects duplicate employee ids like the real server.
type uniqueAPI struct {
	fakeAPI
}

func (a *uniqueAPI) Create(ctx context.Context, v empclient.Values) (empclient.Employee, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.record("create")
	for _, r := range a.records {
		if r.EmployeeID == v.EmployeeID {
			return empclient.Employee{}, &empclient.APIError{StatusCode: http.StatusConflict, Message: "Employee ID already exists"}
		}
	}
	a.nextID++
	e := toEmployee(fmt.Sprintf("rec-%d", a.nextID), v)
	a.records = append(a.records, e)
	return e, nil
}

func row(id string) empclient.Values {
	return empclient.Values{Name: "N" + id, EmployeeID: id, Gender: "male", Department: "HR", Shift: "mid shift", EmployeeType: "Contract"}
}

func TestForm_CreateMany(t *testing.T) {
	api := &uniqueAPI{}
	f := New(api, nil)

	incomplete := row("E3")
	incomplete.Shift = ""
	rows := []empclient.Values{row("E1"), row("E2"), incomplete, row("E1"), row("E4"), row("E5")}

	errs := f.CreateMany(context.Background(), rows)

	require.Len(t, errs, len(rows))
	assert.NoError(t, errs[1])
	assert.ErrorIs(t, errs[2], employee.ErrMandatoryFieldsMissing)
	assert.NoError(t, errs[4])
	assert.NoError(t, errs[5])

	// exactly one of the two E1 rows wins
	dupFailures := 0
	for _, i := range []int{0, 3} {
		if errs[i] != nil {
			dupFailures++
		}
	}
	assert.Equal(t, 1, dupFailures)

	assert.Len(t, f.Snapshot().Employees, 4)
	calls := api.Calls()
	assert.Equal(t, "list", calls[len(calls)-1])
}
