package console

import (
	"bytes"
	"context"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cmlabs-hris/employee-entry/internal/form"
	appHTTP "github.com/cmlabs-hris/employee-entry/internal/handler/http"
	"github.com/cmlabs-hris/employee-entry/internal/pkg/database"
	"github.com/cmlabs-hris/employee-entry/internal/pkg/empclient"
	"github.com/cmlabs-hris/employee-entry/internal/repository/sqlite"
	employeeService "github.com/cmlabs-hris/employee-entry/internal/service/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestForm(t *testing.T) *form.Form {
	t.Helper()
	ctx := context.Background()

	db, err := database.NewSQLiteDB(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, sqlite.Migrate(ctx, db))

	svc := employeeService.NewEmployeeService(sqlite.NewTransactor(db), sqlite.NewSqliteEmployeeRepo(db))
	srv := httptest.NewServer(appHTTP.NewRouter(appHTTP.RouterConfig{BasePath: "/emp"}, appHTTP.NewEmployeeHandler(svc)))
	t.Cleanup(srv.Close)

	return form.New(empclient.NewClient(srv.URL+"/emp"), nil)
}

func script(lines ...string) *strings.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func fillCommands(employeeID string) []string {
	return []string{
		"set name Sunita Rao",
		"set id " + employeeID,
		"set gender female",
		"set department Production",
		"set shift morning shift",
		"set employeetype Daily Wage",
	}
}

func TestConsole_AddEmployee(t *testing.T) {
	f := newTestForm(t)
	var out bytes.Buffer

	lines := append(fillCommands("E500"), "submit", "quit")
	require.NoError(t, New(f, script(lines...), &out).Run(context.Background()))

	s := f.Snapshot()
	require.Len(t, s.Employees, 1)
	assert.Equal(t, "Sunita Rao", s.Employees[0].Name)
	assert.Equal(t, "Daily Wage", s.Employees[0].EmployeeType)
	assert.Contains(t, out.String(), "Employee Manual Entry List")
	assert.Contains(t, out.String(), "[Add Employee]")
}

func TestConsole_SubmitIncompleteShowsWarning(t *testing.T) {
	f := newTestForm(t)
	var out bytes.Buffer

	require.NoError(t, New(f, script("set name A", "submit"), &out).Run(context.Background()))

	assert.Contains(t, out.String(), "[⚠️ All fields are mandatory]")
	assert.Empty(t, f.Snapshot().Employees)
}

func TestConsole_EditLocksIDAndUpdates(t *testing.T) {
	ctx := context.Background()
	f := newTestForm(t)
	c := New(f, strings.NewReader(""), &bytes.Buffer{})

	for _, line := range append(fillCommands("E501"), "submit") {
		require.NoError(t, c.Execute(ctx, line))
	}
	recordID := f.Snapshot().Employees[0].RecordID

	var out bytes.Buffer
	c = New(f, strings.NewReader(""), &out)
	require.NoError(t, c.Execute(ctx, "edit "+recordID))
	assert.Contains(t, out.String(), "E501 (locked)")
	assert.Contains(t, out.String(), "[Update Employee]")

	assert.ErrorIs(t, c.Execute(ctx, "set id E999"), form.ErrEmployeeIDLocked)
	require.NoError(t, c.Execute(ctx, "set shift night shift"))
	require.NoError(t, c.Execute(ctx, "submit"))

	s := f.Snapshot()
	require.Len(t, s.Employees, 1)
	assert.Equal(t, "night shift", s.Employees[0].Shift)
	assert.Equal(t, "E501", s.Employees[0].EmployeeID)
	assert.False(t, s.Editing())
}

func TestConsole_Delete(t *testing.T) {
	ctx := context.Background()
	f := newTestForm(t)
	c := New(f, strings.NewReader(""), &bytes.Buffer{})

	for _, line := range append(fillCommands("E502"), "submit") {
		require.NoError(t, c.Execute(ctx, line))
	}
	recordID := f.Snapshot().Employees[0].RecordID

	require.NoError(t, c.Execute(ctx, "delete "+recordID))
	assert.Empty(t, f.Snapshot().Employees)
}

func TestConsole_UsageErrors(t *testing.T) {
	ctx := context.Background()
	c := New(newTestForm(t), strings.NewReader(""), &bytes.Buffer{})

	assert.Error(t, c.Execute(ctx, "set"))
	assert.Error(t, c.Execute(ctx, "edit"))
	assert.Error(t, c.Execute(ctx, "edit missing-id"))
	assert.Error(t, c.Execute(ctx, "options name"))
	assert.Error(t, c.Execute(ctx, "frobnicate"))
	assert.ErrorIs(t, c.Execute(ctx, "set shift graveyard"), form.ErrInvalidOption)
	assert.NoError(t, c.Execute(ctx, "   "))
}

func TestConsole_Options(t *testing.T) {
	var out bytes.Buffer
	c := New(newTestForm(t), strings.NewReader(""), &out)

	require.NoError(t, c.Execute(context.Background(), "options gender"))
	assert.Equal(t, "  male\n  female\n  transgender\n", out.String())
}

func TestConsole_ExportThenImport(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "roster.xlsx")

	source := newTestForm(t)
	c := New(source, strings.NewReader(""), &bytes.Buffer{})
	for _, id := range []string{"E600", "E601"} {
		for _, line := range append(fillCommands(id), "submit") {
			require.NoError(t, c.Execute(ctx, line))
		}
	}
	require.NoError(t, c.Execute(ctx, "export "+path))

	target := newTestForm(t)
	var out bytes.Buffer
	require.NoError(t, New(target, strings.NewReader(""), &out).Execute(ctx, "import "+path))

	assert.Contains(t, out.String(), "imported 2 of 2 rows")
	s := target.Snapshot()
	require.Len(t, s.Employees, 2)
	assert.ElementsMatch(t, []string{"E600", "E601"}, []string{s.Employees[0].EmployeeID, s.Employees[1].EmployeeID})
}

func TestRestAfter(t *testing.T) {
	assert.Equal(t, "Daily Wage", restAfter("set  employeetype   Daily Wage ", 2))
	assert.Equal(t, "", restAfter("set name", 2))
	assert.Equal(t, "", restAfter("", 2))
}
