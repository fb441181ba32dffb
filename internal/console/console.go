// Package console is a line-oriented front-end for the employee entry form.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cmlabs-hris/employee-entry/internal/domain/employee"
	"github.com/cmlabs-hris/employee-entry/internal/form"
	"github.com/cmlabs-hris/employee-entry/internal/pkg/spreadsheet"
)

const helpText = `commands:
  list                      reload and show the employee list
  show                      show the form and the list
  set <field> <value...>    set a field (name, id, gender, department, shift, employeetype)
  options <field>           list the choices of a dropdown field
  edit <_id>                load a record into the form for updating
  delete <_id>              delete a record
  submit                    add or update the employee
  reset                     clear the form
  export <file.xlsx>        write the list to a spreadsheet
  import <file.xlsx>        add every row of a spreadsheet
  help                      show this text
  quit                      leave
`

var errQuit = errors.New("quit")

type Console struct {
	form *form.Form
	in   io.Reader
	out  io.Writer
}

func New(f *form.Form, in io.Reader, out io.Writer) *Console {
	return &Console{form: f, in: in, out: out}
}

// Run loads the list, renders the page and processes commands until quit or EOF.
func (c *Console) Run(ctx context.Context) error {
	_ = c.form.Load(ctx)
	c.render()

	scanner := bufio.NewScanner(c.in)
	for {
		fmt.Fprint(c.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(c.out)
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		err := c.Execute(ctx, scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(c.out, "! %v\n", err)
		}
	}
}

// Execute runs one command line.
func (c *Console) Execute(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "help", "?":
		fmt.Fprint(c.out, helpText)
	case "quit", "exit", "q":
		return errQuit
	case "list":
		_ = c.form.Load(ctx)
		c.renderTable()
	case "show":
		c.render()
	case "set":
		if len(args) < 1 {
			return errors.New("usage: set <field> <value...>")
		}
		value := restAfter(line, 2)
		if err := c.form.Change(strings.ToLower(args[0]), value); err != nil {
			return err
		}
		c.renderForm()
	case "options":
		if len(args) != 1 {
			return errors.New("usage: options <field>")
		}
		opts := form.Options(strings.ToLower(args[0]))
		if opts == nil {
			return fmt.Errorf("%q is a free text field", args[0])
		}
		for _, o := range opts {
			fmt.Fprintf(c.out, "  %s\n", o)
		}
	case "edit":
		if len(args) != 1 {
			return errors.New("usage: edit <_id>")
		}
		if !c.form.EditByID(args[0]) {
			return fmt.Errorf("no employee with _id %q in the list", args[0])
		}
		c.renderForm()
	case "delete":
		if len(args) != 1 {
			return errors.New("usage: delete <_id>")
		}
		_ = c.form.Delete(ctx, args[0])
		c.render()
	case "submit":
		_ = c.form.Submit(ctx)
		c.render()
	case "reset":
		c.form.Reset()
		c.renderForm()
	case "export":
		if len(args) != 1 {
			return errors.New("usage: export <file.xlsx>")
		}
		return c.export(args[0])
	case "import":
		if len(args) != 1 {
			return errors.New("usage: import <file.xlsx>")
		}
		return c.importFile(ctx, args[0])
	default:
		return fmt.Errorf("unknown command %q, type help", cmd)
	}
	return nil
}

func (c *Console) export(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	employees := c.form.Snapshot().Employees
	if err := spreadsheet.Export(file, employees); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "exported %d employees to %s\n", len(employees), path)
	return nil
}

func (c *Console) importFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	rows, err := spreadsheet.Import(file)
	if err != nil {
		return err
	}

	errs := c.form.CreateMany(ctx, rows)
	created := 0
	for i, err := range errs {
		if err == nil {
			created++
			continue
		}
		// header is row 1
		fmt.Fprintf(c.out, "row %d (%s): %s\n", i+2, rows[i].EmployeeID, rowMessage(err))
	}
	fmt.Fprintf(c.out, "imported %d of %d rows\n", created, len(rows))
	c.renderTable()
	return nil
}

// restAfter returns the text following the first n words with its inner spacing
// intact, so "set employeetype Daily Wage" keeps "Daily Wage" whole.
func restAfter(line string, n int) string {
	rest := strings.TrimSpace(line)
	for i := 0; i < n; i++ {
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			return ""
		}
		rest = strings.TrimSpace(rest[len(fields[0]):])
	}
	return rest
}

func rowMessage(err error) string {
	if errors.Is(err, employee.ErrMandatoryFieldsMissing) {
		return form.MandatoryFieldsWarning
	}
	return form.ErrorMessage(err)
}

func (c *Console) render() {
	fmt.Fprintln(c.out, "Employee Manual Entry List")
	c.renderForm()
	c.renderTable()
}

func (c *Console) renderForm() {
	s := c.form.Snapshot()
	if s.Error != "" {
		fmt.Fprintf(c.out, "[%s]\n", s.Error)
	}

	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	rows := []struct{ label, field, value string }{
		{"NAME", employee.FieldName, s.Values.Name},
		{"EMP ID", employee.FieldEmployeeID, s.Values.EmployeeID},
		{"Gender", employee.FieldGender, s.Values.Gender},
		{"Department", employee.FieldDepartment, s.Values.Department},
		{"Shift", employee.FieldShift, s.Values.Shift},
		{"Employee Type", employee.FieldEmployeeType, s.Values.EmployeeType},
	}
	for _, r := range rows {
		value := r.value
		if value == "" {
			value = "-"
		}
		if r.field == employee.FieldEmployeeID && s.Editing() {
			value += " (locked)"
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", r.label, r.field, value)
	}
	tw.Flush()
	fmt.Fprintf(c.out, "  [%s]\n", c.form.SubmitLabel())
}

func (c *Console) renderTable() {
	employees := c.form.Snapshot().Employees

	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Name\tEmp ID\tGender\tDepartment\tShift\tType\t_id")
	for _, e := range employees {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			e.Name, e.EmployeeID, e.Gender, e.Department, e.Shift, e.EmployeeType, e.RecordID)
	}
	tw.Flush()
	if len(employees) == 0 {
		fmt.Fprintln(c.out, "(no employees)")
	}
}
