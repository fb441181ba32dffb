package spreadsheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/cmlabs-hris/employee-entry/internal/domain/employee"
	"github.com/cmlabs-hris/employee-entry/internal/pkg/empclient"
	"github.com/xuri/excelize/v2"
)

const SheetName = "Employees"

var headers = []string{"Name", "Emp ID", "Gender", "Department", "Shift", "Type"}

// Export writes the list as a single-sheet workbook with a header row.
func Export(w io.Writer, employees []empclient.Employee) error {
	file := excelize.NewFile()
	defer func() { _ = file.Close() }()

	if err := file.SetSheetName(file.GetSheetName(0), SheetName); err != nil {
		return err
	}

	row := make([]interface{}, len(headers))
	for i, h := range headers {
		row[i] = h
	}
	if err := file.SetSheetRow(SheetName, "A1", &row); err != nil {
		return err
	}

	for i, e := range employees {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{e.Name, e.EmployeeID, e.Gender, e.Department, e.Shift, e.EmployeeType}
		if err := file.SetSheetRow(SheetName, cell, &values); err != nil {
			return err
		}
	}

	_, err := file.WriteTo(w)
	return err
}

// Import reads the first sheet of an .xlsx workbook. Columns are matched by
// header name, so order does not matter; blank rows are skipped.
func Import(r io.Reader) ([]empclient.Values, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no worksheet found")
	}

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("worksheet is empty")
	}

	index := map[string]int{}
	for i, h := range rows[0] {
		if field := headerField(h); field != "" {
			index[field] = i
		}
	}
	for _, field := range employee.Fields {
		if _, ok := index[field]; !ok {
			return nil, fmt.Errorf("missing column for %q", field)
		}
	}

	var result []empclient.Values
	for _, row := range rows[1:] {
		v := empclient.Values{
			Name:         cellValue(row, index[employee.FieldName]),
			EmployeeID:   cellValue(row, index[employee.FieldEmployeeID]),
			Gender:       cellValue(row, index[employee.FieldGender]),
			Department:   cellValue(row, index[employee.FieldDepartment]),
			Shift:        cellValue(row, index[employee.FieldShift]),
			EmployeeType: cellValue(row, index[employee.FieldEmployeeType]),
		}
		if v == (empclient.Values{}) {
			continue
		}
		result = append(result, v)
	}
	return result, nil
}

func headerField(header string) string {
	switch normalizeHeader(header) {
	case "name":
		return employee.FieldName
	case "emp id", "employee id", "id":
		return employee.FieldEmployeeID
	case "gender":
		return employee.FieldGender
	case "department":
		return employee.FieldDepartment
	case "shift":
		return employee.FieldShift
	case "type", "employee type", "employeetype":
		return employee.FieldEmployeeType
	}
	return ""
}

func normalizeHeader(header string) string {
	return strings.ToLower(strings.TrimSpace(header))
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
