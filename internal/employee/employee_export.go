package employee

import (
	"encoding/csv"
	"io"
	"strings"
)

var ExportHeader = []string{
	"Name", "Position", "Department", "Email", "Phone", "Status", "Username", "Role", "Joining Date",
}

// WriteCSV writes the header then one row per employee in ExportHeader order.
func WriteCSV(w io.Writer, employees []EmployeeResponse) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ExportHeader); err != nil {
		return err
	}
	for _, e := range employees {
		row := []string{
			e.Name,
			e.Position,
			e.Department,
			e.Email,
			e.Phone,
			e.Status,
			e.Username,
			e.Role,
			e.JoiningDate,
		}
		for i := range row {
			row[i] = escapeCell(row[i])
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// escapeCell keeps spreadsheets from evaluating a cell as a formula.
func escapeCell(v string) string {
	if v != "" && strings.ContainsRune("=+-@\t\r", rune(v[0])) {
		return "'" + v
	}
	return v
}
