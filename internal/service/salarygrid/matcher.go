package salarygrid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bizmanage/payroll-grid-go/internal/domain/employee"
	"github.com/bizmanage/payroll-grid-go/internal/domain/salarygrid"
	"github.com/bizmanage/payroll-grid-go/internal/pkg/validator"
)

// SearchLimit caps live-lookup results.
const SearchLimit = 10

// Matcher resolves grid rows against the employee directory.
type Matcher struct {
	calculator *Calculator
}

func NewMatcher(calculator *Calculator) *Matcher {
	return &Matcher{calculator: calculator}
}

// NormalizeEmployeeCode maps a bare numeric identifier onto the
// zero-padded directory convention: "7" becomes "EMP-00007". Anything
// already in code form (or not numeric) is returned trimmed.
func NormalizeEmployeeCode(id string) string {
	id = strings.TrimSpace(id)
	if validator.IsValidEmployeeCode(id) {
		return id
	}
	if validator.IsNumeric(id) && len(id) <= 5 {
		n, _ := strconv.Atoi(id)
		return fmt.Sprintf("EMP-%05d", n)
	}
	return id
}

// Search does the live-lookup: case-insensitive substring match against
// active employees' names and codes, capped at limit.
func (m *Matcher) Search(employees []employee.Employee, query string, limit int) []employee.Employee {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	if limit <= 0 {
		limit = SearchLimit
	}

	var matched []employee.Employee
	for _, emp := range employees {
		if !emp.IsActive {
			continue
		}
		if strings.Contains(strings.ToLower(emp.FullName), q) ||
			strings.Contains(strings.ToLower(emp.EmployeeCode), q) {
			matched = append(matched, emp)
			if len(matched) == limit {
				break
			}
		}
	}
	return matched
}

// Select seeds a row from a chosen employee and re-derives it for the
// period. Daily present defaults to the full month.
func (m *Matcher) Select(row salarygrid.Row, emp employee.Employee, month, year int) salarygrid.Row {
	row.EmployeeID = emp.EmployeeCode
	row.EmployeeName = emp.FullName
	row.Basic = emp.BaseSalary
	row.MonthlySalary = emp.BaseSalary
	if emp.JoinDate != nil {
		row.JoiningDate = emp.JoinDate.Format("2006-01-02")
	} else {
		row.JoiningDate = ""
	}
	if emp.Designation != nil {
		row.Designation = *emp.Designation
	} else {
		row.Designation = ""
	}
	row.MedicalMobile = emp.MobileAllowance
	row.DailyPresent = DaysInMonth(month, year)
	row.Advance = emp.AdvanceBalance
	row.IsExistingEmployee = true
	row.CurrentAdvanceBalance = emp.AdvanceBalance

	return m.calculator.Recalculate(row, month, year)
}

// MatchImported resolves one imported row against the directory. First match
// wins: exact case-insensitive name, exact code, then the zero-padded code
// convention for bare numeric ids. No match leaves the row flagged as new;
// it will be auto-created at submission.
func (m *Matcher) MatchImported(row salarygrid.Row, employees []employee.Employee, month, year int) salarygrid.Row {
	name := strings.ToLower(strings.TrimSpace(row.EmployeeName))
	code := strings.TrimSpace(row.EmployeeID)
	padded := NormalizeEmployeeCode(code)

	for _, emp := range employees {
		switch {
		case name != "" && strings.ToLower(emp.FullName) == name:
		case code != "" && strings.EqualFold(emp.EmployeeCode, code):
		case code != "" && padded != code && strings.EqualFold(emp.EmployeeCode, padded):
		default:
			continue
		}

		row.EmployeeID = emp.EmployeeCode
		row.IsExistingEmployee = true
		row.CurrentAdvanceBalance = emp.AdvanceBalance
		// imported cells stay authoritative; only backfill what the sheet
		// did not carry
		if !row.Basic.IsPositive() {
			row.Basic = emp.BaseSalary
		}
		if !row.MonthlySalary.IsPositive() {
			row.MonthlySalary = emp.BaseSalary
		}
		if row.JoiningDate == "" && emp.JoinDate != nil {
			row.JoiningDate = emp.JoinDate.Format("2006-01-02")
		}
		if row.Designation == "" && emp.Designation != nil {
			row.Designation = *emp.Designation
		}
		break
	}

	return m.calculator.Recalculate(row, month, year)
}

// MatchAllImported runs MatchImported over a whole imported batch.
func (m *Matcher) MatchAllImported(rows []salarygrid.Row, employees []employee.Employee, month, year int) []salarygrid.Row {
	out := make([]salarygrid.Row, len(rows))
	for i, row := range rows {
		out[i] = m.MatchImported(row, employees, month, year)
	}
	return out
}

// Autofill builds one grid row per active employee.
func (m *Matcher) Autofill(employees []employee.Employee, month, year int) []salarygrid.Row {
	var rows []salarygrid.Row
	for _, emp := range employees {
		if !emp.IsActive {
			continue
		}
		row := salarygrid.NewEmptyRow(len(rows) + 1)
		rows = append(rows, m.Select(row, emp, month, year))
	}
	return rows
}
