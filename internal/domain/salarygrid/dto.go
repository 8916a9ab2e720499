package salarygrid

import (
	"fmt"
	"strings"

	"github.com/bizmanage/payroll-grid-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== GRID DTOs ==========

type RecalculateGridRequest struct {
	Month int   `json:"month"`
	Year  int   `json:"year"`
	Rows  []Row `json:"rows"`
}

func (r *RecalculateGridRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidPeriod(r.Month, r.Year) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "period must be a month 1-12 and a year 2000-2100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AutofillGridRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *AutofillGridRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidPeriod(r.Month, r.Year) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "period must be a month 1-12 and a year 2000-2100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type GridTotals struct {
	TotalPayable decimal.Decimal `json:"total_payable"`
	TotalAdvance decimal.Decimal `json:"total_advance"`
	TotalBalance decimal.Decimal `json:"total_balance"`
}

type GridResponse struct {
	Month       int        `json:"month"`
	Year        int        `json:"year"`
	DaysInMonth int        `json:"days_in_month"`
	Rows        []Row      `json:"rows"`
	Totals      GridTotals `json:"totals"`
}

// ========== SUBMISSION DTOs ==========

type SubmitGridRequest struct {
	Month int   `json:"month"`
	Year  int   `json:"year"`
	Rows  []Row `json:"rows"`
}

// Validate runs the submission gate: period sanity plus the grid rules over
// filled rows. Violations are collected and reported together; only the
// empty-grid check short-circuits.
func (r *SubmitGridRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidPeriod(r.Month, r.Year) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "period must be a month 1-12 and a year 2000-2100"})
		return errs
	}

	return ValidateGrid(r.Rows)
}

// ValidateGrid checks grid completeness and duplicates over filled rows only.
func ValidateGrid(rows []Row) error {
	filled := FilledRows(rows)
	if len(filled) == 0 {
		return validator.ValidationErrors{
			{Field: "rows", Message: "at least one row with an employee name is required"},
		}
	}

	var errs validator.ValidationErrors
	seen := make(map[string]int)
	var order []string
	for _, row := range filled {
		field := fmt.Sprintf("rows[%d]", row.SequenceNumber)
		if validator.IsEmpty(row.EmployeeName) {
			errs = append(errs, validator.ValidationError{Field: field + ".employee_name", Message: "is required"})
		}
		if !row.Basic.IsPositive() {
			errs = append(errs, validator.ValidationError{Field: field + ".basic", Message: "must be greater than zero"})
		}
		name := strings.ToLower(strings.TrimSpace(row.EmployeeName))
		if seen[name] == 0 {
			order = append(order, name)
		}
		seen[name]++
	}

	// one duplicate error per offending name, in first-seen order
	for _, name := range order {
		if seen[name] > 1 {
			errs = append(errs, validator.ValidationError{
				Field:   "employee_name",
				Message: fmt.Sprintf("duplicate employee name %q", name),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ValidateGridResponse struct {
	Valid      bool              `json:"valid"`
	Violations map[string]string `json:"violations,omitempty"`
}

// SalaryEntry is the backend-shaped record submitted for one filled row.
type SalaryEntry struct {
	SequenceNumber     int             `json:"sl_no"`
	EmployeeCode       string          `json:"employee_code,omitempty"`
	EmployeeName       string          `json:"employee_name"`
	Basic              decimal.Decimal `json:"basic"`
	JoiningDate        string          `json:"joining_date,omitempty"`
	Designation        string          `json:"designation,omitempty"`
	MonthlySalary      decimal.Decimal `json:"monthly_salary"`
	MedicalMobile      decimal.Decimal `json:"medical_mobile"`
	BonusBoksis        decimal.Decimal `json:"bonus_boksis"`
	PerDay             decimal.Decimal `json:"per_day"`
	DailyPresent       int             `json:"daily_present"`
	TotalPayable       decimal.Decimal `json:"total_payable"`
	Advance            decimal.Decimal `json:"advance"`
	ModeOfPayment      PayMode         `json:"mode_of_payment"`
	Balance            decimal.Decimal `json:"balance"`
	IsExistingEmployee bool            `json:"is_existing_employee"`
}

type BulkSubmission struct {
	Month   int           `json:"month"`
	Year    int           `json:"year"`
	Entries []SalaryEntry `json:"entries"`
}

type SubmissionSummary struct {
	TotalRows        int `json:"total_rows"`
	Processed        int `json:"processed"`
	Failed           int `json:"failed"`
	SalariesCreated  int `json:"salaries_created"`
	ExpensesCreated  int `json:"expenses_created"`
	EmployeesCreated int `json:"employees_created"`
}

type SubmissionRowError struct {
	Row          int    `json:"row"`
	EmployeeName string `json:"employee_name"`
	Reason       string `json:"reason"`
}

type SubmissionResult struct {
	Summary                SubmissionSummary          `json:"summary"`
	CreatedEmployees       []string                   `json:"created_employees"`
	UpdatedAdvanceBalances map[string]decimal.Decimal `json:"updated_advance_balances"`
	Errors                 []SubmissionRowError       `json:"errors"`
}
