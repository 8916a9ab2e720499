package salarygrid

import (
	"strings"
	"time"

	"github.com/bizmanage/payroll-grid-go/internal/domain/salarygrid"
	"github.com/shopspring/decimal"
)

// Calculator recomputes the derived fields of grid rows for a pay period.
// All functions are pure: the same row and period always produce the same
// output.
type Calculator struct {
}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// DaysInMonth returns the calendar days of (month, year); day zero of the
// following month, so leap years come out of time.Date directly.
func DaysInMonth(month, year int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Recalculate derives per-day, total payable and balance from the row's raw
// fields. The advance is clamped against the employee's advance ceiling
// before the balance is taken.
func (c *Calculator) Recalculate(row salarygrid.Row, month, year int) salarygrid.Row {
	days := int64(DaysInMonth(month, year))

	if row.Basic.IsPositive() {
		row.PerDay = row.Basic.Div(decimal.NewFromInt(days))
	} else {
		row.PerDay = decimal.Zero
	}

	row.Advance = ClampAdvance(row.Advance, row.CurrentAdvanceBalance)

	row.TotalPayable = row.PerDay.
		Mul(decimal.NewFromInt(int64(row.DailyPresent))).
		Add(row.MedicalMobile).
		Add(row.BonusBoksis)
	row.Balance = row.TotalPayable.Sub(row.Advance)

	return row
}

// RecalculateAll runs the derivation pass over every row, as on a month or
// year change.
func (c *Calculator) RecalculateAll(rows []salarygrid.Row, month, year int) []salarygrid.Row {
	out := make([]salarygrid.Row, len(rows))
	for i, row := range rows {
		out[i] = c.Recalculate(row, month, year)
	}
	return out
}

// ClampAdvance bounds an advance deduction to [0, ceiling] when a ceiling is
// known, else to [0, inf).
func ClampAdvance(advance, ceiling decimal.Decimal) decimal.Decimal {
	if advance.IsNegative() {
		return decimal.Zero
	}
	if ceiling.IsPositive() && advance.GreaterThan(ceiling) {
		return ceiling
	}
	return advance
}

// ApplyFieldChange is the single-cell edit transition: set one raw field from
// its textual form, then re-derive the row for the period. Derived fields are
// not editable.
func (c *Calculator) ApplyFieldChange(row salarygrid.Row, field, value string, month, year int) (salarygrid.Row, error) {
	switch field {
	case "employee_id":
		row.EmployeeID = strings.TrimSpace(value)
	case "employee_name":
		row.EmployeeName = value
	case "basic":
		row.Basic = salarygrid.ParseAmount(value)
		if row.MonthlySalary.IsZero() {
			row.MonthlySalary = row.Basic
		}
	case "joining_date":
		row.JoiningDate = strings.TrimSpace(value)
	case "designation":
		row.Designation = strings.TrimSpace(value)
	case "monthly_salary":
		row.MonthlySalary = salarygrid.ParseAmount(value)
	case "medical_mobile":
		row.MedicalMobile = salarygrid.ParseAmount(value)
	case "bonus_boksis":
		row.BonusBoksis = salarygrid.ParseAmount(value)
	case "daily_present":
		row.DailyPresent = salarygrid.ParseCount(value)
	case "advance":
		row.Advance = salarygrid.ParseAmount(value)
	case "mode_of_payment":
		row.ModeOfPayment = salarygrid.ParsePayMode(value)
	case "per_day", "total_payable", "balance":
		return row, salarygrid.ErrDerivedFieldEdit
	default:
		return row, salarygrid.ErrUnknownField
	}

	return c.Recalculate(row, month, year), nil
}

// Totals sums payable, advance and balance over filled rows only.
func (c *Calculator) Totals(rows []salarygrid.Row) salarygrid.GridTotals {
	totals := salarygrid.GridTotals{
		TotalPayable: decimal.Zero,
		TotalAdvance: decimal.Zero,
		TotalBalance: decimal.Zero,
	}
	for _, row := range salarygrid.FilledRows(rows) {
		totals.TotalPayable = totals.TotalPayable.Add(row.TotalPayable)
		totals.TotalAdvance = totals.TotalAdvance.Add(row.Advance)
		totals.TotalBalance = totals.TotalBalance.Add(row.Balance)
	}
	return totals
}
