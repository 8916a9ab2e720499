package salarygrid

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayMode enum, stored as the grid's wire codes
type PayMode string

const (
	PayModeCash   PayMode = "0"
	PayModeBank   PayMode = "1"
	PayModeCheque PayMode = "2"
	PayModeCard   PayMode = "3"
)

func (m PayMode) Label() string {
	switch m {
	case PayModeBank:
		return "BANK"
	case PayModeCheque:
		return "CHEQUE"
	case PayModeCard:
		return "CARD"
	default:
		return "CASH"
	}
}

// ParsePayMode maps textual payment modes case-insensitively by substring.
// Bare digit codes are kept as-is; anything unrecognized falls back to cash.
func ParsePayMode(s string) PayMode {
	v := strings.ToUpper(strings.TrimSpace(s))
	switch {
	case strings.Contains(v, "BANK"):
		return PayModeBank
	case strings.Contains(v, "CHEQUE"):
		return PayModeCheque
	case strings.Contains(v, "CARD"):
		return PayModeCard
	case v == "0" || v == "1" || v == "2" || v == "3":
		return PayMode(v)
	default:
		return PayModeCash
	}
}

// Row is one employee entry in the salary grid for a pay period.
// PerDay, TotalPayable and Balance are derived; they are recomputed from the
// other fields for the selected period and are never set directly.
type Row struct {
	RowKey         string `json:"row_key"`
	SequenceNumber int    `json:"sequence_number"`

	EmployeeID    string          `json:"employee_id"`
	EmployeeName  string          `json:"employee_name"`
	Basic         decimal.Decimal `json:"basic"`
	JoiningDate   string          `json:"joining_date,omitempty"`
	Designation   string          `json:"designation,omitempty"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	MedicalMobile decimal.Decimal `json:"medical_mobile"`
	BonusBoksis   decimal.Decimal `json:"bonus_boksis"`
	DailyPresent  int             `json:"daily_present"`
	Advance       decimal.Decimal `json:"advance"`
	ModeOfPayment PayMode         `json:"mode_of_payment"`

	PerDay       decimal.Decimal `json:"per_day"`
	TotalPayable decimal.Decimal `json:"total_payable"`
	Balance      decimal.Decimal `json:"balance"`

	IsExistingEmployee    bool            `json:"is_existing_employee"`
	CurrentAdvanceBalance decimal.Decimal `json:"current_advance_balance"`
}

// NewEmptyRow returns a blank manual-entry row at the given 1-based position.
func NewEmptyRow(sequenceNumber int) Row {
	return Row{
		RowKey:                uuid.NewString(),
		SequenceNumber:        sequenceNumber,
		Basic:                 decimal.Zero,
		MonthlySalary:         decimal.Zero,
		MedicalMobile:         decimal.Zero,
		BonusBoksis:           decimal.Zero,
		Advance:               decimal.Zero,
		ModeOfPayment:         PayModeCash,
		PerDay:                decimal.Zero,
		TotalPayable:          decimal.Zero,
		Balance:               decimal.Zero,
		IsExistingEmployee:    false,
		CurrentAdvanceBalance: decimal.Zero,
	}
}

// IsFilled reports whether the row participates in totals, validation and
// submission. Whitespace-only names do not count.
func (r Row) IsFilled() bool {
	return strings.TrimSpace(r.EmployeeName) != ""
}

// FilledRows filters the grid down to rows that carry a real entry.
func FilledRows(rows []Row) []Row {
	filled := make([]Row, 0, len(rows))
	for _, r := range rows {
		if r.IsFilled() {
			filled = append(filled, r)
		}
	}
	return filled
}

// Renumber reassigns 1-based sequence numbers after a delete.
func Renumber(rows []Row) []Row {
	out := make([]Row, len(rows))
	for i, r := range rows {
		r.SequenceNumber = i + 1
		out[i] = r
	}
	return out
}
