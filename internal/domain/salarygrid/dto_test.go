package salarygrid

import (
	"testing"

	"github.com/bizmanage/payroll-grid-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filledRow(seq int, name, basic string) Row {
	row := NewEmptyRow(seq)
	row.EmployeeName = name
	row.Basic = decimal.RequireFromString(basic)
	return row
}

func TestValidateGrid_NoFilledRows(t *testing.T) {
	rows := []Row{
		NewEmptyRow(1),
		filledRow(2, "   ", "26000"), // whitespace-only name does not count
	}

	err := ValidateGrid(rows)
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	require.Len(t, errs, 1)
	assert.Equal(t, "rows", errs[0].Field)
}

func TestValidateGrid_MissingBasic(t *testing.T) {
	rows := []Row{
		filledRow(1, "John Doe", "26000"),
		filledRow(2, "Jane Miller", "0"),
	}

	err := ValidateGrid(rows)
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	require.Len(t, errs, 1)
	assert.Equal(t, "rows[2].basic", errs[0].Field)
}

func TestValidateGrid_DuplicateNames(t *testing.T) {
	rows := []Row{
		filledRow(1, "John Doe", "26000"),
		filledRow(2, "john doe", "31000"),
		filledRow(3, "JOHN DOE", "20000"),
		filledRow(4, "Jane Miller", "28000"),
	}

	err := ValidateGrid(rows)
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	// one error per duplicated name, however many times it repeats
	require.Len(t, errs, 1)
	assert.Equal(t, "employee_name", errs[0].Field)
	assert.Contains(t, errs[0].Message, `"john doe"`)
}

func TestValidateGrid_Valid(t *testing.T) {
	rows := []Row{
		filledRow(1, "John Doe", "26000"),
		NewEmptyRow(2),
		filledRow(3, "Jane Miller", "31000"),
	}

	assert.NoError(t, ValidateGrid(rows))
}

func TestSubmitGridRequest_Validate_PeriodShortCircuits(t *testing.T) {
	req := SubmitGridRequest{
		Month: 13,
		Year:  2025,
		Rows:  nil, // would also fail the empty-grid rule
	}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	require.Len(t, errs, 1)
	assert.Equal(t, "month", errs[0].Field)
}

func TestSubmitGridRequest_Validate_RunsGateOnValidPeriod(t *testing.T) {
	req := SubmitGridRequest{
		Month: 1,
		Year:  2025,
		Rows:  []Row{filledRow(1, "John Doe", "26000")},
	}
	assert.NoError(t, req.Validate())
}

func TestRow_IsFilled(t *testing.T) {
	assert.False(t, NewEmptyRow(1).IsFilled())
	assert.False(t, filledRow(1, "  \t ", "0").IsFilled())
	assert.True(t, filledRow(1, "John Doe", "0").IsFilled())
}

func TestRenumber(t *testing.T) {
	rows := []Row{
		filledRow(1, "John Doe", "26000"),
		filledRow(5, "Jane Miller", "31000"),
	}
	out := Renumber(rows)
	assert.Equal(t, 1, out[0].SequenceNumber)
	assert.Equal(t, 2, out[1].SequenceNumber)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"26,000", "26000"},
		{" 1234.50 ", "1234.5"},
		{"", "0"},
		{"abc", "0"},
		{"-250", "-250"},
	}
	for _, tt := range tests {
		got := ParseAmount(tt.in)
		assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "ParseAmount(%q) = %s", tt.in, got)
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"20", 20},
		{"20.0", 20},
		{"", 0},
		{"abc", 0},
		{"-3", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseCount(tt.in), tt.in)
	}
}
