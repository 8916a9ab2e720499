package salarygrid

import (
	"fmt"
	"testing"
	"time"

	"github.com/bizmanage/payroll-grid-go/internal/domain/employee"
	"github.com/bizmanage/payroll-grid-go/internal/domain/salarygrid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEmployee(code, name, basic string) employee.Employee {
	return employee.Employee{
		ID:             "id-" + code,
		CompanyID:      "company-1",
		EmployeeCode:   code,
		FullName:       name,
		BaseSalary:     amount(basic),
		AdvanceBalance: decimal.Zero,
		IsActive:       true,
	}
}

func TestNormalizeEmployeeCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"7", "EMP-00007"},
		{"123", "EMP-00123"},
		{"12345", "EMP-12345"},
		{"123456", "123456"},
		{"EMP-00007", "EMP-00007"},
		{"  42  ", "EMP-00042"},
		{"abc", "abc"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeEmployeeCode(tt.in), tt.in)
	}
}

func TestMatcher_Search(t *testing.T) {
	matcher := NewMatcher(NewCalculator())

	directory := []employee.Employee{
		testEmployee("EMP-00001", "John Doe", "26000"),
		testEmployee("EMP-00002", "Jane Miller", "31000"),
		testEmployee("EMP-00003", "Johnny Walker", "28000"),
	}
	inactive := testEmployee("EMP-00004", "John Gone", "20000")
	inactive.IsActive = false
	directory = append(directory, inactive)

	t.Run("matches name substring case-insensitively", func(t *testing.T) {
		got := matcher.Search(directory, "john", 0)
		require.Len(t, got, 2)
		assert.Equal(t, "John Doe", got[0].FullName)
		assert.Equal(t, "Johnny Walker", got[1].FullName)
	})

	t.Run("matches employee code", func(t *testing.T) {
		got := matcher.Search(directory, "00002", 0)
		require.Len(t, got, 1)
		assert.Equal(t, "Jane Miller", got[0].FullName)
	})

	t.Run("blank query returns nothing", func(t *testing.T) {
		assert.Empty(t, matcher.Search(directory, "   ", 0))
	})

	t.Run("caps results at the limit", func(t *testing.T) {
		var many []employee.Employee
		for i := 1; i <= 15; i++ {
			many = append(many, testEmployee(
				fmt.Sprintf("EMP-%05d", i),
				fmt.Sprintf("Worker %d", i),
				"20000",
			))
		}
		got := matcher.Search(many, "worker", 0)
		assert.Len(t, got, SearchLimit)
	})
}

func TestMatcher_Select(t *testing.T) {
	matcher := NewMatcher(NewCalculator())

	joinDate := time.Date(2023, 4, 15, 0, 0, 0, 0, time.UTC)
	designation := "Accountant"
	emp := testEmployee("EMP-00007", "Grace Hall", "26000")
	emp.JoinDate = &joinDate
	emp.Designation = &designation
	emp.MobileAllowance = amount("500")
	emp.AdvanceBalance = amount("1000")

	row := matcher.Select(salarygrid.NewEmptyRow(1), emp, 1, 2025)

	assert.Equal(t, "EMP-00007", row.EmployeeID)
	assert.Equal(t, "Grace Hall", row.EmployeeName)
	assert.Equal(t, "26000", row.Basic.String())
	assert.Equal(t, "26000", row.MonthlySalary.String())
	assert.Equal(t, "2023-04-15", row.JoiningDate)
	assert.Equal(t, "Accountant", row.Designation)
	assert.Equal(t, "500", row.MedicalMobile.String())
	assert.Equal(t, 31, row.DailyPresent)
	assert.Equal(t, "1000", row.Advance.String())
	assert.True(t, row.IsExistingEmployee)
	assert.Equal(t, "1000", row.CurrentAdvanceBalance.String())

	// derived fields come back recomputed for the full month
	assert.Equal(t, "838.71", row.PerDay.Round(2).String())
	assert.Equal(t, "26500", row.TotalPayable.Round(2).String())
}

func TestMatcher_MatchImported(t *testing.T) {
	matcher := NewMatcher(NewCalculator())

	directory := []employee.Employee{
		testEmployee("EMP-00007", "Grace Hall", "26000"),
		testEmployee("EMP-00008", "Henry Ford", "31000"),
	}
	directory[0].AdvanceBalance = amount("500")

	t.Run("exact name match wins", func(t *testing.T) {
		row := salarygrid.NewEmptyRow(1)
		row.EmployeeName = "grace hall"

		got := matcher.MatchImported(row, directory, 1, 2025)
		assert.True(t, got.IsExistingEmployee)
		assert.Equal(t, "EMP-00007", got.EmployeeID)
		assert.Equal(t, "500", got.CurrentAdvanceBalance.String())
		// sheet carried no basic, so the directory backfills it
		assert.Equal(t, "26000", got.Basic.String())
	})

	t.Run("bare numeric id matches padded code", func(t *testing.T) {
		row := salarygrid.NewEmptyRow(1)
		row.EmployeeName = "Somebody Else"
		row.EmployeeID = "7"

		got := matcher.MatchImported(row, directory, 1, 2025)
		assert.True(t, got.IsExistingEmployee)
		assert.Equal(t, "EMP-00007", got.EmployeeID)
	})

	t.Run("imported basic stays authoritative", func(t *testing.T) {
		row := salarygrid.NewEmptyRow(1)
		row.EmployeeName = "Henry Ford"
		row.Basic = amount("35000")

		got := matcher.MatchImported(row, directory, 1, 2025)
		assert.True(t, got.IsExistingEmployee)
		assert.Equal(t, "35000", got.Basic.String())
		// monthly salary was not on the sheet and does get backfilled
		assert.Equal(t, "31000", got.MonthlySalary.String())
	})

	t.Run("no match stays a new employee", func(t *testing.T) {
		row := salarygrid.NewEmptyRow(1)
		row.EmployeeName = "Nobody Known"
		row.Basic = amount("20000")
		row.DailyPresent = 31

		got := matcher.MatchImported(row, directory, 1, 2025)
		assert.False(t, got.IsExistingEmployee)
		assert.Empty(t, got.EmployeeID)
		// derived fields still recomputed
		assert.Equal(t, "20000", got.TotalPayable.Round(2).String())
	})
}

func TestMatcher_Autofill(t *testing.T) {
	matcher := NewMatcher(NewCalculator())

	inactive := testEmployee("EMP-00003", "Gone Already", "20000")
	inactive.IsActive = false
	directory := []employee.Employee{
		testEmployee("EMP-00001", "John Doe", "26000"),
		testEmployee("EMP-00002", "Jane Miller", "31000"),
		inactive,
	}

	rows := matcher.Autofill(directory, 2, 2024)
	require.Len(t, rows, 2)

	assert.Equal(t, 1, rows[0].SequenceNumber)
	assert.Equal(t, "John Doe", rows[0].EmployeeName)
	assert.Equal(t, 2, rows[1].SequenceNumber)
	assert.Equal(t, "Jane Miller", rows[1].EmployeeName)

	// leap-year February gives 29 days of presence
	assert.Equal(t, 29, rows[0].DailyPresent)
	assert.Equal(t, "26000", rows[0].TotalPayable.Round(2).String())
}
