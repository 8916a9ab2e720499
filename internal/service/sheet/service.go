package sheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/bizmanage/payroll-grid-go/internal/domain/salarygrid"
	"github.com/xuri/excelize/v2"
)

// Service parses uploaded spreadsheets into grid rows and renders grids back
// out as xlsx workbooks.
type Service interface {
	Parse(file io.Reader, filename string) ([]salarygrid.Row, error)
	Build(rows []salarygrid.Row, month, year int) (content []byte, suggestedName string, err error)
}

type sheetServiceImpl struct {
}

func NewSheetService() Service {
	return &sheetServiceImpl{}
}

// Parse reads an xlsx/xls/csv file into normalized rows. The whole file is
// parsed before any row is returned, so a malformed file never yields a
// partial import.
func (s *sheetServiceImpl) Parse(file io.Reader, filename string) ([]salarygrid.Row, error) {
	var table [][]string
	var err error

	if strings.EqualFold(filepath.Ext(filename), ".csv") {
		table, err = readCSV(file)
	} else {
		table, err = readWorkbook(file)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", salarygrid.ErrSheetParse, err)
	}

	return normalizeTable(table), nil
}

func readCSV(file io.Reader) ([][]string, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

func readWorkbook(file io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	return f.GetRows(sheetName)
}

// normalizeTable maps alias-tolerant columns into the canonical row shape.
// Rows without a resolvable employee name are dropped entirely; survivors
// get fresh keys and sequence numbers starting at 1. Matching against the
// employee directory is a separate later pass.
func normalizeTable(table [][]string) []salarygrid.Row {
	if len(table) < 2 {
		return nil
	}

	columns := resolveColumns(table[0])
	var rows []salarygrid.Row
	for _, record := range table[1:] {
		name := strings.TrimSpace(cellValue(record, columns[fieldEmployeeName]))
		if name == "" {
			continue
		}

		row := salarygrid.NewEmptyRow(len(rows) + 1)
		row.EmployeeName = name
		row.EmployeeID = strings.TrimSpace(cellValue(record, columns[fieldEmployeeID]))
		row.Basic = salarygrid.ParseAmount(cellValue(record, columns[fieldBasic]))
		row.JoiningDate = strings.TrimSpace(cellValue(record, columns[fieldJoiningDate]))
		row.Designation = strings.TrimSpace(cellValue(record, columns[fieldDesignation]))
		row.MonthlySalary = salarygrid.ParseAmount(cellValue(record, columns[fieldMonthlySalary]))
		if row.MonthlySalary.IsZero() {
			row.MonthlySalary = row.Basic
		}
		row.MedicalMobile = salarygrid.ParseAmount(cellValue(record, columns[fieldMedicalMobile]))
		row.BonusBoksis = salarygrid.ParseAmount(cellValue(record, columns[fieldBonusBoksis]))
		row.DailyPresent = salarygrid.ParseCount(cellValue(record, columns[fieldDailyPresent]))
		row.Advance = salarygrid.ParseAmount(cellValue(record, columns[fieldAdvance]))
		row.ModeOfPayment = salarygrid.ParsePayMode(cellValue(record, columns[fieldModeOfPayment]))

		rows = append(rows, row)
	}

	return rows
}

// exportColumns is the fixed export layout; the salary column title carries
// the month name.
func exportColumns(month time.Month) []string {
	return []string{
		"ID NO",
		"EMPLOYEE NAME",
		"BASIC",
		"JOINING DATE",
		"DESIGNATION",
		strings.ToUpper(month.String()) + " SALARY",
		"MEDICAL/MOBILE",
		"BONUS & BOKSIS",
		"PER DAY",
		"DAILY PRESENT",
		"TOTAL PAYABLE",
		"ADV. DEDUCTION",
		"MODE OF PAYMENT",
		"BALANCE",
	}
}

// Build renders the grid into a single-sheet workbook named
// "<MonthName> <Year>".
func (s *sheetServiceImpl) Build(rows []salarygrid.Row, month, year int) ([]byte, string, error) {
	monthName := time.Month(month)
	sheetName := fmt.Sprintf("%s %d", monthName, year)

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, "", err
	}

	for col, title := range exportColumns(monthName) {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetCellValue(sheetName, cell, title); err != nil {
			return nil, "", err
		}
	}

	for i, row := range rows {
		values := []interface{}{
			row.EmployeeID,
			row.EmployeeName,
			row.Basic.String(),
			row.JoiningDate,
			row.Designation,
			row.MonthlySalary.String(),
			row.MedicalMobile.String(),
			row.BonusBoksis.String(),
			row.PerDay.Round(2).String(),
			row.DailyPresent,
			row.TotalPayable.Round(2).String(),
			row.Advance.String(),
			row.ModeOfPayment.Label(),
			row.Balance.Round(2).String(),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, "", err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, "", err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), fmt.Sprintf("Salary Sheet %s %d.xlsx", monthName, year), nil
}
