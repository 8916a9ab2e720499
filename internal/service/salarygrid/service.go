package salarygrid

import (
	"context"
	"fmt"
	"io"

	"github.com/bizmanage/payroll-grid-go/internal/domain/employee"
	"github.com/bizmanage/payroll-grid-go/internal/domain/salarygrid"
	"github.com/bizmanage/payroll-grid-go/internal/pkg/cache"
	"github.com/bizmanage/payroll-grid-go/internal/pkg/validator"
	"github.com/bizmanage/payroll-grid-go/internal/service/sheet"
	"github.com/go-chi/jwtauth/v5"
)

type GridServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	salaryRepo   salarygrid.SalaryRepository
	sheets       sheet.Service
	queryCache   *cache.Cache
	calculator   *Calculator
	matcher      *Matcher
}

func NewGridService(
	employeeRepo employee.EmployeeRepository,
	salaryRepo salarygrid.SalaryRepository,
	sheets sheet.Service,
	queryCache *cache.Cache,
) salarygrid.GridService {
	calculator := NewCalculator()
	return &GridServiceImpl{
		employeeRepo: employeeRepo,
		salaryRepo:   salaryRepo,
		sheets:       sheets,
		queryCache:   queryCache,
		calculator:   calculator,
		matcher:      NewMatcher(calculator),
	}
}

// Helper to get company_id and user_id from JWT context
func getClaimsFromContext(ctx context.Context) (companyID, userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	userID, _ = claims["user_id"].(string)

	return companyID, userID, nil
}

const employeesTag = "employees"

// activeEmployees reads the company's active employees through the query
// cache; any write path invalidates the employees tag.
func (s *GridServiceImpl) activeEmployees(ctx context.Context, companyID string) ([]employee.Employee, error) {
	key := "employees:active:" + companyID
	value, err := s.queryCache.Fetch(ctx, key, []string{employeesTag}, func(ctx context.Context) (interface{}, error) {
		return s.employeeRepo.GetActiveByCompanyID(ctx, companyID)
	})
	if err != nil {
		return nil, err
	}
	return value.([]employee.Employee), nil
}

func (s *GridServiceImpl) gridResponse(rows []salarygrid.Row, month, year int) salarygrid.GridResponse {
	return salarygrid.GridResponse{
		Month:       month,
		Year:        year,
		DaysInMonth: DaysInMonth(month, year),
		Rows:        rows,
		Totals:      s.calculator.Totals(rows),
	}
}

func (s *GridServiceImpl) Recalculate(ctx context.Context, req salarygrid.RecalculateGridRequest) (salarygrid.GridResponse, error) {
	if err := req.Validate(); err != nil {
		return salarygrid.GridResponse{}, err
	}

	rows := s.calculator.RecalculateAll(req.Rows, req.Month, req.Year)
	return s.gridResponse(rows, req.Month, req.Year), nil
}

func (s *GridServiceImpl) Autofill(ctx context.Context, req salarygrid.AutofillGridRequest) (salarygrid.GridResponse, error) {
	if err := req.Validate(); err != nil {
		return salarygrid.GridResponse{}, err
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return salarygrid.GridResponse{}, err
	}

	employees, err := s.activeEmployees(ctx, companyID)
	if err != nil {
		return salarygrid.GridResponse{}, fmt.Errorf("failed to get employees: %w", err)
	}

	rows := s.matcher.Autofill(employees, req.Month, req.Year)
	return s.gridResponse(rows, req.Month, req.Year), nil
}

func (s *GridServiceImpl) ImportSheet(ctx context.Context, file io.Reader, filename string, month, year int) (salarygrid.GridResponse, error) {
	if !validator.IsValidPeriod(month, year) {
		return salarygrid.GridResponse{}, salarygrid.ErrInvalidPeriod
	}

	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return salarygrid.GridResponse{}, err
	}

	rows, err := s.sheets.Parse(file, filename)
	if err != nil {
		return salarygrid.GridResponse{}, err
	}

	employees, err := s.activeEmployees(ctx, companyID)
	if err != nil {
		return salarygrid.GridResponse{}, fmt.Errorf("failed to get employees: %w", err)
	}

	rows = s.matcher.MatchAllImported(rows, employees, month, year)
	return s.gridResponse(rows, month, year), nil
}

func (s *GridServiceImpl) ExportSheet(ctx context.Context, req salarygrid.RecalculateGridRequest) ([]byte, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", err
	}

	rows := s.calculator.RecalculateAll(req.Rows, req.Month, req.Year)
	return s.sheets.Build(rows, req.Month, req.Year)
}

func (s *GridServiceImpl) ValidateGrid(ctx context.Context, req salarygrid.SubmitGridRequest) (salarygrid.ValidateGridResponse, error) {
	if err := req.Validate(); err != nil {
		if errs, ok := err.(interface{ ToMap() map[string]string }); ok {
			return salarygrid.ValidateGridResponse{Valid: false, Violations: errs.ToMap()}, nil
		}
		return salarygrid.ValidateGridResponse{}, err
	}
	return salarygrid.ValidateGridResponse{Valid: true}, nil
}

func (s *GridServiceImpl) Submit(ctx context.Context, req salarygrid.SubmitGridRequest) (salarygrid.SubmissionResult, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return salarygrid.SubmissionResult{}, err
	}

	if err := req.Validate(); err != nil {
		return salarygrid.SubmissionResult{}, err
	}

	// derive once more server-side so stale client values never reach storage
	rows := s.calculator.RecalculateAll(req.Rows, req.Month, req.Year)

	submission := salarygrid.BulkSubmission{
		Month:   req.Month,
		Year:    req.Year,
		Entries: buildEntries(rows),
	}

	result, err := s.salaryRepo.ProcessBulkSubmission(ctx, companyID, submission)
	if err != nil {
		return salarygrid.SubmissionResult{}, err
	}

	// advance balances moved and employees may have been created
	s.queryCache.Invalidate(employeesTag)

	return result, nil
}

func buildEntries(rows []salarygrid.Row) []salarygrid.SalaryEntry {
	filled := salarygrid.FilledRows(rows)
	entries := make([]salarygrid.SalaryEntry, 0, len(filled))
	for _, row := range filled {
		entries = append(entries, salarygrid.SalaryEntry{
			SequenceNumber:     row.SequenceNumber,
			EmployeeCode:       row.EmployeeID,
			EmployeeName:       row.EmployeeName,
			Basic:              row.Basic,
			JoiningDate:        row.JoiningDate,
			Designation:        row.Designation,
			MonthlySalary:      row.MonthlySalary,
			MedicalMobile:      row.MedicalMobile,
			BonusBoksis:        row.BonusBoksis,
			PerDay:             row.PerDay,
			DailyPresent:       row.DailyPresent,
			TotalPayable:       row.TotalPayable,
			Advance:            row.Advance,
			ModeOfPayment:      row.ModeOfPayment,
			Balance:            row.Balance,
			IsExistingEmployee: row.IsExistingEmployee,
		})
	}
	return entries
}
