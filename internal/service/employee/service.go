package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/bizmanage/payroll-grid-go/internal/domain/employee"
	"github.com/bizmanage/payroll-grid-go/internal/pkg/cache"
	gridService "github.com/bizmanage/payroll-grid-go/internal/service/salarygrid"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	queryCache   *cache.Cache
	matcher      *gridService.Matcher
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	queryCache *cache.Cache,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		queryCache:   queryCache,
		matcher:      gridService.NewMatcher(gridService.NewCalculator()),
	}
}

func getClaimsFromContext(ctx context.Context) (companyID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

const employeesTag = "employees"

func (s *EmployeeServiceImpl) activeEmployees(ctx context.Context, companyID string) ([]employee.Employee, error) {
	key := "employees:active:" + companyID
	value, err := s.queryCache.Fetch(ctx, key, []string{employeesTag}, func(ctx context.Context) (interface{}, error) {
		return s.employeeRepo.GetActiveByCompanyID(ctx, companyID)
	})
	if err != nil {
		return nil, err
	}
	return value.([]employee.Employee), nil
}

func (s *EmployeeServiceImpl) SearchEmployees(ctx context.Context, req employee.SearchEmployeeRequest) ([]employee.EmployeeResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	employees, err := s.activeEmployees(ctx, companyID)
	if err != nil {
		return nil, err
	}

	matched := s.matcher.Search(employees, req.Query, req.Limit)
	return mapToResponses(matched), nil
}

func (s *EmployeeServiceImpl) ListActiveEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	employees, err := s.activeEmployees(ctx, companyID)
	if err != nil {
		return nil, err
	}

	return mapToResponses(employees), nil
}

func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	code, err := s.employeeRepo.NextEmployeeCode(ctx, companyID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to allocate employee code: %w", err)
	}

	newEmployee := employee.Employee{
		CompanyID:       companyID,
		EmployeeCode:    code,
		FullName:        req.FullName,
		BaseSalary:      req.BaseSalary,
		Designation:     req.Designation,
		MobileAllowance: decimal.Zero,
		AdvanceBalance:  decimal.Zero,
		IsActive:        true,
	}
	if req.JoinDate != nil {
		if parsed, perr := time.Parse("2006-01-02", *req.JoinDate); perr == nil {
			newEmployee.JoinDate = &parsed
		}
	}
	if req.MobileAllowance != nil {
		newEmployee.MobileAllowance = *req.MobileAllowance
	}
	if req.AdvanceBalance != nil {
		newEmployee.AdvanceBalance = *req.AdvanceBalance
	}

	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.queryCache.Invalidate(employeesTag)

	return mapToResponse(created), nil
}

func mapToResponse(e employee.Employee) employee.EmployeeResponse {
	var joinDate *string
	if e.JoinDate != nil {
		str := e.JoinDate.Format("2006-01-02")
		joinDate = &str
	}

	return employee.EmployeeResponse{
		ID:              e.ID,
		EmployeeCode:    e.EmployeeCode,
		FullName:        e.FullName,
		BaseSalary:      e.BaseSalary,
		JoinDate:        joinDate,
		Designation:     e.Designation,
		MobileAllowance: e.MobileAllowance,
		AdvanceBalance:  e.AdvanceBalance,
		IsActive:        e.IsActive,
	}
}

func mapToResponses(employees []employee.Employee) []employee.EmployeeResponse {
	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		result = append(result, mapToResponse(e))
	}
	return result
}
