package employee

import (
	"context"
	"testing"
	"time"

	"github.com/bizmanage/payroll-grid-go/internal/domain/employee"
	"github.com/bizmanage/payroll-grid-go/internal/pkg/cache"
	"github.com/bizmanage/payroll-grid-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees []employee.Employee
	nextCode  string
}

func (r *fakeEmployeeRepo) GetActiveByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	return r.employees, nil
}

func (r *fakeEmployeeRepo) GetByCode(ctx context.Context, companyID, employeeCode string) (employee.Employee, error) {
	for _, emp := range r.employees {
		if emp.EmployeeCode == employeeCode {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	newEmployee.ID = "id-" + newEmployee.EmployeeCode
	r.employees = append(r.employees, newEmployee)
	return newEmployee, nil
}

func (r *fakeEmployeeRepo) NextEmployeeCode(ctx context.Context, companyID string) (string, error) {
	return r.nextCode, nil
}

func (r *fakeEmployeeRepo) UpdateAdvanceBalance(ctx context.Context, companyID, id string, balance decimal.Decimal) error {
	return nil
}

func authedContext(t *testing.T, companyID string) context.Context {
	token, err := jwt.NewBuilder().
		Claim("company_id", companyID).
		Claim("type", "access").
		Expiration(time.Now().Add(time.Hour)).
		Build()
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func directoryEmployee(code, name string) employee.Employee {
	return employee.Employee{
		ID:           "id-" + code,
		CompanyID:    "company-1",
		EmployeeCode: code,
		FullName:     name,
		BaseSalary:   decimal.RequireFromString("26000"),
		IsActive:     true,
	}
}

func TestEmployeeService_SearchEmployees(t *testing.T) {
	repo := &fakeEmployeeRepo{employees: []employee.Employee{
		directoryEmployee("EMP-00001", "John Doe"),
		directoryEmployee("EMP-00002", "Jane Miller"),
	}}
	svc := NewEmployeeService(repo, cache.New(time.Minute))
	ctx := authedContext(t, "company-1")

	got, err := svc.SearchEmployees(ctx, employee.SearchEmployeeRequest{Query: "jane"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Jane Miller", got[0].FullName)
}

func TestEmployeeService_SearchEmployees_NoClaims(t *testing.T) {
	svc := NewEmployeeService(&fakeEmployeeRepo{}, cache.New(time.Minute))

	_, err := svc.SearchEmployees(context.Background(), employee.SearchEmployeeRequest{Query: "jane"})
	assert.Error(t, err)
}

func TestEmployeeService_ListActiveEmployees(t *testing.T) {
	repo := &fakeEmployeeRepo{employees: []employee.Employee{
		directoryEmployee("EMP-00001", "John Doe"),
	}}
	svc := NewEmployeeService(repo, cache.New(time.Minute))

	got, err := svc.ListActiveEmployees(authedContext(t, "company-1"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "EMP-00001", got[0].EmployeeCode)
}

func TestEmployeeService_CreateEmployee(t *testing.T) {
	repo := &fakeEmployeeRepo{nextCode: "EMP-00003"}
	svc := NewEmployeeService(repo, cache.New(time.Minute))
	ctx := authedContext(t, "company-1")

	joinDate := "2024-06-01"
	allowance := decimal.RequireFromString("500")
	got, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		FullName:        "New Hire",
		BaseSalary:      decimal.RequireFromString("20000"),
		JoinDate:        &joinDate,
		MobileAllowance: &allowance,
	})
	require.NoError(t, err)
	assert.Equal(t, "EMP-00003", got.EmployeeCode)
	require.NotNil(t, got.JoinDate)
	assert.Equal(t, "2024-06-01", *got.JoinDate)
	assert.Equal(t, "500", got.MobileAllowance.String())
	assert.True(t, got.IsActive)

	require.Len(t, repo.employees, 1)
	assert.Equal(t, "company-1", repo.employees[0].CompanyID)
}

func TestEmployeeService_CreateEmployee_Validation(t *testing.T) {
	svc := NewEmployeeService(&fakeEmployeeRepo{}, cache.New(time.Minute))
	ctx := authedContext(t, "company-1")

	_, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		FullName:   "   ",
		BaseSalary: decimal.RequireFromString("-1"),
	})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 2)
}
