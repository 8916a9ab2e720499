package employee

import (
	"context"

	"github.com/shopspring/decimal"
)

type EmployeeRepository interface {
	GetActiveByCompanyID(ctx context.Context, companyID string) ([]Employee, error)
	GetByCode(ctx context.Context, companyID string, employeeCode string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	NextEmployeeCode(ctx context.Context, companyID string) (string, error)
	UpdateAdvanceBalance(ctx context.Context, companyID string, id string, balance decimal.Decimal) error
}
