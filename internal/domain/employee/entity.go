package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID              string
	CompanyID       string
	EmployeeCode    string
	FullName        string
	BaseSalary      decimal.Decimal
	JoinDate        *time.Time
	Designation     *string
	MobileAllowance decimal.Decimal
	AdvanceBalance  decimal.Decimal
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time
}
