package employee

import (
	"github.com/bizmanage/payroll-grid-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type SearchEmployeeRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

type EmployeeResponse struct {
	ID              string          `json:"id"`
	EmployeeCode    string          `json:"employee_code"`
	FullName        string          `json:"full_name"`
	BaseSalary      decimal.Decimal `json:"base_salary"`
	JoinDate        *string         `json:"join_date,omitempty"`
	Designation     *string         `json:"designation,omitempty"`
	MobileAllowance decimal.Decimal `json:"mobile_allowance"`
	AdvanceBalance  decimal.Decimal `json:"advance_balance"`
	IsActive        bool            `json:"is_active"`
}

type CreateEmployeeRequest struct {
	FullName        string           `json:"full_name"`
	BaseSalary      decimal.Decimal  `json:"base_salary"`
	JoinDate        *string          `json:"join_date,omitempty"`
	Designation     *string          `json:"designation,omitempty"`
	MobileAllowance *decimal.Decimal `json:"mobile_allowance,omitempty"`
	AdvanceBalance  *decimal.Decimal `json:"advance_balance,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}
	if r.JoinDate != nil {
		if _, ok := validator.IsValidDate(*r.JoinDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "join_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	if r.MobileAllowance != nil && r.MobileAllowance.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "mobile_allowance", Message: "must be non-negative"})
	}
	if r.AdvanceBalance != nil && r.AdvanceBalance.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "advance_balance", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
