package employee

import "context"

// EmployeeService defines business logic for the employee directory
type EmployeeService interface {
	// SearchEmployees does live-lookup autocomplete over active employees
	// (companyID from JWT), capped at 10 results
	SearchEmployees(ctx context.Context, req SearchEmployeeRequest) ([]EmployeeResponse, error)

	// ListActiveEmployees lists all active employees for the company
	ListActiveEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// CreateEmployee creates a new employee with the next free employee code
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
}
