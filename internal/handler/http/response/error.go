package response

import (
	"errors"
	"net/http"

	"github.com/bizmanage/payroll-grid-go/internal/domain/auth"
	"github.com/bizmanage/payroll-grid-go/internal/domain/employee"
	"github.com/bizmanage/payroll-grid-go/internal/domain/salarygrid"
	"github.com/bizmanage/payroll-grid-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")

	// Salary grid errors
	case errors.Is(err, salarygrid.ErrInvalidPeriod):
		BadRequest(w, "Invalid pay period", nil)
	case errors.Is(err, salarygrid.ErrSheetParse):
		BadRequest(w, "Could not parse the uploaded spreadsheet", nil)
	case errors.Is(err, salarygrid.ErrDerivedFieldEdit):
		BadRequest(w, "Derived fields cannot be edited directly", nil)
	case errors.Is(err, salarygrid.ErrUnknownField):
		BadRequest(w, "Unknown grid field", nil)
	case errors.Is(err, salarygrid.ErrSalaryPeriodExists):
		Conflict(w, "Salary already recorded for this employee and period")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
