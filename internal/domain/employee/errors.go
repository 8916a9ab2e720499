package employee

import "errors"

var (
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrEmployeeCodeExists   = errors.New("employee code already exists")
	ErrEmployeeNameRequired = errors.New("employee name is required")
	ErrInvalidEmployeeCode  = errors.New("invalid employee code format")
)
