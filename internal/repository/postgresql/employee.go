package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/bizmanage/payroll-grid-go/internal/domain/employee"
	"github.com/bizmanage/payroll-grid-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, company_id, employee_code, full_name, base_salary, join_date, designation,
	mobile_allowance, advance_balance, is_active, created_at, updated_at, deleted_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.CompanyID, &emp.EmployeeCode, &emp.FullName, &emp.BaseSalary,
		&emp.JoinDate, &emp.Designation, &emp.MobileAllowance, &emp.AdvanceBalance,
		&emp.IsActive, &emp.CreatedAt, &emp.UpdatedAt, &emp.DeletedAt,
	)
	return emp, err
}

// GetActiveByCompanyID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetActiveByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE company_id = $1 AND is_active = TRUE AND deleted_at IS NULL
		ORDER BY employee_code
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// GetByCode implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByCode(ctx context.Context, companyID string, employeeCode string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE company_id = $1 AND employee_code = $2 AND deleted_at IS NULL
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, companyID, employeeCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	return emp, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (
			company_id, employee_code, full_name, base_salary, join_date, designation,
			mobile_allowance, advance_balance, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.CompanyID, newEmployee.EmployeeCode, newEmployee.FullName,
		newEmployee.BaseSalary, newEmployee.JoinDate, newEmployee.Designation,
		newEmployee.MobileAllowance, newEmployee.AdvanceBalance, newEmployee.IsActive,
	))
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee %s: %w", newEmployee.FullName, err)
	}

	return created, nil
}

// NextEmployeeCode implements employee.EmployeeRepository. Codes follow the
// EMP-00001 convention; the next code continues from the highest number the
// company has ever used, deleted employees included.
func (e *employeeRepositoryImpl) NextEmployeeCode(ctx context.Context, companyID string) (string, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT COALESCE(MAX(CAST(SUBSTRING(employee_code FROM 5) AS INTEGER)), 0)
		FROM employees
		WHERE company_id = $1 AND employee_code LIKE 'EMP-%'
	`

	var last int
	if err := q.QueryRow(ctx, query, companyID).Scan(&last); err != nil {
		return "", err
	}

	return fmt.Sprintf("EMP-%05d", last+1), nil
}

// UpdateAdvanceBalance implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) UpdateAdvanceBalance(ctx context.Context, companyID string, id string, balance decimal.Decimal) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET advance_balance = $1, updated_at = NOW()
		WHERE id = $2 AND company_id = $3 AND deleted_at IS NULL
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, balance, id, companyID).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update advance balance for employee %s: %w", id, err)
	}

	return nil
}
