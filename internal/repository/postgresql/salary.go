package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/bizmanage/payroll-grid-go/internal/domain/employee"
	"github.com/bizmanage/payroll-grid-go/internal/domain/salarygrid"
	"github.com/bizmanage/payroll-grid-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type salaryRepositoryImpl struct {
	db        *database.DB
	employees employee.EmployeeRepository
}

func NewSalaryRepository(db *database.DB, employees employee.EmployeeRepository) salarygrid.SalaryRepository {
	return &salaryRepositoryImpl{db: db, employees: employees}
}

// ProcessBulkSubmission implements salarygrid.SalaryRepository. Every entry
// runs in its own transaction so one bad row fails alone; the rest of the
// batch still lands.
func (r *salaryRepositoryImpl) ProcessBulkSubmission(ctx context.Context, companyID string, submission salarygrid.BulkSubmission) (salarygrid.SubmissionResult, error) {
	result := salarygrid.SubmissionResult{
		CreatedEmployees:       []string{},
		UpdatedAdvanceBalances: make(map[string]decimal.Decimal),
		Errors:                 []salarygrid.SubmissionRowError{},
	}
	result.Summary.TotalRows = len(submission.Entries)

	for _, entry := range submission.Entries {
		var createdCode string
		var updatedBalance *decimal.Decimal

		err := WithTransaction(ctx, r.db, func(txCtx context.Context, tx pgx.Tx) error {
			emp, created, err := r.resolveEmployee(txCtx, companyID, entry)
			if err != nil {
				return err
			}
			if created {
				createdCode = emp.EmployeeCode
			}

			if err := r.insertSalary(txCtx, companyID, emp.ID, submission.Month, submission.Year, entry); err != nil {
				return err
			}
			if err := r.insertSalaryExpense(txCtx, companyID, emp.FullName, submission.Month, submission.Year, entry.TotalPayable); err != nil {
				return err
			}

			if entry.Advance.IsPositive() {
				balance := emp.AdvanceBalance.Sub(entry.Advance)
				if balance.IsNegative() {
					balance = decimal.Zero
				}
				if err := r.employees.UpdateAdvanceBalance(txCtx, companyID, emp.ID, balance); err != nil {
					return err
				}
				updatedBalance = &balance
			}

			return nil
		})

		if err != nil {
			result.Summary.Failed++
			result.Errors = append(result.Errors, salarygrid.SubmissionRowError{
				Row:          entry.SequenceNumber,
				EmployeeName: entry.EmployeeName,
				Reason:       err.Error(),
			})
			continue
		}

		result.Summary.Processed++
		result.Summary.SalariesCreated++
		result.Summary.ExpensesCreated++
		if createdCode != "" {
			result.Summary.EmployeesCreated++
			result.CreatedEmployees = append(result.CreatedEmployees, createdCode)
		}
		if updatedBalance != nil {
			result.UpdatedAdvanceBalances[entry.EmployeeCode] = *updatedBalance
		}
	}

	return result, nil
}

// resolveEmployee finds the matched employee, or auto-creates a directory
// record for a new-entry row.
func (r *salaryRepositoryImpl) resolveEmployee(ctx context.Context, companyID string, entry salarygrid.SalaryEntry) (employee.Employee, bool, error) {
	if entry.IsExistingEmployee && entry.EmployeeCode != "" {
		emp, err := r.employees.GetByCode(ctx, companyID, entry.EmployeeCode)
		if err != nil {
			return employee.Employee{}, false, err
		}
		return emp, false, nil
	}

	code, err := r.employees.NextEmployeeCode(ctx, companyID)
	if err != nil {
		return employee.Employee{}, false, err
	}

	newEmployee := employee.Employee{
		CompanyID:       companyID,
		EmployeeCode:    code,
		FullName:        entry.EmployeeName,
		BaseSalary:      entry.Basic,
		MobileAllowance: entry.MedicalMobile,
		AdvanceBalance:  decimal.Zero,
		IsActive:        true,
	}
	if entry.JoiningDate != "" {
		if parsed, perr := time.Parse("2006-01-02", entry.JoiningDate); perr == nil {
			newEmployee.JoinDate = &parsed
		}
	}
	if entry.Designation != "" {
		designation := entry.Designation
		newEmployee.Designation = &designation
	}

	created, err := r.employees.Create(ctx, newEmployee)
	if err != nil {
		return employee.Employee{}, false, err
	}

	return created, true, nil
}

func (r *salaryRepositoryImpl) insertSalary(ctx context.Context, companyID, employeeID string, month, year int, entry salarygrid.SalaryEntry) error {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM salaries
			WHERE company_id = $1 AND employee_id = $2 AND period_month = $3 AND period_year = $4
		)
	`, companyID, employeeID, month, year).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return salarygrid.ErrSalaryPeriodExists
	}

	_, err = q.Exec(ctx, `
		INSERT INTO salaries (
			company_id, employee_id, period_month, period_year,
			basic, monthly_salary, medical_mobile, bonus_boksis,
			per_day, daily_present, total_payable, advance, mode_of_payment, balance
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`,
		companyID, employeeID, month, year,
		entry.Basic, entry.MonthlySalary, entry.MedicalMobile, entry.BonusBoksis,
		entry.PerDay, entry.DailyPresent, entry.TotalPayable, entry.Advance,
		string(entry.ModeOfPayment), entry.Balance,
	)
	if err != nil {
		return fmt.Errorf("failed to create salary record: %w", err)
	}

	return nil
}

func (r *salaryRepositoryImpl) insertSalaryExpense(ctx context.Context, companyID, employeeName string, month, year int, amount decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	description := fmt.Sprintf("Salary %s %s %d", employeeName, time.Month(month), year)
	expenseDate := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)

	_, err := q.Exec(ctx, `
		INSERT INTO expenses (company_id, category, description, amount, expense_date)
		VALUES ($1, 'salary', $2, $3, $4)
	`, companyID, description, amount, expenseDate)
	if err != nil {
		return fmt.Errorf("failed to create salary expense: %w", err)
	}

	return nil
}
