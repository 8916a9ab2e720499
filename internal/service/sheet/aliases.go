package sheet

import (
	"strings"
	"time"
)

// Canonical grid fields resolvable from a spreadsheet header row.
const (
	fieldEmployeeID    = "employee_id"
	fieldEmployeeName  = "employee_name"
	fieldBasic         = "basic"
	fieldJoiningDate   = "joining_date"
	fieldDesignation   = "designation"
	fieldMonthlySalary = "monthly_salary"
	fieldMedicalMobile = "medical_mobile"
	fieldBonusBoksis   = "bonus_boksis"
	fieldDailyPresent  = "daily_present"
	fieldAdvance       = "advance"
	fieldModeOfPayment = "mode_of_payment"
)

// headerAliases lists accepted header spellings per field, in priority
// order. Comparison happens after normalization (lower-case, alphanumerics
// only), so "EMPLOYEE NAME", "EmployeeName" and "EMPLOYEENAME" all land on
// the same alias.
var headerAliases = map[string][]string{
	fieldEmployeeID:    {"idno", "employeeid", "empid", "employeecode", "id", "code"},
	fieldEmployeeName:  {"employeename", "name", "employee", "fullname"},
	fieldBasic:         {"basic", "basicsalary"},
	fieldJoiningDate:   {"joiningdate", "dateofjoining", "doj", "joindate"},
	fieldDesignation:   {"designation", "position", "title"},
	fieldMonthlySalary: {"monthlysalary", "salary", "grosssalary"},
	fieldMedicalMobile: {"medicalmobile", "medicalallowance", "mobileallowance", "medical", "mobile"},
	fieldBonusBoksis:   {"bonusboksis", "bonus", "boksis"},
	fieldDailyPresent:  {"dailypresent", "presentdays", "present", "days"},
	fieldAdvance:       {"advdeduction", "advancededuction", "advance", "adv"},
	fieldModeOfPayment: {"modeofpayment", "paymentmode", "payment", "mode"},
}

func init() {
	// exported sheets title the salary column "<MONTH> SALARY"
	for m := time.January; m <= time.December; m++ {
		headerAliases[fieldMonthlySalary] = append(
			headerAliases[fieldMonthlySalary],
			normalizeHeader(m.String()+" SALARY"),
		)
	}
}

// normalizeHeader lower-cases a header and strips everything that is not a
// letter or digit.
func normalizeHeader(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// resolveColumns maps each canonical field to its candidate column indexes,
// ordered by alias priority. Per data row, the first candidate holding a
// non-empty cell wins.
func resolveColumns(header []string) map[string][]int {
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = normalizeHeader(h)
	}

	columns := make(map[string][]int)
	for field, aliases := range headerAliases {
		for _, alias := range aliases {
			for i, h := range normalized {
				if h == alias {
					columns[field] = append(columns[field], i)
				}
			}
		}
	}
	return columns
}

// cellValue returns the first non-empty candidate cell for a field.
func cellValue(row []string, candidates []int) string {
	for _, i := range candidates {
		if i < len(row) && strings.TrimSpace(row[i]) != "" {
			return row[i]
		}
	}
	return ""
}
