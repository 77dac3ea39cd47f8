package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type PayrollRecord struct {
	ID            string
	EmployeeID    string
	Month         int
	Year          int
	WorkingDays   int
	DaysPresent   int
	MonthlySalary decimal.Decimal
	PayableAmount decimal.Decimal
	GeneratedBy   *string
	CreatedAt     time.Time

	EmployeeFirstName *string
	EmployeeLastName  *string
}

type Payslip struct {
	ID         string
	PayrollID  string
	EmployeeID string
	Month      int
	Year       int
	CreatedAt  time.Time
}

// PayslipDetail joins a payslip with its payroll figures and the
// employee identity for rendering.
type PayslipDetail struct {
	Payslip
	WorkingDays   int
	DaysPresent   int
	MonthlySalary decimal.Decimal
	PayableAmount decimal.Decimal
	FirstName     string
	LastName      string
	EmployeeCode  string
	Department    string
	Designation   string
}

// Payable prorates the monthly salary by attendance:
// salary / workingDays * daysPresent, rounded to 2 decimal places.
func Payable(salary decimal.Decimal, workingDays, daysPresent int) decimal.Decimal {
	if workingDays <= 0 {
		return decimal.Zero
	}
	return salary.
		Div(decimal.NewFromInt(int64(workingDays))).
		Mul(decimal.NewFromInt(int64(daysPresent))).
		Round(2)
}
