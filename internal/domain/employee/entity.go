package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID            string
	UserID        *string
	EmployeeCode  string
	FirstName     string
	LastName      string
	Email         string
	Phone         *string
	Department    string
	Designation   string
	ManagerID     *string
	MonthlySalary decimal.Decimal
	DateOfJoining time.Time

	// Leave balance ledger. Mutated only by the leave approval workflow
	// (atomic in-SQL decrement) and the monthly accrual job; never
	// negative, enforced by CHECK constraints and re-verified under the
	// row lock before every deduction.
	CasualLeaveBalance  int
	MedicalLeaveBalance int
	EarnedLeaveBalance  int
	LastLeaveAccrual    *time.Time

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// BalanceFor returns the ledger counter for a balance-tracked leave
// type; ok is false for unpaid leave, which deducts nothing.
func (e Employee) BalanceFor(leaveType string) (int, bool) {
	switch leaveType {
	case "CASUAL":
		return e.CasualLeaveBalance, true
	case "MEDICAL":
		return e.MedicalLeaveBalance, true
	case "EARNED":
		return e.EarnedLeaveBalance, true
	}
	return 0, false
}
