package employee

import "time"

// AccrualDue reports whether the monthly leave credit is still owed for
// the month starting at firstOfMonth. The stored last_leave_accrual
// stamp is the idempotency key: once it matches the first of the
// current month the credit has been applied and re-running the job is a
// no-op for this employee.
func AccrualDue(lastAccrual *time.Time, firstOfMonth time.Time) bool {
	if lastAccrual == nil {
		return true
	}
	return lastAccrual.Year() != firstOfMonth.Year() ||
		lastAccrual.Month() != firstOfMonth.Month()
}
