package employee

import (
	"context"
	"time"
)

// EmployeeRepository defines data access for employee rows including
// the leave balance ledger.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (*Employee, error)

	// GetByIDForUpdate loads the employee row under a row-exclusive lock.
	// Must be called inside a transaction carried by ctx.
	GetByIDForUpdate(ctx context.Context, id string) (Employee, error)

	// DeductLeaveBalance decrements the counter for leaveType by days as
	// a server-side expression, never a read-modify-write.
	DeductLeaveBalance(ctx context.Context, id, leaveType string, days int) error

	// CreditMonthlyAccrual adds one casual and one medical day and stamps
	// last_leave_accrual with firstOfMonth.
	CreditMonthlyAccrual(ctx context.Context, id string, firstOfMonth time.Time) error

	List(ctx context.Context, page, limit int, search string) ([]Employee, int64, error)
	ListActive(ctx context.Context) ([]Employee, error)

	// ListActiveJoinedBefore returns active employees whose date of
	// joining is on or before the cutoff; feeds the nightly sweep.
	ListActiveJoinedBefore(ctx context.Context, cutoff time.Time) ([]Employee, error)

	ListManagers(ctx context.Context) ([]Employee, error)
	ListByManager(ctx context.Context, managerID string) ([]Employee, error)
	SetActive(ctx context.Context, id string, isActive bool) error
}
