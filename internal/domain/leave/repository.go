package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository defines data access for leave requests.
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// GetByIDForUpdate locks the request row; must run inside a
	// transaction carried by ctx.
	GetByIDForUpdate(ctx context.Context, id string) (LeaveRequest, error)

	// UpdateStatus persists the decision plus reviewer and timestamp.
	UpdateStatus(ctx context.Context, id string, status Status, reviewedBy string, reviewedAt time.Time) error

	// HasOverlapping reports whether the employee already has a PENDING
	// or APPROVED request sharing a day with [start, end].
	HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error)

	// HasApprovedOn reports whether an approved request covers the date;
	// gates clock-in on a leave day.
	HasApprovedOn(ctx context.Context, employeeID string, date time.Time) (bool, error)

	ListByEmployee(ctx context.Context, employeeID string, page, limit int) ([]LeaveRequest, int64, error)
	ListByStatus(ctx context.Context, status Status, page, limit int) ([]LeaveRequest, int64, error)
	ListByManager(ctx context.Context, managerID string) ([]LeaveRequest, error)
	CountPending(ctx context.Context) (int64, error)
	CountApprovedOn(ctx context.Context, date time.Time) (int64, error)
}
