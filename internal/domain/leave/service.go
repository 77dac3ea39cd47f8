package leave

import "context"

// LeaveService defines the leave request workflow.
type LeaveService interface {
	// Submit validates the window, day count, balance and overlap rules
	// and creates a PENDING request.
	Submit(ctx context.Context, req SubmitRequest) (LeaveRequest, error)

	// Review decides a request. Approval runs inside one transaction:
	// lock the request, guard terminal APPROVED, lock the employee,
	// re-verify the balance, deduct atomically, back-fill ON_LEAVE days.
	Review(ctx context.Context, req ReviewRequest) (LeaveRequest, error)

	ListMine(ctx context.Context, employeeID string, page, limit int) ([]LeaveRequest, int64, error)
	ListByStatus(ctx context.Context, status Status, page, limit int) ([]LeaveRequest, int64, error)

	// ListTeam returns requests from the manager's direct reports.
	ListTeam(ctx context.Context, managerID string) ([]LeaveRequest, error)
}
