package employee

import "context"

// EmployeeService defines employee administration workflows.
type EmployeeService interface {
	// Create inserts the user and employee rows in one transaction. The
	// username is derived from the email local part with an incrementing
	// suffix until unused; the suffix probe runs inside the same
	// transaction as the insert.
	Create(ctx context.Context, req CreateRequest) (CreateResult, error)

	Get(ctx context.Context, id string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	List(ctx context.Context, page, limit int, search string) ([]Employee, int64, error)
	ListManagers(ctx context.Context) ([]Employee, error)
	ListTeam(ctx context.Context, managerID string) ([]Employee, error)

	// SetActive toggles both the employee and its user row.
	SetActive(ctx context.Context, id string, isActive bool, actorUserID string) error
}
