package correction

import "context"

// CorrectionService defines the attendance correction workflow.
type CorrectionService interface {
	// Submit files a PENDING correction; a second one for the same
	// (employee, date) is rejected.
	Submit(ctx context.Context, req SubmitRequest) (Correction, error)

	// Review decides a correction. Approval runs inside one
	// transaction: lock the correction, require PENDING, lock the
	// attendance row, apply the requested punches falling back to the
	// existing ones, force PRESENT.
	Review(ctx context.Context, req ReviewRequest) (Correction, error)

	List(ctx context.Context, page, limit int) ([]Correction, int64, error)
}
