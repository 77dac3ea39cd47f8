package correction

import (
	"context"
	"time"
)

type CorrectionRepository interface {
	Create(ctx context.Context, c Correction) (Correction, error)
	GetByID(ctx context.Context, id string) (Correction, error)

	// GetByIDForUpdate locks the correction row; must run inside a
	// transaction carried by ctx.
	GetByIDForUpdate(ctx context.Context, id string) (Correction, error)

	UpdateStatus(ctx context.Context, id string, status Status, reviewedBy string, reviewedAt time.Time) error
	List(ctx context.Context, page, limit int) ([]Correction, int64, error)
	CountPending(ctx context.Context) (int64, error)
}
