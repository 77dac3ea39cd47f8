package dashboard

import (
	"context"
	"time"
)

type DashboardRepository interface {
	// CountActiveEmployees counts employees whose account is active.
	CountActiveEmployees(ctx context.Context) (int64, error)

	// CountPresentOn counts attendance rows with a clock-in punch on the
	// given date.
	CountPresentOn(ctx context.Context, date time.Time) (int64, error)
}
