package dashboard

import "context"

type DashboardService interface {
	// Stats aggregates today's headline counts for the admin landing
	// page.
	Stats(ctx context.Context) (Stats, error)
}
