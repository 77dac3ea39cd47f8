package setting

import "context"

// SettingService manages the office geofence singleton.
type SettingService interface {
	// Get returns nil when no office has been configured yet.
	Get(ctx context.Context) (*OfficeSetting, error)

	Update(ctx context.Context, req UpdateRequest) (OfficeSetting, error)
}
