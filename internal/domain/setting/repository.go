package setting

import "context"

type OfficeSettingRepository interface {
	// Get returns nil when no office has been configured.
	Get(ctx context.Context) (*OfficeSetting, error)
	Upsert(ctx context.Context, s OfficeSetting) (OfficeSetting, error)
}
