package setting

import "time"

// OfficeSetting is the geofence singleton. When no row exists clock-in
// skips the distance check entirely; the open default is intentional
// for bootstrap installs.
type OfficeSetting struct {
	ID                  string
	OfficeName          string
	Latitude            float64
	Longitude           float64
	AllowedRadiusMeters int
	UpdatedAt           time.Time
}
