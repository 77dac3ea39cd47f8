package setting

import (
	"github.com/peoplecore/hrm-backend-go/internal/pkg/validator"
)

type UpdateRequest struct {
	UpdatedBy           string  `json:"-"`
	OfficeName          string  `json:"officeName"`
	Latitude            float64 `json:"latitude"`
	Longitude           float64 `json:"longitude"`
	AllowedRadiusMeters int     `json:"allowedRadiusMeters"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.OfficeName) {
		errs = append(errs, validator.ValidationError{
			Field:   "officeName",
			Message: "officeName is required",
		})
	}

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if r.AllowedRadiusMeters <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "allowedRadiusMeters",
			Message: "allowedRadiusMeters must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
