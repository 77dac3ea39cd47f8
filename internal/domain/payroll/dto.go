package payroll

import (
	"time"

	"github.com/peoplecore/hrm-backend-go/internal/pkg/validator"
)

type GenerateRequest struct {
	GeneratedBy string `json:"-"`
	Month       int    `json:"month"`
	Year        int    `json:"year"`
}

func (r *GenerateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if r.Year < 2000 || r.Year > time.Now().Year()+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// GenerateResult reports how many employees were covered by the run.
type GenerateResult struct {
	Month     int `json:"month"`
	Year      int `json:"year"`
	Generated int `json:"generated"`
	Skipped   int `json:"skipped"`
}
