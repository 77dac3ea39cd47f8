package attendance

import (
	"github.com/peoplecore/hrm-backend-go/internal/pkg/validator"
)

type ClockInRequest struct {
	EmployeeID string  `json:"-"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	IPAddress  *string `json:"-"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

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

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClockOutRequest struct {
	EmployeeID string  `json:"-"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

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

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID               string  `json:"id"`
	EmployeeID       string  `json:"employeeId"`
	Date             string  `json:"date"`
	ClockIn          *string `json:"clockIn"`
	ClockOut         *string `json:"clockOut"`
	Status           Status  `json:"status"`
	CorrectionStatus *string `json:"correctionStatus,omitempty"`
}

func ToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:               a.ID,
		EmployeeID:       a.EmployeeID,
		Date:             a.Date.Format("2006-01-02"),
		Status:           a.Status,
		CorrectionStatus: a.CorrectionStatus,
	}
	if a.ClockIn != nil {
		s := a.ClockIn.Format("2006-01-02 15:04:05")
		resp.ClockIn = &s
	}
	if a.ClockOut != nil {
		s := a.ClockOut.Format("2006-01-02 15:04:05")
		resp.ClockOut = &s
	}
	return resp
}
