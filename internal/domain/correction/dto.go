package correction

import (
	"time"

	"github.com/peoplecore/hrm-backend-go/internal/pkg/validator"
)

type SubmitRequest struct {
	EmployeeID        string  `json:"-"`
	Date              string  `json:"date"`
	RequestedClockIn  *string `json:"requestedClockIn"`
	RequestedClockOut *string `json:"requestedClockOut"`
	Reason            string  `json:"reason"`
}

const punchLayout = "2006-01-02 15:04:05"

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidDate(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a date in YYYY-MM-DD form",
		})
	}

	if r.RequestedClockIn == nil && r.RequestedClockOut == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "requestedClockIn",
			Message: "at least one of requestedClockIn, requestedClockOut is required",
		})
	}

	if r.RequestedClockIn != nil {
		if _, err := time.Parse(punchLayout, *r.RequestedClockIn); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "requestedClockIn",
				Message: "requestedClockIn must be a timestamp in YYYY-MM-DD HH:MM:SS form",
			})
		}
	}

	if r.RequestedClockOut != nil {
		if _, err := time.Parse(punchLayout, *r.RequestedClockOut); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "requestedClockOut",
				Message: "requestedClockOut must be a timestamp in YYYY-MM-DD HH:MM:SS form",
			})
		}
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Punches returns the parsed requested times; Validate must have
// passed.
func (r *SubmitRequest) Punches() (clockIn, clockOut *time.Time) {
	if r.RequestedClockIn != nil {
		t, _ := time.Parse(punchLayout, *r.RequestedClockIn)
		clockIn = &t
	}
	if r.RequestedClockOut != nil {
		t, _ := time.Parse(punchLayout, *r.RequestedClockOut)
		clockOut = &t
	}
	return clockIn, clockOut
}

type CorrectionResponse struct {
	ID                string  `json:"id"`
	EmployeeID        string  `json:"employeeId"`
	Date              string  `json:"date"`
	RequestedClockIn  *string `json:"requestedClockIn,omitempty"`
	RequestedClockOut *string `json:"requestedClockOut,omitempty"`
	Reason            string  `json:"reason"`
	Status            Status  `json:"status"`
	EmployeeName      *string `json:"employeeName,omitempty"`
	CreatedAt         string  `json:"createdAt"`
}

func ToResponse(c Correction) CorrectionResponse {
	resp := CorrectionResponse{
		ID:         c.ID,
		EmployeeID: c.EmployeeID,
		Date:       c.Date.Format("2006-01-02"),
		Reason:     c.Reason,
		Status:     c.Status,
		CreatedAt:  c.CreatedAt.Format(time.RFC3339),
	}
	if c.RequestedClockIn != nil {
		s := c.RequestedClockIn.Format(punchLayout)
		resp.RequestedClockIn = &s
	}
	if c.RequestedClockOut != nil {
		s := c.RequestedClockOut.Format(punchLayout)
		resp.RequestedClockOut = &s
	}
	if c.EmployeeFirstName != nil && c.EmployeeLastName != nil {
		name := *c.EmployeeFirstName + " " + *c.EmployeeLastName
		resp.EmployeeName = &name
	}
	return resp
}

type ReviewRequest struct {
	CorrectionID string `json:"-"`
	ReviewerID   string `json:"-"`
	Status       string `json:"status"`
}

func (r *ReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.CorrectionID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid uuid",
		})
	}

	if r.Status != string(StatusApproved) && r.Status != string(StatusRejected) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be APPROVED or REJECTED",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
