package leave

import (
	"time"

	"github.com/peoplecore/hrm-backend-go/internal/pkg/validator"
)

type SubmitRequest struct {
	EmployeeID string `json:"-"`
	LeaveType  string `json:"leaveType"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Reason     string `json:"reason"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if !Type(r.LeaveType).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "leaveType",
			Message: "leaveType must be one of CASUAL, MEDICAL, EARNED, UNPAID",
		})
	}

	if !validator.IsValidDate(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "startDate must be a date in YYYY-MM-DD form",
		})
	}

	if !validator.IsValidDate(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must be a date in YYYY-MM-DD form",
		})
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

// Dates returns the parsed range; Validate must have passed.
func (r *SubmitRequest) Dates() (start, end time.Time) {
	start, _ = time.Parse("2006-01-02", r.StartDate)
	end, _ = time.Parse("2006-01-02", r.EndDate)
	return start, end
}

type LeaveResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employeeId"`
	LeaveType    Type    `json:"leaveType"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	Days         int     `json:"days"`
	Reason       string  `json:"reason"`
	Status       Status  `json:"status"`
	ReviewedBy   *string `json:"reviewedBy,omitempty"`
	EmployeeName *string `json:"employeeName,omitempty"`
	CreatedAt    string  `json:"createdAt"`
}

func ToResponse(lr LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:         lr.ID,
		EmployeeID: lr.EmployeeID,
		LeaveType:  lr.LeaveType,
		StartDate:  lr.StartDate.Format("2006-01-02"),
		EndDate:    lr.EndDate.Format("2006-01-02"),
		Days:       lr.Days,
		Reason:     lr.Reason,
		Status:     lr.Status,
		ReviewedBy: lr.ReviewedBy,
		CreatedAt:  lr.CreatedAt.Format(time.RFC3339),
	}
	if lr.EmployeeFirstName != nil && lr.EmployeeLastName != nil {
		name := *lr.EmployeeFirstName + " " + *lr.EmployeeLastName
		resp.EmployeeName = &name
	}
	return resp
}

type ReviewRequest struct {
	RequestID  string `json:"-"`
	ReviewerID string `json:"-"`
	Status     string `json:"status"`
}

func (r *ReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.RequestID) {
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
