package correction

import "time"

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Correction is an employee-submitted amendment to one day's punches.
// At most one correction exists per (employee, date); the uniqueness
// constraint rejects a second submission at creation time.
type Correction struct {
	ID                string
	EmployeeID        string
	Date              time.Time
	RequestedClockIn  *time.Time
	RequestedClockOut *time.Time
	Reason            string
	Status            Status
	ReviewedBy        *string
	ReviewedAt        *time.Time
	CreatedAt         time.Time

	// joined for admin listings
	EmployeeFirstName *string
	EmployeeLastName  *string
}
