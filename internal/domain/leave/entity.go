package leave

import "time"

type Type string

const (
	TypeCasual  Type = "CASUAL"
	TypeMedical Type = "MEDICAL"
	TypeEarned  Type = "EARNED"
	TypeUnpaid  Type = "UNPAID"
)

func (t Type) Valid() bool {
	switch t {
	case TypeCasual, TypeMedical, TypeEarned, TypeUnpaid:
		return true
	}
	return false
}

// Deductible reports whether approving this type consumes a balance
// counter. Unpaid leave deducts nothing.
func (t Type) Deductible() bool {
	return t != TypeUnpaid
}

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

type LeaveRequest struct {
	ID         string
	EmployeeID string
	LeaveType  Type
	StartDate  time.Time
	EndDate    time.Time

	// Days is the inclusive day count captured at submission; it is
	// never recomputed afterwards.
	Days int

	Reason     string
	Status     Status
	ReviewedBy *string
	ReviewedAt *time.Time
	CreatedAt  time.Time

	// joined for admin/manager listings
	EmployeeFirstName *string
	EmployeeLastName  *string
}
