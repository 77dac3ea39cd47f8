package audit

import "time"

// Entry is one append-only audit row. Entries are never mutated or
// deleted; writing one is a best-effort side channel of every mutating
// workflow and never fails the parent operation.
type Entry struct {
	ID        string
	UserID    *string
	Action    string
	Entity    string
	EntityID  *string
	Details   *string
	IPAddress *string
	CreatedAt time.Time

	// joined for admin listings
	Username *string
}

// Action kinds recorded by the workflows.
const (
	ActionClockIn            = "CLOCK_IN"
	ActionClockOut           = "CLOCK_OUT"
	ActionLeaveApproved      = "LEAVE_APPROVED"
	ActionLeaveRejected      = "LEAVE_REJECTED"
	ActionCorrectionApproved = "CORRECTION_APPROVED"
	ActionCorrectionRejected = "CORRECTION_REJECTED"
	ActionCreateEmployee     = "CREATE_EMPLOYEE"
	ActionActivateEmployee   = "ACTIVATE_EMPLOYEE"
	ActionDeactivateEmployee = "DEACTIVATE_EMPLOYEE"
	ActionPasswordReset      = "PASSWORD_RESET"
	ActionAdminPasswordReset = "ADMIN_PASSWORD_RESET"
	ActionGeneratePayroll    = "GENERATE_PAYROLL"
	ActionUpdateSettings     = "UPDATE_OFFICE_SETTINGS"
)
