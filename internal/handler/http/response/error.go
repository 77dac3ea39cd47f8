package response

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/peoplecore/hrm-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hrm-backend-go/internal/domain/correction"
	"github.com/peoplecore/hrm-backend-go/internal/domain/employee"
	"github.com/peoplecore/hrm-backend-go/internal/domain/leave"
	"github.com/peoplecore/hrm-backend-go/internal/domain/payroll"
	"github.com/peoplecore/hrm-backend-go/internal/domain/user"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// The geofence error carries measured distance and radius so the
	// client can render the exact message.
	var outOfRange *attendance.OutOfRangeError
	if errors.As(err, &outOfRange) {
		Error(w, http.StatusBadRequest, "OUT_OF_RANGE", outOfRange.Error(), map[string]string{
			"distance": strconv.FormatFloat(outOfRange.DistanceMeters, 'f', 0, 64),
			"radius":   strconv.Itoa(outOfRange.RadiusMeters),
		})
		return
	}

	switch {
	// Auth
	case errors.Is(err, user.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "Account is deactivated")
	case errors.Is(err, user.ErrWrongPassword):
		Error(w, http.StatusBadRequest, "WRONG_PASSWORD", "Current password is incorrect", nil)
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Employees
	case errors.Is(err, employee.ErrEmployeeNotFound):
		Error(w, http.StatusNotFound, "NO_EMPLOYEE", "Employee record not found", nil)
	case errors.Is(err, employee.ErrEmailExists):
		Error(w, http.StatusConflict, "EMAIL_EXISTS", "Employee with this email already exists", nil)

	// Attendance
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Error(w, http.StatusBadRequest, "ALREADY_CLOCKED_IN", "Already clocked in today", nil)
	case errors.Is(err, attendance.ErrNotClockedIn):
		Error(w, http.StatusBadRequest, "NOT_CLOCKED_IN", "Not clocked in yet", nil)
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Error(w, http.StatusBadRequest, "ALREADY_CLOCKED_OUT", "Already clocked out", nil)
	case errors.Is(err, attendance.ErrOnApprovedLeave):
		Error(w, http.StatusConflict, "LEAVE_APPROVED", "Approved leave covers today", nil)
	case errors.Is(err, attendance.ErrRecordNotFound):
		Error(w, http.StatusNotFound, "NO_ATTENDANCE_ROW", "Attendance record not found", nil)

	// Leave
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInvalidRange):
		Error(w, http.StatusBadRequest, "INVALID_RANGE", "End date must not be before start date", nil)
	case errors.Is(err, leave.ErrOutOfWindow):
		Error(w, http.StatusBadRequest, "OUT_OF_WINDOW", "Leave must fall within the current or next calendar month", nil)
	case errors.Is(err, leave.ErrInsufficientBalance):
		Error(w, http.StatusBadRequest, "INSUFFICIENT_BALANCE", "Insufficient leave balance", nil)
	case errors.Is(err, leave.ErrOverlapping):
		Error(w, http.StatusConflict, "OVERLAPPING", "Overlapping leave request exists", nil)
	case errors.Is(err, leave.ErrAlreadyApproved):
		Error(w, http.StatusConflict, "ALREADY_APPROVED", "Leave already approved", nil)

	// Corrections
	case errors.Is(err, correction.ErrNotFound):
		NotFound(w, "Correction not found")
	case errors.Is(err, correction.ErrDuplicateDate):
		Error(w, http.StatusConflict, "DUPLICATE_FOR_DATE", "A correction for this date already exists", nil)
	case errors.Is(err, correction.ErrAlreadyReviewed):
		Error(w, http.StatusConflict, "ALREADY_REVIEWED", "Correction already reviewed", nil)

	// Payroll
	case errors.Is(err, payroll.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payroll.ErrPayslipDenied):
		Forbidden(w, "Not allowed to access this payslip")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
