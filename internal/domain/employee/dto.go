package employee

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/peoplecore/hrm-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	ActorUserID   string  `json:"-"`
	EmployeeCode  string  `json:"employeeCode"`
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	Email         string  `json:"email"`
	Phone         *string `json:"phone"`
	Department    string  `json:"department"`
	Designation   string  `json:"designation"`
	ManagerID     *string `json:"managerId"`
	MonthlySalary string  `json:"monthlySalary"`
	DateOfJoining string  `json:"dateOfJoining"`
	Role          string  `json:"role"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeCode",
			Message: "employeeCode is required",
		})
	}

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "firstName",
			Message: "firstName is required",
		})
	}

	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "lastName",
			Message: "lastName is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}

	if validator.IsEmpty(r.Designation) {
		errs = append(errs, validator.ValidationError{
			Field:   "designation",
			Message: "designation is required",
		})
	}

	if r.ManagerID != nil && !validator.IsValidUUID(*r.ManagerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "managerId",
			Message: "managerId must be a valid uuid",
		})
	}

	if salary, err := decimal.NewFromString(r.MonthlySalary); err != nil || salary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "monthlySalary",
			Message: "monthlySalary must be a non-negative decimal number",
		})
	}

	if !validator.IsValidDate(r.DateOfJoining) {
		errs = append(errs, validator.ValidationError{
			Field:   "dateOfJoining",
			Message: "dateOfJoining must be a date in YYYY-MM-DD form",
		})
	}

	if validator.IsEmpty(r.Role) {
		r.Role = "EMPLOYEE"
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Salary returns the parsed monthly salary; Validate must have passed.
func (r *CreateRequest) Salary() decimal.Decimal {
	salary, _ := decimal.NewFromString(r.MonthlySalary)
	return salary
}

// Joining returns the parsed joining date; Validate must have passed.
func (r *CreateRequest) Joining() time.Time {
	joined, _ := time.Parse("2006-01-02", r.DateOfJoining)
	return joined
}

// CreateResult carries the new employee plus the generated login; the
// temporary password is returned exactly once.
type CreateResult struct {
	Employee     Employee
	Username     string
	TempPassword string
}

type BalanceResponse struct {
	Casual  int `json:"casual"`
	Medical int `json:"medical"`
	Earned  int `json:"earned"`
}

type EmployeeResponse struct {
	ID            string          `json:"id"`
	EmployeeCode  string          `json:"employeeCode"`
	FirstName     string          `json:"firstName"`
	LastName      string          `json:"lastName"`
	Email         string          `json:"email"`
	Phone         *string         `json:"phone,omitempty"`
	Department    string          `json:"department"`
	Designation   string          `json:"designation"`
	ManagerID     *string         `json:"managerId,omitempty"`
	DateOfJoining string          `json:"dateOfJoining"`
	LeaveBalances BalanceResponse `json:"leaveBalances"`
	IsActive      bool            `json:"isActive"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            e.ID,
		EmployeeCode:  e.EmployeeCode,
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		Email:         e.Email,
		Phone:         e.Phone,
		Department:    e.Department,
		Designation:   e.Designation,
		ManagerID:     e.ManagerID,
		DateOfJoining: e.DateOfJoining.Format("2006-01-02"),
		LeaveBalances: BalanceResponse{
			Casual:  e.CasualLeaveBalance,
			Medical: e.MedicalLeaveBalance,
			Earned:  e.EarnedLeaveBalance,
		},
		IsActive: e.IsActive,
	}
}
