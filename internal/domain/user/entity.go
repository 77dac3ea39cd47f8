package user

import "time"

type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleHR         Role = "HR"
	RoleManager    Role = "MANAGER"
	RoleEmployee   Role = "EMPLOYEE"
)

func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleHR, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// CanReviewLeave reports whether the role may decide leave requests.
func (r Role) CanReviewLeave() bool {
	return r == RoleSuperAdmin || r == RoleHR || r == RoleManager
}

// CanReviewCorrection reports whether the role may decide attendance
// corrections.
func (r Role) CanReviewCorrection() bool {
	return r == RoleSuperAdmin || r == RoleHR
}

type User struct {
	ID                string
	Username          string
	Password          string
	Role              Role
	IsActive          bool
	MustResetPassword bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
