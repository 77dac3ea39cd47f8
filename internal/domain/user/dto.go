package user

import (
	"github.com/peoplecore/hrm-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginResponse struct {
	AccessToken       string `json:"accessToken"`
	RefreshToken      string `json:"refreshToken"`
	UserID            string `json:"userId"`
	Username          string `json:"username"`
	Role              Role   `json:"role"`
	MustResetPassword bool   `json:"mustResetPassword"`
}

type ChangePasswordRequest struct {
	UserID          string `json:"-"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (r *ChangePasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CurrentPassword) {
		errs = append(errs, validator.ValidationError{
			Field:   "currentPassword",
			Message: "currentPassword is required",
		})
	}

	if len(r.NewPassword) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "newPassword",
			Message: "newPassword must be at least 8 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AdminResetPasswordRequest struct {
	AdminID      string `json:"-"`
	TargetUserID string `json:"userId"`
}

func (r *AdminResetPasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.TargetUserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "userId",
			Message: "userId must be a valid uuid",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
