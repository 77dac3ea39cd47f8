package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/peoplecore/hrm-backend-go/internal/domain/audit"
	"github.com/peoplecore/hrm-backend-go/internal/domain/employee"
	"github.com/peoplecore/hrm-backend-go/internal/domain/user"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/email"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/jwt"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/utils"
)

type AuthServiceImpl struct {
	user.UserRepository
	employee.EmployeeRepository
	jwtService   jwt.Service
	emailService email.EmailService
	auditor      audit.Recorder
}

func NewAuthService(
	userRepo user.UserRepository,
	employeeRepo employee.EmployeeRepository,
	jwtService jwt.Service,
	emailService email.EmailService,
	auditor audit.Recorder,
) user.AuthService {
	return &AuthServiceImpl{
		UserRepository:     userRepo,
		EmployeeRepository: employeeRepo,
		jwtService:         jwtService,
		emailService:       emailService,
		auditor:            auditor,
	}
}

// Login implements user.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req user.LoginRequest) (user.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return user.LoginResponse{}, err
	}

	usr, err := a.UserRepository.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.LoginResponse{}, user.ErrInvalidCredentials
		}
		return user.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(req.Password)); err != nil {
		return user.LoginResponse{}, user.ErrInvalidCredentials
	}
	if !usr.IsActive {
		return user.LoginResponse{}, user.ErrUserInactive
	}

	var employeeID *string
	if emp, err := a.EmployeeRepository.GetByUserID(ctx, usr.ID); err == nil {
		employeeID = &emp.ID
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return user.LoginResponse{}, err
	}

	accessToken, _, err := a.jwtService.GenerateAccessToken(usr.ID, usr.Username, employeeID, usr.Role)
	if err != nil {
		return user.LoginResponse{}, fmt.Errorf("failed to issue access token: %w", err)
	}
	refreshToken, _, err := a.jwtService.GenerateRefreshToken(usr.ID)
	if err != nil {
		return user.LoginResponse{}, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	return user.LoginResponse{
		AccessToken:       accessToken,
		RefreshToken:      refreshToken,
		UserID:            usr.ID,
		Username:          usr.Username,
		Role:              usr.Role,
		MustResetPassword: usr.MustResetPassword,
	}, nil
}

// ChangePassword implements user.AuthService.
func (a *AuthServiceImpl) ChangePassword(ctx context.Context, req user.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	usr, err := a.UserRepository.GetByID(ctx, req.UserID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(req.CurrentPassword)); err != nil {
		return user.ErrWrongPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := a.UserRepository.UpdatePassword(ctx, usr.ID, string(hashed)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if err := a.UserRepository.SetMustResetPassword(ctx, usr.ID, false); err != nil {
		return fmt.Errorf("failed to clear reset flag: %w", err)
	}

	a.auditor.Record(ctx, audit.Entry{
		UserID: &usr.ID,
		Action: audit.ActionPasswordReset,
		Entity: "user",
	})
	return nil
}

// AdminResetPassword implements user.AuthService.
func (a *AuthServiceImpl) AdminResetPassword(ctx context.Context, req user.AdminResetPasswordRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	usr, err := a.UserRepository.GetByID(ctx, req.TargetUserID)
	if err != nil {
		return "", err
	}

	tempPassword, err := utils.GenerateTempPassword(12)
	if err != nil {
		return "", fmt.Errorf("failed to generate password: %w", err)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	if err := a.UserRepository.UpdatePassword(ctx, usr.ID, string(hashed)); err != nil {
		return "", fmt.Errorf("failed to update password: %w", err)
	}
	if err := a.UserRepository.SetMustResetPassword(ctx, usr.ID, true); err != nil {
		return "", fmt.Errorf("failed to set reset flag: %w", err)
	}

	// notify the employee best effort when we know their email
	if emp, err := a.EmployeeRepository.GetByUserID(ctx, usr.ID); err == nil {
		if err := a.emailService.SendPasswordReset(emp.Email, usr.Username, tempPassword); err != nil {
			slog.Error("Failed to send password reset email", "user_id", usr.ID, "error", err)
		}
	}

	details := fmt.Sprintf("Password reset for %s", usr.Username)
	a.auditor.Record(ctx, audit.Entry{
		UserID:   &req.AdminID,
		Action:   audit.ActionAdminPasswordReset,
		Entity:   "user",
		EntityID: &usr.ID,
		Details:  &details,
	})

	return tempPassword, nil
}

// Me implements user.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context, userID string) (user.User, error) {
	return a.UserRepository.GetByID(ctx, userID)
}
