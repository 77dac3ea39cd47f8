package user

import "context"

// AuthService defines authentication and password management.
type AuthService interface {
	// Login verifies credentials against the bcrypt hash and issues an
	// access/refresh token pair.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// ChangePassword verifies the current password, stores the new hash
	// and clears the must-reset flag.
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error

	// AdminResetPassword generates a temporary password, sets the
	// must-reset flag and mails the new credentials best effort. The
	// temporary password is also returned for display once.
	AdminResetPassword(ctx context.Context, req AdminResetPasswordRequest) (string, error)

	Me(ctx context.Context, userID string) (User, error)
}
