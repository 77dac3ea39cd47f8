package auth

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/peoplecore/hrm-backend-go/internal/config"
	"github.com/peoplecore/hrm-backend-go/internal/domain/user"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/database"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/email"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/jwt"
	"github.com/peoplecore/hrm-backend-go/internal/repository/postgresql"
	auditService "github.com/peoplecore/hrm-backend-go/internal/service/audit"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

var (
	authTestDB   *database.DB
	authTestOnce sync.Once
)

func authTestInit(t *testing.T) {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	authTestOnce.Do(func() {
		var err error
		authTestDB, err = database.NewPostgreSQLDB(dsn)
		if err != nil {
			panic("Failed to connect to test database: " + err.Error())
		}
		if err := database.Migrate(context.Background(), authTestDB); err != nil {
			panic("Failed to migrate test database: " + err.Error())
		}
	})
}

func truncateAuthTables(t *testing.T, ctx context.Context) {
	t.Helper()
	for _, table := range []string{"audit_logs", "employees", "users"} {
		_, err := authTestDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func createAuthTestUser(t *testing.T, ctx context.Context, password string, isActive bool) user.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo := postgresql.NewUserRepository(authTestDB)
	u, err := repo.Create(ctx, user.User{
		Username: fmt.Sprintf("login-%d", time.Now().UnixNano()),
		Password: string(hashed),
		Role:     user.RoleEmployee,
		IsActive: isActive,
	})
	require.NoError(t, err)
	return u
}

func newAuthTestService(t *testing.T) user.AuthService {
	t.Helper()
	userRepo := postgresql.NewUserRepository(authTestDB)
	employeeRepo := postgresql.NewEmployeeRepository(authTestDB)
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	emailService, err := email.NewEmailService(config.SMTPConfig{})
	require.NoError(t, err)
	auditor := auditService.NewRecorder(postgresql.NewAuditLogRepository(authTestDB))
	return NewAuthService(userRepo, employeeRepo, jwtService, emailService, auditor)
}

func TestAuthService_Login_Success(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	u := createAuthTestUser(t, ctx, "password123", true)
	svc := newAuthTestService(t)

	resp, err := svc.Login(ctx, user.LoginRequest{Username: u.Username, Password: "password123"})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, u.ID, resp.UserID)
	assert.Equal(t, user.RoleEmployee, resp.Role)
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	u := createAuthTestUser(t, ctx, "password123", true)
	svc := newAuthTestService(t)

	_, err := svc.Login(ctx, user.LoginRequest{Username: u.Username, Password: "wrong"})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUsername(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	svc := newAuthTestService(t)

	_, err := svc.Login(ctx, user.LoginRequest{Username: "nobody", Password: "password123"})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	u := createAuthTestUser(t, ctx, "password123", false)
	svc := newAuthTestService(t)

	_, err := svc.Login(ctx, user.LoginRequest{Username: u.Username, Password: "password123"})
	assert.ErrorIs(t, err, user.ErrUserInactive)
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	u := createAuthTestUser(t, ctx, "password123", true)
	svc := newAuthTestService(t)

	err := svc.ChangePassword(ctx, user.ChangePasswordRequest{
		UserID:          u.ID,
		CurrentPassword: "wrong",
		NewPassword:     "brand-new-pass",
	})
	assert.ErrorIs(t, err, user.ErrWrongPassword)

	err = svc.ChangePassword(ctx, user.ChangePasswordRequest{
		UserID:          u.ID,
		CurrentPassword: "password123",
		NewPassword:     "brand-new-pass",
	})
	require.NoError(t, err)

	resp, err := svc.Login(ctx, user.LoginRequest{Username: u.Username, Password: "brand-new-pass"})
	require.NoError(t, err)
	assert.False(t, resp.MustResetPassword)
}
