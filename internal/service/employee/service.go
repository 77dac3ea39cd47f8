package employee

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/peoplecore/hrm-backend-go/internal/domain/audit"
	"github.com/peoplecore/hrm-backend-go/internal/domain/employee"
	"github.com/peoplecore/hrm-backend-go/internal/domain/user"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/database"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/email"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/utils"
	"github.com/peoplecore/hrm-backend-go/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	user.UserRepository
	emailService email.EmailService
	auditor      audit.Recorder
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	userRepo user.UserRepository,
	emailService email.EmailService,
	auditor audit.Recorder,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepo,
		UserRepository:     userRepo,
		emailService:       emailService,
		auditor:            auditor,
	}
}

// Create implements employee.EmployeeService. The user and employee
// rows are inserted in one transaction; the username probe runs inside
// it too, so two concurrent creations cannot pick the same candidate.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateRequest) (employee.CreateResult, error) {
	if err := req.Validate(); err != nil {
		return employee.CreateResult{}, err
	}

	if existing, err := s.EmployeeRepository.GetByEmail(ctx, req.Email); err != nil {
		return employee.CreateResult{}, fmt.Errorf("failed to check email: %w", err)
	} else if existing != nil {
		return employee.CreateResult{}, employee.ErrEmailExists
	}

	tempPassword, err := utils.GenerateTempPassword(12)
	if err != nil {
		return employee.CreateResult{}, fmt.Errorf("failed to generate password: %w", err)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return employee.CreateResult{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var (
		username   string
		createdEmp employee.Employee
		createdUsr user.User
	)
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		username, err = s.nextUsername(txCtx, req.Email)
		if err != nil {
			return err
		}

		createdUsr, err = s.UserRepository.Create(txCtx, user.User{
			Username:          username,
			Password:          string(hashed),
			Role:              user.Role(req.Role),
			IsActive:          true,
			MustResetPassword: true,
		})
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		createdEmp, err = s.EmployeeRepository.Create(txCtx, employee.Employee{
			UserID:        &createdUsr.ID,
			EmployeeCode:  req.EmployeeCode,
			FirstName:     req.FirstName,
			LastName:      req.LastName,
			Email:         req.Email,
			Phone:         req.Phone,
			Department:    req.Department,
			Designation:   req.Designation,
			ManagerID:     req.ManagerID,
			MonthlySalary: req.Salary(),
			DateOfJoining: req.Joining(),
			IsActive:      true,
		})
		if err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}
		return nil
	})
	if err != nil {
		return employee.CreateResult{}, err
	}

	// credential mail is best effort
	if err := s.emailService.SendCredentials(createdEmp.Email, createdEmp.FullName(), username, tempPassword); err != nil {
		slog.Error("Failed to send credentials email", "employee_id", createdEmp.ID, "error", err)
	}

	details := fmt.Sprintf("Created employee %s (%s)", createdEmp.FullName(), createdEmp.EmployeeCode)
	s.auditor.Record(ctx, audit.Entry{
		UserID:   actorPtr(req.ActorUserID),
		Action:   audit.ActionCreateEmployee,
		Entity:   "employee",
		EntityID: &createdEmp.ID,
		Details:  &details,
	})

	return employee.CreateResult{
		Employee:     createdEmp,
		Username:     username,
		TempPassword: tempPassword,
	}, nil
}

// nextUsername derives a free username from the email local part by
// appending an incrementing numeric suffix. Must run inside the same
// transaction as the user insert.
func (s *EmployeeServiceImpl) nextUsername(ctx context.Context, emailAddr string) (string, error) {
	base := utils.UsernameBase(emailAddr)
	candidate := base
	for suffix := 1; ; suffix++ {
		taken, err := s.UserRepository.UsernameExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to probe username: %w", err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = base + strconv.Itoa(suffix)
	}
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.Employee, error) {
	return s.EmployeeRepository.GetByID(ctx, id)
}

// GetByUserID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	return s.EmployeeRepository.GetByUserID(ctx, userID)
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, page, limit int, search string) ([]employee.Employee, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.EmployeeRepository.List(ctx, page, limit, search)
}

// ListManagers implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListManagers(ctx context.Context) ([]employee.Employee, error) {
	return s.EmployeeRepository.ListManagers(ctx)
}

// ListTeam implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListTeam(ctx context.Context, managerID string) ([]employee.Employee, error) {
	return s.EmployeeRepository.ListByManager(ctx, managerID)
}

// SetActive implements employee.EmployeeService. The employee and its
// user row move together.
func (s *EmployeeServiceImpl) SetActive(ctx context.Context, id string, isActive bool, actorUserID string) error {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.EmployeeRepository.SetActive(txCtx, emp.ID, isActive); err != nil {
			return fmt.Errorf("failed to update employee: %w", err)
		}
		if emp.UserID != nil {
			if err := s.UserRepository.SetActive(txCtx, *emp.UserID, isActive); err != nil {
				return fmt.Errorf("failed to update user: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	action := audit.ActionDeactivateEmployee
	if isActive {
		action = audit.ActionActivateEmployee
	}
	details := fmt.Sprintf("Employee %s active=%t at %s", emp.FullName(), isActive, time.Now().Format(time.RFC3339))
	s.auditor.Record(ctx, audit.Entry{
		UserID:   actorPtr(actorUserID),
		Action:   action,
		Entity:   "employee",
		EntityID: &emp.ID,
		Details:  &details,
	})
	return nil
}

func actorPtr(userID string) *string {
	if userID == "" {
		return nil
	}
	return &userID
}
