package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/peoplecore/hrm-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hrm-backend-go/internal/domain/audit"
	"github.com/peoplecore/hrm-backend-go/internal/domain/employee"
	"github.com/peoplecore/hrm-backend-go/internal/domain/leave"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/database"
	"github.com/peoplecore/hrm-backend-go/internal/repository/postgresql"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.LeaveRequestRepository
	employee.EmployeeRepository
	attendance.AttendanceRepository
	auditor audit.Recorder
}

func NewLeaveService(
	db *database.DB,
	leaveRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	auditor audit.Recorder,
) leave.LeaveService {
	return &LeaveServiceImpl{
		db:                     db,
		LeaveRequestRepository: leaveRepo,
		EmployeeRepository:     employeeRepo,
		AttendanceRepository:   attendanceRepo,
		auditor:                auditor,
	}
}

// Submit implements leave.LeaveService.
func (l *LeaveServiceImpl) Submit(ctx context.Context, req leave.SubmitRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	start, end := req.Dates()
	days, err := leave.ValidateRange(start, end, time.Now())
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	emp, err := l.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	// Submission-time balance check covers CASUAL and MEDICAL only; the
	// authoritative re-check happens under the row lock at approval.
	leaveType := leave.Type(req.LeaveType)
	if leaveType == leave.TypeCasual || leaveType == leave.TypeMedical {
		balance, _ := emp.BalanceFor(req.LeaveType)
		if balance < days {
			return leave.LeaveRequest{}, leave.ErrInsufficientBalance
		}
	}

	overlapping, err := l.LeaveRequestRepository.HasOverlapping(ctx, emp.ID, start, end)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to check overlapping requests: %w", err)
	}
	if overlapping {
		return leave.LeaveRequest{}, leave.ErrOverlapping
	}

	return l.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		EmployeeID: emp.ID,
		LeaveType:  leaveType,
		StartDate:  start,
		EndDate:    end,
		Days:       days,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	})
}

// Review implements leave.LeaveService. Approval locks the request and
// then the employee balance row in that order, re-verifies the balance,
// deducts it with an in-SQL decrement and back-fills ON_LEAVE days, all
// inside one transaction. The audit entry is written after commit.
func (l *LeaveServiceImpl) Review(ctx context.Context, req leave.ReviewRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	decision := leave.Status(req.Status)
	now := time.Now()

	err := postgresql.WithTransaction(ctx, l.db, func(txCtx context.Context) error {
		request, err := l.LeaveRequestRepository.GetByIDForUpdate(txCtx, req.RequestID)
		if err != nil {
			return err
		}
		if request.Status == leave.StatusApproved {
			return leave.ErrAlreadyApproved
		}

		if decision == leave.StatusApproved {
			emp, err := l.EmployeeRepository.GetByIDForUpdate(txCtx, request.EmployeeID)
			if err != nil {
				return err
			}

			if request.LeaveType.Deductible() {
				balance, ok := emp.BalanceFor(string(request.LeaveType))
				if !ok || balance < request.Days {
					return leave.ErrInsufficientBalance
				}
				if err := l.EmployeeRepository.DeductLeaveBalance(txCtx, emp.ID, string(request.LeaveType), request.Days); err != nil {
					return fmt.Errorf("failed to deduct leave balance: %w", err)
				}
			}

			if err := l.backfill(txCtx, emp.ID, request.StartDate, request.EndDate); err != nil {
				return err
			}
		}

		return l.LeaveRequestRepository.UpdateStatus(txCtx, request.ID, decision, req.ReviewerID, now)
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	reviewed, err := l.LeaveRequestRepository.GetByID(ctx, req.RequestID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	action := audit.ActionLeaveRejected
	if decision == leave.StatusApproved {
		action = audit.ActionLeaveApproved
	}
	details := fmt.Sprintf("%s leave %s to %s (%d days)",
		reviewed.LeaveType,
		reviewed.StartDate.Format("2006-01-02"),
		reviewed.EndDate.Format("2006-01-02"),
		reviewed.Days,
	)
	l.auditor.Record(ctx, audit.Entry{
		UserID:   &req.ReviewerID,
		Action:   action,
		Entity:   "leave_request",
		EntityID: &reviewed.ID,
		Details:  &details,
	})

	return reviewed, nil
}

// backfill marks every non-Sunday day of the approved range ON_LEAVE.
// Days with presence evidence are left alone.
func (l *LeaveServiceImpl) backfill(ctx context.Context, employeeID string, start, end time.Time) error {
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		existing, err := l.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, day)
		if err != nil {
			return fmt.Errorf("failed to load attendance for back-fill: %w", err)
		}

		switch attendance.BackfillDecision(existing, day) {
		case attendance.BackfillCreateOnLeave:
			_, err = l.AttendanceRepository.Create(ctx, attendance.Attendance{
				EmployeeID: employeeID,
				Date:       day,
				Status:     attendance.StatusOnLeave,
			})
		case attendance.BackfillMarkOnLeave:
			err = l.AttendanceRepository.SetStatus(ctx, existing.ID, attendance.StatusOnLeave)
		case attendance.BackfillNone:
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to back-fill %s: %w", day.Format("2006-01-02"), err)
		}
	}
	return nil
}

// ListMine implements leave.LeaveService.
func (l *LeaveServiceImpl) ListMine(ctx context.Context, employeeID string, page, limit int) ([]leave.LeaveRequest, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return l.LeaveRequestRepository.ListByEmployee(ctx, employeeID, page, limit)
}

// ListByStatus implements leave.LeaveService.
func (l *LeaveServiceImpl) ListByStatus(ctx context.Context, status leave.Status, page, limit int) ([]leave.LeaveRequest, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return l.LeaveRequestRepository.ListByStatus(ctx, status, page, limit)
}

// ListTeam implements leave.LeaveService.
func (l *LeaveServiceImpl) ListTeam(ctx context.Context, managerID string) ([]leave.LeaveRequest, error) {
	return l.LeaveRequestRepository.ListByManager(ctx, managerID)
}
