package correction

import (
	"context"
	"fmt"
	"time"

	"github.com/peoplecore/hrm-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hrm-backend-go/internal/domain/audit"
	"github.com/peoplecore/hrm-backend-go/internal/domain/correction"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/database"
	"github.com/peoplecore/hrm-backend-go/internal/repository/postgresql"
)

type CorrectionServiceImpl struct {
	db *database.DB
	correction.CorrectionRepository
	attendance.AttendanceRepository
	auditor audit.Recorder
}

func NewCorrectionService(
	db *database.DB,
	correctionRepo correction.CorrectionRepository,
	attendanceRepo attendance.AttendanceRepository,
	auditor audit.Recorder,
) correction.CorrectionService {
	return &CorrectionServiceImpl{
		db:                   db,
		CorrectionRepository: correctionRepo,
		AttendanceRepository: attendanceRepo,
		auditor:              auditor,
	}
}

// Submit implements correction.CorrectionService.
func (c *CorrectionServiceImpl) Submit(ctx context.Context, req correction.SubmitRequest) (correction.Correction, error) {
	if err := req.Validate(); err != nil {
		return correction.Correction{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	clockIn, clockOut := req.Punches()

	// the unique constraint on (employee_id, date) rejects a second
	// correction for the same day
	return c.CorrectionRepository.Create(ctx, correction.Correction{
		EmployeeID:        req.EmployeeID,
		Date:              date,
		RequestedClockIn:  clockIn,
		RequestedClockOut: clockOut,
		Reason:            req.Reason,
		Status:            correction.StatusPending,
	})
}

// Review implements correction.CorrectionService. Approval locks the
// correction and then the target attendance row, applies the requested
// punches falling back to the existing ones and forces PRESENT.
func (c *CorrectionServiceImpl) Review(ctx context.Context, req correction.ReviewRequest) (correction.Correction, error) {
	if err := req.Validate(); err != nil {
		return correction.Correction{}, err
	}

	decision := correction.Status(req.Status)
	now := time.Now()

	err := postgresql.WithTransaction(ctx, c.db, func(txCtx context.Context) error {
		corr, err := c.CorrectionRepository.GetByIDForUpdate(txCtx, req.CorrectionID)
		if err != nil {
			return err
		}
		if corr.Status != correction.StatusPending {
			return correction.ErrAlreadyReviewed
		}

		if decision == correction.StatusApproved {
			row, err := c.AttendanceRepository.GetByEmployeeAndDateForUpdate(txCtx, corr.EmployeeID, corr.Date)
			if err != nil {
				return fmt.Errorf("failed to lock attendance row: %w", err)
			}
			if row == nil {
				return attendance.ErrRecordNotFound
			}

			clockIn := corr.RequestedClockIn
			if clockIn == nil {
				clockIn = row.ClockIn
			}
			clockOut := corr.RequestedClockOut
			if clockOut == nil {
				clockOut = row.ClockOut
			}

			if err := c.AttendanceRepository.ApplyCorrection(txCtx, row.ID, clockIn, clockOut); err != nil {
				return fmt.Errorf("failed to apply correction: %w", err)
			}
		}

		return c.CorrectionRepository.UpdateStatus(txCtx, corr.ID, decision, req.ReviewerID, now)
	})
	if err != nil {
		return correction.Correction{}, err
	}

	reviewed, err := c.CorrectionRepository.GetByID(ctx, req.CorrectionID)
	if err != nil {
		return correction.Correction{}, err
	}

	action := audit.ActionCorrectionRejected
	if decision == correction.StatusApproved {
		action = audit.ActionCorrectionApproved
	}
	details := fmt.Sprintf("Correction for %s", reviewed.Date.Format("2006-01-02"))
	c.auditor.Record(ctx, audit.Entry{
		UserID:   &req.ReviewerID,
		Action:   action,
		Entity:   "attendance_correction",
		EntityID: &reviewed.ID,
		Details:  &details,
	})

	return reviewed, nil
}

// List implements correction.CorrectionService.
func (c *CorrectionServiceImpl) List(ctx context.Context, page, limit int) ([]correction.Correction, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return c.CorrectionRepository.List(ctx, page, limit)
}
