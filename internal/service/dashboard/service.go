package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/peoplecore/hrm-backend-go/internal/domain/correction"
	"github.com/peoplecore/hrm-backend-go/internal/domain/dashboard"
	"github.com/peoplecore/hrm-backend-go/internal/domain/leave"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	leaveRepo      leave.LeaveRequestRepository
	correctionRepo correction.CorrectionRepository
}

func NewDashboardService(
	dashboardRepo dashboard.DashboardRepository,
	leaveRepo leave.LeaveRequestRepository,
	correctionRepo correction.CorrectionRepository,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: dashboardRepo,
		leaveRepo:           leaveRepo,
		correctionRepo:      correctionRepo,
	}
}

// Stats implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Stats(ctx context.Context) (dashboard.Stats, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var (
		stats dashboard.Stats
		err   error
	)

	if stats.TotalEmployees, err = s.DashboardRepository.CountActiveEmployees(ctx); err != nil {
		return dashboard.Stats{}, fmt.Errorf("failed to count employees: %w", err)
	}
	if stats.PresentToday, err = s.DashboardRepository.CountPresentOn(ctx, today); err != nil {
		return dashboard.Stats{}, fmt.Errorf("failed to count present: %w", err)
	}
	if stats.OnLeaveToday, err = s.leaveRepo.CountApprovedOn(ctx, today); err != nil {
		return dashboard.Stats{}, fmt.Errorf("failed to count on leave: %w", err)
	}
	if stats.PendingLeaves, err = s.leaveRepo.CountPending(ctx); err != nil {
		return dashboard.Stats{}, fmt.Errorf("failed to count pending leaves: %w", err)
	}
	if stats.PendingCorrections, err = s.correctionRepo.CountPending(ctx); err != nil {
		return dashboard.Stats{}, fmt.Errorf("failed to count pending corrections: %w", err)
	}

	return stats, nil
}
