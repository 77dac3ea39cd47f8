package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/peoplecore/hrm-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hrm-backend-go/internal/domain/audit"
	"github.com/peoplecore/hrm-backend-go/internal/domain/employee"
	"github.com/peoplecore/hrm-backend-go/internal/domain/leave"
	"github.com/peoplecore/hrm-backend-go/internal/domain/setting"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/utils"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	leave.LeaveRequestRepository
	settingRepo setting.OfficeSettingRepository
	auditor     audit.Recorder
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	leaveRepo leave.LeaveRequestRepository,
	settingRepo setting.OfficeSettingRepository,
	auditor audit.Recorder,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository:   attendanceRepo,
		EmployeeRepository:     employeeRepo,
		LeaveRequestRepository: leaveRepo,
		settingRepo:            settingRepo,
		auditor:                auditor,
	}
}

// today truncates now to the calendar day used as the attendance key.
func today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// ClockIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.Attendance, error) {
	if err := req.Validate(); err != nil {
		return attendance.Attendance{}, err
	}

	now := time.Now()
	day := today(now)

	emp, err := a.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.Attendance{}, err
	}

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, day)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to load today's attendance: %w", err)
	}
	if existing != nil {
		if existing.Status == attendance.StatusOnLeave {
			return attendance.Attendance{}, attendance.ErrOnApprovedLeave
		}
		if existing.ClockIn != nil {
			return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
		}
	}

	onLeave, err := a.LeaveRequestRepository.HasApprovedOn(ctx, emp.ID, day)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to check approved leave: %w", err)
	}
	if onLeave {
		return attendance.Attendance{}, attendance.ErrOnApprovedLeave
	}

	// Geofence is open when no office has been configured.
	office, err := a.settingRepo.Get(ctx)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to load office settings: %w", err)
	}
	if office != nil {
		distance := utils.HaversineDistance(req.Latitude, req.Longitude, office.Latitude, office.Longitude)
		if distance > float64(office.AllowedRadiusMeters) {
			return attendance.Attendance{}, &attendance.OutOfRangeError{
				DistanceMeters: math.Round(distance),
				RadiusMeters:   office.AllowedRadiusMeters,
			}
		}
	} else {
		slog.Info("No office settings configured, skipping geofence check", "employee_id", emp.ID)
	}

	record, err := a.AttendanceRepository.Create(ctx, attendance.Attendance{
		EmployeeID: emp.ID,
		Date:       day,
		ClockIn:    &now,
		ClockInLat: &req.Latitude,
		ClockInLng: &req.Longitude,
		IPAddress:  req.IPAddress,
		Status:     attendance.StatusPresent,
	})
	if err != nil {
		return attendance.Attendance{}, err
	}

	details := fmt.Sprintf("Clock in at %v, %v", req.Latitude, req.Longitude)
	a.auditor.Record(ctx, audit.Entry{
		UserID:    emp.UserID,
		Action:    audit.ActionClockIn,
		Entity:    "attendance",
		EntityID:  &record.ID,
		Details:   &details,
		IPAddress: req.IPAddress,
	})

	return record, nil
}

// ClockOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.Attendance, error) {
	if err := req.Validate(); err != nil {
		return attendance.Attendance{}, err
	}

	now := time.Now()
	day := today(now)

	emp, err := a.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.Attendance{}, err
	}

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, day)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to load today's attendance: %w", err)
	}
	if existing == nil || existing.ClockIn == nil {
		return attendance.Attendance{}, attendance.ErrNotClockedIn
	}
	if existing.ClockOut != nil {
		return attendance.Attendance{}, attendance.ErrAlreadyClockedOut
	}

	record, err := a.AttendanceRepository.SetClockOut(ctx, existing.ID, now, req.Latitude, req.Longitude)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to record clock out: %w", err)
	}

	details := fmt.Sprintf("Clock out at %v, %v", req.Latitude, req.Longitude)
	a.auditor.Record(ctx, audit.Entry{
		UserID:   emp.UserID,
		Action:   audit.ActionClockOut,
		Entity:   "attendance",
		EntityID: &record.ID,
		Details:  &details,
	})

	return record, nil
}

// Today implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Today(ctx context.Context, employeeID string) (*attendance.Attendance, error) {
	return a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today(time.Now()))
}

// History implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) History(ctx context.Context, employeeID string, page, limit int) ([]attendance.Attendance, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return a.AttendanceRepository.History(ctx, employeeID, page, limit)
}

// MonthlySummary implements attendance.AttendanceService. The window
// ends at today when the requested month is still in progress, so
// future days never count as absent.
func (a *AttendanceServiceImpl) MonthlySummary(ctx context.Context, employeeID string, month, year int) (attendance.MonthlySummary, error) {
	if month < 1 || month > 12 {
		return attendance.MonthlySummary{}, fmt.Errorf("month out of range: %d", month)
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	if now := today(time.Now()); end.After(now) && !start.After(now) {
		end = now
	}

	counts, err := a.AttendanceRepository.CountByStatus(ctx, employeeID, start, end)
	if err != nil {
		return attendance.MonthlySummary{}, fmt.Errorf("failed to count attendance: %w", err)
	}

	return attendance.MonthlySummary{
		WorkingDays: attendance.WorkingDaysBetween(start, end),
		PresentDays: counts[attendance.StatusPresent],
		AbsentDays:  counts[attendance.StatusUnpaid],
		LeaveDays:   counts[attendance.StatusOnLeave],
	}, nil
}

// TeamToday implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) TeamToday(ctx context.Context, managerID string) ([]attendance.Attendance, error) {
	team, err := a.EmployeeRepository.ListByManager(ctx, managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team: %w", err)
	}
	if len(team) == 0 {
		return []attendance.Attendance{}, nil
	}

	ids := make([]string, 0, len(team))
	for _, member := range team {
		ids = append(ids, member.ID)
	}
	return a.AttendanceRepository.ListByDate(ctx, today(time.Now()), ids)
}
