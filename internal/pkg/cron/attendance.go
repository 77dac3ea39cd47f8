package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/peoplecore/hrm-backend-go/internal/config"
	"github.com/peoplecore/hrm-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hrm-backend-go/internal/domain/employee"
)

// AttendanceJobs holds the nightly unpaid sweep.
type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	cfg            config.JobsConfig
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	cfg config.JobsConfig,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		cfg:            cfg,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_unpaid_sweep", 1*time.Hour, j.MarkUnpaidSweep)
}

// MarkUnpaidSweep closes out yesterday: every active employee who had
// joined by then gets a row, and incomplete weekday rows become UNPAID.
// Each write is decided per row, so re-running is harmless.
func (j *AttendanceJobs) MarkUnpaidSweep(ctx context.Context) error {
	if time.Now().Hour() != j.cfg.SweepHour {
		return nil
	}

	now := time.Now()
	yesterday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)

	slog.Info("Cron: Starting unpaid sweep", "date", yesterday.Format("2006-01-02"))

	employees, err := j.employeeRepo.ListActiveJoinedBefore(ctx, yesterday)
	if err != nil {
		return fmt.Errorf("failed to list employees for sweep: %w", err)
	}

	created, marked := 0, 0
	for _, emp := range employees {
		existing, err := j.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, yesterday)
		if err != nil {
			slog.Error("Cron: sweep lookup failed", "employee_id", emp.ID, "error", err)
			continue
		}

		switch attendance.SweepDecision(existing, yesterday) {
		case attendance.SweepCreateHoliday:
			_, err = j.attendanceRepo.Create(ctx, attendance.Attendance{
				EmployeeID: emp.ID,
				Date:       yesterday,
				Status:     attendance.StatusHoliday,
			})
			if err == nil {
				created++
			}
		case attendance.SweepCreateUnpaid:
			_, err = j.attendanceRepo.Create(ctx, attendance.Attendance{
				EmployeeID: emp.ID,
				Date:       yesterday,
				Status:     attendance.StatusUnpaid,
			})
			if err == nil {
				created++
			}
		case attendance.SweepMarkUnpaid:
			err = j.attendanceRepo.SetStatus(ctx, existing.ID, attendance.StatusUnpaid)
			if err == nil {
				marked++
			}
		case attendance.SweepNone:
			continue
		}

		if err != nil {
			// a concurrent insert for the same day is fine, the other
			// writer won
			slog.Error("Cron: sweep write failed", "employee_id", emp.ID, "error", err)
		}
	}

	slog.Info("Cron: Unpaid sweep completed",
		"date", yesterday.Format("2006-01-02"),
		"employees", len(employees),
		"created", created,
		"marked_unpaid", marked,
	)
	return nil
}
