package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/peoplecore/hrm-backend-go/internal/domain/employee"
)

// AccrualJobs holds the monthly leave accrual.
type AccrualJobs struct {
	employeeRepo employee.EmployeeRepository
}

func NewAccrualJobs(employeeRepo employee.EmployeeRepository) *AccrualJobs {
	return &AccrualJobs{employeeRepo: employeeRepo}
}

func (j *AccrualJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("monthly_leave_accrual", 1*time.Hour, j.MonthlyLeaveAccrual)
}

// MonthlyLeaveAccrual credits one casual and one medical day to every
// active employee on the first of the month. Every hourly tick of the
// 1st attempts the credit, so an outage earlier in the day cannot lose
// the month; the stored accrual stamp keeps a rerun from crediting
// twice.
func (j *AccrualJobs) MonthlyLeaveAccrual(ctx context.Context) error {
	now := time.Now()
	if now.Day() != 1 {
		return nil
	}

	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return j.creditDue(ctx, firstOfMonth)
}

func (j *AccrualJobs) creditDue(ctx context.Context, firstOfMonth time.Time) error {
	slog.Info("Cron: Starting monthly leave accrual", "month", firstOfMonth.Format("2006-01"))

	employees, err := j.employeeRepo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to list employees for accrual: %w", err)
	}

	credited := 0
	for _, emp := range employees {
		if !employee.AccrualDue(emp.LastLeaveAccrual, firstOfMonth) {
			continue
		}
		if err := j.employeeRepo.CreditMonthlyAccrual(ctx, emp.ID, firstOfMonth); err != nil {
			slog.Error("Cron: accrual credit failed", "employee_id", emp.ID, "error", err)
			continue
		}
		credited++
	}

	slog.Info("Cron: Monthly leave accrual completed",
		"month", firstOfMonth.Format("2006-01"),
		"employees", len(employees),
		"credited", credited,
	)
	return nil
}
