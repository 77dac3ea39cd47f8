package attendance

import "context"

// AttendanceService defines business logic for the attendance day
// engine.
type AttendanceService interface {
	// ClockIn validates the geofence and creates today's PRESENT row.
	ClockIn(ctx context.Context, req ClockInRequest) (Attendance, error)

	// ClockOut records the second punch on today's row.
	ClockOut(ctx context.Context, req ClockOutRequest) (Attendance, error)

	// Today returns today's row for the employee, nil when absent.
	Today(ctx context.Context, employeeID string) (*Attendance, error)

	// History lists the employee's rows newest first, joined with the
	// correction status per date.
	History(ctx context.Context, employeeID string, page, limit int) ([]Attendance, int64, error)

	// MonthlySummary derives counts for the month; the window is capped
	// at today when the month is the current one.
	MonthlySummary(ctx context.Context, employeeID string, month, year int) (MonthlySummary, error)

	// TeamToday lists today's rows for the manager's direct reports.
	TeamToday(ctx context.Context, managerID string) ([]Attendance, error)
}
